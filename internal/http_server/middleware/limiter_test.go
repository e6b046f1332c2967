package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiter(t *testing.T) {
	limiter := NewSlidingWindowLimiter(50*time.Millisecond, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("client"), "request %d should pass", i)
	}
	assert.False(t, limiter.Allow("client"))

	assert.True(t, limiter.Allow("other-client"), "keys are isolated")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.Allow("client"), "window should have moved on")
}
