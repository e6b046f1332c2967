package database

import (
	"testing"

	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	operations := newTestOperations(t)

	first, err := operations.UserOperation().NewUser(
		"traveler@example.com", "password123", "John", "Doe", "", nil)
	require.NoError(t, err)
	require.NoError(t, operations.UserOperation().AddUser(first))

	second, err := operations.UserOperation().NewUser(
		"traveler@example.com", "hunter2", "Jane", "Doe", "", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, operations.UserOperation().AddUser(second), ErrEmailTaken)
}

func TestUserPasswordIsHashed(t *testing.T) {
	operations := newTestOperations(t)

	user, err := operations.UserOperation().NewUser(
		"traveler@example.com", "password123", "John", "Doe", "", nil)
	require.NoError(t, err)
	require.NoError(t, operations.UserOperation().AddUser(user))

	stored, err := operations.UserOperation().GetUserByEmail("traveler@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, operations.UserOperation().VerifyUserPassword(stored, "password123"))
	assert.False(t, operations.UserOperation().VerifyUserPassword(stored, "password124"))
}

func TestGetUserNotFound(t *testing.T) {
	operations := newTestOperations(t)

	_, err := operations.UserOperation().GetUserByUid(42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = operations.UserOperation().GetUserByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
