// Package service
package service

import (
	"testing"

	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegister(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.user.UserRegister(&RequestUserRegister{
		Email:       "newcomer@example.com",
		Password:    "password123",
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "1985-07-01",
	})
	require.Equal(t, Created.Code(), res.HttpCode)
	require.NotNil(t, res.Data)
	assert.NotEmpty(t, res.Data.Token)
	assert.NotEmpty(t, res.Data.FlushToken)
	assert.Equal(t, "newcomer@example.com", res.Data.User.Email)
}

func TestUserRegisterRejectsDuplicateEmail(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.user.UserRegister(&RequestUserRegister{
		Email:     "traveler@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
	})
	assert.Equal(t, "EMAIL_EXISTS", res.Code)
	assert.Equal(t, BadRequest.Code(), res.HttpCode)
}

func TestUserRegisterValidation(t *testing.T) {
	fixture := newServiceFixture(t)

	tests := []struct {
		name string
		req  *RequestUserRegister
		code string
	}{
		{"missing fields", &RequestUserRegister{Email: "a@b.io"}, "PARAM_ERROR"},
		{"invalid email", &RequestUserRegister{Email: "not-an-email", Password: "password123", FirstName: "A", LastName: "B"}, "EMAIL_INVALID"},
		{"short password", &RequestUserRegister{Email: "a@example.com", Password: "abc", FirstName: "A", LastName: "B"}, "PASSWORD_TOO_SHORT"},
		{"bad birth date", &RequestUserRegister{Email: "a@example.com", Password: "password123", FirstName: "A", LastName: "B", DateOfBirth: "03/14/1990"}, "DATE_OF_BIRTH_INVALID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fixture.user.UserRegister(tt.req)
			assert.Equal(t, tt.code, res.Code)
		})
	}
}

func TestUserLogin(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.user.UserLogin(&RequestUserLogin{Email: "traveler@example.com", Password: "password123"})
	require.Equal(t, Ok.Code(), res.HttpCode)
	require.NotNil(t, res.Data)
	assert.NotEmpty(t, res.Data.Token)

	res = fixture.user.UserLogin(&RequestUserLogin{Email: "traveler@example.com", Password: "wrong"})
	assert.Equal(t, "WRONG_EMAIL_OR_PASSWORD", res.Code)
	assert.Equal(t, Unauthorized.Code(), res.HttpCode)

	res = fixture.user.UserLogin(&RequestUserLogin{Email: "ghost@example.com", Password: "password123"})
	assert.Equal(t, "WRONG_EMAIL_OR_PASSWORD", res.Code)
}

func TestGetCurrentProfile(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.user.GetCurrentProfile(&RequestUserCurrentProfile{Uid: fixture.userId})
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.Equal(t, "traveler@example.com", res.Data.Email)

	res = fixture.user.GetCurrentProfile(&RequestUserCurrentProfile{Uid: 9999})
	assert.Equal(t, "USER_NOT_FOUND", res.Code)
}

func TestGetTokenWithFlushToken(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.user.GetTokenWithFlushToken(&RequestGetToken{Uid: fixture.userId, FlushToken: true})
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.NotEmpty(t, res.Data.Token)

	res = fixture.user.GetTokenWithFlushToken(&RequestGetToken{Uid: fixture.userId, FlushToken: false})
	assert.Equal(t, "PARAM_ERROR", res.Code)
}
