// Package service
package service

import (
	"time"

	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

type UserServiceInterface interface {
	UserRegister(req *RequestUserRegister) *ApiResponse[ResponseUserRegister]
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile]
	GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken]
}

type RequestUserRegister struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
}

type ResponseUserRegister struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestUserLogin struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password"`
}

type ResponseUserLogin struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestUserCurrentProfile struct {
	Uid uint
}

type ResponseUserCurrentProfile operation.User

type RequestGetToken struct {
	Uid        uint
	FlushToken bool
	ExpiresAt  time.Time
}

type ResponseGetToken struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}
