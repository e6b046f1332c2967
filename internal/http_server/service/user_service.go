// Package service
package service

import (
	"errors"
	"time"

	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
)

type UserService struct {
	logger        log.LoggerInterface
	config        *c.HttpServerConfig
	userOperation operation.UserOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		config:        config,
		userOperation: userOperation,
	}
}

var (
	ErrDateOfBirth  = ApiStatus{StatusName: "DATE_OF_BIRTH_INVALID", Description: "Date of birth must be formatted as 2006-01-02", HttpCode: BadRequest}
	SuccessRegister = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "Registration successful", HttpCode: Created}
)

func (userService *UserService) UserRegister(req *RequestUserRegister) *ApiResponse[ResponseUserRegister] {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return NewApiResponse[ResponseUserRegister](&ErrIllegalParam, Unsatisfied, nil)
	}
	if err := CheckEmailAddress(req.Email); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	if err := nameValidator.CheckString(req.FirstName); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	if err := nameValidator.CheckString(req.LastName); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return NewApiResponse[ResponseUserRegister](&ErrDateOfBirth, Unsatisfied, nil)
		}
		dateOfBirth = &parsed
	}

	user, err := userService.userOperation.NewUser(
		req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, dateOfBirth)
	if err != nil {
		return NewApiResponse[ResponseUserRegister](&ErrRegisterFail, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUserRegister](func() (*interface{}, error) {
		return nil, userService.userOperation.AddUser(user)
	}); res != nil {
		return res
	}

	token := NewClaims(userService.config.JWT, user, false)
	flushToken := NewClaims(userService.config.JWT, user, true)
	return NewApiResponse(&SuccessRegister, Unsatisfied, &ResponseUserRegister{
		User:       user,
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var (
	ErrEmailOrPassword = ApiStatus{StatusName: "WRONG_EMAIL_OR_PASSWORD", Description: "Wrong email or password", HttpCode: Unauthorized}
	SuccessLogin       = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "Login successful", HttpCode: Ok}
)

func (userService *UserService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	if req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponseUserLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, err := userService.userOperation.GetUserByEmail(req.Email)
	if errors.Is(err, operation.ErrUserNotFound) {
		return NewApiResponse[ResponseUserLogin](&ErrEmailOrPassword, Unsatisfied, nil)
	} else if err != nil {
		return NewApiResponse[ResponseUserLogin](&ErrDatabaseFail, Unsatisfied, nil)
	}

	if pass := userService.userOperation.VerifyUserPassword(user, req.Password); pass {
		token := NewClaims(userService.config.JWT, user, false)
		flushToken := NewClaims(userService.config.JWT, user, true)
		return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
			User:       user,
			Token:      token.GenerateKey(),
			FlushToken: flushToken.GenerateKey(),
		})
	}
	return NewApiResponse[ResponseUserLogin](&ErrEmailOrPassword, Unsatisfied, nil)
}

var SuccessGetCurrentProfile = ApiStatus{StatusName: "GET_CURRENT_PROFILE_SUCCESS", Description: "Profile fetched successfully", HttpCode: Ok}

func (userService *UserService) GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile] {
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserCurrentProfile](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCurrentProfile, Unsatisfied, (*ResponseUserCurrentProfile)(user))
}

var SuccessGetToken = ApiStatus{StatusName: "GET_TOKEN", Description: "Token refreshed successfully", HttpCode: Ok}

func (userService *UserService) GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken] {
	if !req.FlushToken {
		return NewApiResponse[ResponseGetToken](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, res := CallDBFuncAndCheckError[operation.User, ResponseGetToken](func() (*operation.User, error) {
		return userService.userOperation.GetUserByUid(req.Uid)
	})
	if res != nil {
		return res
	}

	// The flush token itself is only reissued once it enters its last two
	// access-token lifetimes.
	var flushToken string
	if req.ExpiresAt.Add(-2 * userService.config.JWT.ExpiresDuration).After(time.Now()) {
		flushToken = ""
	} else {
		flushToken = NewClaims(userService.config.JWT, user, true).GenerateKey()
	}

	token := NewClaims(userService.config.JWT, user, false)
	return NewApiResponse(&SuccessGetToken, Unsatisfied, &ResponseGetToken{
		User:       user,
		Token:      token.GenerateKey(),
		FlushToken: flushToken,
	})
}
