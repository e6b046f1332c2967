// Package service
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	Created             HttpCode = 201
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid        uint   `json:"uid"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	FlushToken bool   `json:"flushToken"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

type JwtHeader struct {
	Uid     uint
	IsAdmin bool
}

func NewClaims(config *c.JWTConfig, user *operation.User, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	return &Claims{
		Uid:        user.ID,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "BookingHttpServer",
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "Invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "Missing parameter", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "Not allowed to do that", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "Internal server error", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "User does not exist", NotFound}
	ErrAirportNotFound       = ApiStatus{"AIRPORT_NOT_FOUND", "Airport does not exist", NotFound}
	ErrAircraftNotFound      = ApiStatus{"AIRCRAFT_NOT_FOUND", "Aircraft does not exist", NotFound}
	ErrFlightNotFound        = ApiStatus{"FLIGHT_NOT_FOUND", "Flight does not exist", NotFound}
	ErrInventoryNotFound     = ApiStatus{"INVENTORY_NOT_FOUND", "Fare class does not exist", NotFound}
	ErrBookingNotFound       = ApiStatus{"BOOKING_NOT_FOUND", "Booking does not exist or access denied", NotFound}
	ErrPassengerNotFound     = ApiStatus{"PASSENGER_NOT_FOUND", "Passenger does not exist", NotFound}
	ErrNoSeats               = ApiStatus{"NO_SEATS_AVAILABLE", "Not enough seats available in this fare class", Conflict}
	ErrAlreadyCancelled      = ApiStatus{"BOOKING_ALREADY_CANCELLED", "Booking has already been cancelled", Conflict}
	ErrClassCodeTaken        = ApiStatus{"CLASS_CODE_TAKEN", "Fare class already defined for this flight", BadRequest}
	ErrRegisterFail          = ApiStatus{"REGISTER_FAIL", "Registration failed", ServerInternalError}
	ErrEmailExists           = ApiStatus{"EMAIL_EXISTS", "Email already registered", BadRequest}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "Missing or malformed JWT token", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "Invalid or expired JWT token", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "Unknown JWT parse error", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError runs a database operation and maps its sentinel
// errors onto the API status taxonomy.
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrEmailCheck):
		return nil, NewApiResponse[T](&ErrRegisterFail, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEmailTaken):
		return nil, NewApiResponse[T](&ErrEmailExists, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewApiResponse[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAirportNotFound):
		return nil, NewApiResponse[T](&ErrAirportNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftNotFound):
		return nil, NewApiResponse[T](&ErrAircraftNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewApiResponse[T](&ErrFlightNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrInventoryNotFound):
		return nil, NewApiResponse[T](&ErrInventoryNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrBookingNotFound):
		return nil, NewApiResponse[T](&ErrBookingNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrPassengerNotFound):
		return nil, NewApiResponse[T](&ErrPassengerNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrNoSeatsAvailable):
		return nil, NewApiResponse[T](&ErrNoSeats, Unsatisfied, nil)
	case errors.Is(err, operation.ErrBookingAlreadyCancelled):
		return nil, NewApiResponse[T](&ErrAlreadyCancelled, Unsatisfied, nil)
	case errors.Is(err, operation.ErrClassCodeTaken):
		return nil, NewApiResponse[T](&ErrClassCodeTaken, Unsatisfied, nil)
	case err != nil:
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}

// CheckAdminPermission rejects callers whose token does not carry the admin
// flag.
func CheckAdminPermission[T any](header *JwtHeader) *ApiResponse[T] {
	if header == nil || !header.IsAdmin {
		return NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	return nil
}
