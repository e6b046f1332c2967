// Package service
package service

import (
	"net/mail"
	"regexp"

	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

func (v *FieldValidator) CheckInt(value int) *ApiStatus {
	if value > v.Max {
		return v.ErrLong
	}
	if value < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	nameValidator       *FieldValidator
	passwordValidator   *FieldValidator
	emailValidator      *FieldValidator
	passengersValidator *FieldValidator
)

var (
	ErrEmailInvalid = ApiStatus{StatusName: "EMAIL_INVALID", Description: "Email address is not valid", HttpCode: BadRequest}
	ErrIataInvalid  = ApiStatus{StatusName: "IATA_INVALID", Description: "IATA code must be three letters", HttpCode: BadRequest}
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

func CheckEmailAddress(value string) *ApiStatus {
	if err := emailValidator.CheckString(value); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &ErrEmailInvalid
	}
	return nil
}

func CheckIataCode(value string) *ApiStatus {
	if !iataPattern.MatchString(value) {
		return &ErrIataInvalid
	}
	return nil
}

func InitValidator(config *c.HttpServerLimit) {
	nameValidator = &FieldValidator{
		Min:      config.NameLengthMin,
		Max:      config.NameLengthMax,
		ErrShort: &ApiStatus{StatusName: "NAME_TOO_SHORT", Description: "Name is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "NAME_TOO_LONG", Description: "Name is too long", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "Password is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "Password is too long", HttpCode: BadRequest},
	}
	emailValidator = &FieldValidator{
		Min:      config.EmailLengthMin,
		Max:      config.EmailLengthMax,
		ErrShort: &ApiStatus{StatusName: "EMAIL_TOO_SHORT", Description: "Email is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "EMAIL_TOO_LONG", Description: "Email is too long", HttpCode: BadRequest},
	}
	passengersValidator = &FieldValidator{
		Min:      1,
		Max:      config.PassengersPerBooking,
		ErrShort: &ApiStatus{StatusName: "NO_PASSENGERS", Description: "A booking requires at least one passenger", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "TOO_MANY_PASSENGERS", Description: "Too many passengers for one booking", HttpCode: BadRequest},
	}
}
