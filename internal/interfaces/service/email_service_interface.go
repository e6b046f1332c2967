// Package service
package service

import (
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

type EmailServiceInterface interface {
	// SendBookingConfirmedEmail notifies the booking owner after a
	// successful booking. A nil error is returned when email is disabled.
	SendBookingConfirmedEmail(user *operation.User, booking *operation.Booking) error
	SendBookingCancelledEmail(user *operation.User, booking *operation.Booking) error
}
