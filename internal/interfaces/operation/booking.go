// Package operation
package operation

import (
	"errors"
	"fmt"
	"time"

	"github.com/thanhpk/randstr"
)

var (
	// ErrBookingNotFound booking does not exist or is not owned by the caller
	ErrBookingNotFound = errors.New("booking does not exist")
	// ErrNoSeatsAvailable not enough open seats in the fare class
	ErrNoSeatsAvailable = errors.New("not enough seats available")
	// ErrBookingAlreadyCancelled cancellation is not idempotent
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	// ErrPnrExhausted could not generate an unused PNR
	ErrPnrExhausted = errors.New("pnr generation exhausted")
	// ErrInventoryCorrupted seat counters out of bounds, should never happen
	ErrInventoryCorrupted = errors.New("inventory seat counters corrupted")
	// ErrPassengerNotFound passenger does not exist
	ErrPassengerNotFound = errors.New("passenger does not exist")
)

// PassengerInput is one passenger of a booking request, already validated by
// the service layer.
type PassengerInput struct {
	InventoryID    uint
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	PassportNumber string
}

// PnrAlphabet excludes 0/O, 1/I and vowels so codes stay unambiguous when
// read over the phone.
const PnrAlphabet = "BCDFGHJKLMNPQRSTVWXZ23456789"

const PnrLength = 6

func GeneratePnr() string {
	return randstr.String(PnrLength, PnrAlphabet)
}

// SeatLabel maps a zero-based seat index to a cabin label, six seats per row.
func SeatLabel(index int) string {
	row := index/6 + 1
	letter := string("ABCDEF"[index%6])
	return fmt.Sprintf("%d%s", row, letter)
}

type BookingOperationInterface interface {
	// CreateBooking books every passenger into the same fare class as one
	// atomic unit: the seat counter increment, the booking row and the
	// passenger rows all commit or none do.
	CreateBooking(userId uint, inventoryId uint, passengers []*PassengerInput) (booking *Booking, err error)
	// CancelBooking reverses the seat accounting of a Confirmed booking
	// owned by userId and flips its status, atomically.
	CancelBooking(pnr string, userId uint) (booking *Booking, err error)
	GetBookingsByUser(userId uint) (bookings []*Booking, err error)
	GetBookingByPnr(pnr string, userId uint) (booking *Booking, err error)
	// GetBookingByPnrAndLastName serves the kiosk lookup flow, no ownership
	// check.
	GetBookingByPnrAndLastName(pnr string, lastName string) (booking *Booking, err error)
	UpdatePassenger(passengerId uint, userId uint, info map[string]interface{}) (passenger *Passenger, err error)
}
