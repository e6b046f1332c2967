package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

const maxPnrAttempts = 5

type BookingOperation struct {
	logger       log.LoggerInterface
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewBookingOperation(logger log.LoggerInterface, db *gorm.DB, queryTimeout time.Duration) *BookingOperation {
	return &BookingOperation{logger: logger, db: db, queryTimeout: queryTimeout}
}

// isLockError reports whether the transaction failed on engine-level lock
// contention and is worth one more attempt.
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "deadlock") ||
		strings.Contains(message, "lock wait timeout") ||
		strings.Contains(message, "database is locked")
}

func (bookingOperation *BookingOperation) CreateBooking(
	userId uint,
	inventoryId uint,
	passengers []*PassengerInput,
) (booking *Booking, err error) {
	booking, err = bookingOperation.createBooking(userId, inventoryId, passengers)
	if isLockError(err) {
		bookingOperation.logger.WarnF("Booking transaction hit lock contention, retrying once: %v", err)
		booking, err = bookingOperation.createBooking(userId, inventoryId, passengers)
	}
	return
}

func (bookingOperation *BookingOperation) createBooking(
	userId uint,
	inventoryId uint,
	passengers []*PassengerInput,
) (*Booking, error) {
	seatCount := len(passengers)
	booking := &Booking{}

	err := bookingOperation.db.Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
		defer cancel()

		result := tx.WithContext(ctx).
			Model(&FlightInventory{}).
			Where("id = ? AND seats_booked + ? <= total_seats", inventoryId, seatCount).
			Update("seats_booked", gorm.Expr("seats_booked + ?", seatCount))
		if result.Error != nil {
			return result.Error
		}

		inventory := &FlightInventory{}
		if err := tx.WithContext(ctx).Where("id = ?", inventoryId).First(inventory).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInventoryNotFound
			}
			return err
		}

		if result.RowsAffected == 0 {
			return ErrNoSeatsAvailable
		}

		pnr, err := bookingOperation.pickUnusedPnr(tx)
		if err != nil {
			return err
		}

		booking.PNR = pnr
		booking.UserID = userId
		booking.FlightID = inventory.FlightID
		booking.TotalAmount = inventory.BaseFare * float64(seatCount)
		booking.PaymentStatus = PaymentPending
		booking.PaymentRef = uuid.NewString()
		booking.BookingStatus = BookingConfirmed

		if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
			return err
		}

		// Seat labels continue the class sequence from before this increment.
		seatBase := inventory.SeatsBooked - seatCount
		rows := make([]*Passenger, 0, seatCount)
		for i, passenger := range passengers {
			rows = append(rows, &Passenger{
				BookingID:      booking.ID,
				InventoryID:    inventoryId,
				FirstName:      passenger.FirstName,
				LastName:       passenger.LastName,
				DateOfBirth:    passenger.DateOfBirth,
				PassportNumber: passenger.PassportNumber,
				SeatNumber:     SeatLabel(seatBase + i),
			})
		}

		if err := tx.WithContext(ctx).Create(rows).Error; err != nil {
			return err
		}
		booking.Passengers = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookingOperation.loadBooking(booking.ID)
}

func (bookingOperation *BookingOperation) pickUnusedPnr(tx *gorm.DB) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
	defer cancel()

	for attempt := 0; attempt < maxPnrAttempts; attempt++ {
		pnr := GeneratePnr()
		var count int64
		if err := tx.WithContext(ctx).
			Model(&Booking{}).
			Where("pnr = ?", pnr).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return pnr, nil
		}
	}
	return "", ErrPnrExhausted
}

func (bookingOperation *BookingOperation) CancelBooking(pnr string, userId uint) (booking *Booking, err error) {
	booking, err = bookingOperation.cancelBooking(pnr, userId)
	if isLockError(err) {
		bookingOperation.logger.WarnF("Cancellation transaction hit lock contention, retrying once: %v", err)
		booking, err = bookingOperation.cancelBooking(pnr, userId)
	}
	return
}

func (bookingOperation *BookingOperation) cancelBooking(pnr string, userId uint) (*Booking, error) {
	booking := &Booking{}

	err := bookingOperation.db.Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
		defer cancel()

		if err := tx.WithContext(ctx).
			Preload("Passengers").
			Where("pnr = ? AND user_id = ?", pnr, userId).
			First(booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.BookingStatus == BookingCancelled {
			return ErrBookingAlreadyCancelled
		}

		seatsPerInventory := make(map[uint]int)
		for _, passenger := range booking.Passengers {
			seatsPerInventory[passenger.InventoryID]++
		}

		refundable := true
		for inventoryId, seatCount := range seatsPerInventory {
			result := tx.WithContext(ctx).
				Model(&FlightInventory{}).
				Where("id = ? AND seats_booked - ? >= 0", inventoryId, seatCount).
				Update("seats_booked", gorm.Expr("seats_booked - ?", seatCount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInventoryCorrupted
			}

			inventory := &FlightInventory{}
			if err := tx.WithContext(ctx).Where("id = ?", inventoryId).First(inventory).Error; err != nil {
				return err
			}
			if !inventory.IsRefundable {
				refundable = false
			}
		}

		updates := map[string]interface{}{"booking_status": BookingCancelled}
		if refundable {
			updates["payment_status"] = PaymentRefunded
		}
		if err := tx.WithContext(ctx).Model(booking).Updates(updates).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookingOperation.loadBooking(booking.ID)
}

func (bookingOperation *BookingOperation) loadBooking(id uint) (booking *Booking, err error) {
	booking = &Booking{}
	ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
	defer cancel()
	err = bookingOperation.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Preload("Flight.Aircraft").
		Preload("Passengers").
		Where("id = ?", id).
		First(booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrBookingNotFound
	}
	return
}

func (bookingOperation *BookingOperation) GetBookingsByUser(userId uint) (bookings []*Booking, err error) {
	bookings = make([]*Booking, 0)
	ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
	defer cancel()
	err = bookingOperation.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Preload("Passengers").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&bookings).Error
	return
}

func (bookingOperation *BookingOperation) GetBookingByPnr(pnr string, userId uint) (booking *Booking, err error) {
	booking = &Booking{}
	ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
	defer cancel()
	err = bookingOperation.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Preload("Flight.Aircraft").
		Preload("Passengers").
		Where("pnr = ? AND user_id = ?", pnr, userId).
		First(booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrBookingNotFound
	}
	return
}

func (bookingOperation *BookingOperation) GetBookingByPnrAndLastName(pnr string, lastName string) (booking *Booking, err error) {
	booking = &Booking{}
	ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
	defer cancel()

	matched := bookingOperation.db.
		Model(&Passenger{}).
		Select("booking_id").
		Where("LOWER(last_name) = LOWER(?)", lastName)

	err = bookingOperation.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Preload("Passengers").
		Where("pnr = ?", pnr).
		Where("id IN (?)", matched).
		First(booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrBookingNotFound
	}
	return
}

func (bookingOperation *BookingOperation) UpdatePassenger(
	passengerId uint,
	userId uint,
	info map[string]interface{},
) (passenger *Passenger, err error) {
	passenger = &Passenger{}
	err = bookingOperation.db.Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), bookingOperation.queryTimeout)
		defer cancel()

		if err := tx.WithContext(ctx).Where("id = ?", passengerId).First(passenger).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPassengerNotFound
			}
			return err
		}

		booking := &Booking{}
		if err := tx.WithContext(ctx).
			Where("id = ? AND user_id = ?", passenger.BookingID, userId).
			First(booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPassengerNotFound
			}
			return err
		}

		if booking.BookingStatus == BookingCancelled {
			return ErrBookingAlreadyCancelled
		}

		return tx.WithContext(ctx).Model(passenger).Updates(info).Error
	})
	if err != nil {
		return nil, err
	}
	return
}
