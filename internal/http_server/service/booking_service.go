// Package service
package service

import (
	"strings"
	"time"

	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
)

type BookingService struct {
	logger           log.LoggerInterface
	bookingOperation operation.BookingOperationInterface
	userOperation    operation.UserOperationInterface
	emailService     EmailServiceInterface
}

func NewBookingService(
	logger log.LoggerInterface,
	bookingOperation operation.BookingOperationInterface,
	userOperation operation.UserOperationInterface,
	emailService EmailServiceInterface,
) *BookingService {
	return &BookingService{
		logger:           logger,
		bookingOperation: bookingOperation,
		userOperation:    userOperation,
		emailService:     emailService,
	}
}

var (
	ErrMixedClasses      = ApiStatus{StatusName: "MIXED_FARE_CLASSES", Description: "All passengers must book the same fare class", HttpCode: BadRequest}
	ErrPassengerFields   = ApiStatus{StatusName: "PASSENGER_FIELDS_INVALID", Description: "Passenger fields are invalid", HttpCode: BadRequest}
	ErrPnrFormat         = ApiStatus{StatusName: "PNR_INVALID", Description: "PNR must be six characters", HttpCode: BadRequest}
	SuccessCreateBooking = ApiStatus{StatusName: "CREATE_BOOKING_SUCCESS", Description: "Booking created successfully", HttpCode: Created}
)

func checkPnr(pnr string) (string, *ApiStatus) {
	pnr = strings.ToUpper(strings.TrimSpace(pnr))
	if len(pnr) != operation.PnrLength {
		return "", &ErrPnrFormat
	}
	return pnr, nil
}

func (bookingService *BookingService) CreateBooking(req *RequestBookingCreate) *ApiResponse[ResponseBookingCreate] {
	if err := passengersValidator.CheckInt(len(req.Passengers)); err != nil {
		return NewApiResponse[ResponseBookingCreate](err, Unsatisfied, nil)
	}

	inventoryId := req.Passengers[0].InventoryID
	passengers := make([]*operation.PassengerInput, 0, len(req.Passengers))
	for _, passenger := range req.Passengers {
		if passenger.InventoryID != inventoryId {
			return NewApiResponse[ResponseBookingCreate](&ErrMixedClasses, Unsatisfied, nil)
		}
		if passenger.InventoryID <= 0 || passenger.FirstName == "" || passenger.LastName == "" {
			return NewApiResponse[ResponseBookingCreate](&ErrPassengerFields, Unsatisfied, nil)
		}
		if err := nameValidator.CheckString(passenger.FirstName); err != nil {
			return NewApiResponse[ResponseBookingCreate](err, Unsatisfied, nil)
		}
		if err := nameValidator.CheckString(passenger.LastName); err != nil {
			return NewApiResponse[ResponseBookingCreate](err, Unsatisfied, nil)
		}
		dateOfBirth, err := time.Parse(time.DateOnly, passenger.DateOfBirth)
		if err != nil {
			return NewApiResponse[ResponseBookingCreate](&ErrPassengerFields, Unsatisfied, nil)
		}
		passengers = append(passengers, &operation.PassengerInput{
			InventoryID:    passenger.InventoryID,
			FirstName:      passenger.FirstName,
			LastName:       passenger.LastName,
			DateOfBirth:    dateOfBirth,
			PassportNumber: passenger.PassportNumber,
		})
	}

	booking, res := CallDBFuncAndCheckError[operation.Booking, ResponseBookingCreate](func() (*operation.Booking, error) {
		return bookingService.bookingOperation.CreateBooking(req.Uid, inventoryId, passengers)
	})
	if res != nil {
		return res
	}

	if user, err := bookingService.userOperation.GetUserByUid(req.Uid); err == nil {
		if err := bookingService.emailService.SendBookingConfirmedEmail(user, booking); err != nil {
			bookingService.logger.WarnF("SendBookingConfirmedEmail failed for %s: %v", booking.PNR, err)
		}
	}

	return NewApiResponse(&SuccessCreateBooking, Unsatisfied, (*ResponseBookingCreate)(booking))
}

var SuccessGetMyBookings = ApiStatus{StatusName: "GET_MY_BOOKINGS_SUCCESS", Description: "Bookings fetched successfully", HttpCode: Ok}

func (bookingService *BookingService) GetMyBookings(req *RequestMyBookings) *ApiResponse[ResponseMyBookings] {
	bookings, err := bookingService.bookingOperation.GetBookingsByUser(req.Uid)
	if err != nil {
		return NewApiResponse[ResponseMyBookings](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetMyBookings, Unsatisfied, &ResponseMyBookings{
		Items: bookings,
		Total: len(bookings),
	})
}

var SuccessGetBooking = ApiStatus{StatusName: "GET_BOOKING_SUCCESS", Description: "Booking fetched successfully", HttpCode: Ok}

func (bookingService *BookingService) GetBooking(req *RequestBookingDetail) *ApiResponse[ResponseBookingDetail] {
	pnr, status := checkPnr(req.PNR)
	if status != nil {
		return NewApiResponse[ResponseBookingDetail](status, Unsatisfied, nil)
	}
	booking, res := CallDBFuncAndCheckError[operation.Booking, ResponseBookingDetail](func() (*operation.Booking, error) {
		return bookingService.bookingOperation.GetBookingByPnr(pnr, req.Uid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetBooking, Unsatisfied, (*ResponseBookingDetail)(booking))
}

func (bookingService *BookingService) GetBookingByPnrAndName(req *RequestBookingByPnrName) *ApiResponse[ResponseBookingDetail] {
	pnr, status := checkPnr(req.PNR)
	if status != nil {
		return NewApiResponse[ResponseBookingDetail](status, Unsatisfied, nil)
	}
	if req.LastName == "" {
		return NewApiResponse[ResponseBookingDetail](&ErrIllegalParam, Unsatisfied, nil)
	}
	booking, res := CallDBFuncAndCheckError[operation.Booking, ResponseBookingDetail](func() (*operation.Booking, error) {
		return bookingService.bookingOperation.GetBookingByPnrAndLastName(pnr, req.LastName)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetBooking, Unsatisfied, (*ResponseBookingDetail)(booking))
}

var SuccessCancelBooking = ApiStatus{StatusName: "CANCEL_BOOKING_SUCCESS", Description: "Booking cancelled successfully", HttpCode: Ok}

func (bookingService *BookingService) CancelBooking(req *RequestBookingCancel) *ApiResponse[ResponseBookingCancel] {
	pnr, status := checkPnr(req.PNR)
	if status != nil {
		return NewApiResponse[ResponseBookingCancel](status, Unsatisfied, nil)
	}
	booking, res := CallDBFuncAndCheckError[operation.Booking, ResponseBookingCancel](func() (*operation.Booking, error) {
		return bookingService.bookingOperation.CancelBooking(pnr, req.Uid)
	})
	if res != nil {
		return res
	}

	if user, err := bookingService.userOperation.GetUserByUid(req.Uid); err == nil {
		if err := bookingService.emailService.SendBookingCancelledEmail(user, booking); err != nil {
			bookingService.logger.WarnF("SendBookingCancelledEmail failed for %s: %v", booking.PNR, err)
		}
	}

	return NewApiResponse(&SuccessCancelBooking, Unsatisfied, (*ResponseBookingCancel)(booking))
}

var SuccessUpdatePassenger = ApiStatus{StatusName: "UPDATE_PASSENGER_SUCCESS", Description: "Passenger updated successfully", HttpCode: Ok}

func (bookingService *BookingService) UpdatePassenger(req *RequestPassengerUpdate) *ApiResponse[ResponsePassengerUpdate] {
	if req.PassengerID <= 0 {
		return NewApiResponse[ResponsePassengerUpdate](&ErrIllegalParam, Unsatisfied, nil)
	}

	updateInfo := make(map[string]interface{})
	if req.FirstName != "" {
		if err := nameValidator.CheckString(req.FirstName); err != nil {
			return NewApiResponse[ResponsePassengerUpdate](err, Unsatisfied, nil)
		}
		updateInfo["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		if err := nameValidator.CheckString(req.LastName); err != nil {
			return NewApiResponse[ResponsePassengerUpdate](err, Unsatisfied, nil)
		}
		updateInfo["last_name"] = req.LastName
	}
	if req.PassportNumber != "" {
		updateInfo["passport_number"] = req.PassportNumber
	}
	if len(updateInfo) == 0 {
		return NewApiResponse[ResponsePassengerUpdate](&ErrIllegalParam, Unsatisfied, nil)
	}

	passenger, res := CallDBFuncAndCheckError[operation.Passenger, ResponsePassengerUpdate](func() (*operation.Passenger, error) {
		return bookingService.bookingOperation.UpdatePassenger(req.PassengerID, req.Uid, updateInfo)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessUpdatePassenger, Unsatisfied, (*ResponsePassengerUpdate)(passenger))
}
