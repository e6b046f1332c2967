// Package service
package service

import (
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

type BookingServiceInterface interface {
	CreateBooking(req *RequestBookingCreate) *ApiResponse[ResponseBookingCreate]
	GetMyBookings(req *RequestMyBookings) *ApiResponse[ResponseMyBookings]
	GetBooking(req *RequestBookingDetail) *ApiResponse[ResponseBookingDetail]
	GetBookingByPnrAndName(req *RequestBookingByPnrName) *ApiResponse[ResponseBookingDetail]
	CancelBooking(req *RequestBookingCancel) *ApiResponse[ResponseBookingCancel]
	UpdatePassenger(req *RequestPassengerUpdate) *ApiResponse[ResponsePassengerUpdate]
}

type RequestBookingPassenger struct {
	InventoryID    uint   `json:"inventory_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	PassportNumber string `json:"passport_number"`
}

type RequestBookingCreate struct {
	JwtHeader
	Passengers []*RequestBookingPassenger `json:"passengers"`
}

type ResponseBookingCreate operation.Booking

type RequestMyBookings struct {
	JwtHeader
}

type ResponseMyBookings struct {
	Items []*operation.Booking `json:"items"`
	Total int                  `json:"total"`
}

type RequestBookingDetail struct {
	JwtHeader
	PNR string `param:"pnr"`
}

type ResponseBookingDetail operation.Booking

type RequestBookingByPnrName struct {
	PNR      string `param:"pnr"`
	LastName string `param:"last_name"`
}

type RequestBookingCancel struct {
	JwtHeader
	PNR string `param:"pnr"`
}

type ResponseBookingCancel operation.Booking

type RequestPassengerUpdate struct {
	JwtHeader
	PassengerID    uint   `param:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PassportNumber string `json:"passport_number"`
}

type ResponsePassengerUpdate operation.Passenger
