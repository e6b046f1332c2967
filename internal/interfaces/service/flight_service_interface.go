// Package service
package service

import (
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

type FlightServiceInterface interface {
	SearchFlights(req *RequestFlightSearch) *ApiResponse[ResponseFlightSearch]
	GetFlight(req *RequestFlightDetail) *ApiResponse[ResponseFlightDetail]
	CreateFlight(req *RequestFlightCreate) *ApiResponse[ResponseFlightCreate]
	UpdateFlight(req *RequestFlightUpdate) *ApiResponse[ResponseFlightUpdate]
}

type RequestFlightSearch struct {
	OriginIata      string `query:"origin"`
	DestinationIata string `query:"destination"`
	TravelDate      string `query:"date"`
	Passengers      int    `query:"passengers"`
}

type ResponseFlightSearch struct {
	Items []*operation.Flight `json:"items"`
	Total int                 `json:"total"`
}

type RequestFlightDetail struct {
	FlightID uint `param:"id"`
}

type ResponseFlightDetail operation.Flight

type RequestInventoryClass struct {
	ClassCode    string  `json:"class_code"`
	BaseFare     float64 `json:"base_fare"`
	TotalSeats   int     `json:"total_seats"`
	IsRefundable bool    `json:"is_refundable"`
}

type RequestFlightCreate struct {
	JwtHeader
	FlightNumber    string                   `json:"flight_number"`
	OriginIata      string                   `json:"origin"`
	DestinationIata string                   `json:"destination"`
	AircraftID      uint                     `json:"aircraft_id"`
	DepartureTime   string                   `json:"departure_time"`
	ArrivalTime     string                   `json:"arrival_time"`
	BasePrice       float64                  `json:"base_price"`
	Inventories     []*RequestInventoryClass `json:"inventories"`
}

type ResponseFlightCreate operation.Flight

type RequestFlightUpdate struct {
	JwtHeader
	FlightID      uint    `param:"id"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	BasePrice     float64 `json:"base_price"`
	Status        string  `json:"status"`
}

type ResponseFlightUpdate operation.Flight
