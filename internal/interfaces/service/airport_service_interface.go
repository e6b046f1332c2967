// Package service
package service

import (
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

type AirportServiceInterface interface {
	GetAirports(req *RequestAirportList) *ApiResponse[ResponseAirportList]
}

type RequestAirportList struct {
	JwtHeader
}

type ResponseAirportList struct {
	Items []*operation.Airport `json:"items"`
	Total int                  `json:"total"`
}
