// Package service
package service

import (
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
)

type AirportService struct {
	logger           log.LoggerInterface
	airportOperation operation.AirportOperationInterface
}

func NewAirportService(
	logger log.LoggerInterface,
	airportOperation operation.AirportOperationInterface,
) *AirportService {
	return &AirportService{
		logger:           logger,
		airportOperation: airportOperation,
	}
}

var SuccessGetAirports = ApiStatus{StatusName: "GET_AIRPORTS_SUCCESS", Description: "Airports fetched successfully", HttpCode: Ok}

func (airportService *AirportService) GetAirports(req *RequestAirportList) *ApiResponse[ResponseAirportList] {
	if res := CheckAdminPermission[ResponseAirportList](&req.JwtHeader); res != nil {
		return res
	}
	airports, err := airportService.airportOperation.GetAirports()
	if err != nil {
		return NewApiResponse[ResponseAirportList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAirports, Unsatisfied, &ResponseAirportList{
		Items: airports,
		Total: len(airports),
	})
}
