// Package service
package service

import (
	"strings"
	"time"

	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
)

type FlightService struct {
	logger            log.LoggerInterface
	airportOperation  operation.AirportOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	flightOperation   operation.FlightOperationInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	airportOperation operation.AirportOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	flightOperation operation.FlightOperationInterface,
) *FlightService {
	return &FlightService{
		logger:            logger,
		airportOperation:  airportOperation,
		aircraftOperation: aircraftOperation,
		flightOperation:   flightOperation,
	}
}

var (
	ErrTravelDate       = ApiStatus{StatusName: "TRAVEL_DATE_INVALID", Description: "Travel date must be formatted as 2006-01-02", HttpCode: BadRequest}
	SuccessSearchFlight = ApiStatus{StatusName: "SEARCH_FLIGHT_SUCCESS", Description: "Flight search successful", HttpCode: Ok}
)

func (flightService *FlightService) resolveAirport(iataCode string) (*operation.Airport, *ApiStatus) {
	code := strings.ToUpper(iataCode)
	if err := CheckIataCode(code); err != nil {
		return nil, err
	}
	airport, err := flightService.airportOperation.GetAirportByIata(code)
	if err != nil {
		return nil, &ErrAirportNotFound
	}
	return airport, nil
}

func (flightService *FlightService) SearchFlights(req *RequestFlightSearch) *ApiResponse[ResponseFlightSearch] {
	query := &operation.FlightSearchQuery{Passengers: req.Passengers}

	if req.OriginIata != "" {
		airport, status := flightService.resolveAirport(req.OriginIata)
		if status != nil {
			return NewApiResponse[ResponseFlightSearch](status, Unsatisfied, nil)
		}
		query.OriginAirportID = airport.ID
	}
	if req.DestinationIata != "" {
		airport, status := flightService.resolveAirport(req.DestinationIata)
		if status != nil {
			return NewApiResponse[ResponseFlightSearch](status, Unsatisfied, nil)
		}
		query.DestinationAirportID = airport.ID
	}
	if req.TravelDate != "" {
		travelDate, err := time.Parse(time.DateOnly, req.TravelDate)
		if err != nil {
			return NewApiResponse[ResponseFlightSearch](&ErrTravelDate, Unsatisfied, nil)
		}
		query.TravelDate = travelDate
	}
	if req.Passengers < 0 {
		return NewApiResponse[ResponseFlightSearch](&ErrIllegalParam, Unsatisfied, nil)
	}

	flights, err := flightService.flightOperation.SearchFlights(query)
	if err != nil {
		return NewApiResponse[ResponseFlightSearch](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessSearchFlight, Unsatisfied, &ResponseFlightSearch{
		Items: flights,
		Total: len(flights),
	})
}

var SuccessGetFlight = ApiStatus{StatusName: "GET_FLIGHT_SUCCESS", Description: "Flight fetched successfully", HttpCode: Ok}

func (flightService *FlightService) GetFlight(req *RequestFlightDetail) *ApiResponse[ResponseFlightDetail] {
	if req.FlightID <= 0 {
		return NewApiResponse[ResponseFlightDetail](&ErrIllegalParam, Unsatisfied, nil)
	}
	flight, res := CallDBFuncAndCheckError[operation.Flight, ResponseFlightDetail](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.FlightID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, (*ResponseFlightDetail)(flight))
}

var (
	ErrFlightTimes      = ApiStatus{StatusName: "FLIGHT_TIMES_INVALID", Description: "Arrival time must be after departure time", HttpCode: BadRequest}
	ErrSameAirports     = ApiStatus{StatusName: "SAME_AIRPORTS", Description: "Origin and destination must differ", HttpCode: BadRequest}
	ErrSeatsOverflow    = ApiStatus{StatusName: "SEATS_EXCEED_AIRCRAFT", Description: "Inventory seats exceed aircraft capacity", HttpCode: BadRequest}
	ErrInventoryFields  = ApiStatus{StatusName: "INVENTORY_FIELDS_INVALID", Description: "Inventory class fields are invalid", HttpCode: BadRequest}
	SuccessCreateFlight = ApiStatus{StatusName: "CREATE_FLIGHT_SUCCESS", Description: "Flight created successfully", HttpCode: Created}
)

func (flightService *FlightService) CreateFlight(req *RequestFlightCreate) *ApiResponse[ResponseFlightCreate] {
	if res := CheckAdminPermission[ResponseFlightCreate](&req.JwtHeader); res != nil {
		return res
	}
	if req.FlightNumber == "" || req.AircraftID <= 0 || req.BasePrice < 0 || len(req.Inventories) == 0 {
		return NewApiResponse[ResponseFlightCreate](&ErrIllegalParam, Unsatisfied, nil)
	}

	origin, status := flightService.resolveAirport(req.OriginIata)
	if status != nil {
		return NewApiResponse[ResponseFlightCreate](status, Unsatisfied, nil)
	}
	destination, status := flightService.resolveAirport(req.DestinationIata)
	if status != nil {
		return NewApiResponse[ResponseFlightCreate](status, Unsatisfied, nil)
	}
	if origin.ID == destination.ID {
		return NewApiResponse[ResponseFlightCreate](&ErrSameAirports, Unsatisfied, nil)
	}

	departureTime, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return NewApiResponse[ResponseFlightCreate](&ErrIllegalParam, Unsatisfied, nil)
	}
	arrivalTime, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		return NewApiResponse[ResponseFlightCreate](&ErrIllegalParam, Unsatisfied, nil)
	}
	if !arrivalTime.After(departureTime) {
		return NewApiResponse[ResponseFlightCreate](&ErrFlightTimes, Unsatisfied, nil)
	}

	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseFlightCreate](func() (*operation.Aircraft, error) {
		return flightService.aircraftOperation.GetAircraftById(req.AircraftID)
	})
	if res != nil {
		return res
	}

	totalSeats := 0
	inventories := make([]*operation.FlightInventory, 0, len(req.Inventories))
	for _, class := range req.Inventories {
		if len(class.ClassCode) != 1 || class.TotalSeats <= 0 || class.BaseFare < 0 {
			return NewApiResponse[ResponseFlightCreate](&ErrInventoryFields, Unsatisfied, nil)
		}
		totalSeats += class.TotalSeats
		inventories = append(inventories, &operation.FlightInventory{
			ClassCode:    strings.ToUpper(class.ClassCode),
			BaseFare:     class.BaseFare,
			TotalSeats:   class.TotalSeats,
			IsRefundable: class.IsRefundable,
		})
	}
	if totalSeats > aircraft.TotalSeats {
		return NewApiResponse[ResponseFlightCreate](&ErrSeatsOverflow, Unsatisfied, nil)
	}

	flight := &operation.Flight{
		FlightNumber:       strings.ToUpper(req.FlightNumber),
		DepartureAirportID: origin.ID,
		ArrivalAirportID:   destination.ID,
		AircraftID:         aircraft.ID,
		DepartureTime:      departureTime,
		ArrivalTime:        arrivalTime,
		BasePrice:          req.BasePrice,
		Status:             operation.FlightScheduled,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightCreate](func() (*interface{}, error) {
		return nil, flightService.flightOperation.AddFlight(flight, inventories)
	}); res != nil {
		return res
	}

	created, res := CallDBFuncAndCheckError[operation.Flight, ResponseFlightCreate](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(flight.ID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessCreateFlight, Unsatisfied, (*ResponseFlightCreate)(created))
}

var (
	ErrFlightStatus     = ApiStatus{StatusName: "FLIGHT_STATUS_INVALID", Description: "Unknown flight status", HttpCode: BadRequest}
	SuccessUpdateFlight = ApiStatus{StatusName: "UPDATE_FLIGHT_SUCCESS", Description: "Flight updated successfully", HttpCode: Ok}
)

var allowedFlightStatus = map[operation.FlightStatus]struct{}{
	operation.FlightScheduled: {},
	operation.FlightDelayed:   {},
	operation.FlightCancelled: {},
	operation.FlightDeparted:  {},
	operation.FlightLanded:    {},
}

func (flightService *FlightService) UpdateFlight(req *RequestFlightUpdate) *ApiResponse[ResponseFlightUpdate] {
	if res := CheckAdminPermission[ResponseFlightUpdate](&req.JwtHeader); res != nil {
		return res
	}
	if req.FlightID <= 0 {
		return NewApiResponse[ResponseFlightUpdate](&ErrIllegalParam, Unsatisfied, nil)
	}

	flight, res := CallDBFuncAndCheckError[operation.Flight, ResponseFlightUpdate](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.FlightID)
	})
	if res != nil {
		return res
	}

	updateInfo := make(map[string]interface{})
	departureTime := flight.DepartureTime
	arrivalTime := flight.ArrivalTime

	if req.DepartureTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.DepartureTime)
		if err != nil {
			return NewApiResponse[ResponseFlightUpdate](&ErrIllegalParam, Unsatisfied, nil)
		}
		departureTime = parsed
		updateInfo["departure_time"] = parsed
	}
	if req.ArrivalTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.ArrivalTime)
		if err != nil {
			return NewApiResponse[ResponseFlightUpdate](&ErrIllegalParam, Unsatisfied, nil)
		}
		arrivalTime = parsed
		updateInfo["arrival_time"] = parsed
	}
	if !arrivalTime.After(departureTime) {
		return NewApiResponse[ResponseFlightUpdate](&ErrFlightTimes, Unsatisfied, nil)
	}
	if req.BasePrice > 0 {
		updateInfo["base_price"] = req.BasePrice
	}
	if req.Status != "" {
		status := operation.FlightStatus(req.Status)
		if _, ok := allowedFlightStatus[status]; !ok {
			return NewApiResponse[ResponseFlightUpdate](&ErrFlightStatus, Unsatisfied, nil)
		}
		updateInfo["status"] = status
	}
	if len(updateInfo) == 0 {
		return NewApiResponse[ResponseFlightUpdate](&ErrIllegalParam, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseFlightUpdate](func() (*interface{}, error) {
		return nil, flightService.flightOperation.UpdateFlightInfo(flight, updateInfo)
	}); res != nil {
		return res
	}

	updated, res := CallDBFuncAndCheckError[operation.Flight, ResponseFlightUpdate](func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.FlightID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessUpdateFlight, Unsatisfied, (*ResponseFlightUpdate)(updated))
}
