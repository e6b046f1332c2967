// Package service
package service

import (
	"testing"
	"time"

	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlightsService(t *testing.T) {
	fixture := newServiceFixture(t)

	res := fixture.flight.SearchFlights(&RequestFlightSearch{OriginIata: "jfk", DestinationIata: "LHR"})
	require.Equal(t, Ok.Code(), res.HttpCode)
	require.Equal(t, 1, res.Data.Total)
	assert.Equal(t, "AA101", res.Data.Items[0].FlightNumber)

	res = fixture.flight.SearchFlights(&RequestFlightSearch{OriginIata: "XYZ"})
	assert.Equal(t, "AIRPORT_NOT_FOUND", res.Code)

	res = fixture.flight.SearchFlights(&RequestFlightSearch{OriginIata: "toolong"})
	assert.Equal(t, "IATA_INVALID", res.Code)

	res = fixture.flight.SearchFlights(&RequestFlightSearch{TravelDate: "14-03-2026"})
	assert.Equal(t, "TRAVEL_DATE_INVALID", res.Code)
}

func TestCreateFlightRequiresAdmin(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestFlightCreate{}
	req.Uid = fixture.userId
	req.IsAdmin = false
	res := fixture.flight.CreateFlight(req)
	assert.Equal(t, "NO_PERMISSION", res.Code)
	assert.Equal(t, PermissionDenied.Code(), res.HttpCode)
}

func TestCreateFlightService(t *testing.T) {
	fixture := newServiceFixture(t)

	departure := time.Now().UTC().AddDate(0, 0, 5)
	req := &RequestFlightCreate{
		FlightNumber:    "ba117",
		OriginIata:      "LHR",
		DestinationIata: "JFK",
		AircraftID:      1,
		DepartureTime:   departure.Format(time.RFC3339),
		ArrivalTime:     departure.Add(8 * time.Hour).Format(time.RFC3339),
		BasePrice:       620,
		Inventories: []*RequestInventoryClass{
			{ClassCode: "y", BaseFare: 620, TotalSeats: 200, IsRefundable: true},
			{ClassCode: "J", BaseFare: 2900, TotalSeats: 40, IsRefundable: true},
		},
	}
	req.Uid = fixture.userId
	req.IsAdmin = true

	res := fixture.flight.CreateFlight(req)
	require.Equal(t, Created.Code(), res.HttpCode)
	require.NotNil(t, res.Data)
	assert.Equal(t, "BA117", res.Data.FlightNumber)
	assert.Len(t, res.Data.Inventories, 2)
}

func TestCreateFlightValidation(t *testing.T) {
	fixture := newServiceFixture(t)

	departure := time.Now().UTC().AddDate(0, 0, 5)
	base := func() *RequestFlightCreate {
		req := &RequestFlightCreate{
			FlightNumber:    "BA117",
			OriginIata:      "LHR",
			DestinationIata: "JFK",
			AircraftID:      1,
			DepartureTime:   departure.Format(time.RFC3339),
			ArrivalTime:     departure.Add(8 * time.Hour).Format(time.RFC3339),
			BasePrice:       620,
			Inventories: []*RequestInventoryClass{
				{ClassCode: "Y", BaseFare: 620, TotalSeats: 200, IsRefundable: true},
			},
		}
		req.Uid = fixture.userId
		req.IsAdmin = true
		return req
	}

	req := base()
	req.DestinationIata = "LHR"
	assert.Equal(t, "SAME_AIRPORTS", fixture.flight.CreateFlight(req).Code)

	req = base()
	req.ArrivalTime = req.DepartureTime
	assert.Equal(t, "FLIGHT_TIMES_INVALID", fixture.flight.CreateFlight(req).Code)

	req = base()
	req.Inventories[0].TotalSeats = 1000
	assert.Equal(t, "SEATS_EXCEED_AIRCRAFT", fixture.flight.CreateFlight(req).Code)

	req = base()
	req.AircraftID = 9999
	assert.Equal(t, "AIRCRAFT_NOT_FOUND", fixture.flight.CreateFlight(req).Code)

	req = base()
	req.Inventories = append(req.Inventories, &RequestInventoryClass{ClassCode: "Y", BaseFare: 900, TotalSeats: 10})
	assert.Equal(t, "CLASS_CODE_TAKEN", fixture.flight.CreateFlight(req).Code)
}

func TestUpdateFlightService(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestFlightUpdate{FlightID: fixture.flightId, Status: "Delayed"}
	req.Uid = fixture.userId
	req.IsAdmin = true
	res := fixture.flight.UpdateFlight(req)
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.Equal(t, "Delayed", string(res.Data.Status))

	req = &RequestFlightUpdate{FlightID: fixture.flightId, Status: "Vanished"}
	req.Uid = fixture.userId
	req.IsAdmin = true
	assert.Equal(t, "FLIGHT_STATUS_INVALID", fixture.flight.UpdateFlight(req).Code)

	req = &RequestFlightUpdate{FlightID: fixture.flightId}
	req.Uid = fixture.userId
	req.IsAdmin = false
	assert.Equal(t, "NO_PERMISSION", fixture.flight.UpdateFlight(req).Code)
}

func TestGetAirportsRequiresAdmin(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestAirportList{}
	req.Uid = fixture.userId
	req.IsAdmin = true
	res := fixture.airport.GetAirports(req)
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.Equal(t, 2, res.Data.Total)

	req.IsAdmin = false
	assert.Equal(t, "NO_PERMISSION", fixture.airport.GetAirports(req).Code)
}
