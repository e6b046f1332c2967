package database

import (
	"testing"
	"time"

	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlightsFilters(t *testing.T) {
	fixture := newTestFixture(t, 10)

	// A return leg on the same route the other way, two days out.
	departure := time.Now().UTC().AddDate(0, 0, 3)
	returnFlight := &Flight{
		FlightNumber:       "AA102",
		DepartureAirportID: fixture.lhr.ID,
		ArrivalAirportID:   fixture.jfk.ID,
		AircraftID:         fixture.aircraft.ID,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(8 * time.Hour),
		BasePrice:          600,
		Status:             FlightScheduled,
	}
	require.NoError(t, fixture.operations.FlightOperation().AddFlight(returnFlight, []*FlightInventory{
		{ClassCode: "Y", BaseFare: 600, TotalSeats: 5, IsRefundable: true},
	}))

	flights, err := fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{
		OriginAirportID: fixture.jfk.ID,
		Passengers:      1,
	})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "AA101", flights[0].FlightNumber)
	require.NotNil(t, flights[0].DepartureAirport)
	assert.Equal(t, "JFK", flights[0].DepartureAirport.IataCode)
	require.NotNil(t, flights[0].Aircraft)
	assert.NotEmpty(t, flights[0].Inventories)

	flights, err = fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{
		OriginAirportID:      fixture.lhr.ID,
		DestinationAirportID: fixture.jfk.ID,
		TravelDate:           returnFlight.DepartureTime,
	})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "AA102", flights[0].FlightNumber)

	flights, err = fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{
		TravelDate: time.Now().UTC().AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestSearchFlightsRespectsAvailability(t *testing.T) {
	fixture := newTestFixture(t, 2)

	flights, err := fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{Passengers: 4})
	require.NoError(t, err)
	require.Len(t, flights, 1, "business class still has four open seats")

	flights, err = fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{Passengers: 5})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestSearchFlightsSkipsCancelled(t *testing.T) {
	fixture := newTestFixture(t, 10)

	require.NoError(t, fixture.operations.FlightOperation().UpdateFlightInfo(
		fixture.flight, map[string]interface{}{"status": FlightCancelled}))

	flights, err := fixture.operations.FlightOperation().SearchFlights(&FlightSearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestAddFlightRejectsDuplicateClassCodes(t *testing.T) {
	fixture := newTestFixture(t, 10)

	departure := time.Now().UTC().AddDate(0, 0, 4)
	flight := &Flight{
		FlightNumber:       "AA103",
		DepartureAirportID: fixture.jfk.ID,
		ArrivalAirportID:   fixture.lhr.ID,
		AircraftID:         fixture.aircraft.ID,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(7 * time.Hour),
		BasePrice:          500,
	}
	err := fixture.operations.FlightOperation().AddFlight(flight, []*FlightInventory{
		{ClassCode: "Y", BaseFare: 500, TotalSeats: 100},
		{ClassCode: "Y", BaseFare: 700, TotalSeats: 50},
	})
	assert.ErrorIs(t, err, ErrClassCodeTaken)
}

func TestGetFlightByIdPreloadsRelations(t *testing.T) {
	fixture := newTestFixture(t, 10)

	flight, err := fixture.operations.FlightOperation().GetFlightById(fixture.flight.ID)
	require.NoError(t, err)
	require.NotNil(t, flight.DepartureAirport)
	require.NotNil(t, flight.ArrivalAirport)
	require.NotNil(t, flight.Aircraft)
	assert.Len(t, flight.Inventories, 2)

	_, err = fixture.operations.FlightOperation().GetFlightById(9999)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
