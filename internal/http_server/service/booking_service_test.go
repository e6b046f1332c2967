// Package service
package service

import (
	"testing"

	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLifecycle(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: bookingPassengers(fixture.economyId, 2)}
	req.Uid = fixture.userId
	res := fixture.booking.CreateBooking(req)
	require.Equal(t, Created.Code(), res.HttpCode)
	require.NotNil(t, res.Data)
	pnr := res.Data.PNR
	assert.Len(t, pnr, 6)
	assert.InDelta(t, 1100, res.Data.TotalAmount, 0.001)

	listReq := &RequestMyBookings{}
	listReq.Uid = fixture.userId
	listRes := fixture.booking.GetMyBookings(listReq)
	require.Equal(t, Ok.Code(), listRes.HttpCode)
	assert.Equal(t, 1, listRes.Data.Total)

	detailReq := &RequestBookingDetail{PNR: pnr}
	detailReq.Uid = fixture.userId
	detailRes := fixture.booking.GetBooking(detailReq)
	require.Equal(t, Ok.Code(), detailRes.HttpCode)
	assert.Len(t, detailRes.Data.Passengers, 2)

	cancelReq := &RequestBookingCancel{PNR: pnr}
	cancelReq.Uid = fixture.userId
	cancelRes := fixture.booking.CancelBooking(cancelReq)
	require.Equal(t, Ok.Code(), cancelRes.HttpCode)

	cancelRes = fixture.booking.CancelBooking(cancelReq)
	assert.Equal(t, "BOOKING_ALREADY_CANCELLED", cancelRes.Code)
	assert.Equal(t, Conflict.Code(), cancelRes.HttpCode)
}

func TestCreateBookingRejectsMixedClassesWithoutWrites(t *testing.T) {
	fixture := newServiceFixture(t)

	passengers := bookingPassengers(fixture.economyId, 2)
	passengers[1].InventoryID = fixture.economyId + 1
	req := &RequestBookingCreate{Passengers: passengers}
	req.Uid = fixture.userId

	res := fixture.booking.CreateBooking(req)
	assert.Equal(t, "MIXED_FARE_CLASSES", res.Code)
	assert.Equal(t, BadRequest.Code(), res.HttpCode)

	inventory, err := fixture.operations.FlightOperation().GetInventoryById(fixture.economyId)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory.SeatsBooked)
}

func TestCreateBookingValidation(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: nil}
	req.Uid = fixture.userId
	res := fixture.booking.CreateBooking(req)
	assert.Equal(t, "NO_PASSENGERS", res.Code)

	req = &RequestBookingCreate{Passengers: bookingPassengers(fixture.economyId, 10)}
	req.Uid = fixture.userId
	res = fixture.booking.CreateBooking(req)
	assert.Equal(t, "TOO_MANY_PASSENGERS", res.Code)

	passengers := bookingPassengers(fixture.economyId, 1)
	passengers[0].DateOfBirth = "not-a-date"
	req = &RequestBookingCreate{Passengers: passengers}
	req.Uid = fixture.userId
	res = fixture.booking.CreateBooking(req)
	assert.Equal(t, "PASSENGER_FIELDS_INVALID", res.Code)
}

func TestCreateBookingUnknownInventory(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: bookingPassengers(9999, 1)}
	req.Uid = fixture.userId
	res := fixture.booking.CreateBooking(req)
	assert.Equal(t, "INVENTORY_NOT_FOUND", res.Code)
	assert.Equal(t, NotFound.Code(), res.HttpCode)
}

func TestGetBookingNormalizesPnr(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: bookingPassengers(fixture.economyId, 1)}
	req.Uid = fixture.userId
	created := fixture.booking.CreateBooking(req)
	require.NotNil(t, created.Data)

	detailReq := &RequestBookingDetail{PNR: " " + created.Data.PNR + " "}
	detailReq.Uid = fixture.userId
	res := fixture.booking.GetBooking(detailReq)
	assert.Equal(t, Ok.Code(), res.HttpCode)

	detailReq = &RequestBookingDetail{PNR: "XX"}
	detailReq.Uid = fixture.userId
	res = fixture.booking.GetBooking(detailReq)
	assert.Equal(t, "PNR_INVALID", res.Code)
}

func TestGetBookingByPnrAndName(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: bookingPassengers(fixture.economyId, 1)}
	req.Uid = fixture.userId
	created := fixture.booking.CreateBooking(req)
	require.NotNil(t, created.Data)

	res := fixture.booking.GetBookingByPnrAndName(&RequestBookingByPnrName{
		PNR:      created.Data.PNR,
		LastName: "doe",
	})
	assert.Equal(t, Ok.Code(), res.HttpCode)

	res = fixture.booking.GetBookingByPnrAndName(&RequestBookingByPnrName{
		PNR:      created.Data.PNR,
		LastName: "Smith",
	})
	assert.Equal(t, "BOOKING_NOT_FOUND", res.Code)
}

func TestUpdatePassengerService(t *testing.T) {
	fixture := newServiceFixture(t)

	req := &RequestBookingCreate{Passengers: bookingPassengers(fixture.economyId, 1)}
	req.Uid = fixture.userId
	created := fixture.booking.CreateBooking(req)
	require.NotNil(t, created.Data)

	updateReq := &RequestPassengerUpdate{
		PassengerID:    created.Data.Passengers[0].ID,
		PassportNumber: "X9876543",
	}
	updateReq.Uid = fixture.userId
	res := fixture.booking.UpdatePassenger(updateReq)
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.Equal(t, "X9876543", res.Data.PassportNumber)

	emptyReq := &RequestPassengerUpdate{PassengerID: created.Data.Passengers[0].ID}
	emptyReq.Uid = fixture.userId
	res = fixture.booking.UpdatePassenger(emptyReq)
	assert.Equal(t, "PARAM_ERROR", res.Code)
}
