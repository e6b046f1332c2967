// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound flight does not exist
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrInventoryNotFound inventory class does not exist
	ErrInventoryNotFound = errors.New("flight inventory does not exist")
	// ErrClassCodeTaken duplicate fare class on one flight
	ErrClassCodeTaken = errors.New("fare class already defined for this flight")
)

// FlightSearchQuery carries the optional search filters. Zero values mean
// the filter is not applied; Passengers always applies and defaults to 1.
type FlightSearchQuery struct {
	OriginAirportID      uint
	DestinationAirportID uint
	TravelDate           time.Time
	Passengers           int
}

type FlightOperationInterface interface {
	GetFlightById(id uint) (flight *Flight, err error)
	// SearchFlights returns flights matching every supplied filter where at
	// least one fare class still has query.Passengers open seats, with
	// airports, aircraft and inventory preloaded.
	SearchFlights(query *FlightSearchQuery) (flights []*Flight, err error)
	// AddFlight writes the flight and its initial inventory classes as one
	// transaction.
	AddFlight(flight *Flight, inventories []*FlightInventory) (err error)
	UpdateFlightInfo(flight *Flight, info map[string]interface{}) (err error)
	GetInventoryById(id uint) (inventory *FlightInventory, err error)
}
