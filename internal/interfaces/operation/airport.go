// Package operation
package operation

import "errors"

var (
	// ErrAirportNotFound airport does not exist
	ErrAirportNotFound = errors.New("airport does not exist")
)

type AirportOperationInterface interface {
	GetAirports() (airports []*Airport, err error)
	GetAirportByIata(iataCode string) (airport *Airport, err error)
	AddAirport(airport *Airport) (err error)
}
