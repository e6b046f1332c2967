// Package operation
package operation

import "errors"

var (
	// ErrAircraftNotFound aircraft does not exist
	ErrAircraftNotFound = errors.New("aircraft does not exist")
)

type AircraftOperationInterface interface {
	GetAircraftById(id uint) (aircraft *Aircraft, err error)
	GetAircrafts() (aircrafts []*Aircraft, err error)
	AddAircraft(aircraft *Aircraft) (err error)
}
