// Package operation
package operation

type DatabaseOperations struct {
	airportOperation  AirportOperationInterface
	aircraftOperation AircraftOperationInterface
	flightOperation   FlightOperationInterface
	bookingOperation  BookingOperationInterface
	userOperation     UserOperationInterface
}

func NewDatabaseOperations(
	airportOperation AirportOperationInterface,
	aircraftOperation AircraftOperationInterface,
	flightOperation FlightOperationInterface,
	bookingOperation BookingOperationInterface,
	userOperation UserOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		airportOperation:  airportOperation,
		aircraftOperation: aircraftOperation,
		flightOperation:   flightOperation,
		bookingOperation:  bookingOperation,
		userOperation:     userOperation,
	}
}

func (db *DatabaseOperations) AirportOperation() AirportOperationInterface {
	return db.airportOperation
}

func (db *DatabaseOperations) AircraftOperation() AircraftOperationInterface {
	return db.aircraftOperation
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) BookingOperation() BookingOperationInterface {
	return db.bookingOperation
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}
