package database

import (
	"time"

	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
)

// SeedDatabase loads a small demo dataset for local development. It refuses
// to run against a database that already holds airports.
func SeedDatabase(logger log.LoggerInterface, operations *DatabaseOperations) error {
	airports, err := operations.AirportOperation().GetAirports()
	if err != nil {
		return err
	}
	if len(airports) > 0 {
		logger.Warn("Database already contains airports, skipping seed")
		return nil
	}

	jfk := &Airport{IataCode: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA", TimeZone: "America/New_York"}
	lhr := &Airport{IataCode: "LHR", Name: "London Heathrow", City: "London", Country: "UK", TimeZone: "Europe/London"}
	dxb := &Airport{IataCode: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE", TimeZone: "Asia/Dubai"}
	for _, airport := range []*Airport{jfk, lhr, dxb} {
		if err := operations.AirportOperation().AddAirport(airport); err != nil {
			return err
		}
	}

	b77w := &Aircraft{ModelCode: "77W", Manufacturer: "Boeing", TotalSeats: 360, RangeKm: 13650}
	a388 := &Aircraft{ModelCode: "388", Manufacturer: "Airbus", TotalSeats: 519, RangeKm: 14800}
	for _, aircraft := range []*Aircraft{b77w, a388} {
		if err := operations.AircraftOperation().AddAircraft(aircraft); err != nil {
			return err
		}
	}

	user, err := operations.UserOperation().NewUser(
		"traveler@example.com", "password123", "John", "Doe", "", nil)
	if err != nil {
		return err
	}
	if err := operations.UserOperation().AddUser(user); err != nil {
		return err
	}

	now := time.Now().UTC()
	flights := []struct {
		flight      *Flight
		inventories []*FlightInventory
	}{
		{
			flight: &Flight{
				FlightNumber:       "AA101",
				DepartureAirportID: jfk.ID,
				ArrivalAirportID:   lhr.ID,
				AircraftID:         b77w.ID,
				DepartureTime:      now.AddDate(0, 0, 1),
				ArrivalTime:        now.AddDate(0, 0, 1).Add(7 * time.Hour),
				BasePrice:          550.00,
				Status:             FlightScheduled,
			},
			inventories: []*FlightInventory{
				{ClassCode: "Y", BaseFare: 550.00, TotalSeats: 300, IsRefundable: true},
				{ClassCode: "J", BaseFare: 2450.00, TotalSeats: 48, IsRefundable: true},
				{ClassCode: "F", BaseFare: 6800.00, TotalSeats: 12, IsRefundable: false},
			},
		},
		{
			flight: &Flight{
				FlightNumber:       "EK202",
				DepartureAirportID: lhr.ID,
				ArrivalAirportID:   dxb.ID,
				AircraftID:         a388.ID,
				DepartureTime:      now.AddDate(0, 0, 2),
				ArrivalTime:        now.AddDate(0, 0, 2).Add(7 * time.Hour),
				BasePrice:          850.00,
				Status:             FlightScheduled,
			},
			inventories: []*FlightInventory{
				{ClassCode: "Y", BaseFare: 850.00, TotalSeats: 427, IsRefundable: true},
				{ClassCode: "J", BaseFare: 3150.00, TotalSeats: 76, IsRefundable: true},
				{ClassCode: "F", BaseFare: 8900.00, TotalSeats: 14, IsRefundable: false},
			},
		},
	}

	for _, entry := range flights {
		if err := operations.FlightOperation().AddFlight(entry.flight, entry.inventories); err != nil {
			return err
		}
	}

	logger.Info("Database seeded successfully")
	logger.Info("Demo user: traveler@example.com / password123")
	return nil
}
