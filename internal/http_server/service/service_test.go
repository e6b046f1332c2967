// Package service
package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/half-nothing/simple-booking/internal/database"
	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/global"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type testLogger struct{}

func (l *testLogger) Init(_ bool)                       {}
func (l *testLogger) ShutdownCallback() global.Callable { return nil }
func (l *testLogger) Debug(_ string, _ ...interface{})  {}
func (l *testLogger) DebugF(_ string, _ ...interface{}) {}
func (l *testLogger) Info(_ string, _ ...interface{})   {}
func (l *testLogger) InfoF(_ string, _ ...interface{})  {}
func (l *testLogger) Warn(_ string, _ ...interface{})   {}
func (l *testLogger) WarnF(_ string, _ ...interface{})  {}
func (l *testLogger) Error(_ string, _ ...interface{})  {}
func (l *testLogger) ErrorF(_ string, _ ...interface{}) {}
func (l *testLogger) Fatal(_ string, _ ...interface{})  {}
func (l *testLogger) FatalF(_ string, _ ...interface{}) {}

func testHttpConfig() *c.HttpServerConfig {
	return &c.HttpServerConfig{
		Limits: &c.HttpServerLimit{
			RateLimit:            15,
			RateLimitDuration:    time.Minute,
			NameLengthMin:        1,
			NameLengthMax:        50,
			EmailLengthMin:       4,
			EmailLengthMax:       100,
			PasswordLengthMin:    6,
			PasswordLengthMax:    64,
			PassengersPerBooking: 9,
		},
		Email: &c.EmailConfig{Enabled: false},
		JWT: &c.JWTConfig{
			Secret:          "test-secret-test-secret-test-secret",
			ExpiresDuration: 15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
	}
}

type serviceFixture struct {
	config     *c.HttpServerConfig
	operations *operation.DatabaseOperations
	user       *UserService
	flight     *FlightService
	booking    *BookingService
	airport    *AirportService
	economyId  uint
	flightId   uint
	userId     uint
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "service_test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	pool, err := db.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&operation.Airport{},
		&operation.Aircraft{},
		&operation.Flight{},
		&operation.FlightInventory{},
		&operation.User{},
		&operation.Booking{},
		&operation.Passenger{},
	))

	logger := &testLogger{}
	queryTimeout := 5 * time.Second
	generalConfig := &c.GeneralConfig{Airline: "Test Airways", BcryptCost: bcrypt.MinCost}

	operations := operation.NewDatabaseOperations(
		database.NewAirportOperation(db, queryTimeout),
		database.NewAircraftOperation(db, queryTimeout),
		database.NewFlightOperation(db, queryTimeout),
		database.NewBookingOperation(logger, db, queryTimeout),
		database.NewUserOperation(db, queryTimeout, generalConfig),
	)

	config := testHttpConfig()
	InitValidator(config.Limits)
	emailService := NewEmailService(logger, config.Email)

	fixture := &serviceFixture{
		config:     config,
		operations: operations,
		user:       NewUserService(logger, config, operations.UserOperation()),
		flight: NewFlightService(logger, operations.AirportOperation(),
			operations.AircraftOperation(), operations.FlightOperation()),
		booking: NewBookingService(logger, operations.BookingOperation(),
			operations.UserOperation(), emailService),
		airport: NewAirportService(logger, operations.AirportOperation()),
	}

	jfk := &operation.Airport{IataCode: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"}
	lhr := &operation.Airport{IataCode: "LHR", Name: "London Heathrow", City: "London", Country: "UK"}
	require.NoError(t, operations.AirportOperation().AddAirport(jfk))
	require.NoError(t, operations.AirportOperation().AddAirport(lhr))

	aircraft := &operation.Aircraft{ModelCode: "77W", Manufacturer: "Boeing", TotalSeats: 360}
	require.NoError(t, operations.AircraftOperation().AddAircraft(aircraft))

	departure := time.Now().UTC().AddDate(0, 0, 1)
	flight := &operation.Flight{
		FlightNumber:       "AA101",
		DepartureAirportID: jfk.ID,
		ArrivalAirportID:   lhr.ID,
		AircraftID:         aircraft.ID,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(7 * time.Hour),
		BasePrice:          550,
		Status:             operation.FlightScheduled,
	}
	economy := &operation.FlightInventory{ClassCode: "Y", BaseFare: 550, TotalSeats: 10, IsRefundable: true}
	business := &operation.FlightInventory{ClassCode: "J", BaseFare: 2450, TotalSeats: 4, IsRefundable: true}
	require.NoError(t, operations.FlightOperation().AddFlight(flight, []*operation.FlightInventory{economy, business}))
	fixture.economyId = economy.ID
	fixture.flightId = flight.ID

	user, err := operations.UserOperation().NewUser(
		"traveler@example.com", "password123", "John", "Doe", "", nil)
	require.NoError(t, err)
	require.NoError(t, operations.UserOperation().AddUser(user))
	fixture.userId = user.ID

	return fixture
}

func bookingPassengers(inventoryId uint, count int) []*RequestBookingPassenger {
	passengers := make([]*RequestBookingPassenger, 0, count)
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for i := 0; i < count; i++ {
		passengers = append(passengers, &RequestBookingPassenger{
			InventoryID:    inventoryId,
			FirstName:      names[i%len(names)],
			LastName:       "Doe",
			DateOfBirth:    "1990-03-14",
			PassportNumber: "P1234567",
		})
	}
	return passengers
}
