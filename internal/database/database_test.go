package database

import (
	"path/filepath"
	"testing"
	"time"

	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/global"
	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
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

const testQueryTimeout = 5 * time.Second

func newTestOperations(t *testing.T) *DatabaseOperations {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "booking_test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	pool, err := db.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&Airport{},
		&Aircraft{},
		&Flight{},
		&FlightInventory{},
		&User{},
		&Booking{},
		&Passenger{},
	))

	generalConfig := &c.GeneralConfig{Airline: "Test Airways", BcryptCost: bcrypt.MinCost}

	return NewDatabaseOperations(
		NewAirportOperation(db, testQueryTimeout),
		NewAircraftOperation(db, testQueryTimeout),
		NewFlightOperation(db, testQueryTimeout),
		NewBookingOperation(&testLogger{}, db, testQueryTimeout),
		NewUserOperation(db, testQueryTimeout, generalConfig),
	)
}

type testFixture struct {
	operations *DatabaseOperations
	jfk, lhr   *Airport
	aircraft   *Aircraft
	flight     *Flight
	economy    *FlightInventory
	business   *FlightInventory
	user       *User
}

func newTestFixture(t *testing.T, economySeats int) *testFixture {
	t.Helper()
	operations := newTestOperations(t)

	fixture := &testFixture{operations: operations}

	fixture.jfk = &Airport{IataCode: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"}
	fixture.lhr = &Airport{IataCode: "LHR", Name: "London Heathrow", City: "London", Country: "UK"}
	require.NoError(t, operations.AirportOperation().AddAirport(fixture.jfk))
	require.NoError(t, operations.AirportOperation().AddAirport(fixture.lhr))

	fixture.aircraft = &Aircraft{ModelCode: "77W", Manufacturer: "Boeing", TotalSeats: 360, RangeKm: 13650}
	require.NoError(t, operations.AircraftOperation().AddAircraft(fixture.aircraft))

	departure := time.Now().UTC().AddDate(0, 0, 1)
	fixture.flight = &Flight{
		FlightNumber:       "AA101",
		DepartureAirportID: fixture.jfk.ID,
		ArrivalAirportID:   fixture.lhr.ID,
		AircraftID:         fixture.aircraft.ID,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(7 * time.Hour),
		BasePrice:          550,
		Status:             FlightScheduled,
	}
	fixture.economy = &FlightInventory{ClassCode: "Y", BaseFare: 550, TotalSeats: economySeats, IsRefundable: true}
	fixture.business = &FlightInventory{ClassCode: "J", BaseFare: 2450, TotalSeats: 4, IsRefundable: false}
	require.NoError(t, operations.FlightOperation().AddFlight(
		fixture.flight, []*FlightInventory{fixture.economy, fixture.business}))

	user, err := operations.UserOperation().NewUser(
		"traveler@example.com", "password123", "John", "Doe", "", nil)
	require.NoError(t, err)
	require.NoError(t, operations.UserOperation().AddUser(user))
	fixture.user = user

	return fixture
}

func testPassengers(count int) []*PassengerInput {
	passengers := make([]*PassengerInput, 0, count)
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	for i := 0; i < count; i++ {
		passengers = append(passengers, &PassengerInput{
			FirstName:      names[i%len(names)],
			LastName:       "Doe",
			DateOfBirth:    time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
			PassportNumber: "P1234567",
		})
	}
	return passengers
}
