// Package operation
package operation

import (
	"time"

	"gorm.io/gorm"
)

type FlightStatus string

const (
	FlightScheduled FlightStatus = "Scheduled"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
	FlightDeparted  FlightStatus = "Departed"
	FlightLanded    FlightStatus = "Landed"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

type Airport struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	IataCode string `gorm:"size:3;uniqueIndex" json:"iata_code"`
	Name     string `gorm:"size:100" json:"name"`
	City     string `gorm:"size:50" json:"city"`
	Country  string `gorm:"size:50" json:"country"`
	TimeZone string `gorm:"size:50" json:"time_zone"`
}

type Aircraft struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	ModelCode    string `gorm:"size:4;uniqueIndex" json:"model_code"`
	Manufacturer string `gorm:"size:50" json:"manufacturer"`
	TotalSeats   int    `json:"total_seats"`
	RangeKm      int    `json:"range_km"`
}

type Flight struct {
	ID                 uint               `gorm:"primarykey" json:"id"`
	FlightNumber       string             `gorm:"size:10;index" json:"flight_number"`
	DepartureAirportID uint               `gorm:"index" json:"departure_airport_id"`
	ArrivalAirportID   uint               `gorm:"index" json:"arrival_airport_id"`
	AircraftID         uint               `json:"aircraft_id"`
	DepartureTime      time.Time          `gorm:"index" json:"departure_time"`
	ArrivalTime        time.Time          `json:"arrival_time"`
	BasePrice          float64            `gorm:"type:decimal(10,2)" json:"base_price"`
	Status             FlightStatus       `gorm:"size:20;default:Scheduled" json:"status"`
	DepartureAirport   *Airport           `gorm:"foreignKey:DepartureAirportID" json:"departure_airport,omitempty"`
	ArrivalAirport     *Airport           `gorm:"foreignKey:ArrivalAirportID" json:"arrival_airport,omitempty"`
	Aircraft           *Aircraft          `gorm:"foreignKey:AircraftID" json:"aircraft,omitempty"`
	Inventories        []*FlightInventory `gorm:"foreignKey:FlightID" json:"inventories,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type FlightInventory struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	FlightID     uint    `gorm:"index:inventory_class_index,unique" json:"flight_id"`
	ClassCode    string  `gorm:"size:1;index:inventory_class_index,unique" json:"class_code"`
	BaseFare     float64 `gorm:"type:decimal(10,2)" json:"base_fare"`
	TotalSeats   int     `json:"total_seats"`
	SeatsBooked  int     `gorm:"default:0" json:"seats_booked"`
	IsRefundable bool    `gorm:"default:true" json:"is_refundable"`
}

func (inventory *FlightInventory) SeatsAvailable() int {
	return inventory.TotalSeats - inventory.SeatsBooked
}

type User struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Email       string         `gorm:"size:100;uniqueIndex" json:"email"`
	Password    string         `gorm:"size:60" json:"-"`
	FirstName   string         `gorm:"size:50" json:"first_name"`
	LastName    string         `gorm:"size:50" json:"last_name"`
	PhoneNumber string         `gorm:"size:20" json:"phone_number"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	IsAdmin     bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Booking struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	PNR           string        `gorm:"size:6;uniqueIndex" json:"pnr"`
	UserID        uint          `gorm:"index" json:"user_id"`
	FlightID      uint          `gorm:"index" json:"flight_id"`
	TotalAmount   float64       `gorm:"type:decimal(10,2)" json:"total_amount"`
	PaymentStatus PaymentStatus `gorm:"size:20" json:"payment_status"`
	PaymentRef    string        `gorm:"size:36" json:"payment_ref"`
	BookingStatus BookingStatus `gorm:"size:20" json:"booking_status"`
	Flight        *Flight       `gorm:"foreignKey:FlightID" json:"flight,omitempty"`
	Passengers    []*Passenger  `gorm:"foreignKey:BookingID" json:"passengers,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Passenger struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	BookingID      uint      `gorm:"index" json:"booking_id"`
	InventoryID    uint      `gorm:"index" json:"inventory_id"`
	FirstName      string    `gorm:"size:50" json:"first_name"`
	LastName       string    `gorm:"size:50" json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	PassportNumber string    `gorm:"size:30" json:"passport_number"`
	SeatNumber     string    `gorm:"size:5" json:"seat_number"`
}
