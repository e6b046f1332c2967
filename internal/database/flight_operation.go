package database

import (
	"context"
	"errors"
	"time"

	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlightById(id uint) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Preload("Aircraft").
		Preload("Inventories").
		Where("id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

func (flightOperation *FlightOperation) SearchFlights(query *FlightSearchQuery) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()

	passengers := query.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	availableFlights := flightOperation.db.
		Model(&FlightInventory{}).
		Select("flight_id").
		Where("total_seats - seats_booked >= ?", passengers)

	tx := flightOperation.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Preload("Aircraft").
		Preload("Inventories").
		Where("status <> ?", FlightCancelled).
		Where("id IN (?)", availableFlights)

	if query.OriginAirportID != 0 {
		tx = tx.Where("departure_airport_id = ?", query.OriginAirportID)
	}
	if query.DestinationAirportID != 0 {
		tx = tx.Where("arrival_airport_id = ?", query.DestinationAirportID)
	}
	if !query.TravelDate.IsZero() {
		dayStart := time.Date(
			query.TravelDate.Year(), query.TravelDate.Month(), query.TravelDate.Day(),
			0, 0, 0, 0, query.TravelDate.Location(),
		)
		tx = tx.Where("departure_time >= ? AND departure_time < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	err = tx.Order("departure_time").Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight, inventories []*FlightInventory) error {
	classCodes := make(map[string]struct{}, len(inventories))
	for _, inventory := range inventories {
		if _, ok := classCodes[inventory.ClassCode]; ok {
			return ErrClassCodeTaken
		}
		classCodes[inventory.ClassCode] = struct{}{}
	}

	return flightOperation.db.Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
		defer cancel()

		if err := tx.WithContext(ctx).Create(flight).Error; err != nil {
			return err
		}

		for _, inventory := range inventories {
			inventory.FlightID = flight.ID
		}

		if len(inventories) > 0 {
			if err := tx.WithContext(ctx).Create(inventories).Error; err != nil {
				return err
			}
		}
		flight.Inventories = inventories
		return nil
	})
}

func (flightOperation *FlightOperation) UpdateFlightInfo(flight *Flight, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Model(flight).Updates(info).Error
}

func (flightOperation *FlightOperation) GetInventoryById(id uint) (inventory *FlightInventory, err error) {
	inventory = &FlightInventory{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(inventory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrInventoryNotFound
	}
	return
}
