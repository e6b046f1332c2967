package database

import (
	"context"
	"errors"
	"time"

	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AirportOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirportOperation(db *gorm.DB, queryTimeout time.Duration) *AirportOperation {
	return &AirportOperation{db: db, queryTimeout: queryTimeout}
}

func (airportOperation *AirportOperation) GetAirports() (airports []*Airport, err error) {
	airports = make([]*Airport, 0)
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).
		Order("iata_code").
		Find(&airports).Error
	return
}

func (airportOperation *AirportOperation) AddAirport(airport *Airport) error {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	return airportOperation.db.WithContext(ctx).Create(airport).Error
}

func (airportOperation *AirportOperation) GetAirportByIata(iataCode string) (airport *Airport, err error) {
	airport = &Airport{}
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).
		Where("iata_code = ?", iataCode).
		First(airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAirportNotFound
	}
	return
}
