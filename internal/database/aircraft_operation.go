package database

import (
	"context"
	"errors"
	"time"

	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AircraftOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAircraftOperation(db *gorm.DB, queryTimeout time.Duration) *AircraftOperation {
	return &AircraftOperation{db: db, queryTimeout: queryTimeout}
}

func (aircraftOperation *AircraftOperation) GetAircraftById(id uint) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) AddAircraft(aircraft *Aircraft) error {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Create(aircraft).Error
}

func (aircraftOperation *AircraftOperation) GetAircrafts() (aircrafts []*Aircraft, err error) {
	aircrafts = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Order("model_code").
		Find(&aircrafts).Error
	return
}
