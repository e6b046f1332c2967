// Package database
package database

import (
	"context"
	"fmt"

	c "github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/global"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type ShutdownCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDatabaseShutdownCallback(logger log.LoggerInterface, db *gorm.DB) *ShutdownCallback {
	return &ShutdownCallback{logger: logger, db: db}
}

func (callback *ShutdownCallback) Invoke(_ context.Context) error {
	callback.logger.Info("Closing database connection...")
	pool, err := callback.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

func ConnectDatabase(
	logger log.LoggerInterface,
	config *c.Config,
	debugMode bool,
) (global.Callable, *DatabaseOperations, error) {
	dialector := config.Database.GetConnection(logger)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.Database.DBType)
	}

	connectionConfig := &gorm.Config{
		PrepareStmt:               true,
		DefaultTransactionTimeout: config.Database.QueryDuration,
	}
	if debugMode {
		connectionConfig.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	} else {
		connectionConfig.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	db, err := gorm.Open(dialector, connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&Airport{},
		&Aircraft{},
		&Flight{},
		&FlightInventory{},
		&User{},
		&Booking{},
		&Passenger{},
	); err != nil {
		return nil, nil, fmt.Errorf("error occurred while migrating database: %v", err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while creating database pool: %v", err)
	}

	maxOpenConnections := float32(config.Database.ServerMaxConnections) * 0.8
	maxIdleConnections := maxOpenConnections / 5

	pool.SetMaxOpenConns(int(maxOpenConnections))
	pool.SetMaxIdleConns(int(maxIdleConnections))
	pool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err := pool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occurred while pinging database: %v", err)
	}

	queryTimeout := config.Database.QueryDuration

	operations := NewDatabaseOperations(
		NewAirportOperation(db, queryTimeout),
		NewAircraftOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewBookingOperation(logger, db, queryTimeout),
		NewUserOperation(db, queryTimeout, config.Server.General),
	)

	return NewDatabaseShutdownCallback(logger, db), operations, nil
}
