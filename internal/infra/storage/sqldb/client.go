// Package sqldb implements the energy log storage on relational databases
// through GORM. SQLite (pure Go) and PostgreSQL are supported.
package sqldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported values for the driver argument of Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for a driver it does not support.
var ErrUnknownDriver = errors.New("unknown sql driver")

type client struct {
	db *gorm.DB
}

// Open connects to the database identified by driver and dsn and prepares
// the energy_logs schema.
func Open(ctx context.Context, driver, dsn string) (*client, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		// SQLite allows a single writer; one connection keeps concurrent
		// appends from failing with SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}

	return New(ctx, db)
}

// New wraps an open GORM handle and migrates the schema.
func New(ctx context.Context, db *gorm.DB) (*client, error) {
	if err := db.WithContext(ctx).AutoMigrate(&energyLogRow{}); err != nil {
		return nil, fmt.Errorf("migrate energy_logs: %w", err)
	}

	return &client{db: db}, nil
}

// Ping checks that the database is reachable.
func (c *client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (c *client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
