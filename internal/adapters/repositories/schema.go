package repositories

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/platform/db"
	"errors"
	"fmt"
)

var sqliteSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS trips (
		trip_id TEXT PRIMARY KEY,
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_used REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		directions TEXT NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_trips_created_at
	ON trips(created_at);
	`,
}

var postgresSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS trips (
		trip_id UUID PRIMARY KEY,
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_used DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		directions TEXT NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_trips_created_at
	ON trips(created_at);
	`,
}

// InitSchema creates the trip and cache tables for the given dialect.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case db.SQLite:
		statements = sqliteSchema
	case db.Postgres:
		statements = postgresSchema
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
