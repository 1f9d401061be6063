package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to Postgres through the pgx database/sql driver.
// The caller registers the driver with a blank import of pgx/v5/stdlib.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

// OpenSQLite opens a SQLite database file with WAL journaling.
// The caller registers the driver with a blank import of modernc.org/sqlite.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	// SQLite serializes writers; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

// OpenDialect opens dsn with the driver matching d: a file path for SQLite,
// a connection URL for Postgres.
func OpenDialect(d Dialect, dsn string) (*sql.DB, error) {
	switch d {
	case SQLite:
		return OpenSQLite(dsn)
	case Postgres:
		return Open(dsn)
	}
	return nil, fmt.Errorf("openDB: unsupported dialect %q", d)
}
