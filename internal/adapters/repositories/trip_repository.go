package repositories

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQL-backed implementation of the TripRepository port.
type TripRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
	Now     func() time.Time
}

func NewTripRepository(conn *sql.DB, dialect db.Dialect) *TripRepository {
	return &TripRepository{DB: conn, Dialect: dialect, Now: time.Now}
}

// CreateTrip stores trip under a fresh id.
func (s *TripRepository) CreateTrip(ctx context.Context, trip domain.Trip) (_ *domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.CreateTrip")(&err)

	if s.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	rec := &domain.TripRecord{
		ID:        uuid.New(),
		Trip:      trip,
		CreatedAt: now().UTC(),
	}

	q := db.Rebind(s.Dialect, `
	INSERT INTO trips (
		trip_id,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	_, err = s.DB.ExecContext(ctx, q,
		rec.ID.String(),
		trip.CurrentLocation,
		trip.PickupLocation,
		trip.DropoffLocation,
		trip.CurrentCycleUsed,
		rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create trip: insert trips row: %w", err)
	}

	return rec, nil
}

// GetTrip loads a trip by id; ports.ErrNotFound if it does not exist.
func (s *TripRepository) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.GetTrip")(&err)

	if s.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	q := db.Rebind(s.Dialect, `
	SELECT
		trip_id,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		created_at
	FROM trips
	WHERE trip_id = ?;
	`)

	var rec domain.TripRecord
	err = s.DB.QueryRowContext(ctx, q, id.String()).Scan(
		&rec.ID,
		&rec.Trip.CurrentLocation,
		&rec.Trip.PickupLocation,
		&rec.Trip.DropoffLocation,
		&rec.Trip.CurrentCycleUsed,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %s: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: scan row: %w", id, err)
	}

	return &rec, nil
}

// ListTrips returns the most recent trips first.
func (s *TripRepository) ListTrips(ctx context.Context, limit int) (_ []*domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.ListTrips")(&err)

	if s.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	q := db.Rebind(s.Dialect, `
	SELECT
		trip_id,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		created_at
	FROM trips
	ORDER BY created_at DESC
	LIMIT ?;
	`)
	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.TripRecord, 0, limit)
	for rows.Next() {
		var rec domain.TripRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Trip.CurrentLocation,
			&rec.Trip.PickupLocation,
			&rec.Trip.DropoffLocation,
			&rec.Trip.CurrentCycleUsed,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		trips = append(trips, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}
