package ports

import (
	"context"
	"eld-trip-planner/internal/domain"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("requested resource not found")

// Port: a boundary for storing submitted trips.
type TripRepository interface {
	// Accept a trip and return its stored record.
	CreateTrip(ctx context.Context, trip domain.Trip) (*domain.TripRecord, error)
	// Retrieve a previously created trip; ErrNotFound if unknown.
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.TripRecord, error)
}
