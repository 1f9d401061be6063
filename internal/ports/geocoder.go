package ports

import (
	"context"
	"eld-trip-planner/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Persistent address -> coordinates cache consulted before geocoding.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
