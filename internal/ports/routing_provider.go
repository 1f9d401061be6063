package ports

import (
	"context"
	"eld-trip-planner/internal/domain"
)

// Contract for retrieving a driving route between two points.
type RoutingProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (*domain.Directions, error)
}

// Persistent origin->destination directions cache. Get reports whether the
// pair was present.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinates) (*domain.Directions, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, directions *domain.Directions) error
}
