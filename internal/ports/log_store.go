package ports

import (
	"context"
	"eld-trip-planner/internal/domain"

	"github.com/google/uuid"
)

// LogStore holds the current log sheet snapshot for each trip.
// Implementations return copies; callers never share interval storage.
type LogStore interface {
	Get(ctx context.Context, tripID uuid.UUID) (domain.LogSheet, error)
	Put(ctx context.Context, log domain.LogSheet) error
	// Update applies fn to the stored snapshot atomically and stores its result.
	Update(
		ctx context.Context,
		tripID uuid.UUID,
		fn func(domain.LogSheet) (domain.LogSheet, error),
	) (domain.LogSheet, error)
}
