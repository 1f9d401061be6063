package logstore

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryLogStore keeps the latest log sheet per trip in process memory.
// Edited logs are not persisted across restarts.
type MemoryLogStore struct {
	mu   sync.Mutex
	logs map[uuid.UUID]domain.LogSheet
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{logs: make(map[uuid.UUID]domain.LogSheet)}
}

func (s *MemoryLogStore) Get(ctx context.Context, tripID uuid.UUID) (domain.LogSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs[tripID]
	if !ok {
		return domain.LogSheet{}, fmt.Errorf("log for trip %s: %w", tripID, ports.ErrNotFound)
	}
	return l.Clone(), nil
}

func (s *MemoryLogStore) Put(ctx context.Context, l domain.LogSheet) error {
	if l.TripID == uuid.Nil {
		return errors.New("put log: trip id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[l.TripID] = l.Clone()
	return nil
}

// Update runs fn under the store lock so concurrent edits of one trip's log
// apply in sequence. The stored value is left unchanged when fn fails.
func (s *MemoryLogStore) Update(
	ctx context.Context,
	tripID uuid.UUID,
	fn func(domain.LogSheet) (domain.LogSheet, error),
) (domain.LogSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.logs[tripID]
	if !ok {
		return domain.LogSheet{}, fmt.Errorf("log for trip %s: %w", tripID, ports.ErrNotFound)
	}

	next, err := fn(cur.Clone())
	if err != nil {
		return domain.LogSheet{}, err
	}
	next.TripID = tripID

	s.logs[tripID] = next.Clone()
	return next, nil
}

func (s *MemoryLogStore) Delete(ctx context.Context, tripID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, tripID)
}
