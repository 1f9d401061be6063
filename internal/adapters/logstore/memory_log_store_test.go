package logstore

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryLogStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLogStore()
	id := uuid.New()

	l := domain.LogSheet{
		TripID:    id,
		Intervals: []domain.DutyInterval{{Type: domain.OffDuty, Start: 0, End: domain.ClockPtr(60)}},
	}
	if err := s.Put(ctx, l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Mutating the caller's value after Put must not leak into the store.
	*l.Intervals[0].End = 90

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.Intervals[0].End != 60 {
		t.Fatalf("stored end = %d, want 60", *got.Intervals[0].End)
	}

	got.Intervals[0].Type = domain.Driving
	again, _ := s.Get(ctx, id)
	if again.Intervals[0].Type != domain.OffDuty {
		t.Fatalf("Get result shares storage with the store")
	}
}

func TestMemoryLogStoreNotFound(t *testing.T) {
	s := NewMemoryLogStore()

	if _, err := s.Get(context.Background(), uuid.New()); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	_, err := s.Update(context.Background(), uuid.New(), func(l domain.LogSheet) (domain.LogSheet, error) {
		return l, nil
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("Update err = %v, want ErrNotFound", err)
	}
	if err := s.Put(context.Background(), domain.LogSheet{}); err == nil {
		t.Fatalf("Put without trip id should fail")
	}
}

func TestMemoryLogStoreUpdateFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLogStore()
	id := uuid.New()
	_ = s.Put(ctx, domain.LogSheet{TripID: id, CurrentStatus: domain.OffDuty})

	boom := errors.New("boom")
	_, err := s.Update(ctx, id, func(l domain.LogSheet) (domain.LogSheet, error) {
		l.CurrentStatus = domain.Driving
		return l, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	got, _ := s.Get(ctx, id)
	if got.CurrentStatus != domain.OffDuty {
		t.Fatalf("status = %s, want off-duty after failed update", got.CurrentStatus)
	}
}

func TestMemoryLogStoreUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLogStore()
	id := uuid.New()
	_ = s.Put(ctx, domain.LogSheet{TripID: id})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, id, func(l domain.LogSheet) (domain.LogSheet, error) {
				l.Remarks = append(l.Remarks, domain.Remark{Location: "x", Description: "y"})
				return l, nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Get(ctx, id)
	if len(got.Remarks) != 50 {
		t.Fatalf("remarks = %d, want 50", len(got.Remarks))
	}
}
