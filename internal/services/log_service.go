package services

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogService applies driver edits to the stored log of a trip.
type LogService struct {
	Logs  ports.LogStore
	Trips ports.TripRepository
	Now   func() time.Time
}

func NewLogService(logs ports.LogStore, trips ports.TripRepository) *LogService {
	return &LogService{Logs: logs, Trips: trips, Now: time.Now}
}

func (s *LogService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *LogService) Get(ctx context.Context, tripID uuid.UUID) (domain.LogSheet, error) {
	l, err := s.Logs.Get(ctx, tripID)
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("get log: %w", err)
	}
	return l, nil
}

// SetStatus records a duty status change at the current time.
func (s *LogService) SetStatus(ctx context.Context, tripID uuid.UUID, t domain.DutyType) (l domain.LogSheet, err error) {
	defer obs.Time(ctx, "log_set_status")(&err)

	rec, err := s.Trips.GetTrip(ctx, tripID)
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("set status: %w", err)
	}

	apply := func(cur domain.LogSheet) (domain.LogSheet, error) {
		return NewStatusEngine(cur, rec.Trip.CurrentCycleUsed, s.now).SetStatus(ctx, t)
	}

	l, err = s.Logs.Update(ctx, tripID, apply)
	if errors.Is(err, ports.ErrNotFound) {
		// A trip created without a plan starts from an empty log.
		if err = s.Logs.Put(ctx, NewInteractiveLog(tripID, s.now())); err == nil {
			l, err = s.Logs.Update(ctx, tripID, apply)
		}
	}
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("set status: %w", err)
	}
	return l, nil
}

// Reset replaces the trip's log with an empty interactive one.
func (s *LogService) Reset(ctx context.Context, tripID uuid.UUID) (l domain.LogSheet, err error) {
	defer obs.Time(ctx, "log_reset")(&err)

	rec, err := s.Trips.GetTrip(ctx, tripID)
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("reset log: %w", err)
	}

	l, err = s.Logs.Update(ctx, tripID, func(cur domain.LogSheet) (domain.LogSheet, error) {
		return NewStatusEngine(cur, rec.Trip.CurrentCycleUsed, s.now).Reset(), nil
	})
	if errors.Is(err, ports.ErrNotFound) {
		l = NewInteractiveLog(tripID, s.now())
		err = s.Logs.Put(ctx, l)
	}
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("reset log: %w", err)
	}
	return l, nil
}

func (s *LogService) AddRemark(ctx context.Context, tripID uuid.UUID, r domain.Remark) (domain.LogSheet, error) {
	l, err := s.Logs.Update(ctx, tripID, func(cur domain.LogSheet) (domain.LogSheet, error) {
		next, err := AppendRemark(cur, r)
		if err != nil {
			return domain.LogSheet{}, err
		}
		next.UpdatedAt = s.now()
		return next, nil
	})
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("add remark: %w", err)
	}
	return l, nil
}

func (s *LogService) UpdateHeader(ctx context.Context, tripID uuid.UUID, h domain.LogHeader) (domain.LogSheet, error) {
	l, err := s.Logs.Update(ctx, tripID, func(cur domain.LogSheet) (domain.LogSheet, error) {
		next := WithHeader(cur, h)
		next.UpdatedAt = s.now()
		return next, nil
	})
	if err != nil {
		return domain.LogSheet{}, fmt.Errorf("update header: %w", err)
	}
	return l, nil
}

// Scene projects the stored log onto the grid, drawing an open interval
// up to the current time.
func (s *LogService) Scene(ctx context.Context, tripID uuid.UUID, width int) (Scene, error) {
	l, err := s.Get(ctx, tripID)
	if err != nil {
		return Scene{}, err
	}
	return BuildScene(l, SceneOptions{Width: width, AsOf: domain.ClockAt(s.now())}), nil
}
