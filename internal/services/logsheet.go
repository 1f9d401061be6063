package services

import (
	"eld-trip-planner/internal/domain"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrGeneratedLog is returned when a status change targets a log that was
// synthesized from route data.
var ErrGeneratedLog = errors.New("log was generated from route data; reset it to record status changes")

var ErrInvalidRemark = errors.New("remark location and description are required")

const headerDateLayout = "01/02/2006"

// NewInteractiveLog returns an empty log waiting for its first status change.
func NewInteractiveLog(tripID uuid.UUID, now time.Time) domain.LogSheet {
	return domain.LogSheet{
		TripID:        tripID,
		Mode:          domain.LogInteractive,
		Header:        domain.LogHeader{Date: now.Format(headerDateLayout)},
		CurrentStatus: domain.OffDuty,
		UpdatedAt:     now,
	}
}

// NewGeneratedLog wraps a synthesis into a log sheet with derived totals.
func NewGeneratedLog(
	tripID uuid.UUID,
	trip domain.Trip,
	syn Synthesis,
	routeMiles float64,
	now time.Time,
) domain.LogSheet {
	l := domain.LogSheet{
		TripID:        tripID,
		Mode:          domain.LogGenerated,
		Header:        domain.LogHeader{Date: now.Format(headerDateLayout)},
		Intervals:     syn.Intervals,
		Remarks:       syn.Remarks,
		CurrentStatus: domain.OffDuty,
		RouteMiles:    routeMiles,
		UpdatedAt:     now,
	}
	if n := len(syn.Intervals); n > 0 {
		l.CurrentStatus = syn.Intervals[n-1].Type
	}
	if w := syn.OverflowWarning(); w != "" {
		l.Warnings = append(l.Warnings, w)
	}
	return recompute(l, trip.CurrentCycleUsed)
}

// recompute refreshes everything derived from the interval sequence.
func recompute(l domain.LogSheet, cycleUsed float64) domain.LogSheet {
	l.Totals = Aggregate(l.Intervals)
	l.EstimatedMiles = EstimateMiles(l.Intervals)
	l.Violations = CheckLimits(l.Intervals, cycleUsed)
	return l
}

// AppendRemark returns a copy of l with r appended.
func AppendRemark(l domain.LogSheet, r domain.Remark) (domain.LogSheet, error) {
	if !r.Time.Valid() {
		return domain.LogSheet{}, fmt.Errorf("append remark: %w", domain.ErrInvalidClock)
	}
	if strings.TrimSpace(r.Location) == "" || strings.TrimSpace(r.Description) == "" {
		return domain.LogSheet{}, fmt.Errorf("append remark: %w", ErrInvalidRemark)
	}

	out := l.Clone()
	out.Remarks = append(out.Remarks, r)
	return out, nil
}

// WithHeader returns a copy of l carrying h. An empty date keeps the
// current one.
func WithHeader(l domain.LogSheet, h domain.LogHeader) domain.LogSheet {
	out := l.Clone()
	if strings.TrimSpace(h.Date) == "" {
		h.Date = l.Header.Date
	}
	out.Header = h
	return out
}
