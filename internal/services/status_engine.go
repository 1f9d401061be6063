package services

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"errors"
	"fmt"
	"time"

	"github.com/looplab/fsm"
)

// StatusEngine records live duty status changes on an interactive log.
//
// The current status is tracked by a state machine with one event per duty
// type, allowed from every state. Repeating the current status is accepted
// and produces adjacent intervals of the same type.
type StatusEngine struct {
	fsm       *fsm.FSM
	log       domain.LogSheet
	cycleUsed float64
	now       func() time.Time
}

func statusEvent(t domain.DutyType) string { return "set_" + string(t) }

// NewStatusEngine resumes an engine from a log snapshot.
func NewStatusEngine(l domain.LogSheet, cycleUsed float64, now func() time.Time) *StatusEngine {
	if now == nil {
		now = time.Now
	}

	initial := l.CurrentStatus
	if !initial.Valid() {
		initial = domain.OffDuty
	}

	states := make([]string, 0, len(domain.DutyTypes))
	for _, t := range domain.DutyTypes {
		states = append(states, string(t))
	}

	events := make(fsm.Events, 0, len(domain.DutyTypes))
	for _, t := range domain.DutyTypes {
		events = append(events, fsm.EventDesc{Name: statusEvent(t), Src: states, Dst: string(t)})
	}

	e := &StatusEngine{
		log:       l.Clone(),
		cycleUsed: cycleUsed,
		now:       now,
	}
	e.log.CurrentStatus = initial
	e.fsm = fsm.NewFSM(string(initial), events, fsm.Callbacks{})

	return e
}

// Current is the duty status of the open interval.
func (e *StatusEngine) Current() domain.DutyType {
	return domain.DutyType(e.fsm.Current())
}

// Snapshot returns a copy of the engine's log.
func (e *StatusEngine) Snapshot() domain.LogSheet {
	return e.log.Clone()
}

// SetStatus closes the open interval at the current time, opens a new one
// of type t, and returns the recomputed log.
func (e *StatusEngine) SetStatus(ctx context.Context, t domain.DutyType) (domain.LogSheet, error) {
	if !t.Valid() {
		return domain.LogSheet{}, fmt.Errorf("set status %q: %w", t, domain.ErrUnknownDutyType)
	}
	if e.log.Mode == domain.LogGenerated {
		return domain.LogSheet{}, fmt.Errorf("set status %q: %w", t, ErrGeneratedLog)
	}

	if err := e.fsm.Event(ctx, statusEvent(t)); err != nil {
		var same fsm.NoTransitionError
		if !errors.As(err, &same) {
			return domain.LogSheet{}, fmt.Errorf("set status %q: %w", t, err)
		}
	}

	ts := e.now()
	at := domain.ClockAt(ts)

	intervals := make([]domain.DutyInterval, len(e.log.Intervals), len(e.log.Intervals)+1)
	copy(intervals, e.log.Intervals)
	if n := len(intervals); n > 0 {
		intervals[n-1] = intervals[n-1].ClosedAt(at)
	}
	intervals = append(intervals, domain.DutyInterval{Type: t, Start: at})

	next := e.log.Clone()
	next.Mode = domain.LogInteractive
	next.Intervals = intervals
	next.CurrentStatus = e.Current()
	next.UpdatedAt = ts
	e.log = recompute(next, e.cycleUsed)

	obs.StatusTransitionsTotal.WithLabelValues(string(t)).Inc()

	return e.log.Clone(), nil
}

// Reset discards all intervals and returns to the initial off-duty state.
func (e *StatusEngine) Reset() domain.LogSheet {
	e.log = NewInteractiveLog(e.log.TripID, e.now())
	e.fsm.SetState(string(domain.OffDuty))
	return e.log.Clone()
}
