package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownDutyType = errors.New("unknown duty status")

// DutyType is one of the four HOS duty statuses.
type DutyType string

const (
	OffDuty DutyType = "off-duty"
	Sleeper DutyType = "sleeper"
	Driving DutyType = "driving"
	OnDuty  DutyType = "on-duty"
)

// DutyTypes lists the statuses in grid row order.
var DutyTypes = []DutyType{OffDuty, Sleeper, Driving, OnDuty}

func ParseDutyType(s string) (DutyType, error) {
	t := DutyType(s)
	if !t.Valid() {
		return "", fmt.Errorf("parse duty type %q: %w", s, ErrUnknownDutyType)
	}
	return t, nil
}

func (t DutyType) Valid() bool {
	switch t {
	case OffDuty, Sleeper, Driving, OnDuty:
		return true
	}
	return false
}

// Label is the human-readable status shown on the log sheet.
func (t DutyType) Label() string {
	switch t {
	case OffDuty:
		return "Off Duty"
	case Sleeper:
		return "Sleeper Berth"
	case Driving:
		return "Driving"
	case OnDuty:
		return "On Duty (Not Driving)"
	default:
		return "Unknown"
	}
}

// DutyInterval is a span of one duty status. End is nil while the
// interval is still in progress; only the last interval of a log may be open.
type DutyInterval struct {
	Type        DutyType
	Location    string
	Description string
	Start       ClockTime
	End         *ClockTime
}

func (iv DutyInterval) Open() bool { return iv.End == nil }

// Hours is the closed duration of the interval; open intervals count 0.
func (iv DutyInterval) Hours() float64 {
	if iv.End == nil {
		return 0
	}
	return HoursBetween(iv.Start, *iv.End)
}

// ClosedAt returns a copy of the interval ending at t.
func (iv DutyInterval) ClosedAt(t ClockTime) DutyInterval {
	iv.End = ClockPtr(t)
	return iv
}

// Remark is an annotation on the log sheet. Remarks are append-only.
type Remark struct {
	Time        ClockTime
	Location    string
	Description string
}

// StatusTotals are hours per duty status, rounded to 2 decimals.
// They are always derived from the interval sequence.
type StatusTotals struct {
	OffDutyHours float64
	SleeperHours float64
	DrivingHours float64
	OnDutyHours  float64
}

func (s StatusTotals) Total() float64 {
	return s.OffDutyHours + s.SleeperHours + s.DrivingHours + s.OnDutyHours
}

// Violation is an hours-of-service limit exceeded by a log.
type Violation struct {
	Rule        string
	LimitHours  float64
	ActualHours float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %.2f hours exceeds %.0f", v.Rule, v.ActualHours, v.LimitHours)
}

// LogMode records how a log's intervals were produced. A log is either
// synthesized from route data in one step or built one status change at a
// time; never both.
type LogMode string

const (
	LogGenerated   LogMode = "generated"
	LogInteractive LogMode = "interactive"
)

// LogHeader carries the driver-entered fields printed above the grid.
type LogHeader struct {
	DriverName       string
	Date             string
	Company          string
	MainOffice       string
	VehicleNumbers   string
	ShippingDocument string
}

// LogSheet is one day of duty intervals for a trip with its derived totals.
type LogSheet struct {
	TripID         uuid.UUID
	Mode           LogMode
	Header         LogHeader
	Intervals      []DutyInterval
	Remarks        []Remark
	CurrentStatus  DutyType
	Totals         StatusTotals
	EstimatedMiles float64
	RouteMiles     float64
	Violations     []Violation
	Warnings       []string
	UpdatedAt      time.Time
}

// TotalMiles prefers the driving-derived estimate and falls back to the
// routed distance until any driving has been completed.
func (l LogSheet) TotalMiles() float64 {
	if l.EstimatedMiles > 0 {
		return l.EstimatedMiles
	}
	return l.RouteMiles
}

// Clone returns a deep copy so snapshots never share interval storage.
func (l LogSheet) Clone() LogSheet {
	out := l
	if l.Intervals != nil {
		out.Intervals = make([]DutyInterval, len(l.Intervals))
		for i, iv := range l.Intervals {
			if iv.End != nil {
				iv.End = ClockPtr(*iv.End)
			}
			out.Intervals[i] = iv
		}
	}
	if l.Remarks != nil {
		out.Remarks = append([]Remark(nil), l.Remarks...)
	}
	if l.Violations != nil {
		out.Violations = append([]Violation(nil), l.Violations...)
	}
	if l.Warnings != nil {
		out.Warnings = append([]string(nil), l.Warnings...)
	}
	return out
}
