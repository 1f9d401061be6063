package services

import (
	"eld-trip-planner/internal/domain"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewGeneratedLog(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	syn := SynthesizeLog(testTrip, hoursPtr(10), 8)

	l := NewGeneratedLog(uuid.New(), testTrip, syn, 312.4, now)

	if l.Mode != domain.LogGenerated {
		t.Fatalf("mode = %s, want generated", l.Mode)
	}
	if l.Header.Date != "03/02/2026" {
		t.Fatalf("header date = %q, want 03/02/2026", l.Header.Date)
	}
	if l.CurrentStatus != domain.OffDuty {
		t.Fatalf("current status = %s, want off-duty", l.CurrentStatus)
	}
	if l.Totals.DrivingHours != 10 {
		t.Fatalf("driving hours = %v, want 10", l.Totals.DrivingHours)
	}
	if l.EstimatedMiles != 550 {
		t.Fatalf("estimated miles = %v, want 550", l.EstimatedMiles)
	}
	if l.RouteMiles != 312.4 {
		t.Fatalf("route miles = %v, want 312.4", l.RouteMiles)
	}
	if len(l.Remarks) != len(l.Intervals) {
		t.Fatalf("remarks = %d, want one per interval (%d)", len(l.Remarks), len(l.Intervals))
	}
	if len(l.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", l.Warnings)
	}
}

func TestNewGeneratedLogOverflowWarning(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(12), 18)
	if !syn.Overflow {
		t.Fatalf("expected overflow for an 18:00 start")
	}

	l := NewGeneratedLog(uuid.New(), testTrip, syn, 0, time.Now())
	if len(l.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one overflow warning", l.Warnings)
	}
}

func TestAppendRemark(t *testing.T) {
	base := NewInteractiveLog(uuid.New(), time.Now())
	at, _ := domain.NewClockTime(14, 30)

	l, err := AppendRemark(base, domain.Remark{Time: at, Location: "Baltimore, MD", Description: "Fuel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Remarks) != 1 || len(base.Remarks) != 0 {
		t.Fatalf("remarks = %d (base %d), want 1 (0)", len(l.Remarks), len(base.Remarks))
	}

	bad := []domain.Remark{
		{Time: domain.ClockTime(2000), Location: "x", Description: "y"},
		{Time: at, Location: " ", Description: "y"},
		{Time: at, Location: "x", Description: ""},
	}
	for _, r := range bad {
		if _, err := AppendRemark(base, r); err == nil {
			t.Fatalf("expected error for remark %+v", r)
		}
	}
}

func TestWithHeaderKeepsDate(t *testing.T) {
	base := NewInteractiveLog(uuid.New(), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

	l := WithHeader(base, domain.LogHeader{DriverName: "J. Smith", Company: "Acme Freight"})
	if l.Header.Date != "01/05/2026" {
		t.Fatalf("date = %q, want the existing date", l.Header.Date)
	}
	if l.Header.DriverName != "J. Smith" || base.Header.DriverName != "" {
		t.Fatalf("header not applied on a copy: %+v / %+v", l.Header, base.Header)
	}

	l = WithHeader(base, domain.LogHeader{Date: "02/01/2026"})
	if l.Header.Date != "02/01/2026" {
		t.Fatalf("date = %q, want 02/01/2026", l.Header.Date)
	}
}
