package services

import (
	"eld-trip-planner/internal/domain"
	"math"
	"testing"
)

var testTrip = domain.Trip{
	CurrentLocation:  "Richmond, VA",
	PickupLocation:   "Baltimore, MD",
	DropoffLocation:  "Newark, NJ",
	CurrentCycleUsed: 12,
}

func hoursPtr(h float64) *float64 { return &h }

func assertContiguous(t *testing.T, intervals []domain.DutyInterval) {
	t.Helper()

	if len(intervals) == 0 {
		t.Fatalf("no intervals")
	}
	if intervals[0].Start.String() != "00:00" {
		t.Fatalf("first interval starts at %s, want 00:00", intervals[0].Start)
	}
	last := intervals[len(intervals)-1]
	if last.End == nil || last.End.String() != "23:59" {
		t.Fatalf("last interval ends at %v, want 23:59", last.End)
	}
	for i := 0; i+1 < len(intervals); i++ {
		if intervals[i].End == nil {
			t.Fatalf("interval %d is open", i)
		}
		if *intervals[i].End != intervals[i+1].Start {
			t.Fatalf("interval %d ends %s but interval %d starts %s",
				i, intervals[i].End, i+1, intervals[i+1].Start)
		}
	}
}

func TestSynthesizeLogContiguous(t *testing.T) {
	for _, hours := range []float64{0.5, 3.33, 8, 10, 13.7, 20} {
		for _, start := range []int{0, 5, 8, 14, 23} {
			syn := SynthesizeLog(testTrip, hoursPtr(hours), start)
			assertContiguous(t, syn.Intervals)
			if len(syn.Remarks) != len(syn.Intervals) {
				t.Fatalf("remarks = %d, want one per interval (%d)", len(syn.Remarks), len(syn.Intervals))
			}
		}
	}
}

func TestSynthesizeLogTemplate(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(10), 8)

	want := []struct {
		typ        domain.DutyType
		location   string
		desc       string
		start, end string
	}{
		{domain.OffDuty, "Richmond, VA", "Off duty", "00:00", "08:00"},
		{domain.Sleeper, "Richmond, VA", "Rest period", "08:00", "09:30"},
		{domain.Driving, "Richmond, VA", "Driving to pickup", "09:30", "14:00"},
		{domain.OnDuty, "Baltimore, MD", "Loading cargo", "14:00", "15:30"},
		{domain.Driving, "Baltimore, MD", "Driving to destination", "15:30", "21:00"},
		{domain.OnDuty, "Newark, NJ", "Unloading cargo", "21:00", "22:00"},
		{domain.OffDuty, "Newark, NJ", "Off duty", "22:00", "23:59"},
	}

	if len(syn.Intervals) != len(want) {
		t.Fatalf("intervals = %d, want %d", len(syn.Intervals), len(want))
	}
	for i, w := range want {
		got := syn.Intervals[i]
		if got.Type != w.typ || got.Location != w.location || got.Description != w.desc {
			t.Errorf("interval %d = %s/%q/%q, want %s/%q/%q",
				i, got.Type, got.Location, got.Description, w.typ, w.location, w.desc)
		}
		if got.Start.String() != w.start || got.End.String() != w.end {
			t.Errorf("interval %d = %s-%s, want %s-%s", i, got.Start, got.End, w.start, w.end)
		}
	}
	if syn.Overflow {
		t.Fatalf("10 hour trip starting at 08:00 should fit in one day")
	}
}

func TestSynthesizeLogSplitRatio(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(10), 8)
	if h := syn.Intervals[2].Hours(); h != 4.5 {
		t.Fatalf("first driving segment = %v, want 4.5", h)
	}
	if h := syn.Intervals[4].Hours(); h != 5.5 {
		t.Fatalf("second driving segment = %v, want 5.5", h)
	}
}

func TestSynthesizeLogDefaultDrivingHours(t *testing.T) {
	for name, hours := range map[string]*float64{
		"nil":  nil,
		"zero": hoursPtr(0),
		"nan":  hoursPtr(math.NaN()),
	} {
		syn := SynthesizeLog(testTrip, hours, 8)
		if syn.DrivingHours != DefaultDrivingHours {
			t.Errorf("%s: DrivingHours = %v, want %v", name, syn.DrivingHours, DefaultDrivingHours)
		}
		if h := syn.Intervals[2].Hours(); h != 3.6 {
			t.Errorf("%s: first driving segment = %v, want 3.6", name, h)
		}
		if h := syn.Intervals[4].Hours(); h != 4.4 {
			t.Errorf("%s: second driving segment = %v, want 4.4", name, h)
		}
	}
}

func TestSynthesizeLogInvalidStartHour(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(8), 31)
	if got := syn.Intervals[0].End.String(); got != "08:00" {
		t.Fatalf("off-duty ends at %s, want 08:00 default anchor", got)
	}
}

func TestSynthesizeLogEmptyLocations(t *testing.T) {
	syn := SynthesizeLog(domain.Trip{}, nil, 8)
	if syn.Intervals[0].Location != "Starting Location" {
		t.Fatalf("location = %q, want placeholder", syn.Intervals[0].Location)
	}
	if syn.Intervals[5].Location != "Dropoff Location" {
		t.Fatalf("location = %q, want placeholder", syn.Intervals[5].Location)
	}
}

func TestSynthesizeLogBoundariesAreWholeMinutes(t *testing.T) {
	// 13.1 + 1.5 + 4.4 style sums drift in floating point; boundaries must
	// still land on valid minutes.
	syn := SynthesizeLog(testTrip, hoursPtr(8), 9)
	for i, iv := range syn.Intervals {
		if !iv.Start.Valid() || !iv.End.Valid() {
			t.Fatalf("interval %d has invalid boundary %d-%d", i, iv.Start, *iv.End)
		}
	}
}

// The template splits driving by fixed ratio and does not enforce the
// 11-hour driving limit; long routes overflow the day and are flagged.
func TestSynthesizeLogDoesNotEnforceDrivingLimit(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(20), 8)

	if !syn.Overflow {
		t.Fatalf("expected overflow for a 20 hour drive")
	}
	if syn.OverflowWarning() == "" {
		t.Fatalf("expected an overflow warning")
	}
	assertContiguous(t, syn.Intervals)

	totals := Aggregate(syn.Intervals)
	if totals.DrivingHours != 20 {
		t.Fatalf("driving hours = %v, want 20 (no clamping)", totals.DrivingHours)
	}

	violations := CheckLimits(syn.Intervals, 0)
	found := false
	for _, v := range violations {
		if v.Rule == RuleDriving {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s violation, got %v", RuleDriving, violations)
	}
}

func TestAggregateSynthesizedDayCoversDay(t *testing.T) {
	syn := SynthesizeLog(testTrip, hoursPtr(10), 8)
	totals := Aggregate(syn.Intervals)

	if math.Abs(totals.Total()-24.0) > 0.02 {
		t.Fatalf("total hours = %v, want ~24", totals.Total())
	}
	if totals.DrivingHours != 10 {
		t.Fatalf("driving = %v, want 10", totals.DrivingHours)
	}
	if totals.OnDutyHours != 2.5 {
		t.Fatalf("on duty = %v, want 2.5", totals.OnDutyHours)
	}
	if totals.SleeperHours != 1.5 {
		t.Fatalf("sleeper = %v, want 1.5", totals.SleeperHours)
	}
}
