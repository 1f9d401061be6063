package domain

import "testing"

func TestDutyTypeLabel(t *testing.T) {
	want := map[DutyType]string{
		OffDuty: "Off Duty",
		Sleeper: "Sleeper Berth",
		Driving: "Driving",
		OnDuty:  "On Duty (Not Driving)",
	}
	for typ, label := range want {
		if typ.Label() != label {
			t.Errorf("%s.Label() = %q, want %q", typ, typ.Label(), label)
		}
	}

	if _, err := ParseDutyType("napping"); err == nil {
		t.Fatalf("expected error for unknown duty type")
	}
}

func TestDutyIntervalOpenCountsZero(t *testing.T) {
	iv := DutyInterval{Type: Driving, Start: 8 * 60}
	if !iv.Open() {
		t.Fatalf("interval without end should be open")
	}
	if iv.Hours() != 0 {
		t.Fatalf("open interval hours = %v, want 0", iv.Hours())
	}

	closed := iv.ClosedAt(10 * 60)
	if closed.Hours() != 2 {
		t.Fatalf("closed interval hours = %v, want 2", closed.Hours())
	}
	if !iv.Open() {
		t.Fatalf("ClosedAt must not modify the receiver")
	}
}

func TestLogSheetCloneIsDeep(t *testing.T) {
	orig := LogSheet{
		Intervals: []DutyInterval{{Type: OffDuty, Start: 0, End: ClockPtr(60)}},
		Remarks:   []Remark{{Time: 0, Location: "A", Description: "Off duty"}},
	}

	cp := orig.Clone()
	*cp.Intervals[0].End = 120
	cp.Remarks[0].Location = "B"

	if *orig.Intervals[0].End != 60 {
		t.Fatalf("clone shares interval end with original")
	}
	if orig.Remarks[0].Location != "A" {
		t.Fatalf("clone shares remarks with original")
	}
}

func TestLogSheetTotalMiles(t *testing.T) {
	l := LogSheet{RouteMiles: 412.3}
	if l.TotalMiles() != 412.3 {
		t.Fatalf("TotalMiles = %v, want route miles before any driving", l.TotalMiles())
	}
	l.EstimatedMiles = 440
	if l.TotalMiles() != 440 {
		t.Fatalf("TotalMiles = %v, want estimate once available", l.TotalMiles())
	}
}
