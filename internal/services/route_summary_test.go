package services

import (
	"eld-trip-planner/internal/domain"
	"testing"
)

func directions(meters, seconds float64) *domain.Directions {
	return &domain.Directions{Features: []domain.DirectionsFeature{{
		Summary: &domain.RouteSummary{DistanceMeters: meters, DurationSeconds: seconds},
		Geometry: []domain.Coordinates{
			{Lat: 37.54, Lon: -77.43},
			{Lat: 39.29, Lon: -76.61},
		},
	}}}
}

func TestExtractDrivingHours(t *testing.T) {
	if got := ExtractDrivingHours(directions(0, 7200)); got != 2.0 {
		t.Fatalf("ExtractDrivingHours(7200s) = %v, want 2.0", got)
	}
	if got := ExtractDrivingHours(directions(0, 10000)); got != 2.78 {
		t.Fatalf("ExtractDrivingHours(10000s) = %v, want 2.78", got)
	}
}

func TestExtractDrivingHoursMissingData(t *testing.T) {
	cases := map[string]*domain.Directions{
		"nil":         nil,
		"no features": {},
		"no summary":  {Features: []domain.DirectionsFeature{{}}},
	}
	for name, d := range cases {
		if got := ExtractDrivingHours(d); got != 0 {
			t.Errorf("%s: ExtractDrivingHours = %v, want 0", name, got)
		}
		if got := ExtractRouteMiles(d); got != 0 {
			t.Errorf("%s: ExtractRouteMiles = %v, want 0", name, got)
		}
	}
}

func TestExtractRouteMiles(t *testing.T) {
	// 250 km -> 155.34275 mi
	if got := ExtractRouteMiles(directions(250000, 0)); got != 155.3 {
		t.Fatalf("ExtractRouteMiles(250km) = %v, want 155.3", got)
	}
}

func TestPrimaryRoute(t *testing.T) {
	r, ok := PrimaryRoute(directions(1000, 60))
	if !ok {
		t.Fatalf("expected a route")
	}
	if r.DistanceMeters != 1000 || r.DurationSeconds != 60 {
		t.Fatalf("route totals = %v/%v, want 1000/60", r.DistanceMeters, r.DurationSeconds)
	}
	if len(r.Polyline) != 2 {
		t.Fatalf("polyline length = %d, want 2", len(r.Polyline))
	}

	if _, ok := PrimaryRoute(&domain.Directions{}); ok {
		t.Fatalf("expected no route for empty directions")
	}
}
