package services

import (
	"eld-trip-planner/internal/domain"
	"math"
)

// Fixed meters -> statute miles conversion used for display.
const metersToMiles = 0.000621371

// ExtractDrivingHours returns the recommended route's driving duration in
// hours, rounded to 2 decimals. Missing route data degrades to 0.
func ExtractDrivingHours(d *domain.Directions) float64 {
	s, ok := primarySummary(d)
	if !ok {
		return 0
	}
	return roundTo(s.DurationSeconds/3600, 2)
}

// ExtractRouteMiles returns the recommended route's distance in miles,
// rounded to 1 decimal. It is only an initial figure shown until
// driving-derived mileage is available.
func ExtractRouteMiles(d *domain.Directions) float64 {
	s, ok := primarySummary(d)
	if !ok {
		return 0
	}
	return roundTo(s.DistanceMeters*metersToMiles, 1)
}

// PrimaryRoute converts the recommended feature into a domain Route.
func PrimaryRoute(d *domain.Directions) (domain.Route, bool) {
	if d == nil || len(d.Features) == 0 {
		return domain.Route{}, false
	}

	f := d.Features[0]
	r := domain.Route{Polyline: append([]domain.Coordinates(nil), f.Geometry...)}
	if f.Summary != nil {
		r.DistanceMeters = f.Summary.DistanceMeters
		r.DurationSeconds = f.Summary.DurationSeconds
	}
	return r, true
}

func primarySummary(d *domain.Directions) (domain.RouteSummary, bool) {
	if d == nil || len(d.Features) == 0 || d.Features[0].Summary == nil {
		return domain.RouteSummary{}, false
	}
	return *d.Features[0].Summary, true
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
