package services

import (
	"eld-trip-planner/internal/domain"
	"math"
)

const (
	DefaultFuelIntervalMiles = 1000.0

	earthRadiusMeters = 6371000.0
	metersPerMile     = 1609.34
)

// FuelStops places a stop at the first polyline point past each
// everyMiles mark along the route. A non-positive interval uses
// DefaultFuelIntervalMiles.
func FuelStops(polyline []domain.Coordinates, everyMiles float64) []domain.FuelStop {
	if everyMiles <= 0 {
		everyMiles = DefaultFuelIntervalMiles
	}
	if len(polyline) < 2 {
		return nil
	}

	var stops []domain.FuelStop
	next := everyMiles
	cumulative := 0.0

	for i := 1; i < len(polyline); i++ {
		cumulative += haversineMeters(polyline[i-1], polyline[i]) / metersPerMile
		for cumulative > next {
			stops = append(stops, domain.FuelStop{Position: polyline[i], Miles: next})
			next += everyMiles
		}
	}

	return stops
}

func haversineMeters(a, b domain.Coordinates) float64 {
	const rad = math.Pi / 180

	dLat := (b.Lat - a.Lat) * rad
	dLon := (b.Lon - a.Lon) * rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*rad)*math.Cos(b.Lat*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(math.Min(1, h)))
}
