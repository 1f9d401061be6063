package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// CoordinatesFromList parses an external [lon, lat] pair.
func CoordinatesFromList(pair []float64) (Coordinates, error) {
	if len(pair) < 2 {
		return Coordinates{}, fmt.Errorf("coordinates: want [lon, lat], got %d values", len(pair))
	}
	return Coordinates{Lon: pair[0], Lat: pair[1]}, nil
}

// Key returns a stable text form used for cache keys and logging.
func (c Coordinates) Key() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
