package domain

// Route is one origin->destination leg returned by the routing provider.
// It is immutable planning data.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
	Polyline        []Coordinates
}

// RouteSummary holds the leg totals reported by the provider.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// DirectionsFeature is a single routed alternative. Summary is nil when the
// provider omitted it.
type DirectionsFeature struct {
	Summary  *RouteSummary
	Geometry []Coordinates
}

// Directions mirrors a routing provider response: a collection of features,
// the first of which is the recommended route.
type Directions struct {
	Features []DirectionsFeature
}

// FuelStop marks a point along a route polyline where the truck should fuel.
type FuelStop struct {
	Position Coordinates
	Miles    float64
}
