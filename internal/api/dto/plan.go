package dto

type MarkersResponse struct {
	Current CoordinateResponse `json:"current"`
	Pickup  CoordinateResponse `json:"pickup"`
	Dropoff CoordinateResponse `json:"dropoff"`
}

type FuelStopResponse struct {
	Position CoordinateResponse `json:"position"`
	Miles    float64            `json:"miles"`
}

type LegResponse struct {
	Name            string               `json:"name"`
	Label           string               `json:"label"`
	Color           string               `json:"color"`
	DistanceMeters  float64              `json:"distance_meters"`
	DurationSeconds float64              `json:"duration_seconds"`
	DrivingHours    float64              `json:"driving_hours"`
	Miles           float64              `json:"miles"`
	Polyline        []CoordinateResponse `json:"polyline"`
	FuelStops       []FuelStopResponse   `json:"fuel_stops"`
}

type PlanResponse struct {
	Trip         TripResponse       `json:"trip"`
	Markers      MarkersResponse    `json:"markers"`
	Legs         []LegResponse      `json:"legs"`
	FuelStops    []FuelStopResponse `json:"fuel_stops"`
	DrivingHours float64            `json:"driving_hours"`
	RouteMiles   float64            `json:"route_miles"`
	RouteError   string             `json:"route_error,omitempty"`
	Log          LogResponse        `json:"log"`
}
