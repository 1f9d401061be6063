package dto

import "time"

type TripRequest struct {
	CurrentLocation  string   `json:"current_location" validate:"required,max=200"`
	PickupLocation   string   `json:"pickup_location" validate:"required,max=200"`
	DropoffLocation  string   `json:"dropoff_location" validate:"required,max=200"`
	CurrentCycleUsed *float64 `json:"current_cycle_used" validate:"required,gte=0,lte=70"`
}

type TripResponse struct {
	ID               string    `json:"id"`
	CurrentLocation  string    `json:"current_location"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	CurrentCycleUsed float64   `json:"current_cycle_used"`
	CreatedAt        time.Time `json:"created_at"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
