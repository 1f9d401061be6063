package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the driver's submission: where the truck is, where it loads,
// where it unloads, and how many cycle hours are already used.
// A Trip is immutable once submitted.
type Trip struct {
	CurrentLocation  string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed float64
}

// Locations returns the three trip locations in travel order.
func (t Trip) Locations() [3]string {
	return [3]string{t.CurrentLocation, t.PickupLocation, t.DropoffLocation}
}

// TripRecord is a Trip accepted by the trip store.
type TripRecord struct {
	ID        uuid.UUID
	Trip      Trip
	CreatedAt time.Time
}
