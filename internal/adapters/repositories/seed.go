package repositories

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

type TripSeed struct {
	CurrentLocation  string  `json:"current_location" validate:"required"`
	PickupLocation   string  `json:"pickup_location" validate:"required"`
	DropoffLocation  string  `json:"dropoff_location" validate:"required"`
	CurrentCycleUsed float64 `json:"current_cycle_used" validate:"gte=0,lte=70"`
}

// SeedTripsFromJSON creates one trip per entry of a JSON array file.
// Every entry is validated before any trip is stored.
func SeedTripsFromJSON(
	ctx context.Context,
	repo ports.TripRepository,
	jsonPath string,
) ([]*domain.TripRecord, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed trips: read %q: %w", jsonPath, err)
	}

	var data []TripSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed trips: parse json: %w", err)
	}

	validate := validator.New()
	trips := make([]domain.Trip, 0, len(data))
	for i, item := range data {
		item.CurrentLocation = strings.TrimSpace(item.CurrentLocation)
		item.PickupLocation = strings.TrimSpace(item.PickupLocation)
		item.DropoffLocation = strings.TrimSpace(item.DropoffLocation)

		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("seed trips: item at index %d: %w", i+1, err)
		}
		trips = append(trips, domain.Trip{
			CurrentLocation:  item.CurrentLocation,
			PickupLocation:   item.PickupLocation,
			DropoffLocation:  item.DropoffLocation,
			CurrentCycleUsed: item.CurrentCycleUsed,
		})
	}

	out := make([]*domain.TripRecord, 0, len(trips))
	for i, t := range trips {
		rec, err := repo.CreateTrip(ctx, t)
		if err != nil {
			return out, fmt.Errorf("seed trips: create trip at index %d: %w", i+1, err)
		}
		out = append(out, rec)
	}

	return out, nil
}
