package handlers

import (
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"log"
	"net/http"
	"strings"
)

// TripHandler exposes trip creation and lookup, and address geocoding.
type TripHandler struct {
	Trips    ports.TripRepository
	Geocoder ports.Geocoder
}

// tripFromRequest decodes and validates a trip submission.
func tripFromRequest(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	var req dto.TripRequest
	if !decodeJSON(w, r, &req) {
		return domain.Trip{}, false
	}

	trip := domain.Trip{
		CurrentLocation:  strings.TrimSpace(req.CurrentLocation),
		PickupLocation:   strings.TrimSpace(req.PickupLocation),
		DropoffLocation:  strings.TrimSpace(req.DropoffLocation),
		CurrentCycleUsed: *req.CurrentCycleUsed,
	}
	for _, loc := range trip.Locations() {
		if loc == "" {
			writeError(w, r, http.StatusBadRequest, "current_location, pickup_location and dropoff_location are required")
			return domain.Trip{}, false
		}
	}
	return trip, true
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	trip, ok := tripFromRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.Trips.CreateTrip(r.Context(), trip)
	if err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusBadGateway, processTripFailed)
		return
	}

	writeJSON(w, r, http.StatusCreated, toTripResponse(*rec))
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	rec, err := h.Trips.GetTrip(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(*rec))
}

func (h *TripHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	c, err := h.Geocoder.Geocode(r.Context(), address)
	if err != nil {
		log.Printf("geocode failed: address=%q err=%v", address, err)
		writeError(w, r, http.StatusBadGateway, "Failed to geocode address.")
		return
	}

	writeJSON(w, r, http.StatusOK, toCoordinate(c))
}
