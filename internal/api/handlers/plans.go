package handlers

import (
	"eld-trip-planner/internal/services"
	"net/http"
)

type PlanHandler struct {
	Planner *services.Planner
}

// Plan creates a trip, geocodes and routes it, and generates its log.
// A routing failure is reported in route_error with a 200 response.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	trip, ok := tripFromRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.Planner.PlanTrip(r.Context(), trip)
	if err != nil {
		writeServiceError(w, r, "plan trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Replan routes a stored trip again and regenerates its log.
func (h *PlanHandler) Replan(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	plan, err := h.Planner.Replan(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "replan trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}
