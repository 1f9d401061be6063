package handlers

import (
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"eld-trip-planner/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Shown for any trip creation or geocoding failure.
const processTripFailed = "Failed to process trip data."

var validate = validator.New()

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object into dst and validates it.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation failed: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return "Validation failed: " + strings.Join(parts, ", ")
}

// tripID parses the {tripID} path parameter, writing a 400 when malformed.
func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps a service error onto the HTTP error taxonomy.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var geoErr *services.GeocodeError

	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrGeneratedLog):
		writeError(w, r, http.StatusConflict, services.ErrGeneratedLog.Error())
	case errors.Is(err, domain.ErrInvalidClock), errors.Is(err, domain.ErrUnknownDutyType),
		errors.Is(err, services.ErrInvalidRemark):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &geoErr):
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusBadGateway, processTripFailed)
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
