package handlers

import (
	"bytes"
	"eld-trip-planner/internal/adapters/render"
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/services"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// LogHandler serves a trip's log sheet and records driver edits.
type LogHandler struct {
	Logs      *services.LogService
	GridWidth int
}

func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	l, err := h.Logs.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get log", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func (h *LogHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := domain.ParseDutyType(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.Logs.SetStatus(r.Context(), id, status)
	if err != nil {
		writeServiceError(w, r, "set status", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func (h *LogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	l, err := h.Logs.Reset(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "reset log", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func (h *LogHandler) AddRemark(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req dto.RemarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	at, err := domain.ParseClock(req.Time)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "time must be HH:MM")
		return
	}

	l, err := h.Logs.AddRemark(r.Context(), id, domain.Remark{
		Time:        at,
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		writeServiceError(w, r, "add remark", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toLogResponse(l))
}

func (h *LogHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req dto.HeaderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.Logs.UpdateHeader(r.Context(), id, domain.LogHeader{
		DriverName:       strings.TrimSpace(req.DriverName),
		Date:             strings.TrimSpace(req.Date),
		Company:          strings.TrimSpace(req.Company),
		MainOffice:       strings.TrimSpace(req.MainOffice),
		VehicleNumbers:   strings.TrimSpace(req.VehicleNumbers),
		ShippingDocument: strings.TrimSpace(req.ShippingDocument),
	})
	if err != nil {
		writeServiceError(w, r, "update header", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func (h *LogHandler) Scene(w http.ResponseWriter, r *http.Request) {
	s, ok := h.scene(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, toSceneResponse(s))
}

func (h *LogHandler) SVG(w http.ResponseWriter, r *http.Request) {
	s, ok := h.scene(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, s); err != nil {
		log.Printf("render svg failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// scene builds the grid for the {tripID} log at the requested ?width=.
func (h *LogHandler) scene(w http.ResponseWriter, r *http.Request) (services.Scene, bool) {
	id, ok := tripID(w, r)
	if !ok {
		return services.Scene{}, false
	}

	width := h.GridWidth
	if raw := r.URL.Query().Get("width"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < services.MinGridWidth || v > 4000 {
			writeError(w, r, http.StatusBadRequest, "width must be between 240 and 4000")
			return services.Scene{}, false
		}
		width = v
	}

	s, err := h.Logs.Scene(r.Context(), id, width)
	if err != nil {
		writeServiceError(w, r, "build scene", err)
		return services.Scene{}, false
	}
	return s, true
}
