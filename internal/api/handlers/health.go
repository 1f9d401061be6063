package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness and storage connectivity.
type HealthHandler struct {
	DB Pinger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]any{"status": "ok", "timestamp": time.Now().UTC()}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.DB.PingContext(ctx); err != nil {
			res["status"] = "error"
			res["database"] = "disconnected"
			res["error"] = err.Error()
			writeJSON(w, r, http.StatusServiceUnavailable, res)
			return
		}
		res["database"] = "connected"
	}

	writeJSON(w, r, http.StatusOK, res)
}
