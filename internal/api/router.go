package api

import (
	"eld-trip-planner/internal/api/handlers"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"eld-trip-planner/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Trips          ports.TripRepository
	Geocoder       ports.Geocoder
	Planner        *services.Planner
	Logs           *services.LogService
	DB             handlers.Pinger
	AllowedOrigins []string
	GridWidth      int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	health := &handlers.HealthHandler{DB: d.DB}
	trips := &handlers.TripHandler{Trips: d.Trips, Geocoder: d.Geocoder}
	plans := &handlers.PlanHandler{Planner: d.Planner}
	logs := &handlers.LogHandler{Logs: d.Logs, GridWidth: d.GridWidth}

	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	r.Get("/geocode", trips.Geocode)
	r.Post("/plans", plans.Plan)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", trips.Create)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", trips.Get)
			r.Post("/plan", plans.Replan)

			r.Get("/log", logs.Get)
			r.Get("/log.svg", logs.SVG)
			r.Post("/log/status", logs.SetStatus)
			r.Post("/log/reset", logs.Reset)
			r.Post("/log/remarks", logs.AddRemark)
			r.Put("/log/header", logs.UpdateHeader)
			r.Get("/log/scene", logs.Scene)
		})
	})

	return r
}
