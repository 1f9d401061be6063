package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ExternalCallDuration records latency of OpenRouteService and trip
	// backend calls, labelled by operation and outcome (ok/error).
	ExternalCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eld_external_call_duration_seconds",
			Help:    "Latency of calls to routing, geocoding and trip backends.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "outcome"},
	)

	// PlansTotal counts trip plans by outcome: ok, route_error, geocode_error.
	PlansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eld_plans_total",
			Help: "Total number of trip plans computed.",
		},
		[]string{"outcome"},
	)

	// StatusTransitionsTotal counts interactive duty status changes.
	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eld_status_transitions_total",
			Help: "Total number of interactive duty status changes.",
		},
		[]string{"status"},
	)

	Registry = prometheus.NewRegistry()
)

func init() {
	Registry.MustRegister(ExternalCallDuration)
	Registry.MustRegister(PlansTotal)
	Registry.MustRegister(StatusTransitionsTotal)
}

// ObserveCall records one external call started at start.
func ObserveCall(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ExternalCallDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
}
