package routing

import (
	"context"
	"eld-trip-planner/internal/domain"
	"fmt"
	"sync"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   float64
	Seconds  float64
	Polyline []domain.Coordinates
}

// MockRoutingProvider serves fixed legs and counts calls.
type MockRoutingProvider struct {
	m map[string]*domain.Directions

	mu    sync.Mutex
	calls int
}

func NewMockRoutingProvider(legs []MockLeg) *MockRoutingProvider {
	m := make(map[string]*domain.Directions, len(legs))
	for _, l := range legs {
		poly := l.Polyline
		if poly == nil {
			poly = []domain.Coordinates{l.From, l.To}
		}
		m[l.From.Key()+"|"+l.To.Key()] = &domain.Directions{
			Features: []domain.DirectionsFeature{{
				Summary:  &domain.RouteSummary{DistanceMeters: l.Meters, DurationSeconds: l.Seconds},
				Geometry: poly,
			}},
		}
	}
	return &MockRoutingProvider{m: m}
}

func (p *MockRoutingProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (*domain.Directions, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, ok := p.m[origin.Key()+"|"+destination.Key()]
	if !ok {
		return nil, fmt.Errorf("missing leg %s -> %s", origin.Key(), destination.Key())
	}
	return d, nil
}

func (p *MockRoutingProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// MockGeocoder resolves addresses from a fixed table.
type MockGeocoder map[string]domain.Coordinates

func (g MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := g[normalize(address)]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", address)
	}
	return c, nil
}
