package services

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultLegPacing is the delay between consecutive route leg requests.
const DefaultLegPacing = time.Second

// GeocodeError means the trip could not be created or located. Nothing
// about the trip is retained for display.
type GeocodeError struct {
	Err error
}

func (e *GeocodeError) Error() string { return "process trip data: " + e.Err.Error() }
func (e *GeocodeError) Unwrap() error { return e.Err }

// RouteError means a route leg could not be fetched. It is reported in the
// plan and does not fail the request.
type RouteError struct {
	Leg string
	Err error
}

func (e *RouteError) Error() string { return fmt.Sprintf("route %s: %v", e.Leg, e.Err) }
func (e *RouteError) Unwrap() error { return e.Err }

// Markers are the geocoded trip locations.
type Markers struct {
	Current domain.Coordinates
	Pickup  domain.Coordinates
	Dropoff domain.Coordinates
}

// RouteLeg is one routed segment of the trip, ready for a map.
type RouteLeg struct {
	Name         string
	Label        string
	Color        string
	Route        domain.Route
	DrivingHours float64
	Miles        float64
	FuelStops    []domain.FuelStop
}

// TripPlan is everything derived for a trip in one planning pass.
type TripPlan struct {
	Trip         domain.TripRecord
	Markers      Markers
	Legs         []RouteLeg
	DrivingHours float64
	RouteMiles   float64
	RouteError   string
	Log          domain.LogSheet
}

// FuelStops lists the stops of all legs in travel order.
func (p *TripPlan) FuelStops() []domain.FuelStop {
	var out []domain.FuelStop
	for _, leg := range p.Legs {
		out = append(out, leg.FuelStops...)
	}
	return out
}

type legSpec struct {
	name, label, color string
	from, to           domain.Coordinates
}

// Planner turns a submitted trip into routes and a generated log.
type Planner struct {
	Trips     ports.TripRepository
	Geocoder  ports.Geocoder
	Routing   ports.RoutingProvider
	Logs      ports.LogStore
	LegPacing time.Duration
	Now       func() time.Time

	inflight singleflight.Group
}

func NewPlanner(
	trips ports.TripRepository,
	geocoder ports.Geocoder,
	routing ports.RoutingProvider,
	logs ports.LogStore,
	legPacing time.Duration,
) *Planner {
	return &Planner{
		Trips:     trips,
		Geocoder:  geocoder,
		Routing:   routing,
		Logs:      logs,
		LegPacing: legPacing,
		Now:       time.Now,
	}
}

func (p *Planner) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// PlanTrip creates the trip and plans it.
func (p *Planner) PlanTrip(ctx context.Context, trip domain.Trip) (plan *TripPlan, err error) {
	defer obs.Time(ctx, "plan_trip")(&err)

	rec, err := p.Trips.CreateTrip(ctx, trip)
	if err != nil {
		obs.PlansTotal.WithLabelValues("geocode_error").Inc()
		return nil, &GeocodeError{Err: fmt.Errorf("create trip: %w", err)}
	}

	return p.plan(ctx, rec)
}

// Replan plans a stored trip again, replacing its generated log.
func (p *Planner) Replan(ctx context.Context, tripID uuid.UUID) (plan *TripPlan, err error) {
	defer obs.Time(ctx, "replan_trip")(&err)

	rec, err := p.Trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("replan: %w", err)
	}

	return p.plan(ctx, rec)
}

func (p *Planner) plan(ctx context.Context, rec *domain.TripRecord) (*TripPlan, error) {
	markers, err := p.geocodeAll(ctx, rec.Trip)
	if err != nil {
		obs.PlansTotal.WithLabelValues("geocode_error").Inc()
		return nil, &GeocodeError{Err: err}
	}

	plan := &TripPlan{Trip: *rec, Markers: markers}

	legs, routeErr := p.fetchLegs(ctx, rec.ID, markers)

	// Results for a request that has gone away are discarded.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan trip %s: %w", rec.ID, err)
	}

	if routeErr != nil {
		log.Printf("trip_id=%s route_error=%q", rec.ID, routeErr)
		obs.PlansTotal.WithLabelValues("route_error").Inc()

		plan.RouteError = routeErr.Error()
		l, err := p.keepOrCreateLog(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("plan trip %s: %w", rec.ID, err)
		}
		plan.Log = l
		return plan, nil
	}

	plan.Legs = legs
	for _, leg := range legs {
		plan.DrivingHours += leg.DrivingHours
		plan.RouteMiles += leg.Miles
	}
	plan.DrivingHours = roundTo(plan.DrivingHours, 2)
	plan.RouteMiles = roundTo(plan.RouteMiles, 1)

	now := p.now()
	hours := plan.DrivingHours
	syn := SynthesizeLog(rec.Trip, &hours, DayStartHour(now))
	plan.Log = NewGeneratedLog(rec.ID, rec.Trip, syn, plan.RouteMiles, now)

	if err := p.Logs.Put(ctx, plan.Log); err != nil {
		return nil, fmt.Errorf("plan trip %s: store log: %w", rec.ID, err)
	}

	obs.PlansTotal.WithLabelValues("ok").Inc()
	return plan, nil
}

// geocodeAll resolves the three trip locations concurrently. Any single
// failure fails the batch.
func (p *Planner) geocodeAll(ctx context.Context, trip domain.Trip) (Markers, error) {
	var coords [3]domain.Coordinates

	g, gctx := errgroup.WithContext(ctx)
	for i, address := range trip.Locations() {
		g.Go(func() error {
			c, err := p.Geocoder.Geocode(gctx, address)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", address, err)
			}
			coords[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Markers{}, err
	}

	return Markers{Current: coords[0], Pickup: coords[1], Dropoff: coords[2]}, nil
}

// fetchLegs routes current->pickup then pickup->dropoff. Concurrent calls
// for the same trip share one outstanding fetch.
func (p *Planner) fetchLegs(ctx context.Context, tripID uuid.UUID, m Markers) ([]RouteLeg, error) {
	v, err, shared := p.inflight.Do(tripID.String(), func() (any, error) {
		return p.fetchLegsOnce(ctx, m)
	})
	if shared {
		log.Printf("trip_id=%s route fetch shared with an in-flight request", tripID)
	}
	if err != nil {
		return nil, err
	}
	return v.([]RouteLeg), nil
}

func (p *Planner) fetchLegsOnce(ctx context.Context, m Markers) ([]RouteLeg, error) {
	specs := []legSpec{
		{"current_to_pickup", "Current to Pickup", "blue", m.Current, m.Pickup},
		{"pickup_to_dropoff", "Pickup to Dropoff", "green", m.Pickup, m.Dropoff},
	}

	legs := make([]RouteLeg, 0, len(specs))
	for i, s := range specs {
		if i > 0 && p.LegPacing > 0 {
			if err := pause(ctx, p.LegPacing); err != nil {
				return nil, &RouteError{Leg: s.name, Err: err}
			}
		}

		dirs, err := p.Routing.GetRoute(ctx, s.from, s.to)
		if err != nil {
			return nil, &RouteError{Leg: s.name, Err: err}
		}

		route, ok := PrimaryRoute(dirs)
		if !ok {
			log.Printf("leg=%s route has no features; using zero distance and duration", s.name)
		}

		legs = append(legs, RouteLeg{
			Name:         s.name,
			Label:        s.label,
			Color:        s.color,
			Route:        route,
			DrivingHours: ExtractDrivingHours(dirs),
			Miles:        ExtractRouteMiles(dirs),
			FuelStops:    FuelStops(route.Polyline, DefaultFuelIntervalMiles),
		})
	}

	return legs, nil
}

// keepOrCreateLog returns the trip's current log, storing an empty
// interactive one when none exists yet.
func (p *Planner) keepOrCreateLog(ctx context.Context, tripID uuid.UUID) (domain.LogSheet, error) {
	l, err := p.Logs.Get(ctx, tripID)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return domain.LogSheet{}, err
	}

	l = NewInteractiveLog(tripID, p.now())
	if err := p.Logs.Put(ctx, l); err != nil {
		return domain.LogSheet{}, err
	}
	return l, nil
}

func pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
