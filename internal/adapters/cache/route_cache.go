package cache

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
)

// RouteCache is a SQL-backed cache of directions keyed by the leg's
// origin and destination coordinates.
type RouteCache struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewRouteCache(conn *sql.DB, dialect db.Dialect) *RouteCache {
	return &RouteCache{DB: conn, Dialect: dialect}
}

// Stored form of domain.Directions. Geometry keeps the [lon, lat] order of
// the provider.
type storedDirections struct {
	Features []storedFeature `json:"features"`
}

type storedFeature struct {
	DistanceMeters  *float64    `json:"distance_meters,omitempty"`
	DurationSeconds *float64    `json:"duration_seconds,omitempty"`
	Geometry        [][]float64 `json:"geometry"`
}

func encodeDirections(d *domain.Directions) ([]byte, error) {
	s := storedDirections{Features: make([]storedFeature, 0, len(d.Features))}
	for _, f := range d.Features {
		sf := storedFeature{Geometry: make([][]float64, 0, len(f.Geometry))}
		if f.Summary != nil {
			dist, dur := f.Summary.DistanceMeters, f.Summary.DurationSeconds
			sf.DistanceMeters, sf.DurationSeconds = &dist, &dur
		}
		for _, c := range f.Geometry {
			sf.Geometry = append(sf.Geometry, c.CoordsToList())
		}
		s.Features = append(s.Features, sf)
	}
	return json.Marshal(s)
}

func decodeDirections(b []byte) (*domain.Directions, error) {
	var s storedDirections
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	d := &domain.Directions{Features: make([]domain.DirectionsFeature, 0, len(s.Features))}
	for _, sf := range s.Features {
		f := domain.DirectionsFeature{Geometry: make([]domain.Coordinates, 0, len(sf.Geometry))}
		if sf.DistanceMeters != nil && sf.DurationSeconds != nil {
			f.Summary = &domain.RouteSummary{
				DistanceMeters:  *sf.DistanceMeters,
				DurationSeconds: *sf.DurationSeconds,
			}
		}
		for _, pair := range sf.Geometry {
			c, err := domain.CoordinatesFromList(pair)
			if err != nil {
				return nil, err
			}
			f.Geometry = append(f.Geometry, c)
		}
		d.Features = append(d.Features, f)
	}
	return d, nil
}

// Get returns the cached directions for one leg and whether they were found.
func (s *RouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ *domain.Directions, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	q := db.Rebind(s.Dialect, `
	SELECT directions
	FROM route_cache
	WHERE origin = ? AND destination = ?;
	`)

	var raw string
	err = s.DB.QueryRowContext(ctx, q, origin.Key(), destination.Key()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	d, err := decodeDirections([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: decode %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	return d, true, nil
}

// Put stores directions for one leg, replacing any previous entry.
func (s *RouteCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinates,
	directions *domain.Directions,
) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if directions == nil {
		return errors.New("insert route cache: directions must not be nil")
	}

	raw, err := encodeDirections(directions)
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	q := db.Rebind(s.Dialect, `
	INSERT INTO route_cache (origin, destination, directions)
	VALUES (?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE
	SET directions = EXCLUDED.directions;
	`)
	if _, err := s.DB.ExecContext(ctx, q, origin.Key(), destination.Key(), string(raw)); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	return nil
}
