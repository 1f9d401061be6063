package cache

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
)

// GeocodeCache is a SQL-backed cache mapping addresses to coordinates.
// Address keys are expected to be normalized by the caller.
type GeocodeCache struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewGeocodeCache(conn *sql.DB, dialect db.Dialect) *GeocodeCache {
	return &GeocodeCache{DB: conn, Dialect: dialect}
}

// Fetch cached coordinates for the given addresses.
func (s *GeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	seen := map[string]struct{}{}
	args := make([]any, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}

		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		args = append(args, a)
	}

	if len(args) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := db.Rebind(s.Dialect, fmt.Sprintf(`
	SELECT address, lon, lat
	FROM geocode_cache
	WHERE address IN (%s);
	`, db.Placeholders(len(args))))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Coordinates, len(args))
	for rows.Next() {
		var addr string
		var lon, lat float64
		if err := rows.Scan(&addr, &lon, &lat); err != nil {
			return nil, fmt.Errorf("get geocode cache: scan rows: %w", err)
		}
		out[addr] = domain.Coordinates{Lon: lon, Lat: lat}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get geocode cache: row iteration: %w", err)
	}

	return out, nil
}

// Store address -> coordinate mappings in the cache.
func (s *GeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, db.Rebind(s.Dialect, `
	INSERT INTO geocode_cache (address, lon, lat)
	VALUES (?, ?, ?)
	ON CONFLICT (address) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`))
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}

		if _, err := stmt.ExecContext(ctx, addr, c.Lon, c.Lat); err != nil {
			return fmt.Errorf("insert geocode cache address=%q: %w", addr, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}

	return nil
}
