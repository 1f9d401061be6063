package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the service configuration read from the environment.
type Config struct {
	Port           string
	DBDriver       string
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	ORSAPIKey      string
	ORSBaseURL     string
	ORSProfile     string
	TripBackendURL string
	LegPacing      time.Duration
	AllowedOrigins []string
	GridWidth      int
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           Get("PORT", "8080"),
		DBDriver:       strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SeedPath:       os.Getenv("SEED_PATH"),
		ORSAPIKey:      strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:     Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSProfile:     Get("ORS_PROFILE", "driving-hgv"),
		TripBackendURL: strings.TrimRight(os.Getenv("TRIP_BACKEND_URL"), "/"),
	}

	pacing, err := time.ParseDuration(Get("LEG_PACING", "1s"))
	if err != nil {
		return nil, fmt.Errorf("load config: LEG_PACING: %w", err)
	}
	if pacing < 0 {
		return nil, errors.New("load config: LEG_PACING must not be negative")
	}
	cfg.LegPacing = pacing

	width, err := strconv.Atoi(Get("GRID_WIDTH", "800"))
	if err != nil {
		return nil, fmt.Errorf("load config: GRID_WIDTH: %w", err)
	}
	if width < 240 {
		return nil, fmt.Errorf("load config: GRID_WIDTH must be at least 240, got %d", width)
	}
	cfg.GridWidth = width

	for _, o := range strings.Split(Get("ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, errors.New("load config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("load config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// Routing always goes to ORS; geocoding may be delegated to the trip backend.
	if cfg.ORSAPIKey == "" {
		return nil, errors.New("load config: ORS_API_KEY is required")
	}

	return cfg, nil
}
