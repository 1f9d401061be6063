package main

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/adapters/backend"
	"eld-trip-planner/internal/adapters/cache"
	"eld-trip-planner/internal/adapters/logstore"
	"eld-trip-planner/internal/adapters/repositories"
	"eld-trip-planner/internal/adapters/routing"
	"eld-trip-planner/internal/api"
	"eld-trip-planner/internal/config"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/ports"
	"eld-trip-planner/internal/services"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQL storage, ORS, trip backend) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := openDB(dialect, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo trips on startup for local runs.
	if err := initAndSeed(conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	// ORS client uses persistent caches to avoid repeated geocode/directions calls.
	ors, err := routing.NewORSClient(cfg.ORSAPIKey,
		routing.WithBaseURL(cfg.ORSBaseURL),
		routing.WithProfile(cfg.ORSProfile),
		routing.WithGeocodeCache(cache.NewGeocodeCache(conn, dialect)),
		routing.WithRouteCache(cache.NewRouteCache(conn, dialect)),
	)
	if err != nil {
		log.Fatal(err)
	}

	var trips ports.TripRepository = repositories.NewTripRepository(conn, dialect)
	var geocoder ports.Geocoder = ors
	if cfg.TripBackendURL != "" {
		// The remote backend owns trip records and geocoding; routing stays on ORS.
		client, err := backend.NewClient(cfg.TripBackendURL, nil)
		if err != nil {
			log.Fatal(err)
		}
		trips, geocoder = client, client
		log.Printf("Using trip backend url=%s", cfg.TripBackendURL)
	}

	logs := logstore.NewMemoryLogStore()
	planner := services.NewPlanner(trips, geocoder, ors, logs, cfg.LegPacing)
	logService := services.NewLogService(logs, trips)

	router := api.NewRouter(api.Deps{
		Trips:          trips,
		Geocoder:       geocoder,
		Planner:        planner,
		Logs:           logService,
		DB:             conn,
		AllowedOrigins: cfg.AllowedOrigins,
		GridWidth:      cfg.GridWidth,
	})

	// Timeouts are tuned for cold-cache planning: two paced directions calls plus geocoding.
	log.Printf("Server listening addr=:%s db=%s", cfg.Port, dialect)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dialect db.Dialect, cfg *config.Config) (*sql.DB, error) {
	if dialect == db.Postgres {
		return db.OpenDialect(dialect, cfg.DatabaseURL)
	}
	return db.OpenDialect(dialect, cfg.DBPath)
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		return nil
	}

	recs, err := repositories.SeedTripsFromJSON(ctx, repositories.NewTripRepository(conn, dialect), seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Printf("Seeded trips count=%d", len(recs))

	return nil
}
