package main

import (
	"context"
	"eld-trip-planner/internal/adapters/repositories"
	"eld-trip-planner/internal/config"
	"eld-trip-planner/internal/platform/db"
	"flag"
	"log"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := flag.String("driver", config.Get("DB_DRIVER", "sqlite"), "database driver: sqlite or postgres")
	seedPath := flag.String("seed", config.Get("SEED_PATH", ""), "JSON file of trips to create")
	list := flag.Bool("list", false, "print the most recent trips after seeding")
	flag.Parse()

	dialect, err := db.ParseDialect(*driver)
	if err != nil {
		log.Fatal(err)
	}

	dsn := config.Get("DB_PATH", "data/app.db")
	if dialect == db.Postgres {
		dsn = config.Get("DATABASE_URL", "")
		if strings.TrimSpace(dsn) == "" {
			log.Fatal("DATABASE_URL is required")
		}
	}

	conn, err := db.OpenDialect(dialect, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	repo := repositories.NewTripRepository(conn, dialect)

	if *seedPath != "" {
		log.Println("Seeding database...")
		recs, err := repositories.SeedTripsFromJSON(ctx, repo, *seedPath)
		if err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Printf("Seeding complete. trips=%d", len(recs))
	}

	if *list {
		trips, err := repo.ListTrips(ctx, 20)
		if err != nil {
			log.Fatalf("list trips failed: %v", err)
		}
		for _, t := range trips {
			log.Printf("trip_id=%s current=%q pickup=%q dropoff=%q cycle_used=%.1f created_at=%s",
				t.ID, t.Trip.CurrentLocation, t.Trip.PickupLocation, t.Trip.DropoffLocation,
				t.Trip.CurrentCycleUsed, t.CreatedAt.Format(time.RFC3339))
		}
	}
}
