package main

// Load listings into the Postgres catalog:
//   go run ./cmd/import-listings -file listings.csv -destination "Ifrane, Morocco"
//   go run ./cmd/import-listings -mock

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"trip-planner/internal/listings"
	"trip-planner/internal/shared/config"
	"trip-planner/internal/shared/storage/db"
	"trip-planner/internal/shared/telemetry"
	"trip-planner/internal/trips"
)

func main() {
	file := flag.String("file", "", "CSV file with listings")
	destination := flag.String("destination", trips.DefaultDestination, "destination the listings belong to")
	mock := flag.Bool("mock", false, "seed the built-in catalog instead of reading a file")
	flag.Parse()

	if !*mock && strings.TrimSpace(*file) == "" {
		log.Printf("either -file or -mock is required")
		flag.Usage()
		os.Exit(2)
	}

	items, err := loadItems(*file, *mock)
	if err != nil {
		log.Printf("failed to load listings: %v", err)
		os.Exit(1)
	}

	cfg := config.Load()
	ctx := context.Background()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	batchID := uuid.NewString()
	repo := &listings.PGRepo{DB: sqlDB}
	n, err := repo.Upsert(ctx, *destination, batchID, items)
	if err != nil {
		log.Printf("failed to import listings: %v", err)
		os.Exit(1)
	}
	telemetry.Info("import.complete", map[string]any{
		"batch_id":    batchID,
		"destination": *destination,
		"imported":    n,
	})
}

func loadItems(path string, mock bool) ([]listings.Listing, error) {
	if mock {
		return listings.MockListings(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, rowErrs, err := listings.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	for _, re := range rowErrs {
		telemetry.Warn("import.row_skipped", map[string]any{"line": re.Line, "error": re.Err.Error()})
	}
	return items, nil
}
