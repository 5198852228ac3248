package main

// Run database migrations:
//   go run ./cmd/migrate            # up
//   go run ./cmd/migrate -command status

import (
	"context"
	"flag"
	"log"
	"os"

	"trip-planner/internal/shared/config"
	"trip-planner/internal/shared/storage/db"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, version")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.Migrate(ctx, sqlDB, *command); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
