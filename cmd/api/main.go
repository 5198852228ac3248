package main

import (
	"log"

	"trip-planner/internal/bootstrap"
	"trip-planner/internal/shared/config"
	"trip-planner/internal/shared/server"
	"trip-planner/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":    addr,
		"env":     cfg.Env,
		"version": app.Config.AppVersion,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
