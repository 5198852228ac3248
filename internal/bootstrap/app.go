package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/listings"
	"trip-planner/internal/shared/config"
	"trip-planner/internal/shared/server"
	"trip-planner/internal/shared/storage/db"
	"trip-planner/internal/shared/telemetry"
	"trip-planner/internal/stays"
	"trip-planner/internal/web"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Catalog          *listings.Catalog
	StaysService     *stays.Service
	StaysHandler     *stays.Handler
	ItineraryHandler *itinerary.Handler
}

// Build prepares dependencies and wires routes. Missing or unreachable optional
// backends (partner APIs, Postgres) are skipped so the built-in catalog still serves.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.AppVersion) == "" {
		cfg.AppVersion = config.DefaultAppVersion
	}
	ctx := context.Background()

	app := &App{
		Config: cfg,
		DB:     buildDB(ctx, cfg),
	}
	app.Catalog = buildCatalog(cfg, app.DB)
	app.StaysService = &stays.Service{Catalog: app.Catalog}
	app.StaysHandler = stays.NewHandler(app.StaysService)
	app.ItineraryHandler = itinerary.NewHandler()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Handlers: []server.RouteRegistrar{app.ItineraryHandler, app.StaysHandler},
		Pages: func(r *gin.Engine) error {
			return web.Register(r, cfg.AppVersion)
		},
	})

	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.db_skipped", map[string]any{"reason": "DATABASE_URL empty"})
		return nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("bootstrap.db_unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Warn("bootstrap.migrations_failed", map[string]any{"error": err.Error()})
		_ = sqlDB.Close()
		return nil
	}
	return sqlDB
}

func buildCatalog(cfg config.Config, sqlDB *sql.DB) *listings.Catalog {
	var sources []listings.Source

	if cfg.BookingEnabled() {
		client, err := listings.NewBookingDemandClient(cfg.BookingDemandToken, cfg.BookingAffiliateID, cfg.BookingSearchURL, cfg.ProviderTimeout)
		if err != nil {
			telemetry.Warn("bootstrap.provider_skipped", map[string]any{"source": "booking_demand", "error": err.Error()})
		} else {
			sources = append(sources, client)
		}
	}
	if cfg.AirbnbEnabled() {
		client, err := listings.NewAirbnbPartnerClient(cfg.AirbnbPartnerToken, cfg.AirbnbSearchURL, cfg.ProviderTimeout)
		if err != nil {
			telemetry.Warn("bootstrap.provider_skipped", map[string]any{"source": "airbnb_partner", "error": err.Error()})
		} else {
			sources = append(sources, client)
		}
	}
	if sqlDB != nil {
		sources = append(sources, &listings.PGRepo{DB: sqlDB})
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	telemetry.Info("bootstrap.catalog", map[string]any{"sources": names, "timeout_s": cfg.ProviderTimeout.Seconds()})

	return listings.NewCatalog(cfg.ProviderTimeout, sources...)
}
