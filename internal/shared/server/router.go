package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/shared/config"
	"trip-planner/internal/shared/metrics"
	"trip-planner/internal/shared/server/middleware"
	"trip-planner/internal/shared/server/respond"
	"trip-planner/internal/shared/telemetry"
)

const (
	rateLimitGroupPlanning = "PLANNING"
	rateLimitGroupDefault  = "DEFAULT"
)

// RouteRegistrar is implemented by handlers mounted under /api.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries what NewRouter needs to mount routes.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	// Pages mounts non-API routes such as the landing page.
	Pages func(r *gin.Engine) error
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateLimitGroupDefault,
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupPlanning: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)

	version := deps.Config.AppVersion
	if version == "" {
		version = config.DefaultAppVersion
	}
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true, "version": version})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	if deps.Pages != nil {
		if err := deps.Pages(r); err != nil {
			telemetry.Error("router.pages_failed", map[string]any{"error": err.Error()})
		}
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.FullPath(), "/api/") {
		return rateLimitGroupPlanning
	}
	return rateLimitGroupDefault
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
