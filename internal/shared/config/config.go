package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAppVersion is reported by /health when APP_VERSION is unset.
const DefaultAppVersion = "0.2.0"

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	AppVersion         string
	CORSAllowOrigin    []string
	DatabaseURL        string
	BookingDemandToken string
	BookingAffiliateID string
	BookingSearchURL   string
	AirbnbPartnerToken string
	AirbnbSearchURL    string
	ProviderTimeout    time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	origins := splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"))
	if wp := strings.TrimSpace(os.Getenv("WP_ORIGIN")); wp != "" {
		origins = append(origins, wp)
	}

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		AppVersion:         getEnv("APP_VERSION", DefaultAppVersion),
		CORSAllowOrigin:    origins,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		BookingDemandToken: getEnv("BOOKING_DEMAND_TOKEN", ""),
		BookingAffiliateID: getEnv("BOOKING_AFFILIATE_ID", ""),
		BookingSearchURL:   getEnv("BOOKING_DEMAND_SEARCH_URL", ""),
		AirbnbPartnerToken: getEnv("AIRBNB_PARTNER_TOKEN", ""),
		AirbnbSearchURL:    getEnv("AIRBNB_PARTNER_SEARCH_URL", ""),
		ProviderTimeout:    time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 30)) * time.Second,
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
	}
	if cfg.ProviderTimeout <= 0 {
		log.Printf("PROVIDER_TIMEOUT_SECONDS must be positive, using 30")
		cfg.ProviderTimeout = 30 * time.Second
	}
	return cfg
}

// BookingEnabled reports whether both Booking Demand credentials are present.
func (c Config) BookingEnabled() bool {
	return c.BookingDemandToken != "" && c.BookingAffiliateID != ""
}

// AirbnbEnabled reports whether the Airbnb partner token is present.
func (c Config) AirbnbEnabled() bool {
	return c.AirbnbPartnerToken != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return f
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
