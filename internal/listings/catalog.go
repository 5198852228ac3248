package listings

import (
	"context"
	"fmt"
	"time"

	"trip-planner/internal/shared/metrics"
	"trip-planner/internal/shared/telemetry"
	"trip-planner/internal/trips"
)

// DefaultProviderTimeout bounds a single provider search.
const DefaultProviderTimeout = 30 * time.Second

// Source fetches listings for a trip. An empty result is a normal outcome.
type Source interface {
	Name() string
	Search(ctx context.Context, trip trips.Request) ([]Listing, error)
}

// Catalog combines the configured sources and falls back to the built-in catalog
// when they produce nothing.
type Catalog struct {
	Sources []Source
	Timeout time.Duration
}

// NewCatalog constructs a Catalog. Nil sources are skipped.
func NewCatalog(timeout time.Duration, sources ...Source) *Catalog {
	c := &Catalog{Timeout: timeout}
	for _, s := range sources {
		if s != nil {
			c.Sources = append(c.Sources, s)
		}
	}
	return c
}

// Fetch queries every source in order and concatenates their results. Source errors
// are logged and treated as empty. The second return value reports whether the
// built-in catalog was used.
func (c *Catalog) Fetch(ctx context.Context, trip trips.Request) ([]Listing, bool) {
	var combined []Listing
	if c != nil {
		for _, src := range c.Sources {
			combined = append(combined, c.search(ctx, src, trip)...)
		}
	}
	if len(combined) == 0 {
		metrics.IncCatalogFallback()
		return MockListings(), true
	}
	return combined, false
}

func (c *Catalog) search(ctx context.Context, src Source, trip trips.Request) (found []Listing) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	searchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.ObserveProviderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
		if rec := recover(); rec != nil {
			metrics.IncProviderError()
			telemetry.Error("listings.source_panic", map[string]any{
				"source": src.Name(),
				"error":  fmt.Sprint(rec),
			})
			found = nil
		}
	}()

	results, err := src.Search(searchCtx, trip)
	if err != nil {
		metrics.IncProviderError()
		telemetry.Warn("listings.source_failed", map[string]any{
			"source":      src.Name(),
			"destination": trip.Destination,
			"error":       err.Error(),
		})
		return nil
	}
	kept := results[:0:0]
	for _, l := range results {
		if l.Finite() {
			kept = append(kept, l)
		}
	}
	telemetry.Info("listings.source_complete", map[string]any{
		"source":      src.Name(),
		"destination": trip.Destination,
		"count":       len(kept),
		"dropped":     len(results) - len(kept),
	})
	return kept
}
