package metrics

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

var (
	registry = prometheus.NewRegistry()

	itineraryGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "itineraries_generated_total",
		Help: "Total itineraries generated",
	})
	staySearchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stay_searches_total",
		Help: "Total stay searches",
	})
	catalogFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_fallbacks_total",
		Help: "Total searches served from the built-in catalog",
	})
	providerErrorTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "provider_errors_total",
		Help: "Total failed listing source searches",
	})

	providerDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "provider_duration_ms",
		Help:    "Listing source search duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})
	scoringDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoring_duration_ms",
		Help:    "Ranking duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		itineraryGeneratedTotal,
		staySearchTotal,
		catalogFallbackTotal,
		providerErrorTotal,
		providerDuration,
		scoringDuration,
	)
}

// IncItineraryGenerated increments the itinerary counter.
func IncItineraryGenerated() {
	itineraryGeneratedTotal.Inc()
}

// IncStaySearch increments the stay search counter.
func IncStaySearch() {
	staySearchTotal.Inc()
}

// IncCatalogFallback counts searches served from the built-in catalog.
func IncCatalogFallback() {
	catalogFallbackTotal.Inc()
}

// IncProviderError counts failed listing source searches.
func IncProviderError() {
	providerErrorTotal.Inc()
}

// ObserveProviderDurationMs records a listing source search duration in milliseconds.
func ObserveProviderDurationMs(value float64) {
	providerDuration.Observe(clampNonNegative(value))
}

// ObserveScoringDurationMs records a ranking duration in milliseconds.
func ObserveScoringDurationMs(value float64) {
	scoringDuration.Observe(clampNonNegative(value))
}

func clampNonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}

// Render gathers the registry and renders it in Prometheus text format.
func Render() string {
	families, err := registry.Gather()
	var buf bytes.Buffer
	for _, mf := range families {
		if _, werr := expfmt.MetricFamilyToText(&buf, mf); werr != nil {
			break
		}
	}
	if err != nil {
		buf.WriteString("# gather error: " + err.Error() + "\n")
	}
	return buf.String()
}
