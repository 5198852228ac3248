package stays

import (
	"context"
	"errors"
	"math"
	"time"

	"trip-planner/internal/listings"
	"trip-planner/internal/shared/metrics"
	"trip-planner/internal/shared/telemetry"
	"trip-planner/internal/stays/scoring"
	"trip-planner/internal/trips"
)

// CurrencyNote tells callers where the listings came from.
const CurrencyNote = "Set keys in .env to use Booking Demand API / Airbnb partner stub; otherwise mock data."

// Recommendation is one ranked stay.
type Recommendation struct {
	Listing       listings.Listing `json:"listing"`
	MatchScore    float64          `json:"match_score"`
	Why           []string         `json:"why"`
	EstTotalPrice float64          `json:"est_total_price"`
}

// Response is the ranked stay search result.
type Response struct {
	Destination     string           `json:"destination"`
	Nights          int              `json:"nights"`
	CurrencyNote    string           `json:"currency_note"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Service ranks listings from the catalog for a trip.
type Service struct {
	Catalog *listings.Catalog
}

// Recommend fetches candidates, scores them and returns at most scoring.MaxResults.
func (s *Service) Recommend(ctx context.Context, trip trips.Request) (Response, error) {
	if s.Catalog == nil {
		return Response{}, errors.New("stays: catalog is not configured")
	}
	metrics.IncStaySearch()

	items, fallback := s.Catalog.Fetch(ctx, trip)

	start := time.Now()
	ranked := scoring.Rank(items, trip)
	metrics.ObserveScoringDurationMs(float64(time.Since(start).Microseconds()) / 1000)

	nights := trip.Nights()
	recs := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, Recommendation{
			Listing:       r.Listing,
			MatchScore:    round(r.Breakdown.Composite, 1),
			Why:           scoring.Explain(r.Listing, trip, r.Breakdown),
			EstTotalPrice: round(r.Listing.NightlyPrice*float64(nights), 2),
		})
	}

	telemetry.Info("stays.recommended", map[string]any{
		"destination": trip.Destination,
		"candidates":  len(items),
		"returned":    len(recs),
		"fallback":    fallback,
		"nights":      nights,
	})

	return Response{
		Destination:     trip.Destination,
		Nights:          nights,
		CurrencyNote:    CurrencyNote,
		Recommendations: recs,
	}, nil
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
