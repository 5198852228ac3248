package scoring

import (
	"math"
	"sort"
	"strings"

	"trip-planner/internal/listings"
	"trip-planner/internal/trips"
)

// MaxResults is the number of ranked listings kept.
const MaxResults = 10

const (
	weightBudget    = 0.40
	weightQuality   = 0.25
	weightLocation  = 0.20
	weightAmenities = 0.15

	preferredAreaBonus = 0.12
	neutralAmenities   = 0.7
	minBudgetDivisor   = 1e-6
)

// Breakdown holds the sub-scores in [0,1] and the composite score in [0,100].
type Breakdown struct {
	Budget    float64 `json:"budget"`
	Quality   float64 `json:"quality"`
	Location  float64 `json:"location"`
	Amenities float64 `json:"amenities"`
	Composite float64 `json:"composite"`
}

// Scored pairs a listing with its breakdown.
type Scored struct {
	Listing   listings.Listing
	Breakdown Breakdown
}

// Rank drops dealbreaking listings, scores the rest, and returns the top MaxResults
// by composite score. Equal scores keep their input order.
func Rank(items []listings.Listing, trip trips.Request) []Scored {
	scored := make([]Scored, 0, len(items))
	for _, l := range items {
		if !PassesDealbreakers(l.RoomType, trip.Dealbreakers) {
			continue
		}
		scored = append(scored, Scored{Listing: l, Breakdown: Score(l, trip)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Breakdown.Composite > scored[j].Breakdown.Composite
	})
	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}
	return scored
}

// Score computes the breakdown for one listing against a trip.
func Score(l listings.Listing, trip trips.Request) Breakdown {
	b := Breakdown{
		Budget:    BudgetFit(l.NightlyPrice, trip.NightlyBudget),
		Quality:   Quality(l.Platform, l.Rating, l.Reviews),
		Location:  Location(l.DistanceKmToCenter),
		Amenities: Amenities(l.Amenities, trip.MustHaves),
	}
	base := weightBudget*b.Budget +
		weightQuality*b.Quality +
		weightLocation*b.Location +
		weightAmenities*b.Amenities
	base = clamp01(base + AreaBonus(l.Area, trip.PreferAreas))
	b.Composite = base * 100
	return b
}

// NormalizeRating scales a rating to [0,1]. Booking rates out of 10, everything else out of 5.
func NormalizeRating(platform string, rating float64) float64 {
	scale := 5.0
	if platform == listings.PlatformBooking {
		scale = 10.0
	}
	return clamp01(rating / scale)
}

// BudgetFit rewards prices under budget mildly and penalizes overruns steeply.
func BudgetFit(nightlyPrice, nightlyBudget float64) float64 {
	budget := math.Max(nightlyBudget, minBudgetDivisor)
	if nightlyPrice <= nightlyBudget {
		return clamp01(0.85 + 0.15*(1-nightlyPrice/budget))
	}
	over := (nightlyPrice - nightlyBudget) / budget
	return clamp01(1.0 - 1.4*over)
}

// Quality blends the normalized rating with a review-volume confidence term.
func Quality(platform string, rating float64, reviews int) float64 {
	r := NormalizeRating(platform, rating)
	n := reviews
	if n < 1 {
		n = 1
	}
	confidence := clamp01(math.Log10(float64(n)) / 3.0)
	return clamp01(0.75*r + 0.25*confidence)
}

// Location decays smoothly with distance from the center.
func Location(distanceKm float64) float64 {
	return clamp01(1.0 / (1.0 + 0.35*distanceKm))
}

// Amenities returns the fraction of must-haves present, or a neutral 0.7 when none are requested.
func Amenities(have, need []string) float64 {
	if len(need) == 0 {
		return neutralAmenities
	}
	haveSet := lowerSet(have)
	hit := 0
	for _, m := range need {
		if _, ok := haveSet[strings.ToLower(m)]; ok {
			hit++
		}
	}
	return clamp01(float64(hit) / float64(len(need)))
}

// AreaBonus returns the flat preferred-area bonus when area matches any preference.
func AreaBonus(area string, preferAreas []string) float64 {
	if len(preferAreas) == 0 {
		return 0
	}
	if _, ok := lowerSet(preferAreas)[strings.ToLower(area)]; ok {
		return preferredAreaBonus
	}
	return 0
}

// PassesDealbreakers reports whether a room type survives the hard filter.
// Only shared and private rooms can be excluded.
func PassesDealbreakers(roomType string, dealbreakers []string) bool {
	db := lowerSet(dealbreakers)
	switch roomType {
	case listings.RoomShared, listings.RoomPrivate:
		_, excluded := db[roomType]
		return !excluded
	default:
		return true
	}
}

func lowerSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[strings.ToLower(item)] = struct{}{}
	}
	return out
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
