package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"trip-planner/internal/listings"
	"trip-planner/internal/trips"
)

const (
	strongQualityThreshold = 0.8
	lowReviewThreshold     = 50
	convenientLocation     = 0.6
)

// Explain renders the reasons behind a breakdown in a fixed order: budget, quality,
// location, then amenity coverage when must-haves were given.
func Explain(l listings.Listing, trip trips.Request, b Breakdown) []string {
	why := make([]string, 0, 4)

	if l.NightlyPrice <= trip.NightlyBudget {
		why = append(why, fmt.Sprintf("Within your nightly budget (%.0f ≤ %.0f).", l.NightlyPrice, trip.NightlyBudget))
	} else {
		why = append(why, fmt.Sprintf("Over budget by %.0f per night (stretch option).", l.NightlyPrice-trip.NightlyBudget))
	}

	switch {
	case b.Quality >= strongQualityThreshold:
		why = append(why, fmt.Sprintf("Strong quality signals (rating %s with %d reviews).", formatRating(l.Rating), l.Reviews))
	case l.Reviews < lowReviewThreshold:
		why = append(why, "Fewer reviews than ideal—treat this option with a bit more caution.")
	default:
		why = append(why, fmt.Sprintf("Solid rating (%s) and review count (%d).", formatRating(l.Rating), l.Reviews))
	}

	if b.Location >= convenientLocation {
		why = append(why, fmt.Sprintf("Convenient location (~%.1f km to center).", l.DistanceKmToCenter))
	} else {
		why = append(why, fmt.Sprintf("Farther from the center (~%.1f km)—better if you have transport.", l.DistanceKmToCenter))
	}

	if len(trip.MustHaves) > 0 {
		if missing := missingAmenities(l.Amenities, trip.MustHaves); len(missing) == 0 {
			why = append(why, "Meets all your must-have amenities.")
		} else {
			why = append(why, fmt.Sprintf("Missing: %s.", strings.Join(missing, ", ")))
		}
	}
	return why
}

// missingAmenities keeps the caller's spelling and order of must-haves.
func missingAmenities(have, need []string) []string {
	haveSet := lowerSet(have)
	var missing []string
	for _, m := range need {
		if _, ok := haveSet[strings.ToLower(m)]; !ok {
			missing = append(missing, m)
		}
	}
	return missing
}

// formatRating prints the shortest exact form and always keeps one decimal.
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
