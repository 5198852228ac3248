package scoring

import (
	"reflect"
	"testing"

	"trip-planner/internal/listings"
)

func TestExplainWithinBudgetStrongConvenient(t *testing.T) {
	l := listings.MockListings()[0]
	trip := baseTrip()
	got := Explain(l, trip, Score(l, trip))
	want := []string{
		"Within your nightly budget (65 ≤ 70).",
		"Strong quality signals (rating 8.4 with 780 reviews).",
		"Convenient location (~0.6 km to center).",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected explanation:\n got %q\nwant %q", got, want)
	}
}

func TestExplainOverBudgetFarther(t *testing.T) {
	l := listings.MockListings()[1]
	trip := baseTrip()
	got := Explain(l, trip, Score(l, trip))
	if got[0] != "Over budget by 22 per night (stretch option)." {
		t.Fatalf("unexpected budget line: %q", got[0])
	}
	if got[2] != "Farther from the center (~3.2 km)—better if you have transport." {
		t.Fatalf("unexpected location line: %q", got[2])
	}
	if len(got) != 3 {
		t.Fatalf("expected no amenity line without must-haves, got %d lines", len(got))
	}
}

func TestExplainQualityTiers(t *testing.T) {
	trip := baseTrip()
	cases := []struct {
		name    string
		quality float64
		reviews int
		rating  float64
		want    string
	}{
		{name: "strong", quality: 0.8, reviews: 10, rating: 9, want: "Strong quality signals (rating 9.0 with 10 reviews)."},
		{name: "few_reviews", quality: 0.79, reviews: 49, rating: 4.2, want: "Fewer reviews than ideal—treat this option with a bit more caution."},
		{name: "solid", quality: 0.7, reviews: 50, rating: 4.2, want: "Solid rating (4.2) and review count (50)."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := listings.Listing{Rating: tc.rating, Reviews: tc.reviews, NightlyPrice: 10}
			got := Explain(l, trip, Breakdown{Quality: tc.quality, Location: 1})
			if got[1] != tc.want {
				t.Fatalf("got %q, want %q", got[1], tc.want)
			}
		})
	}
}

func TestExplainAmenityCoverage(t *testing.T) {
	l := listings.MockListings()[0]
	trip := baseTrip()

	trip.MustHaves = []string{"WiFi", "parking"}
	got := Explain(l, trip, Score(l, trip))
	if got[len(got)-1] != "Meets all your must-have amenities." {
		t.Fatalf("unexpected coverage line: %q", got[len(got)-1])
	}

	trip.MustHaves = []string{"kitchen", "Parking", "Pool"}
	got = Explain(l, trip, Score(l, trip))
	if got[len(got)-1] != "Missing: kitchen, Pool." {
		t.Fatalf("unexpected missing line: %q", got[len(got)-1])
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(got))
	}
}
