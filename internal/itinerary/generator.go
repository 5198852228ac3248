package itinerary

import (
	"math"

	"trip-planner/internal/trips"
)

// Notes are attached to every itinerary.
var Notes = []string{
	"MVP itinerary is heuristic (no live attraction data yet).",
	"Add maps + opening hours later for a production version.",
}

// Day is one planned calendar day.
type Day struct {
	Date      string  `json:"date"`
	Morning   string  `json:"morning"`
	Afternoon string  `json:"afternoon"`
	Evening   string  `json:"evening"`
	EstCost   float64 `json:"est_cost"`
}

// Itinerary is the planned stay.
type Itinerary struct {
	Destination  string   `json:"destination"`
	Days         []Day    `json:"days"`
	TotalEstCost float64  `json:"total_est_cost"`
	Notes        []string `json:"notes"`
}

// Generate builds one Day per date in [start, end), with at least one day.
// The total is the sum of the already rounded day costs.
func Generate(trip trips.Request) Itinerary {
	n := trips.NightsBetween(trip.StartDate, trip.EndDate)
	s := slotsFor(trip.Style)
	base := baseCostPerPerson(trip.Style)

	days := make([]Day, 0, n)
	total := 0.0
	for i := 0; i < n; i++ {
		bump := float64((i % 3) * 3)
		cost := round2((base + bump) * float64(trip.Travelers))
		days = append(days, Day{
			Date:      trips.FormatDate(trip.StartDate.AddDate(0, 0, i)),
			Morning:   s.morning,
			Afternoon: s.afternoon,
			Evening:   s.evening,
			EstCost:   cost,
		})
		total += cost
	}

	return Itinerary{
		Destination:  trip.Destination,
		Days:         days,
		TotalEstCost: round2(total),
		Notes:        append([]string(nil), Notes...),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
