package trips

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format accepted for trip dates.
const DateLayout = "2006-01-02"

// DefaultDestination is used when a request omits the destination.
// A destination that is present is kept as sent, blank or not.
const DefaultDestination = "Ifrane, Morocco"

// Request is the immutable trip input shared by the itinerary and stays operations.
type Request struct {
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Travelers     int
	NightlyBudget float64
	Style         Style
	MustHaves     []string
	Dealbreakers  []string
	PreferAreas   []string
}

// Payload is the JSON body accepted by the planning endpoints.
type Payload struct {
	Destination   *string  `json:"destination"`
	StartDate     string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	Travelers     *int     `json:"travelers" binding:"omitempty,min=1,max=20"`
	NightlyBudget float64  `json:"nightly_budget" binding:"required,gte=10"`
	Style         string   `json:"style"`
	MustHaves     []string `json:"must_haves"`
	Dealbreakers  []string `json:"dealbreakers"`
	PreferAreas   []string `json:"prefer_areas"`
}

// Request converts a validated payload into a Request, applying defaults.
func (p Payload) Request() (Request, error) {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return Request{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return Request{}, fmt.Errorf("end_date: %w", err)
	}

	destination := DefaultDestination
	if p.Destination != nil {
		destination = *p.Destination
	}
	travelers := 1
	if p.Travelers != nil {
		travelers = *p.Travelers
	}

	return Request{
		Destination:   destination,
		StartDate:     start,
		EndDate:       end,
		Travelers:     travelers,
		NightlyBudget: p.NightlyBudget,
		Style:         ParseStyle(p.Style),
		MustHaves:     nonNil(p.MustHaves),
		Dealbreakers:  nonNil(p.Dealbreakers),
		PreferAreas:   nonNil(p.PreferAreas),
	}, nil
}

// Nights returns the number of nights covered by the request, never less than one.
func (r Request) Nights() int {
	return NightsBetween(r.StartDate, r.EndDate)
}

// ParseDate parses an ISO calendar date in UTC.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}
	return t, nil
}

// FormatDate renders a date using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NightsBetween returns the whole days between start and end, with a floor of one.
func NightsBetween(start, end time.Time) int {
	days := daysBetween(start, end)
	if days < 1 {
		return 1
	}
	return days
}

func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
