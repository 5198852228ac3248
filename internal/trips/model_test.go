package trips

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := ParseDate(raw)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", raw, err)
	}
	return d
}

func TestNightsBetween(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "two_nights", start: "2024-01-10", end: "2024-01-12", want: 2},
		{name: "same_day", start: "2024-01-10", end: "2024-01-10", want: 1},
		{name: "reversed", start: "2024-01-12", end: "2024-01-10", want: 1},
		{name: "month_boundary", start: "2024-02-27", end: "2024-03-02", want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NightsBetween(mustDate(t, tc.start), mustDate(t, tc.end))
			if got != tc.want {
				t.Fatalf("NightsBetween(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestParseDateRejectsNonISO(t *testing.T) {
	for _, raw := range []string{"10/01/2024", "2024-1-10", "", "2024-13-01"} {
		if _, err := ParseDate(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPayloadRequestAppliesDefaults(t *testing.T) {
	p := Payload{
		StartDate:     "2024-01-10",
		EndDate:       "2024-01-12",
		NightlyBudget: 70,
	}
	req, err := p.Request()
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Destination != DefaultDestination {
		t.Fatalf("expected default destination, got %q", req.Destination)
	}
	if req.Travelers != 1 {
		t.Fatalf("expected 1 traveler, got %d", req.Travelers)
	}
	if req.Style != StyleBalanced {
		t.Fatalf("expected balanced style, got %s", req.Style)
	}
	if req.MustHaves == nil || req.Dealbreakers == nil || req.PreferAreas == nil {
		t.Fatalf("expected non-nil tag slices")
	}
	if req.Nights() != 2 {
		t.Fatalf("expected 2 nights, got %d", req.Nights())
	}
}

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"relaxed":   StyleRelaxed,
		" Packed ":  StylePacked,
		"FOODIE":    StyleFoodie,
		"culture":   StyleCulture,
		"nightlife": StyleNightlife,
		"balanced":  StyleBalanced,
		"adventure": StyleBalanced,
		"":          StyleBalanced,
	}
	for raw, want := range cases {
		if got := ParseStyle(raw); got != want {
			t.Fatalf("ParseStyle(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestPayloadRequestKeepsSentDestination(t *testing.T) {
	for _, dest := range []string{"Fes, Morocco", "   ", ""} {
		d := dest
		p := Payload{Destination: &d, StartDate: "2024-01-10", EndDate: "2024-01-12", NightlyBudget: 70}
		req, err := p.Request()
		if err != nil {
			t.Fatalf("Request: %v", err)
		}
		if req.Destination != dest {
			t.Fatalf("expected destination %q, got %q", dest, req.Destination)
		}
	}
}
