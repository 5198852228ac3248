package trips

import "strings"

// Style is the travel pace preference that drives itinerary templates.
type Style int

const (
	StyleBalanced Style = iota
	StyleRelaxed
	StylePacked
	StyleFoodie
	StyleCulture
	StyleNightlife
)

// ParseStyle maps free text onto a Style. Unrecognized input falls back to StyleBalanced.
func ParseStyle(raw string) Style {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "relaxed":
		return StyleRelaxed
	case "packed":
		return StylePacked
	case "foodie":
		return StyleFoodie
	case "culture":
		return StyleCulture
	case "nightlife":
		return StyleNightlife
	default:
		return StyleBalanced
	}
}

// String returns the lowercase style key.
func (s Style) String() string {
	switch s {
	case StyleRelaxed:
		return "relaxed"
	case StylePacked:
		return "packed"
	case StyleFoodie:
		return "foodie"
	case StyleCulture:
		return "culture"
	case StyleNightlife:
		return "nightlife"
	default:
		return "balanced"
	}
}

// StyleNames lists every style key, balanced first.
func StyleNames() []string {
	styles := []Style{StyleBalanced, StyleRelaxed, StylePacked, StyleFoodie, StyleCulture, StyleNightlife}
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		out = append(out, s.String())
	}
	return out
}
