package itinerary

import "trip-planner/internal/trips"

type slots struct {
	morning   string
	afternoon string
	evening   string
}

func slotsFor(s trips.Style) slots {
	switch s {
	case trips.StyleRelaxed:
		return slots{
			morning:   "Slow breakfast + cedar forest walk",
			afternoon: "Lakeside chill time + coffee",
			evening:   "Sunset viewpoint + easy dinner",
		}
	case trips.StylePacked:
		return slots{
			morning:   "Early start: viewpoints + town highlights",
			afternoon: "Outdoor activity (hike / excursion)",
			evening:   "Dinner + night walk loop",
		}
	case trips.StyleFoodie:
		return slots{
			morning:   "Local café + pastry stop",
			afternoon: "Try local tagine + tea time",
			evening:   "Dinner + dessert tasting",
		}
	case trips.StyleCulture:
		return slots{
			morning:   "Azrou day trip idea + cedar forest history",
			afternoon: "Local crafts + heritage walk",
			evening:   "Traditional dinner + mint tea",
		}
	case trips.StyleNightlife:
		return slots{
			morning:   "Café hopping + evening stroll",
			afternoon: "Rooftop lunch + downtime",
			evening:   "Lounge/café + late tea",
		}
	default:
		return slots{
			morning:   "Town center walk + scenic stop",
			afternoon: "Lunch + one planned activity",
			evening:   "Dinner + optional stroll",
		}
	}
}

// baseCostPerPerson is the daily spend estimate before the cyclical bump.
func baseCostPerPerson(s trips.Style) float64 {
	switch s {
	case trips.StyleRelaxed:
		return 30
	case trips.StylePacked:
		return 50
	case trips.StyleFoodie:
		return 55
	case trips.StyleCulture:
		return 45
	case trips.StyleNightlife:
		return 55
	default:
		return 40
	}
}
