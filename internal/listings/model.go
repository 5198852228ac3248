package listings

import (
	"math"
	"strings"
)

// Platform identifies where a listing was sourced from.
const (
	PlatformBooking = "booking"
	PlatformAirbnb  = "airbnb"
)

// RoomType values accepted for listings.
const (
	RoomEntirePlace = "entire_place"
	RoomPrivate     = "private_room"
	RoomShared      = "shared_room"
	RoomHotel       = "hotel_room"
)

// Listing is one lodging option. Listings are read-only once sourced.
type Listing struct {
	ID                 string   `json:"id"`
	Platform           string   `json:"platform"`
	Name               string   `json:"name"`
	Area               string   `json:"area"`
	NightlyPrice       float64  `json:"nightly_price"`
	Rating             float64  `json:"rating"`
	Reviews            int      `json:"reviews"`
	Amenities          []string `json:"amenities"`
	URL                string   `json:"url"`
	DistanceKmToCenter float64  `json:"distance_km_to_center"`
	RoomType           string   `json:"room_type"`
}

// ValidRoomType reports whether value is one of the known room types.
func ValidRoomType(value string) bool {
	switch value {
	case RoomEntirePlace, RoomPrivate, RoomShared, RoomHotel:
		return true
	default:
		return false
	}
}

// NormalizeRoomType lowercases and trims a room type, returning "" when unknown.
func NormalizeRoomType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if !ValidRoomType(v) {
		return ""
	}
	return v
}

// Finite reports whether every numeric field is a real number. Non-finite values
// cannot be scored or encoded as JSON.
func (l Listing) Finite() bool {
	for _, v := range []float64{l.NightlyPrice, l.Rating, l.DistanceKmToCenter} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
