package listings

// mockCatalog is the built-in fallback catalog. It is never mutated; MockListings hands out copies.
var mockCatalog = []Listing{
	{
		ID:                 "bkg-ifr-001",
		Platform:           PlatformBooking,
		Name:               "Ifrane Mountain Hotel (Mock)",
		Area:               "City Center",
		NightlyPrice:       65,
		Rating:             8.4,
		Reviews:            780,
		Amenities:          []string{"wifi", "heating", "parking"},
		URL:                "https://example.com/booking/bkg-ifr-001",
		DistanceKmToCenter: 0.6,
		RoomType:           RoomHotel,
	},
	{
		ID:                 "bkg-ifr-002",
		Platform:           PlatformBooking,
		Name:               "Cozy Chalet Near Cedar Forest (Mock)",
		Area:               "Outskirts",
		NightlyPrice:       92,
		Rating:             8.9,
		Reviews:            214,
		Amenities:          []string{"wifi", "kitchen", "heating", "parking"},
		URL:                "https://example.com/booking/bkg-ifr-002",
		DistanceKmToCenter: 3.2,
		RoomType:           RoomEntirePlace,
	},
	{
		ID:                 "bnb-ifr-101",
		Platform:           PlatformAirbnb,
		Name:               "Private Room w/ Fireplace (Mock)",
		Area:               "City Center",
		NightlyPrice:       45,
		Rating:             4.78,
		Reviews:            133,
		Amenities:          []string{"wifi", "heating"},
		URL:                "https://example.com/airbnb/bnb-ifr-101",
		DistanceKmToCenter: 0.9,
		RoomType:           RoomPrivate,
	},
	{
		ID:                 "bnb-ifr-102",
		Platform:           PlatformAirbnb,
		Name:               "Family Apartment (Mock)",
		Area:               "City Center",
		NightlyPrice:       72,
		Rating:             4.86,
		Reviews:            89,
		Amenities:          []string{"wifi", "kitchen", "heating"},
		URL:                "https://example.com/airbnb/bnb-ifr-102",
		DistanceKmToCenter: 1.1,
		RoomType:           RoomEntirePlace,
	},
}

// MockListings returns a copy of the built-in catalog.
func MockListings() []Listing {
	out := make([]Listing, len(mockCatalog))
	for i, l := range mockCatalog {
		l.Amenities = append([]string(nil), l.Amenities...)
		out[i] = l
	}
	return out
}
