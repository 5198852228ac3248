package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"trip-planner/internal/trips"
)

// BookingSearchRequest is the Demand API search payload.
type BookingSearchRequest struct {
	City     string `json:"city"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Adults   int    `json:"adults"`
}

// BookingDemandClient searches Booking.com inventory through the affiliate Demand API.
// Without a configured search URL it returns no results.
type BookingDemandClient struct {
	client *partnerClient
}

// NewBookingDemandClient requires both a token and an affiliate ID.
func NewBookingDemandClient(token, affiliateID, searchURL string, timeout time.Duration) (*BookingDemandClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("BOOKING_DEMAND_TOKEN is required")
	}
	if strings.TrimSpace(affiliateID) == "" {
		return nil, errors.New("BOOKING_AFFILIATE_ID is required")
	}
	return &BookingDemandClient{
		client: newPartnerClient("booking_demand", token, searchURL, timeout, map[string]string{
			"X-Affiliate-Id": affiliateID,
		}),
	}, nil
}

// Name implements Source.
func (c *BookingDemandClient) Name() string { return "booking_demand" }

// Search implements Source.
func (c *BookingDemandClient) Search(ctx context.Context, trip trips.Request) ([]Listing, error) {
	return c.SearchStays(ctx, BookingSearchRequest{
		City:     trip.Destination,
		Checkin:  trips.FormatDate(trip.StartDate),
		Checkout: trips.FormatDate(trip.EndDate),
		Adults:   trip.Travelers,
	})
}

// SearchStays runs a single availability search.
func (c *BookingDemandClient) SearchStays(ctx context.Context, req BookingSearchRequest) ([]Listing, error) {
	if req.Adults <= 0 {
		req.Adults = 2
	}
	return c.client.search(ctx, PlatformBooking, req)
}

var _ Source = (*BookingDemandClient)(nil)
