package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"trip-planner/internal/trips"
)

// AirbnbSearchRequest is the partner search payload.
type AirbnbSearchRequest struct {
	Query    string `json:"query"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Adults   int    `json:"adults"`
}

// AirbnbPartnerClient is the approved-partner integration. Airbnb has no public
// inventory search, so this returns nothing unless a partner search URL is configured.
type AirbnbPartnerClient struct {
	client *partnerClient
}

// NewAirbnbPartnerClient requires a partner token.
func NewAirbnbPartnerClient(token, searchURL string, timeout time.Duration) (*AirbnbPartnerClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("AIRBNB_PARTNER_TOKEN is required")
	}
	return &AirbnbPartnerClient{
		client: newPartnerClient("airbnb_partner", token, searchURL, timeout, nil),
	}, nil
}

// Name implements Source.
func (c *AirbnbPartnerClient) Name() string { return "airbnb_partner" }

// Search implements Source.
func (c *AirbnbPartnerClient) Search(ctx context.Context, trip trips.Request) ([]Listing, error) {
	return c.SearchStays(ctx, AirbnbSearchRequest{
		Query:    trip.Destination,
		Checkin:  trips.FormatDate(trip.StartDate),
		Checkout: trips.FormatDate(trip.EndDate),
		Adults:   trip.Travelers,
	})
}

func (c *AirbnbPartnerClient) SearchStays(ctx context.Context, req AirbnbSearchRequest) ([]Listing, error) {
	if req.Adults <= 0 {
		req.Adults = 2
	}
	return c.client.search(ctx, PlatformAirbnb, req)
}

var _ Source = (*AirbnbPartnerClient)(nil)
