package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// partnerClient posts search payloads to a partner endpoint with a bearer token.
type partnerClient struct {
	name       string
	searchURL  string
	headers    map[string]string
	httpClient *http.Client
}

func newPartnerClient(name, token, searchURL string, timeout time.Duration, headers map[string]string) *partnerClient {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout
	return &partnerClient{
		name:       name,
		searchURL:  strings.TrimSpace(searchURL),
		headers:    headers,
		httpClient: httpClient,
	}
}

// partnerStay is the result shape returned by a partner search endpoint.
type partnerStay struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Area         string   `json:"area"`
	NightlyPrice float64  `json:"nightly_price"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Amenities    []string `json:"amenities"`
	URL          string   `json:"url"`
	DistanceKm   float64  `json:"distance_km"`
	RoomType     string   `json:"room_type"`
}

type partnerSearchResponse struct {
	Results []partnerStay `json:"results"`
}

func (c *partnerClient) search(ctx context.Context, platform string, payload any) ([]Listing, error) {
	if c.searchURL == "" {
		return nil, nil
	}
	var resp partnerSearchResponse
	if err := c.post(ctx, c.searchURL, payload, &resp); err != nil {
		return nil, err
	}
	out := make([]Listing, 0, len(resp.Results))
	for _, stay := range resp.Results {
		if l, ok := stay.toListing(platform); ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (c *partnerClient) post(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", c.name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", c.name, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

func (s partnerStay) toListing(platform string) (Listing, bool) {
	id := strings.TrimSpace(s.ID)
	roomType := NormalizeRoomType(s.RoomType)
	if id == "" || roomType == "" || s.NightlyPrice < 0 {
		return Listing{}, false
	}
	distance := s.DistanceKm
	if distance < 0 {
		distance = 0
	}
	reviews := s.ReviewCount
	if reviews < 0 {
		reviews = 0
	}
	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return Listing{
		ID:                 id,
		Platform:           platform,
		Name:               strings.TrimSpace(s.Name),
		Area:               strings.TrimSpace(s.Area),
		NightlyPrice:       s.NightlyPrice,
		Rating:             s.Rating,
		Reviews:            reviews,
		Amenities:          amenities,
		URL:                s.URL,
		DistanceKmToCenter: distance,
		RoomType:           roomType,
	}, true
}
