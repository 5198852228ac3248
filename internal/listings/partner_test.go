package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBookingDemandClientRequiresCredentials(t *testing.T) {
	if _, err := NewBookingDemandClient("", "aff", "", time.Second); err == nil {
		t.Fatalf("expected error without token")
	}
	if _, err := NewBookingDemandClient("tok", " ", "", time.Second); err == nil {
		t.Fatalf("expected error without affiliate id")
	}
	if _, err := NewAirbnbPartnerClient("", "", time.Second); err == nil {
		t.Fatalf("expected error without airbnb token")
	}
}

func TestPartnerClientsReturnEmptyWithoutSearchURL(t *testing.T) {
	booking, err := NewBookingDemandClient("tok", "aff", "", time.Second)
	if err != nil {
		t.Fatalf("NewBookingDemandClient: %v", err)
	}
	airbnb, err := NewAirbnbPartnerClient("tok", "", time.Second)
	if err != nil {
		t.Fatalf("NewAirbnbPartnerClient: %v", err)
	}
	for _, src := range []Source{booking, airbnb} {
		got, err := src.Search(context.Background(), testTrip())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src.Name(), err)
		}
		if len(got) != 0 {
			t.Fatalf("%s: expected no listings, got %d", src.Name(), len(got))
		}
	}
}

func TestBookingDemandClientSearch(t *testing.T) {
	var gotReq BookingSearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("X-Affiliate-Id"); got != "aff-9" {
			t.Errorf("unexpected X-Affiliate-Id header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":"bk-1","name":"Cedar Inn","area":"City Center","nightly_price":60,"rating":8.1,"review_count":320,"amenities":["wifi"],"url":"https://example.com/bk-1","distance_km":0.4,"room_type":"Hotel_Room"},
			{"id":"","name":"No id","room_type":"hotel_room"},
			{"id":"bk-2","name":"Odd room","room_type":"tent"}
		]}`))
	}))
	defer srv.Close()

	client, err := NewBookingDemandClient("tok-123", "aff-9", srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewBookingDemandClient: %v", err)
	}
	got, err := client.Search(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotReq.City != "Ifrane, Morocco" || gotReq.Checkin != "2024-01-10" || gotReq.Checkout != "2024-01-12" || gotReq.Adults != 2 {
		t.Fatalf("unexpected request payload: %+v", gotReq)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 valid listing, got %d", len(got))
	}
	l := got[0]
	if l.Platform != PlatformBooking || l.RoomType != RoomHotel || l.Reviews != 320 || l.DistanceKmToCenter != 0.4 {
		t.Fatalf("unexpected mapped listing: %+v", l)
	}
}

func TestAirbnbPartnerClientNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewAirbnbPartnerClient("tok", srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewAirbnbPartnerClient: %v", err)
	}
	if _, err := client.Search(context.Background(), testTrip()); err == nil {
		t.Fatalf("expected error for 502 response")
	}
}
