package listings

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSearchByDestination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"id", "platform", "name", "area", "nightly_price", "rating", "reviews",
		"amenities", "url", "distance_km", "room_type",
	}).
		AddRow("db-1", "booking", "Cedar Lodge", "City Center", 55.0, 8.8, 410, `["wifi","parking"]`, "https://example.com/db-1", 0.5, "hotel_room").
		AddRow("db-2", "airbnb", "Forest Cabin", "Outskirts", 80.0, 4.9, 12, nil, "https://example.com/db-2", 4.0, "entire_place")

	mock.ExpectQuery("SELECT id, platform, name, area").
		WithArgs("Ifrane, Morocco", searchLimit).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.Search(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].ID != "db-1" || len(got[0].Amenities) != 2 || got[0].Amenities[1] != "parking" {
		t.Fatalf("unexpected first listing: %+v", got[0])
	}
	if got[1].Amenities == nil || len(got[1].Amenities) != 0 {
		t.Fatalf("expected empty amenities for NULL column, got %#v", got[1].Amenities)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertWritesInPositionOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	items := MockListings()[:2]

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO listings")
	for i, l := range items {
		prep.ExpectExec().
			WithArgs(
				l.ID,
				"Ifrane, Morocco",
				i,
				l.Platform,
				l.Name,
				l.Area,
				l.NightlyPrice,
				l.Rating,
				l.Reviews,
				sqlmock.AnyArg(), // amenities
				l.URL,
				l.DistanceKmToCenter,
				l.RoomType,
				"batch-1",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	n, err := repo.Upsert(context.Background(), "Ifrane, Morocco", "batch-1", items)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows written, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertEmptyIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	n, err := (&PGRepo{DB: db}).Upsert(context.Background(), "x", "b", nil)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSearchSkipsNonFiniteRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"id", "platform", "name", "area", "nightly_price", "rating", "reviews",
		"amenities", "url", "distance_km", "room_type",
	}).
		AddRow("db-nan", "booking", "Broken", "City Center", math.NaN(), 8.8, 410, nil, "u", 0.5, "hotel_room").
		AddRow("db-inf", "booking", "Broken", "City Center", 55.0, 8.8, 410, nil, "u", math.Inf(1), "hotel_room").
		AddRow("db-ok", "airbnb", "Forest Cabin", "Outskirts", 80.0, 4.9, 12, nil, "u", 4.0, "entire_place")

	mock.ExpectQuery("SELECT id, platform, name, area").
		WithArgs("Ifrane, Morocco", searchLimit).
		WillReturnRows(rows)

	got, err := (&PGRepo{DB: db}).Search(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "db-ok" {
		t.Fatalf("expected only db-ok, got %+v", got)
	}
	if _, err := json.Marshal(got); err != nil {
		t.Fatalf("listings should encode as JSON: %v", err)
	}
}

func TestPGRepoUpsertRejectsNonFinite(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO listings")
	mock.ExpectRollback()

	items := []Listing{{ID: "bad", Platform: PlatformBooking, NightlyPrice: math.NaN(), RoomType: RoomHotel}}
	if _, err := (&PGRepo{DB: db}).Upsert(context.Background(), "Ifrane, Morocco", "batch-1", items); err == nil {
		t.Fatalf("expected error for NaN price")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
