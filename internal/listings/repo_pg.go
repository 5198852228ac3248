package listings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"trip-planner/internal/shared/telemetry"
	"trip-planner/internal/trips"
)

// searchLimit caps the rows read for a single destination.
const searchLimit = 200

// PGRepo reads and writes the curated listing catalog in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Name implements Source.
func (r *PGRepo) Name() string { return "catalog_db" }

// Search implements Source by returning the listings stored for the trip destination.
func (r *PGRepo) Search(ctx context.Context, trip trips.Request) ([]Listing, error) {
	return r.ListByDestination(ctx, trip.Destination)
}

// ListByDestination returns listings for a destination in catalog position order.
func (r *PGRepo) ListByDestination(ctx context.Context, destination string) ([]Listing, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("listings repo not configured")
	}
	const query = `
SELECT id, platform, name, area, nightly_price, rating, reviews, amenities, url, distance_km, room_type
FROM listings
WHERE lower(destination) = lower($1)
ORDER BY position ASC, id ASC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, strings.TrimSpace(destination), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	out := make([]Listing, 0, 16)
	for rows.Next() {
		var l Listing
		var amenities sql.NullString
		if err := rows.Scan(
			&l.ID,
			&l.Platform,
			&l.Name,
			&l.Area,
			&l.NightlyPrice,
			&l.Rating,
			&l.Reviews,
			&amenities,
			&l.URL,
			&l.DistanceKmToCenter,
			&l.RoomType,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		l.Amenities = []string{}
		if amenities.Valid && strings.TrimSpace(amenities.String) != "" {
			if err := json.Unmarshal([]byte(amenities.String), &l.Amenities); err != nil {
				return nil, fmt.Errorf("decode amenities for %s: %w", l.ID, err)
			}
		}
		if !l.Finite() {
			telemetry.Warn("listings.row_skipped", map[string]any{"id": l.ID, "reason": "non-finite number"})
			continue
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

// Upsert stores listings for a destination in a single transaction. Slice order
// becomes catalog position. It returns the number of rows written.
func (r *PGRepo) Upsert(ctx context.Context, destination, batchID string, items []Listing) (int, error) {
	if r == nil || r.DB == nil {
		return 0, errors.New("listings repo not configured")
	}
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO listings (
	id, destination, position, platform, name, area, nightly_price, rating, reviews,
	amenities, url, distance_km, room_type, import_batch
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO UPDATE SET
	destination = EXCLUDED.destination,
	position = EXCLUDED.position,
	platform = EXCLUDED.platform,
	name = EXCLUDED.name,
	area = EXCLUDED.area,
	nightly_price = EXCLUDED.nightly_price,
	rating = EXCLUDED.rating,
	reviews = EXCLUDED.reviews,
	amenities = EXCLUDED.amenities,
	url = EXCLUDED.url,
	distance_km = EXCLUDED.distance_km,
	room_type = EXCLUDED.room_type,
	import_batch = EXCLUDED.import_batch,
	updated_at = NOW()`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for i, l := range items {
		if !l.Finite() {
			return 0, fmt.Errorf("upsert listing %s: non-finite number", l.ID)
		}
		amenities, err := marshalAmenities(l.Amenities)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx,
			l.ID,
			destination,
			i,
			l.Platform,
			l.Name,
			l.Area,
			l.NightlyPrice,
			l.Rating,
			l.Reviews,
			amenities,
			l.URL,
			l.DistanceKmToCenter,
			l.RoomType,
			batchID,
		); err != nil {
			return 0, fmt.Errorf("upsert listing %s: %w", l.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

func marshalAmenities(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode amenities: %w", err)
	}
	return string(data), nil
}

var _ Source = (*PGRepo)(nil)
