package listings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var csvHeader = []string{
	"id", "platform", "name", "area", "nightly_price", "rating",
	"reviews", "amenities", "url", "distance_km_to_center", "room_type",
}

// RowError describes a CSV row that was skipped during import.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ReadCSV parses listings from CSV. The first row must be the header; amenities are
// separated by ";". Invalid rows are skipped and reported.
func ReadCSV(r io.Reader) ([]Listing, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("csv is empty")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := indexHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var out []Listing
	var skipped []RowError
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		l, err := parseRecord(record, cols)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		out = append(out, l)
	}
	return out, skipped, nil
}

func indexHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range csvHeader {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("csv header missing column %q", want)
		}
	}
	return cols, nil
}

func parseRecord(record []string, cols map[string]int) (Listing, error) {
	get := func(name string) string {
		idx := cols[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := get("id")
	if id == "" {
		return Listing{}, errors.New("id is required")
	}
	platform := strings.ToLower(get("platform"))
	if platform != PlatformBooking && platform != PlatformAirbnb {
		return Listing{}, fmt.Errorf("unknown platform %q", platform)
	}
	roomType := NormalizeRoomType(get("room_type"))
	if roomType == "" {
		return Listing{}, fmt.Errorf("unknown room_type %q", get("room_type"))
	}
	price, err := parseNonNegative(get("nightly_price"), "nightly_price")
	if err != nil {
		return Listing{}, err
	}
	rating, err := parseNonNegative(get("rating"), "rating")
	if err != nil {
		return Listing{}, err
	}
	distance, err := parseNonNegative(get("distance_km_to_center"), "distance_km_to_center")
	if err != nil {
		return Listing{}, err
	}
	reviews := 0
	if raw := get("reviews"); raw != "" {
		reviews, err = strconv.Atoi(raw)
		if err != nil || reviews < 0 {
			return Listing{}, fmt.Errorf("invalid reviews %q", raw)
		}
	}

	amenities := []string{}
	for _, a := range strings.Split(get("amenities"), ";") {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}

	return Listing{
		ID:                 id,
		Platform:           platform,
		Name:               get("name"),
		Area:               get("area"),
		NightlyPrice:       price,
		Rating:             rating,
		Reviews:            reviews,
		Amenities:          amenities,
		URL:                get("url"),
		DistanceKmToCenter: distance,
		RoomType:           roomType,
	}, nil
}

func parseNonNegative(raw, field string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return v, nil
}
