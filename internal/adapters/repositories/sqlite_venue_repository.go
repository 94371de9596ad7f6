package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/geo"
	"culturis-route-service/internal/platform/obs"
)

// SQLite-backed implementation of the VenueSource port.
//
// The catalog is small (hundreds of rows for a city district), so nearby
// lookups load candidates and filter by great-circle distance in process
// instead of maintaining a spatial index.
type SqliteVenueRepository struct{ DB *sql.DB }

func NewSqliteVenueRepository(db *sql.DB) *SqliteVenueRepository {
	return &SqliteVenueRepository{DB: db}
}

// Return venues within radiusMeters of center matching the taste tags.
func (s *SqliteVenueRepository) NearbyVenues(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters float64,
	tastes []string,
) (_ []domain.Venue, err error) {
	defer obs.Time(ctx, "venues.sqlite.NearbyVenues")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite venue repository: DB is nil")
	}

	query := `
	SELECT
		venue_id,
		name,
		venue_type,
		lat,
		lng,
		affinity,
		rating,
		popularity,
		keywords
	FROM venues
	ORDER BY affinity DESC, venue_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("nearby venues: query venues table: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0, 64)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("nearby venues: %w", err)
		}

		if !withinRadius(v, center, radiusMeters) {
			continue
		}
		if !matchesTastes(v, tastes) {
			continue
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("nearby venues: row iteration: %w", err)
	}

	return venues, nil
}

type venueScanner interface {
	Scan(dest ...any) error
}

// scanVenue maps one venues row to the domain type. Nullable columns
// (coordinates, rating, popularity, keywords) become explicit absent
// values rather than zero sentinels.
func scanVenue(rows venueScanner) (domain.Venue, error) {
	var (
		v          domain.Venue
		lat, lng   sql.NullFloat64
		rating     sql.NullFloat64
		popularity sql.NullFloat64
		keywords   sql.NullString
	)

	if err := rows.Scan(&v.ID, &v.Name, &v.Type, &lat, &lng, &v.Affinity, &rating, &popularity, &keywords); err != nil {
		return domain.Venue{}, fmt.Errorf("scan venue row: %w", err)
	}

	if lat.Valid && lng.Valid {
		v.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if rating.Valid {
		v.Rating = rating.Float64
	}

	var kws []string
	if keywords.Valid && keywords.String != "" {
		if err := json.Unmarshal([]byte(keywords.String), &kws); err != nil {
			return domain.Venue{}, fmt.Errorf("scan venue row: parse keywords for %q: %w", v.ID, err)
		}
	}
	if popularity.Valid || len(kws) > 0 {
		v.Qloo = &domain.QlooMetadata{Popularity: popularity.Float64, Keywords: kws}
	}

	return v, nil
}

func withinRadius(v domain.Venue, center domain.Coordinates, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return true
	}
	if v.Coordinates == nil {
		return false
	}
	return geo.Haversine(center, *v.Coordinates) <= radiusMeters
}

// matchesTastes reports whether any taste tag appears in the venue's type
// or keywords. No tastes means no filtering.
func matchesTastes(v domain.Venue, tastes []string) bool {
	if len(tastes) == 0 {
		return true
	}

	haystack := strings.ToLower(v.Type + " " + strings.Join(v.Keywords(), " "))
	for _, t := range tastes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
