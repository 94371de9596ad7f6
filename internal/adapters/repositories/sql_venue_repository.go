package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/platform/obs"
)

// SQLVenueRepository is the Postgres twin of SqliteVenueRepository, for
// deployments where the venue catalog lives in a shared database. A crude
// bounding box narrows the scan server-side; exact radius and taste
// filtering reuse the in-process helpers.
type SQLVenueRepository struct{ DB *sql.DB }

func NewSQLVenueRepository(db *sql.DB) *SQLVenueRepository {
	return &SQLVenueRepository{DB: db}
}

func (s *SQLVenueRepository) NearbyVenues(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters float64,
	tastes []string,
) (_ []domain.Venue, err error) {
	defer obs.Time(ctx, "venues.sql.NearbyVenues")(&err)

	if s.DB == nil {
		return nil, errors.New("sql venue repository: DB is nil")
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
	WHERE lat IS NULL
		OR (lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4)
	ORDER BY affinity DESC, venue_id;
	`

	// One degree of latitude is ~111 km; longitude degrees shrink toward
	// the poles, so the box is deliberately generous and the Haversine
	// pass below does the precise cut.
	degrees := radiusMeters / 111000
	if radiusMeters <= 0 {
		degrees = 180
	}

	rows, err := s.DB.QueryContext(ctx, query,
		center.Lat-degrees, center.Lat+degrees,
		center.Lng-2*degrees, center.Lng+2*degrees,
	)
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
