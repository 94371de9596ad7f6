package ports

import (
	"context"

	"culturis-route-service/internal/domain"
)

// Port: a boundary for retrieving candidate venues around a location.
// Implementations may be a database, an external recommendation API, or a
// synthetic fallback; the planner does not care which.
type VenueSource interface {
	// Return venues within radiusMeters of center that match the given
	// taste tags. An empty taste list means no taste filtering.
	NearbyVenues(ctx context.Context, center domain.Coordinates, radiusMeters float64, tastes []string) ([]domain.Venue, error)
}
