package ports

import (
	"context"

	"culturis-route-service/internal/domain"
)

// Port: a cache of resolved venue pools keyed by location and tastes
// (see services.PoolCacheKey). A miss is (nil, false, nil); errors are
// reserved for backend failures so callers can degrade to the source.
type VenuePoolCache interface {
	Get(ctx context.Context, key string) ([]domain.Venue, bool, error)
	Put(ctx context.Context, key string, venues []domain.Venue) error
}
