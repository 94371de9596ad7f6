package cache

import (
	"context"
	"sync"

	"culturis-route-service/internal/domain"
)

// In-process implementation of the VenuePoolCache port for single-node
// runs and tests. Entries live for the process lifetime; the pool set is
// session-scoped and tiny, so no eviction is needed.
type MemoryVenueCache struct {
	mu    sync.RWMutex
	pools map[string][]domain.Venue
}

func NewMemoryVenueCache() *MemoryVenueCache {
	return &MemoryVenueCache{pools: make(map[string][]domain.Venue)}
}

func (c *MemoryVenueCache) Get(_ context.Context, key string) ([]domain.Venue, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pool, ok := c.pools[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the cached pool.
	out := make([]domain.Venue, len(pool))
	copy(out, pool)
	return out, true, nil
}

func (c *MemoryVenueCache) Put(_ context.Context, key string, venues []domain.Venue) error {
	stored := make([]domain.Venue, len(venues))
	copy(stored, venues)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pools[key] = stored
	return nil
}
