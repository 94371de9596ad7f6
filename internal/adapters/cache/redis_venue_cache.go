package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/platform/obs"
)

// Namespace prefix for cached venue pools, versioned so a shape change
// can roll out without flushing the instance.
const venuePoolKeyPrefix = "venue_pool_v1:"

// Redis-backed implementation of the VenuePoolCache port. Pools are
// stored as JSON under namespaced keys with a TTL, so repeated planning
// requests for the same location and tastes skip the venue source.
type RedisVenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVenueCache(client *redis.Client, ttl time.Duration) *RedisVenueCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisVenueCache{client: client, ttl: ttl}
}

func (c *RedisVenueCache) Get(ctx context.Context, key string) (_ []domain.Venue, _ bool, err error) {
	defer obs.Time(ctx, "venues.cache.redis.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("redis venue cache: client is nil")
	}

	raw, err := c.client.Get(ctx, venuePoolKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis venue cache: get %q: %w", key, err)
	}

	var venues []domain.Venue
	if err := json.Unmarshal([]byte(raw), &venues); err != nil {
		return nil, false, fmt.Errorf("redis venue cache: unmarshal pool for %q: %w", key, err)
	}

	return venues, true, nil
}

func (c *RedisVenueCache) Put(ctx context.Context, key string, venues []domain.Venue) (err error) {
	defer obs.Time(ctx, "venues.cache.redis.Put")(&err)

	if c.client == nil {
		return errors.New("redis venue cache: client is nil")
	}

	data, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("redis venue cache: marshal pool for %q: %w", key, err)
	}

	if err := c.client.Set(ctx, venuePoolKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis venue cache: set %q: %w", key, err)
	}

	return nil
}
