package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/ports"
)

// PlanResult bundles a planned route with its summary metrics. The two
// time figures inside are computed independently and may disagree; see
// ComputeMetrics.
type PlanResult struct {
	Route   domain.PlannedRoute
	Metrics domain.RouteMetrics
}

// PlanRoute runs the full planning pipeline over an in-memory venue pool:
// selection by weighted affinity, nearest-neighbor ordering, itinerary
// annotation from the start clock, and summary metrics.
//
// The pipeline is a pure transformation over its inputs apart from the
// injected rng; callers that need reproducible routes pass a seeded
// source.
func PlanRoute(
	pool []domain.Venue,
	prefs domain.RoutePreferences,
	start domain.TimeOfDay,
	rng *rand.Rand,
) (*PlanResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	selected, err := SelectVenues(pool, prefs)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	ordered := OrderVenues(selected)
	stops := BuildItinerary(ordered, prefs, start, rng)
	total := TotalDuration(stops)

	route := domain.PlannedRoute{
		Venues:        stops,
		TotalDuration: total,
		StartTime:     start,
		EndTime:       start.Add(total),
		Preferences:   prefs,
	}

	return &PlanResult{Route: route, Metrics: ComputeMetrics(stops)}, nil
}

// Parameters for a route generated from a venue source rather than a
// caller-supplied pool.
type GenerateRouteRequest struct {
	Center       domain.Coordinates
	RadiusMeters float64
	Tastes       []string
	Preferences  domain.RoutePreferences
	StartTime    domain.TimeOfDay
}

// GenerateRoute resolves a venue pool for the given location and tastes,
// consulting the pool cache before the source, then plans a route over it.
// Cache failures are logged and bypassed; the cache is an optimization,
// never a correctness dependency.
func GenerateRoute(
	ctx context.Context,
	req GenerateRouteRequest,
	source ports.VenueSource,
	poolCache ports.VenuePoolCache,
	rng *rand.Rand,
) (*PlanResult, error) {
	if err := req.Preferences.Validate(); err != nil {
		return nil, fmt.Errorf("generate route: %w", err)
	}

	key := PoolCacheKey(req.Center, req.Tastes)

	var pool []domain.Venue
	if poolCache != nil {
		cached, ok, err := poolCache.Get(ctx, key)
		if err != nil {
			log.Printf("pool cache get failed key=%s err=%v", key, err)
		} else if ok {
			pool = cached
		}
	}

	if pool == nil {
		fetched, err := source.NearbyVenues(ctx, req.Center, req.RadiusMeters, req.Tastes)
		if err != nil {
			return nil, fmt.Errorf("generate route: nearby venues: %w", err)
		}
		pool = fetched

		if poolCache != nil {
			if err := poolCache.Put(ctx, key, pool); err != nil {
				log.Printf("pool cache put failed key=%s err=%v", key, err)
			}
		}
	}

	result, err := PlanRoute(pool, req.Preferences, req.StartTime, rng)
	if err != nil {
		return nil, fmt.Errorf("generate route: %w", err)
	}
	return result, nil
}

// PoolCacheKey builds the cache key for a venue pool lookup: coordinates
// rounded to four decimals (roughly 11 m, close enough to coalesce repeat
// lookups) joined with the sorted taste ids.
func PoolCacheKey(center domain.Coordinates, tastes []string) string {
	sorted := make([]string, len(tastes))
	copy(sorted, tastes)
	sort.Strings(sorted)

	return fmt.Sprintf("venues_%.4f_%.4f|%s", center.Lat, center.Lng, strings.Join(sorted, "|"))
}
