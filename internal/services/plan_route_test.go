package services

import (
	"context"
	"errors"
	"testing"

	"culturis-route-service/internal/domain"
)

// stubSource serves a fixed pool and counts lookups.
type stubSource struct {
	pool  []domain.Venue
	err   error
	calls int
}

func (s *stubSource) NearbyVenues(ctx context.Context, center domain.Coordinates, radiusMeters float64, tastes []string) ([]domain.Venue, error) {
	s.calls++
	return s.pool, s.err
}

// stubCache is an in-memory pool cache with injectable failures.
type stubCache struct {
	entries map[string][]domain.Venue
	getErr  error
	putErr  error
	puts    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]domain.Venue)}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]domain.Venue, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	pool, ok := c.entries[key]
	return pool, ok, nil
}

func (c *stubCache) Put(ctx context.Context, key string, venues []domain.Venue) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.puts++
	c.entries[key] = venues
	return nil
}

func cityPool() []domain.Venue {
	return []domain.Venue{
		{ID: "v1", Name: "Modern Art Hall", Type: "Art Museum", Affinity: 92,
			Coordinates: &domain.Coordinates{Lat: 41.385, Lng: 2.17},
			Qloo:        &domain.QlooMetadata{Popularity: 0.98, Keywords: []string{"contemporary", "installations"}}},
		{ID: "v2", Name: "Harbor Cafe", Type: "Cafe", Affinity: 81,
			Coordinates: &domain.Coordinates{Lat: 41.381, Lng: 2.19}},
		{ID: "v3", Name: "Granary Market", Type: "Market", Affinity: 77,
			Coordinates: &domain.Coordinates{Lat: 41.383, Lng: 2.18}},
		{ID: "v4", Name: "Night Stage", Type: "Event Venue", Affinity: 64,
			Coordinates: &domain.Coordinates{Lat: 41.39, Lng: 2.16}},
	}
}

func TestPlanRoutePipeline(t *testing.T) {
	start := mustTime(t, "10:00 AM")
	result, err := PlanRoute(cityPool(), relaxedHalfDay(), start, testRand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route := result.Route
	if len(route.Venues) != 3 {
		t.Fatalf("got %d stops, want 3", len(route.Venues))
	}

	// Top three by affinity, then nearest-neighbor from the strongest match.
	assertIDs(t, []domain.Venue{route.Venues[0].Venue, route.Venues[1].Venue, route.Venues[2].Venue},
		"v1", "v3", "v2")

	if route.StartTime != start {
		t.Errorf("StartTime = %s, want %s", route.StartTime, start)
	}
	if route.Venues[0].ArrivalTime != start {
		t.Errorf("first arrival = %s, want %s", route.Venues[0].ArrivalTime, start)
	}
	if route.TotalDuration != TotalDuration(route.Venues) {
		t.Error("TotalDuration out of sync with the stops")
	}
	if route.EndTime != start.Add(route.TotalDuration) {
		t.Error("EndTime does not equal start plus total duration")
	}

	for i, s := range route.Venues {
		if s.Order != i+1 {
			t.Errorf("stop %d has order %d", i, s.Order)
		}
	}

	if result.Metrics.TotalDistanceMeters <= 0 {
		t.Errorf("TotalDistanceMeters = %v, want positive", result.Metrics.TotalDistanceMeters)
	}
}

func TestPlanRouteInvalidPreferences(t *testing.T) {
	prefs := relaxedHalfDay()
	prefs.VenueCount = 1

	if _, err := PlanRoute(cityPool(), prefs, 0, testRand()); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGenerateRouteFetchesAndCaches(t *testing.T) {
	source := &stubSource{pool: cityPool()}
	cache := newStubCache()
	req := GenerateRouteRequest{
		Center:       domain.Coordinates{Lat: 41.3851, Lng: 2.1734},
		RadiusMeters: 2000,
		Tastes:       []string{"art", "food"},
		Preferences:  relaxedHalfDay(),
		StartTime:    mustTime(t, "10:00 AM"),
	}

	first, err := GenerateRoute(context.Background(), req, source, cache, testRand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("source called %d times, want 1", source.calls)
	}
	if cache.puts != 1 {
		t.Fatalf("cache stored %d pools, want 1", cache.puts)
	}

	// Second request with the same location and tastes is served from cache.
	second, err := GenerateRoute(context.Background(), req, source, cache, testRand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times after cache hit, want 1", source.calls)
	}
	if len(second.Route.Venues) != len(first.Route.Venues) {
		t.Errorf("cached plan has %d stops, fresh plan %d", len(second.Route.Venues), len(first.Route.Venues))
	}
}

func TestGenerateRouteSurvivesCacheFailures(t *testing.T) {
	source := &stubSource{pool: cityPool()}
	cache := newStubCache()
	cache.getErr = errors.New("connection refused")
	cache.putErr = errors.New("connection refused")

	req := GenerateRouteRequest{
		Center:      domain.Coordinates{Lat: 41.3851, Lng: 2.1734},
		Preferences: relaxedHalfDay(),
		StartTime:   mustTime(t, "10:00 AM"),
	}

	result, err := GenerateRoute(context.Background(), req, source, cache, testRand())
	if err != nil {
		t.Fatalf("cache failure surfaced: %v", err)
	}
	if len(result.Route.Venues) == 0 {
		t.Fatal("no route planned despite a healthy source")
	}
}

func TestGenerateRouteWithoutCache(t *testing.T) {
	source := &stubSource{pool: cityPool()}
	req := GenerateRouteRequest{
		Center:      domain.Coordinates{Lat: 41.3851, Lng: 2.1734},
		Preferences: relaxedHalfDay(),
		StartTime:   mustTime(t, "10:00 AM"),
	}

	if _, err := GenerateRoute(context.Background(), req, source, nil, testRand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateRouteSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("database gone")}
	req := GenerateRouteRequest{
		Center:      domain.Coordinates{Lat: 41.3851, Lng: 2.1734},
		Preferences: relaxedHalfDay(),
	}

	if _, err := GenerateRoute(context.Background(), req, source, nil, testRand()); err == nil {
		t.Fatal("expected source error to surface")
	}
}

func TestPoolCacheKey(t *testing.T) {
	center := domain.Coordinates{Lat: 41.38506, Lng: 2.17340}

	key := PoolCacheKey(center, []string{"food", "art"})
	if key != "venues_41.3851_2.1734|art|food" {
		t.Errorf("key = %q", key)
	}

	// Taste order does not matter.
	if other := PoolCacheKey(center, []string{"art", "food"}); other != key {
		t.Errorf("key depends on taste order: %q vs %q", key, other)
	}
}
