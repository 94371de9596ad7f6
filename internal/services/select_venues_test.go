package services

import (
	"testing"

	"culturis-route-service/internal/domain"
)

func venue(id string, affinity float64) domain.Venue {
	return domain.Venue{ID: id, Name: id, Affinity: affinity}
}

func venueIDs(vs []domain.Venue) []string {
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []domain.Venue, want ...string) {
	t.Helper()
	ids := venueIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestSelectVenuesTopByAffinity(t *testing.T) {
	pool := []domain.Venue{
		venue("c", 70), venue("e", 50), venue("a", 90), venue("d", 60), venue("b", 80),
	}
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusDiverse, VenueCount: 3}

	got, err := SelectVenues(pool, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIDs(t, got, "a", "b", "c")
}

func TestSelectVenuesStableOnTies(t *testing.T) {
	pool := []domain.Venue{
		venue("first", 80), venue("second", 80), venue("third", 80),
	}
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusDiverse, VenueCount: 2}

	got, err := SelectVenues(pool, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIDs(t, got, "first", "second")
}

func TestSelectVenuesDoesNotMutatePool(t *testing.T) {
	pool := []domain.Venue{venue("low", 10), venue("high", 99)}
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusDiverse, VenueCount: 2}

	if _, err := SelectVenues(pool, prefs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool[0].ID != "low" || pool[1].ID != "high" {
		t.Errorf("pool reordered in place: %v", venueIDs(pool))
	}
}

func TestSelectVenuesFocusTypeBoost(t *testing.T) {
	pool := []domain.Venue{
		{ID: "museum", Type: "Museum", Affinity: 75},
		{ID: "bistro", Type: "Restaurant", Affinity: 60},
	}
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusFood, VenueCount: 2}

	// 60 + 20 (type) outranks 75.
	got, err := SelectVenues(pool, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIDs(t, got, "bistro", "museum")
}

func TestFocusPriorityBoost(t *testing.T) {
	cases := []struct {
		name  string
		venue domain.Venue
		focus domain.Focus
		want  float64
	}{
		{
			name:  "diverse applies no bias",
			venue: domain.Venue{Type: "Restaurant", Qloo: &domain.QlooMetadata{Keywords: []string{"fine dining"}}},
			focus: domain.FocusDiverse,
			want:  0,
		},
		{
			name:  "type match",
			venue: domain.Venue{Type: "Art Museum"},
			focus: domain.FocusArts,
			want:  20,
		},
		{
			name:  "keyword match",
			venue: domain.Venue{Type: "Shop", Qloo: &domain.QlooMetadata{Keywords: []string{"street food"}}},
			focus: domain.FocusFood,
			want:  10,
		},
		{
			name:  "type and keyword stack",
			venue: domain.Venue{Type: "Restaurant", Qloo: &domain.QlooMetadata{Keywords: []string{"regional cuisine"}}},
			focus: domain.FocusFood,
			want:  30,
		},
		{
			name:  "no match",
			venue: domain.Venue{Type: "Park"},
			focus: domain.FocusFood,
			want:  0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FocusPriorityBoost(c.venue, c.focus); got != c.want {
				t.Errorf("FocusPriorityBoost = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSelectVenuesDurationAdjustment(t *testing.T) {
	pool := make([]domain.Venue, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, venue(string(rune('a'+i)), float64(100-i)))
	}

	cases := []struct {
		name     string
		duration domain.Duration
		count    int
		want     int
	}{
		{"quick caps at three", domain.DurationQuick, 5, 3},
		{"half-day honors request", domain.DurationHalfDay, 5, 5},
		{"full-day adds two", domain.DurationFullDay, 3, 5},
		{"full-day caps at seven", domain.DurationFullDay, 6, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prefs := domain.RoutePreferences{Duration: c.duration, Focus: domain.FocusDiverse, VenueCount: c.count}
			got, err := SelectVenues(pool, prefs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != c.want {
				t.Errorf("selected %d venues, want %d", len(got), c.want)
			}
		})
	}
}

func TestSelectVenuesSmallPool(t *testing.T) {
	pool := []domain.Venue{venue("only", 50)}
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusDiverse, VenueCount: 4}

	got, err := SelectVenues(pool, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIDs(t, got, "only")

	got, err = SelectVenues(nil, prefs)
	if err != nil {
		t.Fatalf("unexpected error on empty pool: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty pool yielded %v", venueIDs(got))
	}
}

func TestSelectVenuesRejectsNonPositiveCount(t *testing.T) {
	prefs := domain.RoutePreferences{Duration: domain.DurationHalfDay, Focus: domain.FocusDiverse, VenueCount: 0}
	if _, err := SelectVenues([]domain.Venue{venue("a", 50)}, prefs); err == nil {
		t.Fatal("expected error for non-positive venue count")
	}
}
