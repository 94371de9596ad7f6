package services

import (
	"sort"
	"testing"

	"culturis-route-service/internal/domain"
)

func placedVenue(id string, lat, lng float64) domain.Venue {
	return domain.Venue{ID: id, Name: id, Coordinates: &domain.Coordinates{Lat: lat, Lng: lng}}
}

func TestOrderVenuesNearestNeighbor(t *testing.T) {
	// From A the closest is C, then B.
	selected := []domain.Venue{
		placedVenue("A", 0, 0),
		placedVenue("B", 10, 0),
		placedVenue("C", 1, 0),
	}

	got := OrderVenues(selected)
	assertIDs(t, got, "A", "C", "B")
}

func TestOrderVenuesKeepsShortInputs(t *testing.T) {
	for _, selected := range [][]domain.Venue{
		nil,
		{placedVenue("A", 0, 0)},
		{placedVenue("B", 5, 5), placedVenue("A", 0, 0)},
	} {
		got := OrderVenues(selected)
		if len(got) != len(selected) {
			t.Fatalf("length changed: got %d, want %d", len(got), len(selected))
		}
		for i := range selected {
			if got[i].ID != selected[i].ID {
				t.Errorf("order changed for %d inputs: %v", len(selected), venueIDs(got))
			}
		}
	}
}

func TestOrderVenuesTieBreaksOnInputOrder(t *testing.T) {
	// B and C are equidistant from A; B is encountered first.
	selected := []domain.Venue{
		placedVenue("A", 0, 0),
		placedVenue("B", 1, 0),
		placedVenue("C", -1, 0),
		placedVenue("D", 2, 0),
	}

	got := OrderVenues(selected)
	assertIDs(t, got, "A", "B", "D", "C")
}

func TestOrderVenuesUnmappableVisitedLast(t *testing.T) {
	selected := []domain.Venue{
		placedVenue("A", 0, 0),
		{ID: "nowhere", Name: "nowhere"},
		placedVenue("B", 0.5, 0),
		placedVenue("C", 0.1, 0),
	}

	got := OrderVenues(selected)
	assertIDs(t, got, "A", "C", "B", "nowhere")
}

func TestOrderVenuesIsPermutation(t *testing.T) {
	selected := []domain.Venue{
		placedVenue("e", 41.2, 2.1),
		placedVenue("a", 41.5, 2.3),
		placedVenue("d", 41.1, 2.0),
		placedVenue("b", 41.9, 2.9),
		placedVenue("c", 40.8, 2.4),
	}

	got := OrderVenues(selected)
	if len(got) != len(selected) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(selected))
	}

	wantIDs := venueIDs(selected)
	gotIDs := venueIDs(got)
	sort.Strings(wantIDs)
	sort.Strings(gotIDs)
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("not a permutation: got %v", venueIDs(got))
		}
	}

	if got[0].ID != "e" {
		t.Errorf("walk must start at the first selected venue, started at %s", got[0].ID)
	}
}
