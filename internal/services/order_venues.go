package services

import (
	"math"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/geo"
)

// OrderVenues arranges selected venues into a visiting order using a
// greedy nearest-neighbor walk.
//
// The walk is seeded at the first venue (selection puts the strongest
// match first) and at each step hops to the closest unplaced venue by
// planar distance. It minimizes the immediate leg only; with at most 7
// stops the O(n²) construction is negligible and a global optimum is not
// worth the complexity.
func OrderVenues(selected []domain.Venue) []domain.Venue {
	// Nothing to reorder for 0, 1, or 2 stops.
	if len(selected) <= 2 {
		ordered := make([]domain.Venue, len(selected))
		copy(ordered, selected)
		return ordered
	}

	ordered := make([]domain.Venue, 0, len(selected))
	ordered = append(ordered, selected[0])

	remaining := make([]domain.Venue, len(selected)-1)
	copy(remaining, selected[1:])

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]

		best := 0
		bestDist := rankingDistance(last, remaining[0])
		// Strict less-than keeps the earliest remaining candidate on ties,
		// which makes the order deterministic for symmetric layouts.
		for i := 1; i < len(remaining); i++ {
			if d := rankingDistance(last, remaining[i]); d < bestDist {
				best = i
				bestDist = d
			}
		}

		ordered = append(ordered, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

// rankingDistance is the planar distance between two venues, with
// missing or non-finite coordinates ranking as maximally far so that
// mappable venues are always visited first.
func rankingDistance(a, b domain.Venue) float64 {
	if a.Coordinates == nil || b.Coordinates == nil {
		return math.MaxFloat64
	}

	d := geo.PlanarDelta(*a.Coordinates, *b.Coordinates)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return math.MaxFloat64
	}
	return d
}
