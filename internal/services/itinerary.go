package services

import (
	"math"
	"math/rand"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/geo"
)

// Base dwell time in minutes per venue type. Unrecognized types fall back
// to defaultDwellMinutes rather than failing the itinerary.
var baseDwellMinutes = map[string]float64{
	"Restaurant":      90,
	"Cafe":            45,
	"Bar":             60,
	"Art Museum":      120,
	"Museum":          90,
	"Market":          60,
	"Park":            45,
	"Event Venue":     120,
	"Gallery":         75,
	"Shop":            30,
	"Historical Site": 60,
}

const defaultDwellMinutes = 60

var paceMultipliers = map[domain.Pace]float64{
	domain.PaceQuick:    0.7,
	domain.PaceRelaxed:  1.0,
	domain.PaceThorough: 1.3,
}

var durationMultipliers = map[domain.Duration]float64{
	domain.DurationQuick:   0.8,
	domain.DurationHalfDay: 1.0,
	domain.DurationFullDay: 1.2,
}

// Travel-time clamp in minutes. Legs shorter than a city block still cost
// something; legs across town are capped so a single outlier cannot blow
// up the schedule.
const (
	minTravelMinutes = 5
	maxTravelMinutes = 30
)

// BuildItinerary annotates an ordered venue sequence with arrival times,
// dwell times, travel legs, and notes, advancing a running wall clock from
// start. The first stop has no travel leg and arrives at start.
//
// rng feeds the popularity-based affinity jitter and the travel-time
// fallback for venues without coordinates; pass a seeded source in tests
// for determinism.
func BuildItinerary(
	ordered []domain.Venue,
	prefs domain.RoutePreferences,
	start domain.TimeOfDay,
	rng *rand.Rand,
) []domain.RouteStop {
	stops := make([]domain.RouteStop, 0, len(ordered))
	clock := start

	for i, v := range ordered {
		travel := 0
		estimated := false
		if i > 0 {
			travel, estimated = estimatedTravelTime(ordered[i-1], v, rng)
			clock = clock.Add(travel)
		}

		dwell := estimatedDwellTime(v, prefs)

		stops = append(stops, domain.RouteStop{
			Venue:            v,
			Order:            i + 1,
			ArrivalTime:      clock,
			EstimatedTime:    dwell,
			TravelTime:       travel,
			TravelEstimated:  estimated,
			Notes:            VenueNotes(v, prefs.Focus),
			AdjustedAffinity: adjustedAffinity(v, rng),
		})

		// Departure feeds the next leg.
		clock = clock.Add(dwell)
	}

	return stops
}

// TotalDuration sums every stop's dwell and travel minutes.
func TotalDuration(stops []domain.RouteStop) int {
	total := 0
	for _, s := range stops {
		total += s.EstimatedTime + s.TravelTime
	}
	return total
}

// estimatedDwellTime derives the visit length from the venue type scaled
// by pace and duration preferences, with popular and richly-tagged venues
// earning extra time.
func estimatedDwellTime(v domain.Venue, prefs domain.RoutePreferences) int {
	base, ok := baseDwellMinutes[v.Type]
	if !ok {
		base = defaultDwellMinutes
	}

	if v.Qloo != nil {
		if v.Qloo.Popularity > 0.999 {
			base *= 1.2
		}
		if len(v.Qloo.Keywords) > 3 {
			base *= 1.1
		}
	}

	pace, ok := paceMultipliers[prefs.Pace]
	if !ok {
		pace = 1.0
	}
	duration, ok := durationMultipliers[prefs.Duration]
	if !ok {
		duration = 1.0
	}

	return int(math.Round(base * pace * duration))
}

// estimatedTravelTime converts the planar distance between two venues into
// minutes, clamped to [minTravelMinutes, maxTravelMinutes]. When either
// venue lacks coordinates the leg is filled with a pseudo-random estimate
// in [10,25) and flagged so callers can tell it apart from a computed
// value.
func estimatedTravelTime(from, to domain.Venue, rng *rand.Rand) (minutes int, estimated bool) {
	if from.Coordinates == nil || to.Coordinates == nil {
		return rng.Intn(15) + 10, true
	}

	d := geo.PlanarDelta(*from.Coordinates, *to.Coordinates)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return rng.Intn(15) + 10, true
	}

	travel := int(math.Round(d*1000)) + 10
	if travel < minTravelMinutes {
		travel = minTravelMinutes
	}
	if travel > maxTravelMinutes {
		travel = maxTravelMinutes
	}
	return travel, false
}

// adjustedAffinity nudges the displayed match score so near-identical
// tourist magnets do not all read the same: oversaturated venues lose up
// to 10 points (floored at 70), under-the-radar venues gain up to 8
// (capped at 95). Purely cosmetic; selection has already happened.
func adjustedAffinity(v domain.Venue, rng *rand.Rand) float64 {
	if !v.HasPopularity() {
		return v.Affinity
	}

	switch p := v.Qloo.Popularity; {
	case p > 0.9999:
		return math.Max(70, v.Affinity-float64(rng.Intn(10)))
	case p < 0.995:
		return math.Min(95, v.Affinity+float64(rng.Intn(8)))
	}
	return v.Affinity
}
