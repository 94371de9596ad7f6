package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"culturis-route-service/internal/domain"
)

// ErrNoReplacement reports that a replacement request could not be
// satisfied: either the selector matched no stop or no eligible candidate
// exists. Callers branch on it with errors.Is and surface a help message;
// it is not a retryable failure.
var ErrNoReplacement = errors.New("no eligible replacement for the requested stop")

// Ordinal positions a stop selector can name.
type Ordinal string

const (
	OrdinalNone   Ordinal = ""
	OrdinalFirst  Ordinal = "first"
	OrdinalSecond Ordinal = "second"
	OrdinalLast   Ordinal = "last"
)

// StopSelector identifies one stop of a route, by ordinal position or by a
// type substring such as "restaurant". Ordinals are resolved before type
// terms when both are set.
type StopSelector struct {
	Ordinal  Ordinal
	TypeTerm string
}

// IsZero reports whether the selector names nothing at all.
func (s StopSelector) IsZero() bool {
	return s.Ordinal == OrdinalNone && strings.TrimSpace(s.TypeTerm) == ""
}

// ReplaceStop substitutes one stop of an existing route with the best
// eligible venue from the candidate pool, keeping every other stop in
// place, then rebuilds the itinerary from the route's original start time
// and recomputes metrics.
//
// Eligible candidates are pool venues not already in the route; a
// type-based selector additionally restricts candidates to the target's
// type. The highest-affinity candidate wins, with pool order breaking
// ties. ErrNoReplacement is returned, and the input route left untouched,
// when nothing can be substituted.
func ReplaceStop(
	route domain.PlannedRoute,
	sel StopSelector,
	pool []domain.Venue,
	rng *rand.Rand,
) (*PlanResult, error) {
	if len(route.Venues) == 0 {
		return nil, fmt.Errorf("replace stop: route has no stops")
	}
	if sel.IsZero() {
		return nil, fmt.Errorf("replace stop: empty selector")
	}

	targetIdx, typeRestricted := resolveTarget(route.Venues, sel)
	if targetIdx < 0 {
		return nil, ErrNoReplacement
	}
	target := route.Venues[targetIdx]

	inRoute := make(map[string]struct{}, len(route.Venues))
	for _, s := range route.Venues {
		inRoute[s.ID] = struct{}{}
	}

	best := -1
	for i, cand := range pool {
		if _, taken := inRoute[cand.ID]; taken {
			continue
		}
		if typeRestricted && cand.Type != target.Type {
			continue
		}
		if best < 0 || cand.Affinity > pool[best].Affinity {
			best = i
		}
	}
	if best < 0 {
		return nil, ErrNoReplacement
	}

	venues := make([]domain.Venue, len(route.Venues))
	for i, s := range route.Venues {
		venues[i] = s.Venue
	}
	venues[targetIdx] = pool[best]

	// Times after the substitution shift, so the whole itinerary is rebuilt
	// from the original start.
	stops := BuildItinerary(venues, route.Preferences, route.StartTime, rng)
	total := TotalDuration(stops)

	updated := domain.PlannedRoute{
		Venues:        stops,
		TotalDuration: total,
		StartTime:     route.StartTime,
		EndTime:       route.StartTime.Add(total),
		Preferences:   route.Preferences,
	}

	return &PlanResult{Route: updated, Metrics: ComputeMetrics(stops)}, nil
}

// resolveTarget finds the index of the stop a selector names, and whether
// replacement candidates should be restricted to the target's type.
// Ordinal keywords take precedence over type terms.
func resolveTarget(stops []domain.RouteStop, sel StopSelector) (idx int, typeRestricted bool) {
	switch sel.Ordinal {
	case OrdinalFirst:
		return 0, false
	case OrdinalSecond:
		if len(stops) < 2 {
			return -1, false
		}
		return 1, false
	case OrdinalLast:
		return len(stops) - 1, false
	}

	term := strings.ToLower(strings.TrimSpace(sel.TypeTerm))
	if term == "" {
		return -1, false
	}
	for i, s := range stops {
		if strings.Contains(strings.ToLower(s.Type), term) {
			return i, true
		}
	}
	return -1, false
}
