package domain

import "fmt"

// Duration controls how much of the day the route should fill. It scales
// both the number of stops and the per-stop dwell time.
type Duration string

const (
	DurationQuick   Duration = "quick"
	DurationHalfDay Duration = "half-day"
	DurationFullDay Duration = "full-day"
)

// Pace controls how thoroughly each stop is visited.
type Pace string

const (
	PaceQuick    Pace = "quick"
	PaceRelaxed  Pace = "relaxed"
	PaceThorough Pace = "thorough"
)

// Focus is a route-wide thematic bias affecting selection and notes.
type Focus string

const (
	FocusDiverse Focus = "diverse"
	FocusFood    Focus = "food"
	FocusArts    Focus = "arts"
	FocusCulture Focus = "culture"
)

// RoutePreferences configures a planning request.
type RoutePreferences struct {
	Duration   Duration
	Pace       Pace
	Focus      Focus
	VenueCount int
}

// DefaultPreferences mirrors the planner's initial UI state.
func DefaultPreferences() RoutePreferences {
	return RoutePreferences{
		Duration:   DurationHalfDay,
		Pace:       PaceRelaxed,
		Focus:      FocusDiverse,
		VenueCount: 3,
	}
}

// Validate fails fast on arguments that would produce a nonsensical route.
func (p RoutePreferences) Validate() error {
	if p.VenueCount < 2 {
		return fmt.Errorf("route preferences: venue count must be at least 2, got %d", p.VenueCount)
	}

	switch p.Duration {
	case DurationQuick, DurationHalfDay, DurationFullDay:
	default:
		return fmt.Errorf("route preferences: unknown duration %q", p.Duration)
	}

	switch p.Pace {
	case PaceQuick, PaceRelaxed, PaceThorough:
	default:
		return fmt.Errorf("route preferences: unknown pace %q", p.Pace)
	}

	switch p.Focus {
	case FocusDiverse, FocusFood, FocusArts, FocusCulture:
	default:
		return fmt.Errorf("route preferences: unknown focus %q", p.Focus)
	}

	return nil
}

// AdjustedVenueCount applies the duration policy to the requested stop
// count: a quick outing caps at 3 stops, a full day stretches the route by
// two stops up to 7 (bounded by the pool).
func (p RoutePreferences) AdjustedVenueCount(poolSize int) int {
	count := p.VenueCount

	switch p.Duration {
	case DurationQuick:
		if count > 3 {
			count = 3
		}
	case DurationFullDay:
		count += 2
		limit := poolSize
		if limit > 7 {
			limit = 7
		}
		if count > limit {
			count = limit
		}
	}

	if count > poolSize {
		count = poolSize
	}
	return count
}
