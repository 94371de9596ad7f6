package domain

// Represents a single stop in a planned cultural route.
// A RouteStop is a Venue annotated with itinerary data: its position in the
// visiting order, the computed arrival clock time, and how long the visit
// and the preceding travel leg are expected to take.
type RouteStop struct {
	Venue

	Order         int
	ArrivalTime   TimeOfDay
	EstimatedTime int
	TravelTime    int
	Notes         string

	// AdjustedAffinity is the displayed match score after the popularity
	// nudge. The embedded Venue keeps the source affinity untouched so
	// re-annotation never compounds the adjustment.
	AdjustedAffinity float64

	// TravelEstimated marks a travel leg that was filled in with a
	// pseudo-random estimate because coordinates were missing. Diagnostic
	// output must keep these distinguishable from computed legs.
	TravelEstimated bool
}

// Represents the planned visiting route for a session.
// A PlannedRoute is the output of the planning pipeline and describes the
// ordered sequence of stops with aggregate timing. It is immutable planning
// data; mutation produces a new route value.
type PlannedRoute struct {
	Venues        []RouteStop
	TotalDuration int
	StartTime     TimeOfDay
	EndTime       TimeOfDay
	Preferences   RoutePreferences
}

// Coarse summary figures for a route, computed independently from the
// itinerary clock: straight-line distance over consecutive stops plus a
// flat walking-speed time estimate. Used for quick summary display only.
type RouteMetrics struct {
	TotalDistanceMeters float64
	TotalTimeMinutes    float64
}
