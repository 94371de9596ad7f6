package dto

import (
	"fmt"

	"culturis-route-service/internal/domain"
)

type Preferences struct {
	Duration   string `json:"duration"`
	Pace       string `json:"pace"`
	Focus      string `json:"focus"`
	VenueCount int    `json:"venue_count"`
}

func (p Preferences) ToDomain() domain.RoutePreferences {
	prefs := domain.DefaultPreferences()
	if p.Duration != "" {
		prefs.Duration = domain.Duration(p.Duration)
	}
	if p.Pace != "" {
		prefs.Pace = domain.Pace(p.Pace)
	}
	if p.Focus != "" {
		prefs.Focus = domain.Focus(p.Focus)
	}
	if p.VenueCount != 0 {
		prefs.VenueCount = p.VenueCount
	}
	return prefs
}

func PreferencesFromDomain(p domain.RoutePreferences) Preferences {
	return Preferences{
		Duration:   string(p.Duration),
		Pace:       string(p.Pace),
		Focus:      string(p.Focus),
		VenueCount: p.VenueCount,
	}
}

type PlanRouteRequest struct {
	Lat          float64     `json:"lat"`
	Lng          float64     `json:"lng"`
	RadiusMeters float64     `json:"radius_meters"`
	Tastes       []string    `json:"tastes"`
	Preferences  Preferences `json:"preferences"`
	StartTime    string      `json:"start_time"`
}

type RouteStop struct {
	Venue

	Order           int    `json:"order"`
	ArrivalTime     string `json:"arrival_time"`
	EstimatedTime   int    `json:"estimated_time"`
	TravelTime      int    `json:"travel_time"`
	TravelEstimated bool   `json:"travel_estimated,omitempty"`
	Notes           string `json:"notes"`
}

type Route struct {
	Venues        []RouteStop `json:"venues"`
	TotalDuration int         `json:"total_duration"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	Preferences   Preferences `json:"preferences"`
}

type RouteMetrics struct {
	TotalDistanceMeters float64 `json:"total_distance_meters"`
	TotalTimeMinutes    float64 `json:"total_time_minutes"`
}

type PlanRouteResponse struct {
	Route   Route        `json:"route"`
	Metrics RouteMetrics `json:"metrics"`
}

type StopSelector struct {
	Ordinal string `json:"ordinal,omitempty"`
	Type    string `json:"type,omitempty"`
}

type ReplaceStopRequest struct {
	Route    Route        `json:"route"`
	Selector StopSelector `json:"selector"`
	Pool     []Venue      `json:"pool"`
}

// ReplaceStopResponse carries either the updated plan or, when nothing
// could be replaced, a help message the client should surface verbatim.
type ReplaceStopResponse struct {
	Replaced bool               `json:"replaced"`
	Plan     *PlanRouteResponse `json:"plan,omitempty"`
	Help     string             `json:"help,omitempty"`
}

func RouteStopFromDomain(s domain.RouteStop) RouteStop {
	out := RouteStop{
		Venue:           VenueFromDomain(s.Venue),
		Order:           s.Order,
		ArrivalTime:     s.ArrivalTime.String(),
		EstimatedTime:   s.EstimatedTime,
		TravelTime:      s.TravelTime,
		TravelEstimated: s.TravelEstimated,
		Notes:           s.Notes,
	}
	out.Affinity = s.AdjustedAffinity
	return out
}

func RouteFromDomain(r domain.PlannedRoute) Route {
	stops := make([]RouteStop, 0, len(r.Venues))
	for _, s := range r.Venues {
		stops = append(stops, RouteStopFromDomain(s))
	}

	return Route{
		Venues:        stops,
		TotalDuration: r.TotalDuration,
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		Preferences:   PreferencesFromDomain(r.Preferences),
	}
}

// ToDomain rebuilds a domain route from its wire form so a client-held
// route can be mutated server-side.
func (r Route) ToDomain() (domain.PlannedRoute, error) {
	start, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return domain.PlannedRoute{}, fmt.Errorf("route payload: %w", err)
	}
	end, err := domain.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return domain.PlannedRoute{}, fmt.Errorf("route payload: %w", err)
	}

	stops := make([]domain.RouteStop, 0, len(r.Venues))
	for i, s := range r.Venues {
		arrival, err := domain.ParseTimeOfDay(s.ArrivalTime)
		if err != nil {
			return domain.PlannedRoute{}, fmt.Errorf("route payload: stop %d: %w", i+1, err)
		}

		stop := domain.RouteStop{
			Venue:            s.Venue.ToDomain(),
			Order:            s.Order,
			ArrivalTime:      arrival,
			EstimatedTime:    s.EstimatedTime,
			TravelTime:       s.TravelTime,
			TravelEstimated:  s.TravelEstimated,
			Notes:            s.Notes,
			AdjustedAffinity: s.Affinity,
		}
		stops = append(stops, stop)
	}

	return domain.PlannedRoute{
		Venues:        stops,
		TotalDuration: r.TotalDuration,
		StartTime:     start,
		EndTime:       end,
		Preferences:   r.Preferences.ToDomain(),
	}, nil
}
