package services

import (
	"math"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/geo"
)

// Average walking speed assumed for the summary estimate, in km/h.
const walkingSpeedKmh = 5

// Flat per-stop minute allowance in the summary estimate. Deliberately
// coarser than the itinerary's dwell model: this figure answers "roughly
// how long is this loop" on the map overlay.
const summaryMinutesPerStop = 15

// ComputeMetrics aggregates straight-line distance and a walking-time
// estimate over an ordered route. Fewer than two stops means no legs and
// zero metrics. Legs with missing coordinates contribute no distance.
//
// The returned time is independent of PlannedRoute.TotalDuration and the
// two are not expected to agree; they serve different displays.
func ComputeMetrics(stops []domain.RouteStop) domain.RouteMetrics {
	if len(stops) < 2 {
		return domain.RouteMetrics{}
	}

	totalMeters := 0.0
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i].Coordinates, stops[i+1].Coordinates
		if a == nil || b == nil {
			continue
		}
		if d := geo.Haversine(*a, *b); !math.IsNaN(d) {
			totalMeters += d
		}
	}

	walkingMinutes := totalMeters / 1000 / walkingSpeedKmh * 60
	return domain.RouteMetrics{
		TotalDistanceMeters: totalMeters,
		TotalTimeMinutes:    walkingMinutes + float64(summaryMinutesPerStop*len(stops)),
	}
}
