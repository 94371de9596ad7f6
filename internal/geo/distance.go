// Package geo provides the two distance measures used by the planner:
// great-circle distance for displayed metrics and a cheap planar
// approximation for ranking.
package geo

import (
	"math"

	"culturis-route-service/internal/domain"
)

// Mean Earth radius in meters.
const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance between two coordinates in
// meters. NaN inputs propagate; callers treat non-finite results as
// "unknown".
func Haversine(a, b domain.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// PlanarDelta returns the Euclidean distance over raw coordinate deltas, in
// degrees. It has no physical unit and is only suitable for comparing
// nearby candidates, never for displayed metrics.
func PlanarDelta(a, b domain.Coordinates) float64 {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
