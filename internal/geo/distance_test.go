package geo

import (
	"math"
	"testing"

	"culturis-route-service/internal/domain"
)

func TestHaversineZeroDistance(t *testing.T) {
	p := domain.Coordinates{Lat: 40.7484, Lng: -73.9857}
	if d := Haversine(p, p); d != 0 {
		t.Errorf("Haversine(p, p) = %v, want 0", d)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Coordinates
		want float64 // meters
		tol  float64
	}{
		{
			name: "one degree of latitude",
			a:    domain.Coordinates{Lat: 0, Lng: 0},
			b:    domain.Coordinates{Lat: 1, Lng: 0},
			want: 111195,
			tol:  10,
		},
		{
			name: "empire state to grand central",
			a:    domain.Coordinates{Lat: 40.7484, Lng: -73.9857},
			b:    domain.Coordinates{Lat: 40.7527, Lng: -73.9772},
			want: 866,
			tol:  15,
		},
		{
			name: "paris to london",
			a:    domain.Coordinates{Lat: 48.8566, Lng: 2.3522},
			b:    domain.Coordinates{Lat: 51.5074, Lng: -0.1278},
			want: 343500,
			tol:  1000,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Haversine(c.a, c.b)
			if math.Abs(got-c.want) > c.tol {
				t.Errorf("Haversine = %.1f m, want %.1f ± %.1f", got, c.want, c.tol)
			}
		})
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := domain.Coordinates{Lat: 40.7484, Lng: -73.9857}
	b := domain.Coordinates{Lat: 48.8566, Lng: 2.3522}
	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-6 {
		t.Errorf("Haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversinePropagatesNaN(t *testing.T) {
	a := domain.Coordinates{Lat: math.NaN(), Lng: 0}
	b := domain.Coordinates{Lat: 1, Lng: 1}
	if d := Haversine(a, b); !math.IsNaN(d) {
		t.Errorf("Haversine with NaN input = %v, want NaN", d)
	}
}

func TestPlanarDelta(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lng: 0}
	b := domain.Coordinates{Lat: 3, Lng: 4}
	if d := PlanarDelta(a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("PlanarDelta = %v, want 5", d)
	}
	if d := PlanarDelta(a, a); d != 0 {
		t.Errorf("PlanarDelta(a, a) = %v, want 0", d)
	}
}
