package repositories

import (
	"math"
	"testing"
)

func TestHaversineDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 43.238949, 76.889709, 43.238949, 76.889709, 0, 0.001},
		{"one degree of longitude at the equator", 0, 0, 0, 1, 111.19, 0.1},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.1},
		{"almaty to astana", 43.238949, 76.889709, 51.169392, 71.449074, 963, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("distance = %f; want %f ± %f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistanceKmSymmetric(t *testing.T) {
	a := HaversineDistanceKm(43.2, 76.9, 51.2, 71.4)
	b := HaversineDistanceKm(51.2, 71.4, 43.2, 76.9)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", a, b)
	}
}

func TestHaversineDistanceKmNonFinite(t *testing.T) {
	got := HaversineDistanceKm(math.NaN(), 0, 0, 0)
	if !math.IsNaN(got) {
		t.Errorf("NaN input produced %f; want NaN", got)
	}
}
