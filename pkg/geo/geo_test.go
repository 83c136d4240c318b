package geo

import (
	"math"
	"testing"
)

// TestDistanceKmZero verifies that the distance from a point to itself is zero.
func TestDistanceKmZero(t *testing.T) {
	points := []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("Expected zero distance from %+v to itself, got %f", p, d)
		}
	}
}

// TestDistanceKmSymmetry verifies that distance(a,b) == distance(b,a).
func TestDistanceKmSymmetry(t *testing.T) {
	a := Coordinate{Latitude: 51.5074, Longitude: -0.1278}  // London
	b := Coordinate{Latitude: 40.7128, Longitude: -74.0060} // New York

	dab := DistanceKm(a, b)
	dba := DistanceKm(b, a)

	if math.Abs(dab-dba) > 1e-9 {
		t.Errorf("Expected symmetric distances, got %f and %f", dab, dba)
	}
}

// TestDistanceKmReference checks known reference distances.
func TestDistanceKmReference(t *testing.T) {
	tests := []struct {
		name      string
		from      Coordinate
		to        Coordinate
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "Equator quarter circumference",
			from:      Coordinate{Latitude: 0, Longitude: 0},
			to:        Coordinate{Latitude: 0, Longitude: 90},
			wantKm:    EarthRadiusKm * math.Pi / 2,
			tolerance: 0.001,
		},
		{
			name:      "Equator to north pole",
			from:      Coordinate{Latitude: 0, Longitude: 0},
			to:        Coordinate{Latitude: 90, Longitude: 0},
			wantKm:    EarthRadiusKm * math.Pi / 2,
			tolerance: 0.001,
		},
		{
			name:      "Antipodal points",
			from:      Coordinate{Latitude: 0, Longitude: 0},
			to:        Coordinate{Latitude: 0, Longitude: 180},
			wantKm:    EarthRadiusKm * math.Pi,
			tolerance: 0.001,
		},
		{
			name:      "London to Paris",
			from:      Coordinate{Latitude: 51.5074, Longitude: -0.1278},
			to:        Coordinate{Latitude: 48.8566, Longitude: 2.3522},
			wantKm:    343.5,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.from, tt.to)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Expected %.3f km, got %.3f km", tt.wantKm, got)
			}
		})
	}
}

// TestBearing checks cardinal bearings from a mid-latitude point.
func TestBearing(t *testing.T) {
	origin := Coordinate{Latitude: 40.0, Longitude: -74.0}

	tests := []struct {
		name      string
		to        Coordinate
		want      float64
		tolerance float64
	}{
		{"Due north", Coordinate{Latitude: 41.0, Longitude: -74.0}, 0.0, 0.1},
		{"Due south", Coordinate{Latitude: 39.0, Longitude: -74.0}, 180.0, 0.1},
		{"Roughly east", Coordinate{Latitude: 40.0, Longitude: -73.0}, 90.0, 1.0},
		{"Roughly west", Coordinate{Latitude: 40.0, Longitude: -75.0}, 270.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(origin, tt.to)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Expected bearing %.1f, got %.1f", tt.want, got)
			}
		})
	}
}
