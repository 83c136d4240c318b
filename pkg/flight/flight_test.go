package flight

import (
	"math"
	"testing"

	"github.com/unklstewy/nearflights/pkg/geo"
	"github.com/unklstewy/nearflights/pkg/opensky"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// stateAt builds a minimal state vector with a position.
func stateAt(icao, callsign string, lat, lon float64) opensky.StateVector {
	return opensky.StateVector{
		ICAO24:    icao,
		Callsign:  strPtr(callsign),
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lon),
	}
}

// TestAirlineName checks the callsign prefix lookup.
func TestAirlineName(t *testing.T) {
	tests := []struct {
		callsign string
		want     string
	}{
		{"UAL1542", "United Airlines"},
		{"AALin", "American Airlines"},
		{"DAL45", "Delta Air Lines"},
		{"SWA2210", "Southwest Airlines"},
		{"RCH123", "Military - Air Force"},
		{"SAM46", "Military - Special Air Mission"},
		{"AF", "Military - Air Force"},
		{"BAW117", "Unknown Airline"},
		{"UNKNOWN", "Unknown Airline"},
		{"", "Unknown Airline"},
	}

	for _, tt := range tests {
		if got := AirlineName(tt.callsign); got != tt.want {
			t.Errorf("AirlineName(%q): expected %q, got %q", tt.callsign, tt.want, got)
		}
	}
}

// TestMilitaryClassification exercises the prefix check, including the spots
// where it disagrees with the airline-name table.
func TestMilitaryClassification(t *testing.T) {
	tests := []struct {
		callsign string
		want     bool
	}{
		{"RCH123", true},
		{"SAM46", true},
		{"NAVY01", true},
		{"ARMY9", true},
		{"AF123", true},
		{"DAL45", false},
		{"UNKNOWN", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMilitary(tt.callsign); got != tt.want {
			t.Errorf("IsMilitary(%q): expected %v, got %v", tt.callsign, tt.want, got)
		}
	}
}

// TestMilitaryAirlineMismatch pins down the known inconsistency between the
// two classifiers: the military check matches the two-character "AF" prefix,
// but airline lookup keys on the first three characters, so "AF123" is
// military with an unknown airline while bare "AF" resolves both ways.
// "NAVY01" disagrees the same way from the other side of the table.
func TestMilitaryAirlineMismatch(t *testing.T) {
	if !IsMilitary("AF123") {
		t.Error("Expected AF123 to classify as military")
	}
	if got := AirlineName("AF123"); got != "Unknown Airline" {
		t.Errorf("Expected AF123 airline to stay unknown, got %q", got)
	}

	if !IsMilitary("NAVY01") {
		t.Error("Expected NAVY01 to classify as military")
	}
	if got := AirlineName("NAVY01"); got != "Unknown Airline" {
		t.Errorf("Expected NAVY01 airline lookup to miss on 3-char prefix, got %q", got)
	}
}

// TestNormalizeSkipsMissingCoordinates verifies that records without a
// position never reach the output.
func TestNormalizeSkipsMissingCoordinates(t *testing.T) {
	ref := geo.Coordinate{Latitude: 40.0, Longitude: -74.0}

	states := []opensky.StateVector{
		stateAt("a00001", "DAL45", 40.5, -74.5),
		{ICAO24: "a00002", Callsign: strPtr("UAL1"), Latitude: floatPtr(41.0)}, // no longitude
		stateAt("a00003", "SWA2", 39.5, -73.5),
	}

	flights := Normalize(states, ref)

	if len(flights) != 2 {
		t.Fatalf("Expected 2 flights after dropping unplaceable record, got %d", len(flights))
	}
	if flights[0].ICAO24 != "a00001" || flights[1].ICAO24 != "a00003" {
		t.Errorf("Expected provider order preserved, got %s, %s", flights[0].ICAO24, flights[1].ICAO24)
	}
}

// TestNormalizeFields checks field substitution and unit conversion.
func TestNormalizeFields(t *testing.T) {
	ref := geo.Coordinate{Latitude: 40.0, Longitude: -74.0}

	sv := opensky.StateVector{
		ICAO24:        "abc123",
		Callsign:      strPtr("RCH123  "),
		OriginCountry: strPtr("United States"),
		LastContact:   floatPtr(1700000000),
		Latitude:      floatPtr(41.0),
		Longitude:     floatPtr(-74.0),
		BaroAltitude:  floatPtr(10000),
		Velocity:      floatPtr(100),
	}

	flights := Normalize([]opensky.StateVector{sv}, ref)
	if len(flights) != 1 {
		t.Fatalf("Expected 1 flight, got %d", len(flights))
	}
	f := flights[0]

	if f.Callsign != "RCH123" {
		t.Errorf("Expected trimmed callsign RCH123, got %q", f.Callsign)
	}
	if f.Airline != "Military - Air Force" {
		t.Errorf("Expected Military - Air Force, got %q", f.Airline)
	}
	if !f.Military {
		t.Error("Expected military flag set")
	}
	if f.OriginCountry != "United States" {
		t.Errorf("Expected origin country passthrough, got %q", f.OriginCountry)
	}
	if math.Abs(f.SpeedKmh-185.2) > 1e-9 {
		t.Errorf("Expected speed 185.2 km/h, got %f", f.SpeedKmh)
	}
	if f.Altitude == nil || *f.Altitude != 10000 {
		t.Errorf("Expected altitude passthrough, got %v", f.Altitude)
	}
	if f.AltitudeDisplay() != "10000" {
		t.Errorf("Expected altitude display 10000, got %q", f.AltitudeDisplay())
	}
	if f.LastUpdate == UnknownValue {
		t.Error("Expected formatted last update, got Unknown")
	}
	if f.DistanceKm <= 0 {
		t.Errorf("Expected positive distance, got %f", f.DistanceKm)
	}
	if math.Abs(f.BearingDeg-0.0) > 0.5 {
		t.Errorf("Expected roughly due-north bearing, got %f", f.BearingDeg)
	}
	if f.DepartureAirport != UnknownValue || f.ArrivalAirport != UnknownValue {
		t.Error("Expected route endpoints to stay Unknown placeholders")
	}
	if f.Status != "Active" {
		t.Errorf("Expected status Active, got %q", f.Status)
	}
}

// TestNormalizeMissingFields checks the substitutions for absent fields.
func TestNormalizeMissingFields(t *testing.T) {
	ref := geo.Coordinate{Latitude: 40.0, Longitude: -74.0}

	sv := opensky.StateVector{
		ICAO24:    "abc123",
		Latitude:  floatPtr(40.5),
		Longitude: floatPtr(-74.5),
	}

	f := Normalize([]opensky.StateVector{sv}, ref)[0]

	if f.Callsign != UnknownCallsign {
		t.Errorf("Expected callsign UNKNOWN, got %q", f.Callsign)
	}
	if f.Airline != "Unknown Airline" {
		t.Errorf("Expected Unknown Airline, got %q", f.Airline)
	}
	if f.Military {
		t.Error("Expected military false for missing callsign")
	}
	if f.OriginCountry != UnknownValue {
		t.Errorf("Expected Unknown origin country, got %q", f.OriginCountry)
	}
	if f.SpeedKmh != 0 {
		t.Errorf("Expected zero speed, got %f", f.SpeedKmh)
	}
	if f.AltitudeDisplay() != UnknownValue {
		t.Errorf("Expected Unknown altitude display, got %q", f.AltitudeDisplay())
	}
	if f.LastUpdate != UnknownValue {
		t.Errorf("Expected Unknown last update, got %q", f.LastUpdate)
	}
}

// TestNormalizeBlankCallsign verifies that an all-blank callsign normalizes
// like a missing one.
func TestNormalizeBlankCallsign(t *testing.T) {
	ref := geo.Coordinate{Latitude: 40.0, Longitude: -74.0}
	sv := stateAt("abc123", "        ", 40.5, -74.5)

	f := Normalize([]opensky.StateVector{sv}, ref)[0]

	if f.Callsign != UnknownCallsign {
		t.Errorf("Expected UNKNOWN for blank callsign, got %q", f.Callsign)
	}
	if f.Airline != "Unknown Airline" {
		t.Errorf("Expected Unknown Airline for blank callsign, got %q", f.Airline)
	}
}

// TestRank checks ordering, truncation and idempotence.
func TestRank(t *testing.T) {
	flights := []Flight{
		{ICAO24: "c", DistanceKm: 30},
		{ICAO24: "a", DistanceKm: 10},
		{ICAO24: "b", DistanceKm: 20},
		{ICAO24: "d", DistanceKm: 10}, // tie with "a", later in provider order
	}

	t.Run("Sorted ascending with stable ties", func(t *testing.T) {
		ranked := Rank(flights, 10)

		if len(ranked) != 4 {
			t.Fatalf("Expected all 4 flights, got %d", len(ranked))
		}
		wantOrder := []string{"a", "d", "b", "c"}
		for i, want := range wantOrder {
			if ranked[i].ICAO24 != want {
				t.Errorf("Position %d: expected %s, got %s", i, want, ranked[i].ICAO24)
			}
		}
	})

	t.Run("Truncates to count", func(t *testing.T) {
		ranked := Rank(flights, 2)

		if len(ranked) != 2 {
			t.Fatalf("Expected 2 flights, got %d", len(ranked))
		}
		if ranked[0].ICAO24 != "a" || ranked[1].ICAO24 != "d" {
			t.Errorf("Expected two nearest, got %s, %s", ranked[0].ICAO24, ranked[1].ICAO24)
		}
	})

	t.Run("Idempotent on own output", func(t *testing.T) {
		once := Rank(flights, 3)
		twice := Rank(once, 3)

		if len(once) != len(twice) {
			t.Fatalf("Expected same length, got %d and %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ICAO24 != twice[i].ICAO24 {
				t.Errorf("Position %d differs after re-ranking: %s vs %s", i, once[i].ICAO24, twice[i].ICAO24)
			}
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if got := Rank(nil, 5); len(got) != 0 {
			t.Errorf("Expected empty output, got %d flights", len(got))
		}
	})

	t.Run("Does not mutate input", func(t *testing.T) {
		Rank(flights, 10)
		if flights[0].ICAO24 != "c" {
			t.Error("Expected input slice to keep provider order")
		}
	})
}
