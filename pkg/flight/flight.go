// Package flight turns raw transponder state vectors into display-ready
// flight records ranked by distance from a reference location.
package flight

import (
	"strconv"
	"strings"
	"time"

	"github.com/unklstewy/nearflights/pkg/geo"
	"github.com/unklstewy/nearflights/pkg/opensky"
)

const (
	// UnknownCallsign substitutes for a blank or missing callsign
	UnknownCallsign = "UNKNOWN"

	// UnknownValue substitutes for any other missing display field
	UnknownValue = "Unknown"

	// velocityToKmh converts the provider's velocity unit to km/h
	velocityToKmh = 1.852

	// lastUpdateFormat is the display layout for the last-contact timestamp
	lastUpdateFormat = "2006-01-02 15:04:05"
)

// Flight is a normalized aircraft record with proximity data attached.
// The set of flights is rebuilt wholesale on every refresh; no identity is
// carried across snapshots.
type Flight struct {
	// Callsign is the trimmed flight callsign, or UnknownCallsign
	Callsign string

	// Airline is the operator name derived from the callsign prefix
	Airline string

	// Military reports whether the callsign matches a military operator prefix
	Military bool

	// OriginCountry is the country of registration
	OriginCountry string

	// DistanceKm is the great-circle distance from the reference point
	DistanceKm float64

	// BearingDeg is the initial bearing from the reference point (0-360)
	BearingDeg float64

	// Altitude is the barometric altitude in meters, nil when not reported
	Altitude *float64

	// SpeedKmh is the ground speed in km/h, zero when not reported
	SpeedKmh float64

	// LastUpdate is the formatted last-contact timestamp, or UnknownValue
	LastUpdate string

	// Latitude in decimal degrees
	Latitude float64

	// Longitude in decimal degrees
	Longitude float64

	// ICAO24 is the unique 24-bit transponder address
	ICAO24 string

	// DepartureAirport and ArrivalAirport are always UnknownValue: the
	// state feed carries no route endpoints, so these stay placeholders
	// rather than inviting a route-lookup feature.
	DepartureAirport string
	ArrivalAirport   string

	// Status is always "Active"; the snapshot has no lifecycle information
	Status string
}

// AltitudeDisplay returns the altitude for rendering, UnknownValue when the
// provider did not report one.
func (f Flight) AltitudeDisplay() string {
	if f.Altitude == nil {
		return UnknownValue
	}
	return formatFloat(*f.Altitude)
}

// Normalize converts raw state vectors into Flight records relative to ref.
// Records missing either coordinate cannot be placed or ranked and are
// dropped; everything else passes through with missing fields substituted.
// The output preserves provider order and is not yet sorted.
func Normalize(states []opensky.StateVector, ref geo.Coordinate) []Flight {
	flights := make([]Flight, 0, len(states))

	for _, sv := range states {
		if sv.Longitude == nil || sv.Latitude == nil {
			continue
		}

		pos := geo.Coordinate{Latitude: *sv.Latitude, Longitude: *sv.Longitude}

		callsign := UnknownCallsign
		if sv.Callsign != nil {
			if trimmed := strings.TrimSpace(*sv.Callsign); trimmed != "" {
				callsign = trimmed
			}
		}

		country := UnknownValue
		if sv.OriginCountry != nil && *sv.OriginCountry != "" {
			country = *sv.OriginCountry
		}

		speed := 0.0
		if sv.Velocity != nil {
			speed = *sv.Velocity * velocityToKmh
		}

		lastUpdate := UnknownValue
		if sv.LastContact != nil {
			lastUpdate = time.Unix(int64(*sv.LastContact), 0).Format(lastUpdateFormat)
		}

		flights = append(flights, Flight{
			Callsign:         callsign,
			Airline:          AirlineName(callsign),
			Military:         IsMilitary(callsign),
			OriginCountry:    country,
			DistanceKm:       geo.DistanceKm(ref, pos),
			BearingDeg:       geo.Bearing(ref, pos),
			Altitude:         sv.BaroAltitude,
			SpeedKmh:         speed,
			LastUpdate:       lastUpdate,
			Latitude:         *sv.Latitude,
			Longitude:        *sv.Longitude,
			ICAO24:           sv.ICAO24,
			DepartureAirport: UnknownValue,
			ArrivalAirport:   UnknownValue,
			Status:           "Active",
		})
	}

	return flights
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
