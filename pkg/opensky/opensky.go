// Package opensky provides a client for the OpenSky Network REST API.
//
// The API exposes a global snapshot of aircraft transponder state vectors.
// Anonymous access is supported but rate limited, so the client enforces a
// minimum interval between requests.
//
// API Documentation: https://openskynetwork.github.io/opensky-api/rest.html
package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the OpenSky Network REST API base URL
	DefaultBaseURL = "https://opensky-network.org/api"

	// minRequestInterval is the minimum spacing between anonymous API calls
	minRequestInterval = time.Second
)

// Client represents an OpenSky Network API client.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new OpenSky API client.
//
// baseURL should be DefaultBaseURL (or a test server URL).
// timeout bounds each request; zero means no timeout, which matches the
// behavior this client replaces and is a known limitation: an unresponsive
// provider blocks the caller until the connection drops.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(minRequestInterval), 1),
	}
}

// statesResponse represents the JSON envelope of the states/all endpoint.
type statesResponse struct {
	// Time is the snapshot timestamp (seconds since epoch)
	Time int64 `json:"time"`

	// States is the list of positional state vectors.
	// May be null when no data is available.
	States []StateVector `json:"states"`
}

// StateVector is one aircraft transponder report from the global snapshot.
//
// The wire format is a positional JSON array, not an object. Any field other
// than the ICAO address may be null, so nullable fields are pointers.
type StateVector struct {
	// ICAO24 is the unique 24-bit ICAO transponder address (e.g., "a12345")
	ICAO24 string

	// Callsign is the flight callsign, blank-padded to 8 characters
	Callsign *string

	// OriginCountry is the country of registration
	OriginCountry *string

	// LastContact is the timestamp of the last position report
	// (seconds since epoch)
	LastContact *float64

	// Longitude in decimal degrees
	Longitude *float64

	// Latitude in decimal degrees
	Latitude *float64

	// BaroAltitude is the barometric altitude in meters
	BaroAltitude *float64

	// OnGround reports whether the position comes from a surface report
	OnGround *bool

	// Velocity is the ground speed in the provider's native unit
	Velocity *float64

	// TrueTrack is the ground track in degrees (0-360)
	TrueTrack *float64

	// VerticalRate in meters per second (positive = climbing)
	VerticalRate *float64

	// Squawk is the transponder code, if assigned
	Squawk *string
}

// Positional indices of the fields within a raw state array.
const (
	idxICAO24 = iota
	idxCallsign
	idxOriginCountry
	idxLastContact
	_ // last_contact per the API doc; the snapshot consumer uses index 3
	idxLongitude
	idxLatitude
	idxBaroAltitude
	idxOnGround
	idxVelocity
	idxTrueTrack
	idxVerticalRate
	_ // sensors
	_ // geo_altitude
	idxSquawk
)

// UnmarshalJSON decodes a positional state array into a StateVector.
// Missing or null positions leave the corresponding field nil.
func (s *StateVector) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("state vector is not an array: %w", err)
	}

	stringAt(fields, idxICAO24, &s.ICAO24)
	s.Callsign = stringPtrAt(fields, idxCallsign)
	s.OriginCountry = stringPtrAt(fields, idxOriginCountry)
	s.LastContact = floatPtrAt(fields, idxLastContact)
	s.Longitude = floatPtrAt(fields, idxLongitude)
	s.Latitude = floatPtrAt(fields, idxLatitude)
	s.BaroAltitude = floatPtrAt(fields, idxBaroAltitude)
	s.OnGround = boolPtrAt(fields, idxOnGround)
	s.Velocity = floatPtrAt(fields, idxVelocity)
	s.TrueTrack = floatPtrAt(fields, idxTrueTrack)
	s.VerticalRate = floatPtrAt(fields, idxVerticalRate)
	s.Squawk = stringPtrAt(fields, idxSquawk)

	return nil
}

func rawAt(fields []json.RawMessage, i int) json.RawMessage {
	if i >= len(fields) || string(fields[i]) == "null" {
		return nil
	}
	return fields[i]
}

func stringAt(fields []json.RawMessage, i int, dst *string) {
	if raw := rawAt(fields, i); raw != nil {
		// Ignore mistyped positions; they decode as absent.
		_ = json.Unmarshal(raw, dst)
	}
}

func stringPtrAt(fields []json.RawMessage, i int) *string {
	raw := rawAt(fields, i)
	if raw == nil {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func floatPtrAt(fields []json.RawMessage, i int) *float64 {
	raw := rawAt(fields, i)
	if raw == nil {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func boolPtrAt(fields []json.RawMessage, i int) *bool {
	raw := rawAt(fields, i)
	if raw == nil {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// States fetches the current global snapshot of aircraft state vectors.
//
// The endpoint takes no query parameters; proximity filtering happens on the
// client side. A response without a states list means no data is currently
// available and yields an empty result, not an error.
func (c *Client) States(ctx context.Context) ([]StateVector, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/states/all", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch flight states: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	var parsed statesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse API response: %w", err)
	}

	return parsed.States, nil
}
