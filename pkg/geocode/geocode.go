// Package geocode provides a client for Nominatim (OpenStreetMap) forward
// geocoding, used once at startup to turn a free-text address into the
// reference coordinate.
//
// Usage policy: https://operations.osmfoundation.org/policies/nominatim/
// Requires a descriptive User-Agent and at most one request per second.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/unklstewy/nearflights/pkg/geo"
)

const (
	// DefaultBaseURL is the public Nominatim endpoint
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultUserAgent identifies this application per the usage policy
	DefaultUserAgent = "nearflights"

	// DefaultTimeout for geocoding requests
	DefaultTimeout = 10 * time.Second
)

// ErrNoMatch is returned when the geocoder finds no result for an address.
var ErrNoMatch = errors.New("no coordinates found for address")

// Client represents a Nominatim geocoding client.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a Nominatim client. Empty arguments fall back to the
// package defaults.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// searchResult is one entry of the Nominatim search response.
// Nominatim encodes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text address to a coordinate pair.
// Returns ErrNoMatch when the geocoder has no result for the address.
func (c *Client) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return geo.Coordinate{}, fmt.Errorf("rate limiter: %w", err)
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return geo.Coordinate{}, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geo.Coordinate{}, fmt.Errorf("parse geocoder response: %w", err)
	}

	if len(results) == 0 {
		return geo.Coordinate{}, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return geo.Coordinate{Latitude: lat, Longitude: lon}, nil
}
