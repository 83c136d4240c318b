// Package config loads application configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	OpenSky  OpenSkyConfig  `json:"opensky"`
	Geocoder GeocoderConfig `json:"geocoder"`
	Display  DisplayConfig  `json:"display"`
	Log      LogConfig      `json:"log"`
}

// OpenSkyConfig contains flight-state provider settings.
type OpenSkyConfig struct {
	// BaseURL is the OpenSky REST API base URL
	BaseURL string `json:"base_url"`

	// TimeoutSeconds bounds each snapshot request. The default of 0 means
	// no timeout: the original design has none, and an unresponsive
	// provider blocks the refresh cycle until the connection drops. Set a
	// positive value to cap the wait.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// GeocoderConfig contains Nominatim geocoding settings.
type GeocoderConfig struct {
	// BaseURL is the Nominatim endpoint
	BaseURL string `json:"base_url"`

	// UserAgent identifies this application, required by the Nominatim
	// usage policy
	UserAgent string `json:"user_agent"`
}

// DisplayConfig contains defaults for the interactive display.
// Both values can be overridden at the startup prompts.
type DisplayConfig struct {
	// FlightCount is the number of nearest flights to track
	FlightCount int `json:"flight_count"`

	// RefreshIntervalSeconds is how often to refresh flight data
	RefreshIntervalSeconds int `json:"refresh_interval_seconds"`
}

// LogConfig contains logging settings. Logs go to a file so the terminal
// display is never corrupted.
type LogConfig struct {
	// File is the log file path
	File string `json:"file"`

	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level"`
}

// Timeout returns the provider request timeout as a duration.
func (c OpenSkyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RefreshInterval returns the refresh interval as a duration.
func (c DisplayConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns the default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OpenSky: OpenSkyConfig{
			BaseURL:        "https://opensky-network.org/api",
			TimeoutSeconds: 0, // no timeout, see field doc
		},
		Geocoder: GeocoderConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "nearflights",
		},
		Display: DisplayConfig{
			FlightCount:            10,
			RefreshIntervalSeconds: 10,
		},
		Log: LogConfig{
			File:  "nearflights.log",
			Level: "info",
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if url := os.Getenv("NEARFLIGHTS_OPENSKY_URL"); url != "" {
		c.OpenSky.BaseURL = url
	}
	if url := os.Getenv("NEARFLIGHTS_GEOCODER_URL"); url != "" {
		c.Geocoder.BaseURL = url
	}
	if agent := os.Getenv("NEARFLIGHTS_GEOCODER_USER_AGENT"); agent != "" {
		c.Geocoder.UserAgent = agent
	}
	if file := os.Getenv("NEARFLIGHTS_LOG_FILE"); file != "" {
		c.Log.File = file
	}
	if level := os.Getenv("NEARFLIGHTS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}
