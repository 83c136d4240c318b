package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/unklstewy/nearflights/internal/logging"
	"github.com/unklstewy/nearflights/internal/ui"
	"github.com/unklstewy/nearflights/pkg/config"
	"github.com/unklstewy/nearflights/pkg/flight"
	"github.com/unklstewy/nearflights/pkg/geocode"
	"github.com/unklstewy/nearflights/pkg/opensky"
)

// promptAddress reads the observation address. It keeps asking until the
// input is non-empty.
func promptAddress(in *bufio.Reader) string {
	for {
		fmt.Print("Enter the address to watch the sky from: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return strings.TrimSpace(line)
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
		fmt.Println("Address cannot be empty.")
	}
}

// promptInt reads a positive integer, falling back to def on empty or
// invalid input.
func promptInt(in *bufio.Reader, label string, def int) int {
	fmt.Printf("%s [%d]: ", label, def)
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		fmt.Printf("Invalid value %q, using %d.\n", line, def)
		return def
	}
	return n
}

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	in := bufio.NewReader(os.Stdin)
	address := promptAddress(in)
	count := promptInt(in, "Number of flights to display", cfg.Display.FlightCount)
	interval := promptInt(in, "Refresh interval in seconds", cfg.Display.RefreshIntervalSeconds)

	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent)
	ref, err := geocoder.Geocode(context.Background(), address)
	if err != nil {
		logger.Error("Geocoding failed", zap.String("address", address), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Could not find coordinates for %q: %v\n", address, err)
		os.Exit(2)
	}
	logger.Info("Resolved address",
		zap.String("address", address),
		zap.Float64("latitude", ref.Latitude),
		zap.Float64("longitude", ref.Longitude))

	client := opensky.NewClient(cfg.OpenSky.BaseURL, cfg.OpenSky.Timeout())
	tracker := flight.NewTracker(client)

	m := ui.New(ui.Options{
		Fetcher:         tracker,
		Reference:       ref,
		Address:         address,
		FlightCount:     count,
		RefreshInterval: time.Duration(interval) * time.Second,
		Logger:          logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
