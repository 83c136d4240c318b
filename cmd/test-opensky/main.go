package main

import (
	"context"
	"log"

	"github.com/unklstewy/nearflights/pkg/config"
	"github.com/unklstewy/nearflights/pkg/flight"
	"github.com/unklstewy/nearflights/pkg/geo"
	"github.com/unklstewy/nearflights/pkg/opensky"
)

// main is a test program to verify OpenSky integration.
// It fetches the global state snapshot and ranks aircraft by distance
// from a fixed observer near Charlotte Douglas International Airport (CLT).
func main() {
	log.Println("OpenSky Data Source Test")
	log.Println("Ranking near Charlotte Douglas International Airport (CLT)")
	log.Println("=====================================")

	// Observer position: ~3nm southeast of CLT
	observer := geo.Coordinate{
		Latitude:  35.1871,
		Longitude: -80.9218,
	}
	log.Printf("Observer Location: %.4f°N, %.4f°W\n",
		observer.Latitude, -observer.Longitude)

	cfg := config.DefaultConfig()
	client := opensky.NewClient(cfg.OpenSky.BaseURL, cfg.OpenSky.Timeout())

	const count = 10
	log.Printf("Fetching %d nearest aircraft...\n", count)

	states, err := client.StatesWithRetry(context.Background(), opensky.DefaultRetryConfig())
	if err != nil {
		log.Fatalf("Failed to fetch aircraft: %v", err)
	}

	flights := flight.Rank(flight.Normalize(states, observer), count)

	log.Printf("Found %d aircraft with position data\n", len(flights))
	log.Println("=====================================")

	for i, f := range flights {
		log.Printf("%2d. %-10s %-22s %8.1f km  brg %5.1f°  %s  %s\n",
			i+1, f.Callsign, f.OriginCountry, f.DistanceKm, f.BearingDeg,
			f.AltitudeDisplay(), f.LastUpdate)
	}
}
