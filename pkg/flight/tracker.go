package flight

import (
	"context"
	"fmt"

	"github.com/unklstewy/nearflights/pkg/geo"
	"github.com/unklstewy/nearflights/pkg/opensky"
)

// StatesSource is the slice of the provider client the tracker needs.
// *opensky.Client satisfies it; tests substitute a stub.
type StatesSource interface {
	States(ctx context.Context) ([]opensky.StateVector, error)
}

// Tracker fetches a snapshot and produces the nearest flights to a
// reference point, fusing fetch, normalization and ranking into the one
// call the display loop makes each refresh cycle.
type Tracker struct {
	source StatesSource
}

// NewTracker creates a Tracker reading from the given source.
func NewTracker(source StatesSource) *Tracker {
	return &Tracker{source: source}
}

// Nearest returns up to count flights sorted by ascending distance from ref.
// A failed fetch is returned as an error; the caller decides how to degrade.
// An empty snapshot is not an error.
func (t *Tracker) Nearest(ctx context.Context, ref geo.Coordinate, count int) ([]Flight, error) {
	states, err := t.source.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch states: %w", err)
	}

	return Rank(Normalize(states, ref), count), nil
}
