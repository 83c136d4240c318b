// Package ui implements the interactive flight display: a bubbletea model
// holding the ranked flight list, the highlighted selection, and the
// timer-driven refresh cycle.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/unklstewy/nearflights/pkg/flight"
	"github.com/unklstewy/nearflights/pkg/geo"
)

// Fetcher produces the nearest flights to a reference point.
// *flight.Tracker satisfies it; tests substitute a stub.
type Fetcher interface {
	Nearest(ctx context.Context, ref geo.Coordinate, count int) ([]flight.Flight, error)
}

// Options configures a Model.
type Options struct {
	// Fetcher supplies ranked flight data each refresh
	Fetcher Fetcher

	// Reference is the observer's resolved location
	Reference geo.Coordinate

	// Address is the free-text address the reference was resolved from,
	// shown in the header
	Address string

	// FlightCount is the number of nearest flights to track
	FlightCount int

	// RefreshInterval is how long fetched data stays fresh
	RefreshInterval time.Duration

	// Logger receives fetch diagnostics; nil means no logging
	Logger *zap.Logger
}

// Model is the bubbletea model for the flight display.
//
// All state lives here and is mutated only inside Update. Fetches run
// synchronously in Update as well, so the flight list is never replaced
// while a render is reading it: message handling is the single thread of
// control.
type Model struct {
	fetcher  Fetcher
	ref      geo.Coordinate
	address  string
	count    int
	interval time.Duration
	log      *zap.Logger
	keys     keyMap

	// flights is rebuilt wholesale on every refresh
	flights []flight.Flight

	// selected indexes flights; meaningless while flights is empty
	selected int

	lastFetch time.Time
	fetched   bool
	fetchErr  error
}

// New creates a Model from the given options.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		fetcher:  opts.Fetcher,
		ref:      opts.Reference,
		address:  opts.Address,
		count:    opts.FlightCount,
		interval: opts.RefreshInterval,
		log:      logger,
		keys:     defaultKeyMap(),
	}
}

// tickMsg drives the periodic refresh check.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// With no flights on screen, quit is the only recognized action;
		// the timer keeps retrying the fetch on its own.
		if len(m.flights) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
		}
		return m, nil

	case tickMsg:
		if m.refreshDue(time.Time(msg)) {
			m.refresh()
		}
		return m, tick()
	}

	return m, nil
}

// refreshDue reports whether fetched data has gone stale.
func (m Model) refreshDue(now time.Time) bool {
	return !m.fetched || now.Sub(m.lastFetch) >= m.interval
}

// refresh replaces the flight list with a fresh snapshot and resets the
// refresh timer. A fetch failure degrades to an empty list for this cycle;
// the loop keeps running and retries on the next one.
func (m *Model) refresh() {
	flights, err := m.fetcher.Nearest(context.Background(), m.ref, m.count)
	if err != nil {
		m.log.Warn("flight data fetch failed", zap.Error(err))
		m.flights = nil
		m.fetchErr = err
	} else {
		m.log.Debug("flight data refreshed", zap.Int("flights", len(flights)))
		m.flights = flights
		m.fetchErr = nil
	}

	m.lastFetch = time.Now()
	m.fetched = true
	m.clampSelection()
}

// clampSelection pulls the selection back into the bounds of the current
// list. Runs after every refresh so a shrinking list can never leave the
// highlight dangling.
func (m *Model) clampSelection() {
	if len(m.flights) == 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(m.flights) {
		m.selected = len(m.flights) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// moveSelection shifts the highlight, saturating at both ends.
func (m *Model) moveSelection(delta int) {
	if len(m.flights) == 0 {
		return
	}
	m.selected += delta
	m.clampSelection()
}
