package ui

import (
	"fmt"
	"strings"
)

// pageSize is the number of table rows per page.
const pageSize = 10

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("NEARBY FLIGHTS"))
	s.WriteString("\n")
	s.WriteString(locationStyle.Render(fmt.Sprintf(
		"%s (%.4f, %.4f)", m.address, m.ref.Latitude, m.ref.Longitude)))
	s.WriteString("\n\n")

	if m.fetchErr != nil {
		s.WriteString(noticeStyle.Render("Flight data unavailable, retrying on the next refresh"))
		s.WriteString("\n\n")
	}

	if len(m.flights) == 0 {
		s.WriteString(emptyStyle.Render("No flights found in the specified area."))
		s.WriteString("\n\n")
	} else {
		s.WriteString(m.renderTable())
		s.WriteString("\n")
		s.WriteString(pageStyle.Render(fmt.Sprintf("Page %d of %d", m.currentPage()+1, m.totalPages())))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderDetail())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: Navigate  r: Refresh now  q: Quit"))
	s.WriteString("\n")

	return s.String()
}

// currentPage is the page containing the selection.
func (m Model) currentPage() int {
	return m.selected / pageSize
}

// totalPages is ceil(len/pageSize).
func (m Model) totalPages() int {
	return (len(m.flights) + pageSize - 1) / pageSize
}

// renderTable builds the summary table for the page containing the
// selection. The selected row carries a marker and highlight style.
func (m Model) renderTable() string {
	var table strings.Builder

	start := m.currentPage() * pageSize
	end := start + pageSize
	if end > len(m.flights) {
		end = len(m.flights)
	}

	table.WriteString(headerStyle.Render(fmt.Sprintf(
		"  %-4s %-10s %-22s %12s %12s %12s",
		"#", "Callsign", "Country", "Dist (km)", "Alt (m)", "Spd (km/h)")))
	table.WriteString("\n")

	for i := start; i < end; i++ {
		f := m.flights[i]

		prefix := "  "
		if i == m.selected {
			prefix = "→ "
		}

		line := fmt.Sprintf("%s%-4d %-10s %-22s %12.1f %12s %12.1f",
			prefix,
			i+1,
			truncate(f.Callsign, 10),
			truncate(f.OriginCountry, 22),
			f.DistanceKm,
			f.AltitudeDisplay(),
			f.SpeedKmh,
		)

		if i == m.selected {
			line = selectedRowStyle.Render(line)
		}

		table.WriteString(line)
		table.WriteString("\n")
	}

	return table.String()
}

// renderDetail builds the detail panel for the selected flight.
func (m Model) renderDetail() string {
	if len(m.flights) == 0 {
		return panelStyle.Render("No flight selected.")
	}

	f := m.flights[m.selected]

	military := "No"
	if f.Military {
		military = "Yes"
	}

	var d strings.Builder
	d.WriteString(labelStyle.Render("Flight Details"))
	d.WriteString("\n")
	d.WriteString(fmt.Sprintf("Callsign:    %s\n", f.Callsign))
	d.WriteString(fmt.Sprintf("Airline:     %s\n", f.Airline))
	d.WriteString(fmt.Sprintf("Military:    %s\n", military))
	d.WriteString(fmt.Sprintf("Country:     %s\n", f.OriginCountry))
	d.WriteString(fmt.Sprintf("Route:       %s → %s\n", f.DepartureAirport, f.ArrivalAirport))
	d.WriteString(fmt.Sprintf("Distance:    %.1f km\n", f.DistanceKm))
	d.WriteString(fmt.Sprintf("Bearing:     %.0f°\n", f.BearingDeg))
	d.WriteString(fmt.Sprintf("Altitude:    %s m\n", f.AltitudeDisplay()))
	d.WriteString(fmt.Sprintf("Speed:       %.1f km/h\n", f.SpeedKmh))
	d.WriteString(fmt.Sprintf("Latitude:    %.4f\n", f.Latitude))
	d.WriteString(fmt.Sprintf("Longitude:   %.4f\n", f.Longitude))
	d.WriteString(fmt.Sprintf("ICAO24:      %s\n", f.ICAO24))
	d.WriteString(fmt.Sprintf("Status:      %s\n", f.Status))
	d.WriteString(fmt.Sprintf("Last Update: %s", f.LastUpdate))

	return panelStyle.Render(d.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
