package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/state"
)

// SatellitesModel shows live ISS telemetry and crew.
type SatellitesModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewSatellitesModel creates a satellites panel.
func NewSatellitesModel() SatellitesModel {
	return SatellitesModel{}
}

// SetSize updates the viewport size.
func (m SatellitesModel) SetSize(width, height int) SatellitesModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m SatellitesModel) UpdateData(snapshot state.Snapshot) SatellitesModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m SatellitesModel) Update(tea.Msg) (SatellitesModel, tea.Cmd) {
	return m, nil
}

// View renders the panel.
func (m SatellitesModel) View() string {
	iss := m.snapshot.ISS
	var b strings.Builder

	b.WriteString(titleStyle.Render("ISS Live Tracker"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Latitude:   %s\n", derive.FormatCoord(iss.Latitude, true))
	fmt.Fprintf(&b, "Longitude:  %s\n", derive.FormatCoord(iss.Longitude, false))
	fmt.Fprintf(&b, "Altitude:   %.0f km\n", iss.Altitude)
	fmt.Fprintf(&b, "Velocity:   %.2f km/s\n", iss.Velocity)
	fmt.Fprintf(&b, "Orbit:      #%d\n", iss.OrbitNumber)
	if !iss.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Updated:    %s\n", iss.Timestamp.UTC().Format("15:04:05 MST"))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Crew (%d)", len(iss.Crew))))
	b.WriteString("\n")
	for _, c := range iss.Crew {
		fmt.Fprintf(&b, "  %-22s %s\n", truncate(c.Name, 22), dimStyle.Render(c.Nationality))
	}
	return b.String()
}
