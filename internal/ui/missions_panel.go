package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
)

// selectLaunchMsg asks the root model to toggle selection of a launch.
type selectLaunchMsg struct {
	Launch space.Launch
}

// MissionsModel shows the launch timeline, upcoming first.
type MissionsModel struct {
	width    int
	height   int
	cursor   int
	now      time.Time
	upcoming []space.Launch
	past     []space.Launch
	snapshot state.Snapshot
}

// NewMissionsModel creates a missions panel.
func NewMissionsModel() MissionsModel {
	return MissionsModel{}
}

// SetSize updates the viewport size.
func (m MissionsModel) SetSize(width, height int) MissionsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData repartitions launches against now.
func (m MissionsModel) UpdateData(snapshot state.Snapshot, now time.Time) MissionsModel {
	m.snapshot = snapshot
	m.now = now
	m.upcoming, m.past = derive.PartitionLaunches(snapshot.Launches, now)
	if total := len(m.upcoming) + len(m.past); m.cursor >= total {
		m.cursor = max(total-1, 0)
	}
	return m
}

// Current returns the launch under the cursor.
func (m MissionsModel) Current() (space.Launch, bool) {
	switch {
	case m.cursor < len(m.upcoming):
		return m.upcoming[m.cursor], true
	case m.cursor-len(m.upcoming) < len(m.past):
		return m.past[m.cursor-len(m.upcoming)], true
	}
	return space.Launch{}, false
}

// Update handles messages.
func (m MissionsModel) Update(msg tea.Msg) (MissionsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	total := len(m.upcoming) + len(m.past)
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < total-1 {
			m.cursor++
		}
	case "enter":
		if l, ok := m.Current(); ok {
			return m, func() tea.Msg { return selectLaunchMsg{Launch: l} }
		}
	}
	return m, nil
}

// View renders the panel.
func (m MissionsModel) View() string {
	var b strings.Builder

	selectedID := ""
	if m.snapshot.SelectedLaunch != nil {
		selectedID = m.snapshot.SelectedLaunch.ID
	}

	b.WriteString(titleStyle.Render("Upcoming Launches"))
	b.WriteString("\n")
	b.WriteString(m.renderRows(m.upcoming, 0, selectedID))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent Launches"))
	b.WriteString("\n")
	b.WriteString(m.renderRows(m.past, len(m.upcoming), selectedID))

	if m.snapshot.SelectedLaunch != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetail(*m.snapshot.SelectedLaunch))
	}
	return b.String()
}

func (m MissionsModel) renderRows(launches []space.Launch, offset int, selectedID string) string {
	if len(launches) == 0 {
		return dimStyle.Render("  None") + "\n"
	}

	var b strings.Builder
	for i, l := range launches {
		marker := "  "
		if l.ID == selectedID {
			marker = "● "
		}
		status := toneStyle(derive.LaunchStatusTone(l.Status.Abbrev)).Render(fmt.Sprintf("%-7s", l.Status.Abbrev))
		line := fmt.Sprintf("%s%-30s %s", marker, truncate(l.Name, 30), m.countdown(l.NET))

		if offset+i == m.cursor {
			b.WriteString(status + " " + selectedRowStyle.Render(line))
		} else {
			b.WriteString(status + " " + rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// countdown renders T-/T+ relative to now at minute resolution.
func (m MissionsModel) countdown(net time.Time) string {
	d := net.Sub(m.now)
	sign := "T-"
	if d <= 0 {
		sign = "T+"
		d = -d
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%s%dd %02dh", sign, days, hours)
	}
	return fmt.Sprintf("%s%02dh %02dm", sign, hours, mins)
}

func (m MissionsModel) renderDetail(l space.Launch) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(l.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Provider: %s   Rocket: %s\n", l.LaunchServiceProvider.Name, l.Rocket.Configuration.FullName)
	fmt.Fprintf(&b, "Pad: %s, %s\n", l.Pad.Name, l.Pad.Location.Name)
	fmt.Fprintf(&b, "NET: %s\n", l.NET.UTC().Format("2006-01-02 15:04 MST"))
	if l.Mission != nil {
		orbit := "-"
		if l.Mission.Orbit != nil {
			orbit = l.Mission.Orbit.Name
		}
		fmt.Fprintf(&b, "Mission: %s (%s, %s)\n", l.Mission.Name, l.Mission.Type, orbit)
		if l.Mission.Description != "" {
			b.WriteString(dimStyle.Render(truncate(l.Mission.Description, max(m.width-2, 20))))
			b.WriteString("\n")
		}
	}
	if l.WebcastLive {
		b.WriteString(accentStyle.Render("● Webcast live"))
		b.WriteString("\n")
	}
	return b.String()
}
