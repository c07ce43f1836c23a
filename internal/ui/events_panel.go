package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
)

// selectEventMsg asks the root model to toggle selection of an event.
type selectEventMsg struct {
	Event space.NaturalEvent
}

// filterChangedMsg asks the root model to re-run the category filter.
type filterChangedMsg struct {
	Filter derive.CategoryFilter
}

var categoryIcons = map[space.EventCategory]string{
	space.CategoryWildfire:   "🔥",
	space.CategoryVolcano:    "🌋",
	space.CategoryEarthquake: "〰",
	space.CategoryStorm:      "🌀",
	space.CategoryFlood:      "🌊",
	space.CategoryIceberg:    "🧊",
}

// EventsModel lists natural events with a category filter.
type EventsModel struct {
	width    int
	height   int
	cursor   int
	filter   derive.CategoryFilter
	events   []space.NaturalEvent // already filtered
	snapshot state.Snapshot
}

// NewEventsModel creates an events panel showing every category.
func NewEventsModel() EventsModel {
	return EventsModel{filter: derive.CategoryAll}
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m EventsModel) UpdateData(snapshot state.Snapshot) EventsModel {
	m.snapshot = snapshot
	return m
}

// SetEvents replaces the filtered list and keeps the cursor in range.
func (m EventsModel) SetEvents(events []space.NaturalEvent) EventsModel {
	m.events = events
	if m.cursor >= len(events) {
		m.cursor = max(len(events)-1, 0)
	}
	return m
}

// Filter returns the active category filter.
func (m EventsModel) Filter() derive.CategoryFilter {
	return m.filter
}

// Current returns the event under the cursor.
func (m EventsModel) Current() (space.NaturalEvent, bool) {
	if m.cursor < 0 || m.cursor >= len(m.events) {
		return space.NaturalEvent{}, false
	}
	return m.events[m.cursor], true
}

// Update handles messages.
func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}
	case "c":
		m.filter = derive.NextFilter(m.filter)
		m.cursor = 0
		filter := m.filter
		return m, func() tea.Msg { return filterChangedMsg{Filter: filter} }
	case "enter":
		if e, ok := m.Current(); ok {
			return m, func() tea.Msg { return selectEventMsg{Event: e} }
		}
	}
	return m, nil
}

// View renders the panel.
func (m EventsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Natural Events"))
	b.WriteString("  ")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if len(m.events) == 0 {
		b.WriteString(dimStyle.Render("No events in this category"))
		b.WriteString("\n")
		return b.String()
	}

	selectedID := ""
	if m.snapshot.SelectedEvent != nil {
		selectedID = m.snapshot.SelectedEvent.ID
	}

	for i, e := range m.events {
		marker := "  "
		if e.ID == selectedID {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s %-28s %s", marker, categoryIcons[e.Category], truncate(e.Title, 28), e.Date)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.snapshot.SelectedEvent != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetail(*m.snapshot.SelectedEvent))
	}
	return b.String()
}

func (m EventsModel) renderFilterBar() string {
	var parts []string
	for _, f := range derive.CategoryFilters() {
		if f == m.filter {
			parts = append(parts, accentStyle.Render("["+string(f)+"]"))
		} else {
			parts = append(parts, dimStyle.Render(string(f)))
		}
	}
	return strings.Join(parts, " ")
}

func (m EventsModel) renderDetail(e space.NaturalEvent) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(e.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Category: %s   Status: %s\n", e.Category, e.Status)
	fmt.Fprintf(&b, "Position: %s, %s\n",
		derive.FormatCoord(e.Latitude(), true),
		derive.FormatCoord(e.Longitude(), false))
	if e.Magnitude != nil {
		fmt.Fprintf(&b, "Magnitude: %.0f\n", *e.Magnitude)
	}
	return b.String()
}
