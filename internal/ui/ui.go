// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
	"github.com/litescript/spacescope/internal/version"
)

// StateChangedMsg carries a store snapshot published after an action.
type StateChangedMsg struct {
	Snapshot state.Snapshot
}

// Forward subscribes to every store change and hands each snapshot to send,
// typically tea.Program.Send. Sends happen on their own goroutine so an
// action invoked from inside Update cannot block on the program loop;
// the root model discards snapshots older than the one it holds.
func Forward(store *state.Store, send func(tea.Msg)) (unsubscribe func()) {
	return store.Subscribe(state.SliceAll, func(snap state.Snapshot) {
		go send(StateChangedMsg{Snapshot: snap})
	})
}

// layerKeys maps the layer toggle keys to layer positions.
var layerKeys = map[string]int{
	"f1": 0, "!": 0,
	"f2": 1, "@": 1,
	"f3": 2, "#": 2,
	"f4": 3, "$": 3,
}

// Model is the root Bubble Tea model. It reads store snapshots and calls
// store actions; cursor, input and spinner state stay local.
type Model struct {
	store *state.Store

	width     int
	height    int
	ready     bool
	learning  bool
	statusMsg string

	snapshot state.Snapshot
	spinner  spinner.Model

	events     EventsModel
	missions   MissionsModel
	satellites SatellitesModel
	weather    WeatherModel
	learnZone  LearnModel
}

// New creates a new root UI model bound to store.
func New(store *state.Store) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		store:      store,
		spinner:    s,
		events:     NewEventsModel(),
		missions:   NewMissionsModel(),
		satellites: NewSatellitesModel(),
		weather:    NewWeatherModel(),
		learnZone:  NewLearnModel(),
	}
	m.applySnapshot(store.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Snapshot returns the snapshot the model is currently rendering.
func (m Model) Snapshot() state.Snapshot {
	return m.snapshot
}

// applySnapshot pushes a snapshot into every panel.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.events = m.events.UpdateData(snap).SetEvents(m.store.FilterEventsByCategory(m.events.Filter()))
	m.missions = m.missions.UpdateData(snap, m.store.Now())
	m.satellites = m.satellites.UpdateData(snap)
	m.weather = m.weather.UpdateData(snap)
}

func (m *Model) refresh() {
	m.applySnapshot(m.store.Snapshot())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Text entry owns the keyboard.
		if m.weather.Editing() {
			var cmd tea.Cmd
			m.weather, cmd = m.weather.Update(msg)
			return m, cmd
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		sideWidth := m.sidebarWidth()
		contentHeight := msg.Height - 6
		m.events = m.events.SetSize(sideWidth, contentHeight)
		m.missions = m.missions.SetSize(sideWidth, contentHeight)
		m.satellites = m.satellites.SetSize(sideWidth, contentHeight)
		m.weather = m.weather.SetSize(sideWidth, contentHeight)
		m.learnZone = m.learnZone.SetSize(msg.Width, contentHeight)

	case StateChangedMsg:
		if msg.Snapshot.Version >= m.snapshot.Version {
			m.applySnapshot(msg.Snapshot)
		}

	case selectEventMsg:
		// Reselecting the highlighted event clears it.
		if cur := m.snapshot.SelectedEvent; cur != nil && cur.ID == msg.Event.ID {
			m.store.SetSelectedEvent(nil)
		} else {
			e := msg.Event
			m.store.SetSelectedEvent(&e)
		}
		m.refresh()

	case selectLaunchMsg:
		if cur := m.snapshot.SelectedLaunch; cur != nil && cur.ID == msg.Launch.ID {
			m.store.SetSelectedLaunch(nil)
		} else {
			l := msg.Launch
			m.store.SetSelectedLaunch(&l)
		}
		m.refresh()

	case filterChangedMsg:
		m.events = m.events.SetEvents(m.store.FilterEventsByCategory(msg.Filter))
		m.statusMsg = fmt.Sprintf("Filter: %s", msg.Filter)

	case setLocationMsg:
		m.store.SetUserLocation(msg.Location)
		m.statusMsg = "Location updated"
		m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes global keys. It reports false for keys the active
// view should receive.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if key == "q" {
		return tea.Quit, true
	}
	if key == "5" {
		m.learning = !m.learning
		return nil, true
	}
	if m.learning {
		if key == "esc" {
			m.learning = false
			return nil, true
		}
		return nil, false
	}

	switch key {
	case "1", "2", "3", "4":
		panel := space.Panels[int(key[0]-'1')]
		m.openPanel(panel)
	case "tab":
		m.openPanel(nextPanel(m.snapshot.ActivePanel))
	case "x":
		m.store.SetActivePanel(space.PanelNone)
	case "b":
		m.store.SetSidebarOpen(!m.snapshot.SidebarOpen)
	case "m":
		m.store.SetMapStyle(nextMapStyle(m.snapshot.MapStyle))
	default:
		idx, ok := layerKeys[key]
		if !ok {
			return nil, false
		}
		if idx < len(m.snapshot.Layers) {
			m.store.ToggleLayer(m.snapshot.Layers[idx].ID)
		}
	}
	m.refresh()
	return nil, true
}

func (m *Model) openPanel(p space.Panel) {
	if !m.snapshot.SidebarOpen {
		m.store.SetSidebarOpen(true)
	}
	m.store.SetActivePanel(p)
}

func nextPanel(p space.Panel) space.Panel {
	for i, candidate := range space.Panels {
		if candidate == p {
			return space.Panels[(i+1)%len(space.Panels)]
		}
	}
	return space.Panels[0]
}

func nextMapStyle(s space.MapStyle) space.MapStyle {
	for i, candidate := range space.MapStyles {
		if candidate == s {
			return space.MapStyles[(i+1)%len(space.MapStyles)]
		}
	}
	return space.MapStyles[0]
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.learning {
		m.learnZone, cmd = m.learnZone.Update(msg)
		return cmd
	}
	if !m.snapshot.SidebarOpen {
		return nil
	}
	switch m.snapshot.ActivePanel {
	case space.PanelEvents:
		m.events, cmd = m.events.Update(msg)
	case space.PanelMissions:
		m.missions, cmd = m.missions.Update(msg)
	case space.PanelSatellites:
		m.satellites, cmd = m.satellites.Update(msg)
	case space.PanelWeather:
		m.weather, cmd = m.weather.Update(msg)
	}
	return cmd
}

func (m Model) sidebarWidth() int {
	if m.width <= 0 {
		return 48
	}
	return max(m.width*2/5, 40)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	if m.learning {
		content = m.learnZone.View()
	} else {
		content = m.renderMain()
	}
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderMain() string {
	mapWidth := m.width - 4
	if m.snapshot.SidebarOpen && m.snapshot.ActivePanel != space.PanelNone {
		mapWidth = m.width - m.sidebarWidth() - 8
	}
	mapHeight := max(m.height-10, 6)

	mapPane := paneStyle.Render(
		renderMap(m.snapshot, max(mapWidth, 10), mapHeight) + "\n" +
			m.renderMapStatus())

	if !m.snapshot.SidebarOpen || m.snapshot.ActivePanel == space.PanelNone {
		return mapPane
	}

	var panel string
	switch m.snapshot.ActivePanel {
	case space.PanelEvents:
		panel = m.events.View()
	case space.PanelMissions:
		panel = m.missions.View()
	case space.PanelSatellites:
		panel = m.satellites.View()
	case space.PanelWeather:
		panel = m.weather.View()
	}
	side := paneStyle.Width(m.sidebarWidth()).Render(panel)
	return lipgloss.JoinHorizontal(lipgloss.Top, mapPane, side)
}

func (m Model) renderMapStatus() string {
	iss := m.snapshot.ISS
	pos := fmt.Sprintf("ISS %s %s",
		derive.FormatCoord(iss.Latitude, true),
		derive.FormatCoord(iss.Longitude, false))
	return dimStyle.Render(fmt.Sprintf("style: %s  ", m.snapshot.MapStyle)) + pos
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(m.renderLogo())
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString("  " + renderLayerBar(m.snapshot.Layers))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLogo() string {
	title := "  ✦ SPACESCOPE"
	runes := []rune(title)

	var b strings.Builder
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, 0, len(runes), 1)))
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Earth & Space Observatory · v%s", version.Version)))
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue -> purple -> magenta -> pink, fading toward the bottom row.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	default:
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - (yRatio * 0.5)
	clamp := func(v float64) int {
		return min(max(int(v*brightness), 0), 255)
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func (m Model) renderTabs() string {
	labels := []string{"[1] Events", "[2] Missions", "[3] Satellites", "[4] Weather"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var parts []string
	for i, label := range labels {
		if !m.learning && m.snapshot.SidebarOpen && space.Panels[i] == m.snapshot.ActivePanel {
			parts = append(parts, activeStyle.Render("▶ "+label))
		} else {
			parts = append(parts, dimStyle.Render("  "+label))
		}
	}
	if m.learning {
		parts = append(parts, activeStyle.Render("▶ [5] Learn"))
	} else {
		parts = append(parts, dimStyle.Render("  [5] Learn"))
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	status := accentStyle.Render(m.spinner.View())
	if m.snapshot.Loading.Any() {
		status += dimStyle.Render(" loading")
	}
	if ts := m.snapshot.ISS.Timestamp; !ts.IsZero() {
		status += dimStyle.Render(" ISS @ " + ts.Format("15:04:05"))
	}

	var help string
	switch {
	case m.learning:
		help = "←/→: timeline | ↑↓: choose | enter: answer | r: reset | esc: back"
	case m.snapshot.ActivePanel == space.PanelEvents:
		help = "↑↓: navigate | enter: select | c: category | m: map | F1-F4: layers | b: sidebar"
	case m.snapshot.ActivePanel == space.PanelWeather:
		help = "/: set location | m: map | F1-F4: layers | b: sidebar"
	default:
		help = "↑↓: navigate | enter: select | tab: panel | m: map | F1-F4: layers | q: quit"
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + dimStyle.Render(help)
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}
