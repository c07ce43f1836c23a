package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/spacescope/internal/astro"
	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
)

// setLocationMsg asks the root model to store a new observer location.
type setLocationMsg struct {
	Location space.UserLocation
}

// WeatherModel shows space weather, sky conditions and celestial events.
type WeatherModel struct {
	width    int
	height   int
	snapshot state.Snapshot

	input    textinput.Model
	editing  bool
	inputErr error
}

// NewWeatherModel creates a weather panel.
func NewWeatherModel() WeatherModel {
	ti := textinput.New()
	ti.Placeholder = "lat, lon[, city[, country]]  e.g. 37.77, -122.42, San Francisco, USA"
	ti.CharLimit = 80
	ti.Width = 50

	return WeatherModel{input: ti}
}

// SetSize updates the viewport size.
func (m WeatherModel) SetSize(width, height int) WeatherModel {
	m.width = width
	m.height = height
	if width > 10 {
		m.input.Width = width - 6
	}
	return m
}

// UpdateData updates the model with a new snapshot.
func (m WeatherModel) UpdateData(snapshot state.Snapshot) WeatherModel {
	m.snapshot = snapshot
	return m
}

// Editing reports whether the location input has focus.
func (m WeatherModel) Editing() bool {
	return m.editing
}

// Update handles messages.
func (m WeatherModel) Update(msg tea.Msg) (WeatherModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if !m.editing {
		if isKey && keyMsg.String() == "/" {
			m.editing = true
			m.inputErr = nil
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	if isKey {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.editing = false
			m.input.Blur()
			return m, nil
		case tea.KeyEnter:
			loc, err := parseLocation(m.input.Value())
			if err != nil {
				m.inputErr = err
				return m, nil
			}
			m.editing = false
			m.inputErr = nil
			m.input.Blur()
			return m, func() tea.Msg { return setLocationMsg{Location: loc} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseLocation reads "lat, lon[, city[, country]]".
func parseLocation(s string) (space.UserLocation, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return space.UserLocation{}, errors.New("expected at least latitude and longitude")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return space.UserLocation{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return space.UserLocation{}, fmt.Errorf("longitude: %w", err)
	}
	if lat < -90 || lat > 90 {
		return space.UserLocation{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return space.UserLocation{}, fmt.Errorf("longitude %v out of range", lon)
	}

	loc := space.UserLocation{Latitude: lat, Longitude: lon}
	if len(parts) > 2 {
		loc.City = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		loc.Country = strings.TrimSpace(strings.Join(parts[3:], ","))
	}
	return loc, nil
}

// View renders the panel.
func (m WeatherModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderSpaceWeather())
	b.WriteString("\n")
	b.WriteString(m.renderSky())
	b.WriteString("\n")
	b.WriteString(m.renderCelestial())
	b.WriteString("\n")
	b.WriteString(m.renderLocation())
	return b.String()
}

func (m WeatherModel) renderSpaceWeather() string {
	cw := m.snapshot.CosmicWeather
	band := derive.KpLevel(cw.CurrentKpIndex)
	flare := derive.FlareLevel(cw.CurrentFlareClass)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Space Weather"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Kp %d %s %s\n",
		cw.CurrentKpIndex,
		renderGaugeBar(derive.KpGaugePercent(cw.CurrentKpIndex), 18, band.Tone()),
		toneStyle(band.Tone()).Render(band.String()))

	class := cw.CurrentFlareClass
	if class == "" {
		class = "-"
	}
	fmt.Fprintf(&b, "Flare %s %s\n", class,
		toneStyle(flare.Tone).Render(flare.Level+": "+flare.Description))

	for _, a := range derive.KpAlerts(cw.CurrentKpIndex, cw.CurrentFlareClass) {
		b.WriteString(errorStyle.Render("⚠ " + a.Title))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  " + a.Body))
		b.WriteString("\n")
	}
	return b.String()
}

func (m WeatherModel) renderSky() string {
	v := m.snapshot.Visibility

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stargazing"))
	b.WriteString("  ")
	b.WriteString(toneStyle(derive.ScoreTone(v.Score)).Render(strings.ToUpper(string(v.Score))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  cloud %.0f%%  humidity %.0f%%  moon %.0f%%  light pollution %s\n",
		v.Location, v.CloudCover, v.Humidity, v.MoonPhase*100, v.LightPollution)
	if v.Recommendation != "" {
		b.WriteString(dimStyle.Render(v.Recommendation))
		b.WriteString("\n")
	}
	return b.String()
}

func (m WeatherModel) renderCelestial() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Celestial Events"))
	b.WriteString("\n")
	for _, e := range m.snapshot.CelestialEvents {
		tier := astro.GetElevationTier(e.Elevation)
		fmt.Fprintf(&b, "%s %-26s %-3s %2.0f° %s\n",
			e.Date,
			truncate(e.Name, 26),
			astro.CompassPoint(e.Azimuth),
			e.Elevation,
			dimStyle.Render(tier.String()))
	}
	return b.String()
}

func (m WeatherModel) renderLocation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Location"))
	b.WriteString("\n")

	if loc := m.snapshot.Preferences.Location; loc != nil {
		name := loc.City
		if loc.Country != "" {
			name += ", " + loc.Country
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			derive.FormatCoord(loc.Latitude, true),
			derive.FormatCoord(loc.Longitude, false),
			name)
	} else {
		b.WriteString(dimStyle.Render("Not set"))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: save | esc: cancel"))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("/: set location"))
		b.WriteString("\n")
	}
	if m.inputErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.inputErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
