package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/spacescope/internal/astro"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
)

// Canvas cell glyphs
const (
	glyphISS   = '✦'
	glyphTrack = '·'
	glyphEvent = '▲'
	glyphCloud = '~'
)

var mapBackground = map[space.MapStyle]rune{
	space.MapDark:      ' ',
	space.MapLight:     '░',
	space.MapSatellite: '▒',
	space.MapTerrain:   '▓',
}

var (
	issStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE047")).Bold(true)
	eventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	cloudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	baseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
)

// project maps a longitude/latitude onto an equirectangular grid.
func project(lng, lat float64, width, height int) (col, row int) {
	lng = astro.NormalizeLongitude(lng)
	col = int(math.Round((lng + 180) / 360 * float64(width-1)))
	row = int(math.Round((90 - lat) / 180 * float64(height-1)))
	col = min(max(col, 0), width-1)
	row = min(max(row, 0), height-1)
	return col, row
}

func layerVisible(layers []space.MapLayer, id string) bool {
	for _, l := range layers {
		if l.ID == id {
			return l.Visible
		}
	}
	return false
}

// renderMap draws the world canvas for a snapshot. Markers are drawn only for
// visible overlay layers.
func renderMap(snap state.Snapshot, width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}

	bg, ok := mapBackground[snap.MapStyle]
	if !ok {
		bg = ' '
	}
	if layerVisible(snap.Layers, "satellite") {
		bg = mapBackground[space.MapSatellite]
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(bg), width))
	}

	if layerVisible(snap.Layers, "weather") {
		for r := range grid {
			for c := range grid[r] {
				if (c*7+r*13)%11 == 0 {
					grid[r][c] = glyphCloud
				}
			}
		}
	}

	if layerVisible(snap.Layers, "iss") {
		for _, p := range snap.OrbitPath.Path {
			c, r := project(p.Lng, p.Lat, width, height)
			grid[r][c] = glyphTrack
		}
	}

	if layerVisible(snap.Layers, "events") {
		for _, e := range snap.NaturalEvents {
			c, r := project(e.Longitude(), e.Latitude(), width, height)
			grid[r][c] = glyphEvent
		}
	}

	if layerVisible(snap.Layers, "iss") {
		c, r := project(snap.ISS.Longitude, snap.ISS.Latitude, width, height)
		grid[r][c] = glyphISS
	}

	var b strings.Builder
	for r, row := range grid {
		for _, g := range row {
			switch g {
			case glyphISS:
				b.WriteString(issStyle.Render(string(g)))
			case glyphEvent:
				b.WriteString(eventStyle.Render(string(g)))
			case glyphTrack:
				b.WriteString(trackStyle.Render(string(g)))
			case glyphCloud:
				b.WriteString(cloudStyle.Render(string(g)))
			default:
				b.WriteString(baseStyle.Render(string(g)))
			}
		}
		if r < len(grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLayerBar lists layers with their toggle keys.
func renderLayerBar(layers []space.MapLayer) string {
	var parts []string
	for i, l := range layers {
		box := "[ ]"
		if l.Visible {
			box = "[x]"
		}
		label := fmt.Sprintf("F%d %s %s", i+1, box, l.Name)
		if l.Visible {
			parts = append(parts, accentStyle.Render(label))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
