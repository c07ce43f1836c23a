package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/spacescope/internal/derive"
)

// Styles shared by the panels
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7B2CBF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

var toneColors = map[derive.Tone]lipgloss.Color{
	derive.ToneMuted:    lipgloss.Color("244"),
	derive.ToneCalm:     lipgloss.Color("#22C55E"),
	derive.ToneInfo:     lipgloss.Color("#3B82F6"),
	derive.ToneCaution:  lipgloss.Color("#EAB308"),
	derive.ToneWarning:  lipgloss.Color("#F97316"),
	derive.ToneDanger:   lipgloss.Color("#EF4444"),
	derive.ToneCritical: lipgloss.Color("#A855F7"),
}

// toneStyle returns the foreground style for a colour family.
func toneStyle(t derive.Tone) lipgloss.Style {
	c, ok := toneColors[t]
	if !ok {
		c = toneColors[derive.ToneMuted]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// renderGaugeBar draws a bracketed bar with pct (0-100) filled.
func renderGaugeBar(pct float64, width int, tone derive.Tone) string {
	if width <= 0 {
		return "[]"
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return "[" + toneStyle(tone).Render(bar) + "]"
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
