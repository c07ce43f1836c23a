package derive

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/spacescope/internal/space"
)

// Tone is a presentation colour family shared by the threshold ladders.
type Tone int

const (
	ToneMuted Tone = iota
	ToneCalm
	ToneInfo
	ToneCaution
	ToneWarning
	ToneDanger
	ToneCritical
)

// KpBand is the geomagnetic activity band for a Kp index.
type KpBand int

const (
	KpQuiet KpBand = iota
	KpUnsettled
	KpStorm
	KpSevereStorm
	KpExtreme
)

// String returns the display label.
func (b KpBand) String() string {
	switch b {
	case KpQuiet:
		return "Quiet"
	case KpUnsettled:
		return "Unsettled"
	case KpStorm:
		return "Storm"
	case KpSevereStorm:
		return "Severe Storm"
	default:
		return "Extreme"
	}
}

// Tone returns the colour family for the band.
func (b KpBand) Tone() Tone {
	switch b {
	case KpQuiet:
		return ToneCalm
	case KpUnsettled:
		return ToneCaution
	case KpStorm:
		return ToneWarning
	case KpSevereStorm:
		return ToneDanger
	default:
		return ToneCritical
	}
}

// KpLevel bands a Kp index: ≤2 quiet, ≤4 unsettled, ≤6 storm, ≤8 severe.
func KpLevel(kp int) KpBand {
	switch {
	case kp <= 2:
		return KpQuiet
	case kp <= 4:
		return KpUnsettled
	case kp <= 6:
		return KpStorm
	case kp <= 8:
		return KpSevereStorm
	default:
		return KpExtreme
	}
}

// KpGaugePercent returns the gauge fill for a Kp index, 0-100.
func KpGaugePercent(kp int) float64 {
	return float64(space.ClampKp(kp)) / space.MaxKp * 100
}

// Alert is a space-weather advisory derived from current conditions.
type Alert struct {
	Title string
	Body  string
}

// KpAlerts returns the advisories for the given conditions, most severe
// first. Storm watch at Kp ≥ 5; aurora and radio alert at Kp ≥ 6 or an
// X-class flare.
func KpAlerts(kp int, flareClass string) []Alert {
	var alerts []Alert
	if kp >= 6 || strings.HasPrefix(flareClass, "X") {
		alerts = append(alerts, Alert{
			Title: "Aurora & Radio Alert",
			Body:  "Aurora may be visible at mid-latitudes. HF radio and GPS may be degraded.",
		})
	}
	if kp >= 5 {
		alerts = append(alerts, Alert{
			Title: "Geomagnetic Storm Watch",
			Body:  "Elevated geomagnetic activity. Satellite operators and power grids on alert.",
		})
	}
	return alerts
}

// FlareInfo describes the impact of a solar flare class.
type FlareInfo struct {
	Level       string
	Description string
	Tone        Tone
}

// FlareLevel classifies a flare class by its leading letter.
func FlareLevel(class string) FlareInfo {
	switch {
	case class == "":
		return FlareInfo{Level: "None", Description: "No significant activity", Tone: ToneMuted}
	case strings.HasPrefix(class, "X"):
		return FlareInfo{Level: "Extreme", Description: "Major radio blackouts", Tone: ToneDanger}
	case strings.HasPrefix(class, "M"):
		return FlareInfo{Level: "Moderate", Description: "Brief radio blackouts", Tone: ToneWarning}
	case strings.HasPrefix(class, "C"):
		return FlareInfo{Level: "Minor", Description: "Small radio impact", Tone: ToneCaution}
	default:
		return FlareInfo{Level: "Background", Description: "Normal activity", Tone: ToneCalm}
	}
}

// ScoreTone maps a stargazing score to a colour family.
func ScoreTone(s space.VisibilityScore) Tone {
	switch s {
	case space.ScoreExcellent:
		return ToneCalm
	case space.ScoreGood:
		return ToneInfo
	case space.ScoreFair:
		return ToneCaution
	case space.ScorePoor:
		return ToneDanger
	default:
		return ToneMuted
	}
}

// LaunchStatusTone maps a launch status abbreviation to a colour family.
func LaunchStatusTone(abbrev string) Tone {
	switch abbrev {
	case "Go", "Success":
		return ToneCalm
	case "Failure":
		return ToneDanger
	default:
		return ToneCaution
	}
}

// AuroraChance is the likelihood band for an aurora probability.
type AuroraChance int

const (
	AuroraLow AuroraChance = iota
	AuroraModerate
	AuroraHigh
)

// String returns the display label.
func (a AuroraChance) String() string {
	switch a {
	case AuroraHigh:
		return "High"
	case AuroraModerate:
		return "Moderate"
	default:
		return "Low"
	}
}

// AuroraLikelihood bands an aurora probability percentage.
func AuroraLikelihood(probability float64) AuroraChance {
	switch {
	case probability >= 75:
		return AuroraHigh
	case probability >= 50:
		return AuroraModerate
	default:
		return AuroraLow
	}
}

// TimelineFrames is the number of climate timeline frames.
const TimelineFrames = 5

// TimelineIndex maps a 0-100 slider position to a timeline frame index.
func TimelineIndex(slider float64) int {
	if slider < 0 {
		return 0
	}
	idx := int(math.Floor(slider / 25))
	if idx > TimelineFrames-1 {
		idx = TimelineFrames - 1
	}
	return idx
}

// TimelineTone colours the slider from cool to warm as time advances.
func TimelineTone(slider float64) Tone {
	switch {
	case slider < 25:
		return ToneInfo
	case slider < 50:
		return ToneCalm
	case slider < 75:
		return ToneCaution
	default:
		return ToneWarning
	}
}

// FormatCoord renders a coordinate as "12.3456° N".
func FormatCoord(value float64, isLat bool) string {
	var dir string
	switch {
	case isLat && value >= 0:
		dir = "N"
	case isLat:
		dir = "S"
	case value >= 0:
		dir = "E"
	default:
		dir = "W"
	}
	return fmt.Sprintf("%.4f° %s", math.Abs(value), dir)
}
