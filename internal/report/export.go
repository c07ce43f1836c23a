// Package report renders store snapshots for headless output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/spacescope/internal/astro"
	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/state"
	"github.com/litescript/spacescope/internal/space"
)

// SnapshotExport is the JSON-serializable representation of store state.
type SnapshotExport struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	Version         uint64                   `json:"version"`
	MapStyle        space.MapStyle           `json:"map_style"`
	VisibleLayers   []string                 `json:"visible_layers"`
	ActivePanel     space.Panel              `json:"active_panel"`
	SidebarOpen     bool                     `json:"sidebar_open"`
	Weather         WeatherExport            `json:"weather"`
	Visibility      space.VisibilityForecast `json:"visibility"`
	ISS             ISSExport                `json:"iss"`
	NaturalEvents   []space.NaturalEvent     `json:"natural_events"`
	CelestialEvents []CelestialExport        `json:"celestial_events"`
	Upcoming        []LaunchExport           `json:"upcoming_launches"`
	Past            []LaunchExport           `json:"past_launches"`
	SelectedEvent   string                   `json:"selected_event,omitempty"`
	SelectedLaunch  string                   `json:"selected_launch,omitempty"`
}

// WeatherExport is space weather with derived bands.
type WeatherExport struct {
	KpIndex     int            `json:"kp_index"`
	KpLevel     string         `json:"kp_level"`
	KpGauge     float64        `json:"kp_gauge_percent"`
	FlareClass  string         `json:"flare_class,omitempty"`
	FlareLevel  string         `json:"flare_level"`
	Alerts      []derive.Alert `json:"alerts,omitempty"`
	LastUpdated time.Time      `json:"last_updated"`
}

// ISSExport is the station position with formatted coordinates.
type ISSExport struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LatText     string    `json:"latitude_text"`
	LngText     string    `json:"longitude_text"`
	Altitude    float64   `json:"altitude_km"`
	Velocity    float64   `json:"velocity_kms"`
	OrbitNumber int       `json:"orbit_number"`
	Crew        int       `json:"crew"`
	Timestamp   time.Time `json:"timestamp"`
}

// CelestialExport is a sky event with its compass direction and
// elevation tier.
type CelestialExport struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Direction     string  `json:"direction"`
	Elevation     float64 `json:"elevation"`
	ElevationTier string  `json:"elevation_tier"`
	Visibility    string  `json:"visibility"`
}

// LaunchExport is a JSON-friendly launch.
type LaunchExport struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	NET      time.Time `json:"net"`
	Provider string    `json:"provider"`
	Rocket   string    `json:"rocket"`
	Pad      string    `json:"pad"`
	Orbit    string    `json:"orbit,omitempty"`
}

// BuildExport converts a snapshot to an exportable document. Launches are
// partitioned against now.
func BuildExport(snap state.Snapshot, now time.Time) *SnapshotExport {
	cw := snap.CosmicWeather
	export := &SnapshotExport{
		GeneratedAt:   now,
		Version:       snap.Version,
		MapStyle:      snap.MapStyle,
		VisibleLayers: derive.VisibleLayers(snap.Layers),
		ActivePanel:   snap.ActivePanel,
		SidebarOpen:   snap.SidebarOpen,
		Weather: WeatherExport{
			KpIndex:     cw.CurrentKpIndex,
			KpLevel:     derive.KpLevel(cw.CurrentKpIndex).String(),
			KpGauge:     derive.KpGaugePercent(cw.CurrentKpIndex),
			FlareClass:  cw.CurrentFlareClass,
			FlareLevel:  derive.FlareLevel(cw.CurrentFlareClass).Level,
			Alerts:      derive.KpAlerts(cw.CurrentKpIndex, cw.CurrentFlareClass),
			LastUpdated: cw.LastUpdated,
		},
		Visibility: snap.Visibility,
		ISS: ISSExport{
			Latitude:    snap.ISS.Latitude,
			Longitude:   snap.ISS.Longitude,
			LatText:     derive.FormatCoord(snap.ISS.Latitude, true),
			LngText:     derive.FormatCoord(snap.ISS.Longitude, false),
			Altitude:    snap.ISS.Altitude,
			Velocity:    snap.ISS.Velocity,
			OrbitNumber: snap.ISS.OrbitNumber,
			Crew:        len(snap.ISS.Crew),
			Timestamp:   snap.ISS.Timestamp,
		},
		NaturalEvents: snap.NaturalEvents,
	}

	for _, e := range snap.CelestialEvents {
		export.CelestialEvents = append(export.CelestialEvents, CelestialExport{
			ID:            e.ID,
			Name:          e.Name,
			Date:          e.Date,
			Time:          e.Time,
			Direction:     astro.CompassPoint(e.Azimuth),
			Elevation:     e.Elevation,
			ElevationTier: astro.GetElevationTier(e.Elevation).String(),
			Visibility:    string(e.Visibility),
		})
	}

	upcoming, past := derive.PartitionLaunches(snap.Launches, now)
	export.Upcoming = exportLaunches(upcoming)
	export.Past = exportLaunches(past)

	if snap.SelectedEvent != nil {
		export.SelectedEvent = snap.SelectedEvent.ID
	}
	if snap.SelectedLaunch != nil {
		export.SelectedLaunch = snap.SelectedLaunch.ID
	}
	return export
}

func exportLaunches(launches []space.Launch) []LaunchExport {
	out := make([]LaunchExport, 0, len(launches))
	for _, l := range launches {
		le := LaunchExport{
			ID:       l.ID,
			Name:     l.Name,
			Status:   l.Status.Abbrev,
			NET:      l.NET,
			Provider: l.LaunchServiceProvider.Name,
			Rocket:   l.Rocket.Configuration.FullName,
			Pad:      l.Pad.Name,
		}
		if l.Mission != nil && l.Mission.Orbit != nil {
			le.Orbit = l.Mission.Orbit.Name
		}
		out = append(out, le)
	}
	return out
}

// WriteJSON writes the export as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

const ruleWidth = 72

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
}

// WriteSummary writes a text overview of the dashboard.
func WriteSummary(w io.Writer, snap state.Snapshot, now time.Time) {
	cw := snap.CosmicWeather
	band := derive.KpLevel(cw.CurrentKpIndex)
	flare := derive.FlareLevel(cw.CurrentFlareClass)

	fmt.Fprintf(w, "Spacescope @ %s\n", now.Format(time.RFC3339))
	rule(w)

	fmt.Fprintf(w, "Kp index:   %d (%s)\n", cw.CurrentKpIndex, band)
	flareClass := cw.CurrentFlareClass
	if flareClass == "" {
		flareClass = "-"
	}
	fmt.Fprintf(w, "Solar flare: %s (%s: %s)\n", flareClass, flare.Level, flare.Description)
	for _, a := range derive.KpAlerts(cw.CurrentKpIndex, cw.CurrentFlareClass) {
		fmt.Fprintf(w, "  ! %s: %s\n", a.Title, a.Body)
	}

	v := snap.Visibility
	fmt.Fprintf(w, "Sky:        %s, %s (cloud %.0f%%, moon %.0f%%)\n",
		v.Location, v.Score, v.CloudCover, v.MoonPhase*100)

	fmt.Fprintf(w, "ISS:        %s, %s @ %.0f km, %.2f km/s, %d crew\n",
		derive.FormatCoord(snap.ISS.Latitude, true),
		derive.FormatCoord(snap.ISS.Longitude, false),
		snap.ISS.Altitude, snap.ISS.Velocity, len(snap.ISS.Crew))

	upcoming, past := derive.PartitionLaunches(snap.Launches, now)
	fmt.Fprintf(w, "Launches:   %d upcoming, %d past\n", len(upcoming), len(past))
	fmt.Fprintf(w, "Events:     %d natural, %d celestial\n", len(snap.NaturalEvents), len(snap.CelestialEvents))

	layers := derive.VisibleLayers(snap.Layers)
	if len(layers) == 0 {
		layers = []string{"none"}
	}
	fmt.Fprintf(w, "Map:        %s (layers: %s)\n", snap.MapStyle, strings.Join(layers, ", "))
}

// WriteEvents writes the natural events that match filter.
func WriteEvents(w io.Writer, events []space.NaturalEvent, filter derive.CategoryFilter) {
	matched := derive.FilterByCategory(events, filter)

	fmt.Fprintf(w, "Natural events [%s]\n", filter)
	rule(w)
	if len(matched) == 0 {
		fmt.Fprintln(w, "No matching events")
		return
	}

	fmt.Fprintf(w, "%-10s %-10s %-28s %-10s %-20s\n", "ID", "Category", "Title", "Date", "Position")
	rule(w)
	for _, e := range matched {
		pos := fmt.Sprintf("%.2f, %.2f", e.Latitude(), e.Longitude())
		fmt.Fprintf(w, "%-10s %-10s %-28s %-10s %-20s\n",
			truncateStr(e.ID, 10),
			e.Category,
			truncateStr(e.Title, 28),
			e.Date,
			pos,
		)
	}
	fmt.Fprintf(w, "\nTotal: %d events\n", len(matched))
}

// WriteLaunches writes the launch timeline split into upcoming and past.
func WriteLaunches(w io.Writer, launches []space.Launch, now time.Time) {
	upcoming, past := derive.PartitionLaunches(launches, now)

	section := func(title string, ls []space.Launch) {
		fmt.Fprintf(w, "%s (%d)\n", title, len(ls))
		rule(w)
		if len(ls) == 0 {
			fmt.Fprintln(w, "None")
			return
		}
		for _, l := range ls {
			fmt.Fprintf(w, "%-8s %-32s %-17s %s\n",
				l.Status.Abbrev,
				truncateStr(l.Name, 32),
				l.NET.UTC().Format("2006-01-02 15:04Z"),
				l.LaunchServiceProvider.Name,
			)
		}
	}

	section("Upcoming launches", upcoming)
	fmt.Fprintln(w)
	section("Past launches", past)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
