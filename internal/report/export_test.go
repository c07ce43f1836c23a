package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/mock"
	"github.com/litescript/spacescope/internal/space"
	"github.com/litescript/spacescope/internal/state"
)

var now = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func seededSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	clock := clockwork.NewFakeClockAt(now)
	s := state.NewStore(state.DefaultConfig(), mock.Seed(now), state.WithClock(clock))
	return s.Snapshot()
}

func TestBuildExport(t *testing.T) {
	snap := seededSnapshot(t)
	export := BuildExport(snap, now)

	assert.Equal(t, now, export.GeneratedAt)
	assert.Equal(t, space.MapDark, export.MapStyle)
	assert.Equal(t, []string{"iss", "events"}, export.VisibleLayers)

	assert.Equal(t, 3, export.Weather.KpIndex)
	assert.Equal(t, "Unsettled", export.Weather.KpLevel)
	assert.Equal(t, "Moderate", export.Weather.FlareLevel)
	assert.Empty(t, export.Weather.Alerts)

	assert.Equal(t, "80.6000° W", export.ISS.LngText)
	assert.Equal(t, 7, export.ISS.Crew)

	require.Len(t, export.Upcoming, 2)
	require.Len(t, export.Past, 1)
	assert.Equal(t, "launch-003", export.Past[0].ID)
	assert.Equal(t, "Heliocentric", export.Past[0].Orbit)

	require.Len(t, export.CelestialEvents, 4)
	assert.Equal(t, "NE", export.CelestialEvents[0].Direction)
	assert.Equal(t, "high", export.CelestialEvents[0].ElevationTier)
	assert.Equal(t, "medium", export.CelestialEvents[2].ElevationTier)
}

func TestBuildExport_Selection(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	s := state.NewStore(state.DefaultConfig(), mock.Seed(now), state.WithClock(clock))
	e := s.Snapshot().NaturalEvents[2]
	s.SetSelectedEvent(&e)

	export := BuildExport(s.Snapshot(), now)
	assert.Equal(t, "EONET-003", export.SelectedEvent)
	assert.Empty(t, export.SelectedLaunch)
}

func TestWriteJSON(t *testing.T) {
	export := BuildExport(seededSnapshot(t), now)

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "dark", decoded["map_style"])
	assert.Len(t, decoded["natural_events"], 4)
	assert.True(t, strings.Contains(buf.String(), "\n  \""), "output is indented")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, seededSnapshot(t), now)
	out := buf.String()

	assert.Contains(t, out, "Spacescope @ 2025-01-20T12:00:00Z")
	assert.Contains(t, out, "Kp index:   3 (Unsettled)")
	assert.Contains(t, out, "M2.1 (Moderate")
	assert.Contains(t, out, "2 upcoming, 1 past")
	assert.Contains(t, out, "layers: iss, events")
}

func TestWriteSummary_Alerts(t *testing.T) {
	snap := seededSnapshot(t)
	snap.CosmicWeather.CurrentKpIndex = 7

	var buf bytes.Buffer
	WriteSummary(&buf, snap, now)
	assert.Contains(t, buf.String(), "Geomagnetic Storm Watch")
	assert.Contains(t, buf.String(), "Severe Storm")
}

func TestWriteEvents(t *testing.T) {
	var buf bytes.Buffer
	WriteEvents(&buf, mock.NaturalEvents(), derive.FilterFor(space.CategoryVolcano))
	out := buf.String()

	assert.Contains(t, out, "Natural events [volcano]")
	assert.Contains(t, out, "EONET-001")
	assert.Contains(t, out, "EONET-003")
	assert.NotContains(t, out, "EONET-002")
	assert.Contains(t, out, "Total: 2 events")
	assert.Less(t, strings.Index(out, "EONET-001"), strings.Index(out, "EONET-003"))
}

func TestWriteEvents_NoMatch(t *testing.T) {
	var buf bytes.Buffer
	WriteEvents(&buf, mock.NaturalEvents(), derive.FilterFor(space.CategoryIceberg))
	assert.Contains(t, buf.String(), "No matching events")
}

func TestWriteLaunches(t *testing.T) {
	var buf bytes.Buffer
	WriteLaunches(&buf, mock.Launches(), now)
	out := buf.String()

	assert.Contains(t, out, "Upcoming launches (2)")
	assert.Contains(t, out, "Past launches (1)")
	assert.Greater(t, strings.Index(out, "Europa Clipper"), strings.Index(out, "Past launches"))
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"California Wildfire Complex", 10, "Californ.."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateStr(tt.in, tt.max))
	}
}
