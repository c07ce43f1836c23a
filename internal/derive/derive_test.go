package derive

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/spacescope/internal/mock"
	"github.com/litescript/spacescope/internal/space"
)

func ids(events []space.NaturalEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	events := mock.NaturalEvents()

	tests := []struct {
		name   string
		filter CategoryFilter
		want   []string
	}{
		{"all", CategoryAll, []string{"EONET-001", "EONET-002", "EONET-003", "EONET-004"}},
		{"volcano", FilterFor(space.CategoryVolcano), []string{"EONET-001", "EONET-003"}},
		{"wildfire", FilterFor(space.CategoryWildfire), []string{"EONET-002", "EONET-004"}},
		{"absent category", FilterFor(space.CategoryFlood), []string{}},
		{"unknown filter", CategoryFilter("meteor"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterByCategory(events, tt.filter)))
		})
	}
}

func TestFilterByCategory_SubsetProperty(t *testing.T) {
	events := mock.NaturalEvents()
	for _, c := range space.Categories {
		got := FilterByCategory(events, FilterFor(c))
		var want []space.NaturalEvent
		for _, e := range events {
			if e.Category == c {
				want = append(want, e)
			}
		}
		assert.ElementsMatch(t, want, got, "category %s", c)
		for _, e := range got {
			assert.Equal(t, c, e.Category)
		}
	}
}

func TestFilterByCategory_DoesNotAliasInput(t *testing.T) {
	events := mock.NaturalEvents()
	all := FilterByCategory(events, CategoryAll)
	all[0].Title = "mutated"
	assert.Equal(t, "Kilauea Volcano", events[0].Title)
}

func TestNextFilter(t *testing.T) {
	f := CategoryAll
	seen := map[CategoryFilter]bool{}
	for i := 0; i < len(space.Categories)+1; i++ {
		seen[f] = true
		f = NextFilter(f)
	}
	assert.Equal(t, CategoryAll, f, "cycle should wrap to all")
	assert.Len(t, seen, len(space.Categories)+1)
	assert.Equal(t, CategoryAll, NextFilter("bogus"))
}

func TestAdvanceISS_FromSeed(t *testing.T) {
	lng, lat := AdvanceISS(-80.6, DefaultISSModel())

	assert.InDelta(t, -80.1, lng, 1e-9)
	assert.InDelta(t, math.Sin(-80.1*math.Pi/180)*51.6, lat, 1e-9)
	assert.InDelta(t, -50.83, lat, 0.02)
}

func TestAdvanceISS_Wraps(t *testing.T) {
	m := DefaultISSModel()

	tests := []struct {
		name    string
		in      float64
		wantLng float64
	}{
		{"crosses antimeridian", 179.8, -179.7},
		{"lands on 180", 179.5, 180},
		{"from -180", -180, -179.5},
		{"zero", 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lng, lat := AdvanceISS(tt.in, m)
			assert.InDelta(t, tt.wantLng, lng, 1e-9)
			assert.GreaterOrEqual(t, lng, -180.0)
			assert.LessOrEqual(t, lng, 180.0)
			assert.InDelta(t, math.Sin(tt.wantLng*math.Pi/180)*51.6, lat, 1e-9)
		})
	}
}

func TestAdvanceISS_FullRevolution(t *testing.T) {
	m := DefaultISSModel()
	require.Equal(t, 720, m.TicksPerRevolution())

	for _, start := range []float64{-80.6, 0, 179.5, 90} {
		lng := start
		for i := 0; i < m.TicksPerRevolution(); i++ {
			lng, _ = AdvanceISS(lng, m)
		}
		assert.InDelta(t, start, lng, 1e-6, "start %v", start)
	}
}

func TestPartitionLaunches(t *testing.T) {
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	launches := []space.Launch{
		{ID: "past", NET: now.Add(-time.Hour)},
		{ID: "now", NET: now},
		{ID: "future", NET: now.Add(time.Nanosecond)},
	}

	upcoming, past := PartitionLaunches(launches, now)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "future", upcoming[0].ID)
	require.Len(t, past, 2)
	assert.Equal(t, "past", past[0].ID)
	assert.Equal(t, "now", past[1].ID, "NET equal to now is past")
}

func TestPartitionLaunches_Seed(t *testing.T) {
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	upcoming, past := PartitionLaunches(mock.Launches(), now)

	assert.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "launch-003", past[0].ID)
}

func TestVisibleLayers(t *testing.T) {
	assert.Equal(t, []string{"iss", "events"}, VisibleLayers(mock.DefaultLayers()))
}

func TestKpLevel(t *testing.T) {
	want := []KpBand{
		KpQuiet, KpQuiet, KpQuiet,
		KpUnsettled, KpUnsettled,
		KpStorm, KpStorm,
		KpSevereStorm, KpSevereStorm,
		KpExtreme,
	}
	for kp, band := range want {
		assert.Equal(t, band, KpLevel(kp), "kp %d", kp)
	}
	assert.Equal(t, "Severe Storm", KpSevereStorm.String())
}

func TestKpGaugePercent(t *testing.T) {
	assert.InDelta(t, 0, KpGaugePercent(0), 1e-9)
	assert.InDelta(t, 100, KpGaugePercent(9), 1e-9)
	assert.InDelta(t, 100, KpGaugePercent(12), 1e-9)
	assert.InDelta(t, 100.0/3, KpGaugePercent(3), 1e-9)
}

func TestKpAlerts(t *testing.T) {
	assert.Empty(t, KpAlerts(3, "M2.1"))
	assert.Len(t, KpAlerts(5, ""), 1)
	assert.Len(t, KpAlerts(6, ""), 2)

	xFlare := KpAlerts(2, "X1.0")
	require.Len(t, xFlare, 1)
	assert.Equal(t, "Aurora & Radio Alert", xFlare[0].Title)
}

func TestFlareLevel(t *testing.T) {
	tests := []struct {
		class string
		level string
	}{
		{"", "None"},
		{"X2.1", "Extreme"},
		{"M2.1", "Moderate"},
		{"C4.0", "Minor"},
		{"B1.0", "Background"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, FlareLevel(tt.class).Level, tt.class)
	}
}

func TestScoreAndStatusTones(t *testing.T) {
	assert.Equal(t, ToneInfo, ScoreTone(space.ScoreGood))
	assert.Equal(t, ToneDanger, ScoreTone(space.ScorePoor))
	assert.Equal(t, ToneMuted, ScoreTone("unknown"))

	assert.Equal(t, ToneCalm, LaunchStatusTone("Go"))
	assert.Equal(t, ToneCalm, LaunchStatusTone("Success"))
	assert.Equal(t, ToneDanger, LaunchStatusTone("Failure"))
	assert.Equal(t, ToneCaution, LaunchStatusTone("TBD"))
}

func TestAuroraLikelihood(t *testing.T) {
	assert.Equal(t, AuroraHigh, AuroraLikelihood(75))
	assert.Equal(t, AuroraModerate, AuroraLikelihood(50))
	assert.Equal(t, AuroraModerate, AuroraLikelihood(74.9))
	assert.Equal(t, AuroraLow, AuroraLikelihood(49.9))
}

func TestTimelineIndex(t *testing.T) {
	tests := []struct {
		slider float64
		want   int
	}{
		{-5, 0},
		{0, 0},
		{24.9, 0},
		{25, 1},
		{74, 2},
		{99, 3},
		{100, 4},
		{250, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimelineIndex(tt.slider), "slider %v", tt.slider)
	}
	assert.Equal(t, ToneInfo, TimelineTone(10))
	assert.Equal(t, ToneWarning, TimelineTone(80))
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "28.5000° N", FormatCoord(28.5, true))
	assert.Equal(t, "50.8300° S", FormatCoord(-50.83, true))
	assert.Equal(t, "80.6000° W", FormatCoord(-80.6, false))
	assert.Equal(t, "0.0000° E", FormatCoord(0, false))
}
