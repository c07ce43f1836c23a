package state

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/mock"
	"github.com/litescript/spacescope/internal/observability"
	"github.com/litescript/spacescope/internal/space"
)

var seedTime = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) (*Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(seedTime)
	opts = append([]Option{WithClock(clock)}, opts...)
	return NewStore(DefaultConfig(), mock.Seed(clock.Now()), opts...), clock
}

func TestNewStore_Defaults(t *testing.T) {
	s, _ := newTestStore(t)
	snap := s.Snapshot()

	assert.Equal(t, space.MapDark, snap.MapStyle)
	assert.True(t, snap.SidebarOpen)
	assert.Equal(t, space.PanelEvents, snap.ActivePanel)
	assert.Nil(t, snap.SelectedEvent)
	assert.Nil(t, snap.SelectedLaunch)
	assert.False(t, snap.Loading.Any())
	assert.Nil(t, snap.Preferences.Location)
	assert.Len(t, snap.NaturalEvents, 4)
	assert.Len(t, snap.Layers, 4)
	assert.InDelta(t, -80.6, snap.ISS.Longitude, 1e-9)
	assert.Zero(t, snap.Version)
	assert.Equal(t, 5*time.Second, s.ISSInterval())
}

func TestNewStore_DoesNotAliasDataset(t *testing.T) {
	ds := mock.Seed(seedTime)
	s := NewStore(DefaultConfig(), ds)

	ds.NaturalEvents[0].Title = "mutated"
	ds.Layers[0].Visible = true
	*ds.NaturalEvents[1].Magnitude = -1

	snap := s.Snapshot()
	assert.Equal(t, "Kilauea Volcano", snap.NaturalEvents[0].Title)
	assert.False(t, snap.Layers[0].Visible)
	assert.NotEqual(t, -1.0, *snap.NaturalEvents[1].Magnitude)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	snap.Layers[0].Visible = !snap.Layers[0].Visible
	snap.ISS.Crew[0].Name = "nobody"
	snap.CosmicWeather.SolarFlares[0].ClassType = "Z9"
	snap.Launches[0].Mission.Name = "changed"

	again := s.Snapshot()
	assert.NotEqual(t, snap.Layers[0].Visible, again.Layers[0].Visible)
	assert.NotEqual(t, "nobody", again.ISS.Crew[0].Name)
	assert.NotEqual(t, "Z9", again.CosmicWeather.SolarFlares[0].ClassType)
	assert.NotEqual(t, "changed", again.Launches[0].Mission.Name)
}

func TestSetMapStyle(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.SetMapStyle(space.MapTerrain))
	assert.Equal(t, space.MapTerrain, s.Snapshot().MapStyle)

	assert.False(t, s.SetMapStyle("watercolor"))
	assert.Equal(t, space.MapTerrain, s.Snapshot().MapStyle)
}

func TestToggleLayer_Involution(t *testing.T) {
	s, _ := newTestStore(t)

	for _, l := range mock.DefaultLayers() {
		before := s.Snapshot().Layers

		require.True(t, s.ToggleLayer(l.ID))
		mid := s.Snapshot().Layers
		for i := range mid {
			if mid[i].ID == l.ID {
				assert.Equal(t, !before[i].Visible, mid[i].Visible, l.ID)
			} else {
				assert.Equal(t, before[i], mid[i])
			}
		}

		require.True(t, s.ToggleLayer(l.ID))
		assert.Equal(t, before, s.Snapshot().Layers, l.ID)
	}
}

func TestToggleLayer_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot()

	assert.False(t, s.ToggleLayer("aurora"))

	after := s.Snapshot()
	assert.Equal(t, before.Layers, after.Layers)
	assert.Equal(t, before.Version, after.Version)
	assert.Empty(t, s.RecentChanges(10))
}

func TestSetSelectedEvent_NoAutoToggle(t *testing.T) {
	s, _ := newTestStore(t)
	events := s.Snapshot().NaturalEvents
	a := events[0]

	s.SetSelectedEvent(&a)
	s.SetSelectedEvent(&a)

	got := s.Snapshot().SelectedEvent
	require.NotNil(t, got)
	assert.Equal(t, a, *got)

	s.SetSelectedEvent(nil)
	assert.Nil(t, s.Snapshot().SelectedEvent)
}

func TestSetSelectedEvent_CopiesArgument(t *testing.T) {
	s, _ := newTestStore(t)
	e := s.Snapshot().NaturalEvents[1]

	s.SetSelectedEvent(&e)
	e.Title = "changed after select"

	assert.NotEqual(t, "changed after select", s.Snapshot().SelectedEvent.Title)
}

func TestSetSelectedLaunch(t *testing.T) {
	s, _ := newTestStore(t)
	l := s.Snapshot().Launches[2]

	s.SetSelectedLaunch(&l)
	require.NotNil(t, s.Snapshot().SelectedLaunch)
	assert.Equal(t, "launch-003", s.Snapshot().SelectedLaunch.ID)

	s.SetSelectedLaunch(nil)
	assert.Nil(t, s.Snapshot().SelectedLaunch)
}

func TestLayoutActions(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetSidebarOpen(false)
	assert.False(t, s.Snapshot().SidebarOpen)

	assert.True(t, s.SetActivePanel(space.PanelWeather))
	assert.Equal(t, space.PanelWeather, s.Snapshot().ActivePanel)

	assert.True(t, s.SetActivePanel(space.PanelNone))
	assert.Equal(t, space.PanelNone, s.Snapshot().ActivePanel)

	assert.False(t, s.SetActivePanel("settings"))
	assert.Equal(t, space.PanelNone, s.Snapshot().ActivePanel)
}

func TestSetUserLocation_KeepsOtherPreferences(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot().Preferences

	s.SetUserLocation(space.UserLocation{Latitude: 28.5, Longitude: -80.6, City: "Cape Canaveral", Country: "USA"})

	after := s.Snapshot().Preferences
	require.NotNil(t, after.Location)
	assert.Equal(t, "Cape Canaveral", after.Location.City)
	assert.Equal(t, before.Units, after.Units)
	assert.Equal(t, before.Theme, after.Theme)
	assert.Equal(t, before.Notifications, after.Notifications)
}

func TestSetLoading(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.SetLoading(space.ResourceLaunches, true))
	snap := s.Snapshot()
	assert.True(t, snap.Loading.Launches)
	assert.False(t, snap.Loading.Events)

	assert.False(t, s.SetLoading("telemetry", true))
	assert.True(t, s.SetLoading(space.ResourceLaunches, false))
	assert.False(t, s.Snapshot().Loading.Any())
}

func TestUpdateISSPosition_FromSeed(t *testing.T) {
	s, clock := newTestStore(t)
	clock.Advance(5 * time.Second)

	s.UpdateISSPosition()

	iss := s.Snapshot().ISS
	assert.InDelta(t, -80.1, iss.Longitude, 1e-9)
	assert.InDelta(t, math.Sin(-80.1*math.Pi/180)*51.6, iss.Latitude, 1e-9)
	assert.Equal(t, seedTime.Add(5*time.Second), iss.Timestamp)
	assert.Equal(t, 420.0, iss.Altitude, "only position and timestamp change")
}

func TestUpdateISSPosition_FullRevolution(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 720; i++ {
		s.UpdateISSPosition()
	}
	assert.InDelta(t, -80.6, s.Snapshot().ISS.Longitude, 1e-6)
}

func TestUpdateISSPosition_CustomModel(t *testing.T) {
	s, _ := newTestStore(t, WithISSModel(derive.ISSModel{StepDeg: 10, InclinationDeg: 45}))
	s.UpdateISSPosition()

	iss := s.Snapshot().ISS
	assert.InDelta(t, -70.6, iss.Longitude, 1e-9)
	assert.InDelta(t, math.Sin(-70.6*math.Pi/180)*45, iss.Latitude, 1e-9)
}

func TestFilterEventsByCategory(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot()

	volcanoes := s.FilterEventsByCategory(derive.FilterFor(space.CategoryVolcano))
	require.Len(t, volcanoes, 2)
	assert.Equal(t, "EONET-001", volcanoes[0].ID)
	assert.Equal(t, "EONET-003", volcanoes[1].ID)

	all := s.FilterEventsByCategory(derive.CategoryAll)
	assert.Equal(t, before.NaturalEvents, all)

	assert.Equal(t, before.Version, s.Snapshot().Version, "filtering is read-only")
}

func TestSubscribe_SliceMask(t *testing.T) {
	s, _ := newTestStore(t)

	var layerCalls, issCalls, allCalls int
	s.Subscribe(SliceLayers, func(Snapshot) { layerCalls++ })
	s.Subscribe(SliceISS, func(Snapshot) { issCalls++ })
	s.Subscribe(SliceAll, func(Snapshot) { allCalls++ })

	s.ToggleLayer("iss")
	s.UpdateISSPosition()
	s.SetSidebarOpen(false)

	assert.Equal(t, 1, layerCalls)
	assert.Equal(t, 1, issCalls)
	assert.Equal(t, 3, allCalls)
}

func TestSubscribe_NoNotificationOnNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	s.Subscribe(SliceAll, func(Snapshot) { calls++ })

	s.ToggleLayer("missing")
	s.SetMapStyle("sepia")
	s.SetActivePanel("settings")
	s.SetLoading("nothing", true)

	assert.Zero(t, calls)
}

func TestSubscribe_ReceivesPostChangeSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	var got Snapshot
	s.Subscribe(SliceMap, func(snap Snapshot) { got = snap })
	s.SetMapStyle(space.MapLight)

	assert.Equal(t, space.MapLight, got.MapStyle)
	assert.Equal(t, uint64(1), got.Version)
}

func TestSubscribe_Order(t *testing.T) {
	s, _ := newTestStore(t)

	var order []int
	for i := 0; i < 3; i++ {
		s.Subscribe(SliceLayout, func(Snapshot) { order = append(order, i) })
	}
	s.SetSidebarOpen(false)

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	s, _ := newTestStore(t, WithMetrics(metrics))

	calls := 0
	unsub := s.Subscribe(SliceAll, func(Snapshot) { calls++ })
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Subscribers), 1e-9)

	s.SetSidebarOpen(false)
	unsub()
	unsub()
	s.SetSidebarOpen(true)

	assert.Equal(t, 1, calls)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.Subscribers), 1e-9)
}

func TestSubscribe_CallbackMayCallStore(t *testing.T) {
	s, _ := newTestStore(t)

	var seen space.MapStyle
	s.Subscribe(SliceLayers, func(Snapshot) {
		seen = s.Snapshot().MapStyle
		s.SetMapStyle(space.MapSatellite)
	})
	s.ToggleLayer("weather")

	assert.Equal(t, space.MapDark, seen)
	assert.Equal(t, space.MapSatellite, s.Snapshot().MapStyle)
}

func TestMetrics_CountActions(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	s, _ := newTestStore(t, WithMetrics(metrics))

	s.ToggleLayer("iss")
	s.ToggleLayer("nope")
	s.UpdateISSPosition()

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Actions.WithLabelValues("toggle_layer")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.IgnoredActions.WithLabelValues("toggle_layer")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ISSTicks), 1e-9)
}

func TestRecentChanges_RingBuffer(t *testing.T) {
	clock := clockwork.NewFakeClockAt(seedTime)
	s := NewStore(Config{MaxChanges: 3}, mock.Seed(seedTime), WithClock(clock))

	s.SetSidebarOpen(false)
	s.ToggleLayer("iss")
	s.SetMapStyle(space.MapLight)
	clock.Advance(time.Second)
	s.UpdateISSPosition()

	changes := s.RecentChanges(10)
	require.Len(t, changes, 3)
	assert.Equal(t, "toggle_layer", changes[0].Action)
	assert.Equal(t, "set_map_style", changes[1].Action)
	assert.Equal(t, "update_iss_position", changes[2].Action)
	assert.Equal(t, SliceISS, changes[2].Slice)
	assert.Equal(t, seedTime.Add(time.Second), changes[2].At)

	last := s.RecentChanges(1)
	require.Len(t, last, 1)
	assert.Equal(t, "update_iss_position", last[0].Action)
}

func TestSliceString(t *testing.T) {
	assert.Equal(t, "all", SliceAll.String())
	assert.Equal(t, "layers|iss", (SliceLayers | SliceISS).String())
	assert.Equal(t, "none", Slice(0).String())
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(t)
	s.Subscribe(SliceAll, func(Snapshot) {})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				switch (i + j) % 4 {
				case 0:
					s.UpdateISSPosition()
				case 1:
					s.ToggleLayer("weather")
				case 2:
					_ = s.Snapshot()
				default:
					_ = s.FilterEventsByCategory(derive.CategoryAll)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Layers, 4)
}
