// Package state provides the thread-safe store that owns all dashboard state.
package state

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/logging"
	"github.com/litescript/spacescope/internal/mock"
	"github.com/litescript/spacescope/internal/observability"
	"github.com/litescript/spacescope/internal/space"
)

// Slice identifies a region of state that subscribers can watch.
type Slice uint16

const (
	SliceMap Slice = 1 << iota
	SliceLayers
	SliceSelection
	SliceLayout
	SlicePreferences
	SliceISS
	SliceLoading

	SliceAll = SliceMap | SliceLayers | SliceSelection | SliceLayout |
		SlicePreferences | SliceISS | SliceLoading
)

var sliceNames = []struct {
	s    Slice
	name string
}{
	{SliceMap, "map"},
	{SliceLayers, "layers"},
	{SliceSelection, "selection"},
	{SliceLayout, "layout"},
	{SlicePreferences, "preferences"},
	{SliceISS, "iss"},
	{SliceLoading, "loading"},
}

func (s Slice) String() string {
	if s == SliceAll {
		return "all"
	}
	var parts []string
	for _, n := range sliceNames {
		if s&n.s != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Change records one applied action.
type Change struct {
	Action string    `json:"action"`
	Slice  Slice     `json:"-"`
	At     time.Time `json:"at"`
}

// Config holds configuration for the store.
type Config struct {
	MaxChanges  int
	ISSInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxChanges:  50,
		ISSInterval: 5 * time.Second,
	}
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithISSModel overrides the simulated ISS step and inclination.
func WithISSModel(m derive.ISSModel) Option {
	return func(s *Store) { s.issModel = m }
}

type subscriber struct {
	id   uint64
	mask Slice
	fn   func(Snapshot)
}

// Store owns domain data and UI state. All mutations go through its actions.
type Store struct {
	mu sync.RWMutex

	// Domain data
	cosmicWeather   space.CosmicWeather
	visibility      space.VisibilityForecast
	celestialEvents []space.CelestialEvent
	naturalEvents   []space.NaturalEvent
	launches        []space.Launch
	iss             space.ISSData
	orbitPath       space.OrbitPath

	// View state
	mapStyle       space.MapStyle
	layers         []space.MapLayer
	selectedEvent  *space.NaturalEvent
	selectedLaunch *space.Launch
	sidebarOpen    bool
	activePanel    space.Panel
	preferences    space.UserPreferences
	loading        space.Loading

	version uint64

	// Change log (ring buffer)
	changes       []Change
	maxChanges    int
	changeWriteAt int

	subs   []subscriber
	nextID uint64

	issInterval time.Duration
	issModel    derive.ISSModel
	clock       clockwork.Clock
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewStore creates a store seeded with ds.
func NewStore(cfg Config, ds mock.Dataset, opts ...Option) *Store {
	maxChanges := cfg.MaxChanges
	if maxChanges <= 0 {
		maxChanges = 50
	}
	s := &Store{
		cosmicWeather:   ds.CosmicWeather.Clone(),
		visibility:      ds.Visibility,
		celestialEvents: space.CloneEach(ds.CelestialEvents),
		naturalEvents:   space.CloneEach(ds.NaturalEvents),
		launches:        space.CloneEach(ds.Launches),
		iss:             ds.ISS.Clone(),
		orbitPath:       ds.OrbitPath.Clone(),
		mapStyle:        space.MapDark,
		layers:          append([]space.MapLayer(nil), ds.Layers...),
		sidebarOpen:     true,
		activePanel:     space.PanelEvents,
		preferences:     ds.Preferences.Clone(),
		maxChanges:      maxChanges,
		changes:         make([]Change, 0, maxChanges),
		issInterval:     cfg.ISSInterval,
		issModel:        derive.DefaultISSModel(),
		clock:           clockwork.NewRealClock(),
		logger:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after any action that writes a slice
// in mask. Callbacks run on the goroutine that invoked the action, after the
// store lock is released, in subscription order. The returned function
// removes the subscription and is safe to call more than once.
func (s *Store) Subscribe(mask Slice, fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, mask: mask, fn: fn})
	s.metrics.SetSubscribers(len(s.subs))
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
			s.metrics.SetSubscribers(len(s.subs))
		})
	}
}

// apply runs mutate under the write lock. When mutate reports a change, the
// change is logged and matching subscribers are notified with a snapshot
// taken under the same lock.
func (s *Store) apply(action string, slice Slice, mutate func() bool) bool {
	s.mu.Lock()
	if !mutate() {
		s.mu.Unlock()
		s.metrics.Ignored(action)
		return false
	}

	s.version++
	s.addChange(Change{Action: action, Slice: slice, At: s.clock.Now()})
	s.metrics.Applied(action)

	var fns []func(Snapshot)
	for _, sub := range s.subs {
		if sub.mask&slice != 0 {
			fns = append(fns, sub.fn)
		}
	}
	var snap Snapshot
	if len(fns) > 0 {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	s.metrics.Notified(len(fns))
	return true
}

// addChange adds a change to the ring buffer.
func (s *Store) addChange(c Change) {
	if len(s.changes) < s.maxChanges {
		s.changes = append(s.changes, c)
	} else {
		s.changes[s.changeWriteAt] = c
		s.changeWriteAt = (s.changeWriteAt + 1) % s.maxChanges
	}
}

// SetMapStyle replaces the base map style. Unknown styles are ignored.
func (s *Store) SetMapStyle(style space.MapStyle) bool {
	return s.apply("set_map_style", SliceMap, func() bool {
		if !style.Valid() {
			s.logger.Debug("ignoring unknown map style", "style", string(style))
			return false
		}
		s.mapStyle = style
		return true
	})
}

// ToggleLayer flips the visibility of the layer with the given id. It
// reports false and changes nothing when no layer matches.
func (s *Store) ToggleLayer(id string) bool {
	return s.apply("toggle_layer", SliceLayers, func() bool {
		for i := range s.layers {
			if s.layers[i].ID == id {
				s.layers[i].Visible = !s.layers[i].Visible
				return true
			}
		}
		s.logger.Debug("ignoring unknown layer", "layer", id)
		return false
	})
}

// SetSelectedEvent sets the highlighted natural event; nil clears it.
// Reselecting the current event keeps it selected.
func (s *Store) SetSelectedEvent(e *space.NaturalEvent) {
	s.apply("set_selected_event", SliceSelection, func() bool {
		if e == nil {
			s.selectedEvent = nil
		} else {
			c := e.Clone()
			s.selectedEvent = &c
		}
		return true
	})
}

// SetSelectedLaunch sets the highlighted launch; nil clears it.
func (s *Store) SetSelectedLaunch(l *space.Launch) {
	s.apply("set_selected_launch", SliceSelection, func() bool {
		if l == nil {
			s.selectedLaunch = nil
		} else {
			c := l.Clone()
			s.selectedLaunch = &c
		}
		return true
	})
}

// SetSidebarOpen opens or closes the sidebar.
func (s *Store) SetSidebarOpen(open bool) {
	s.apply("set_sidebar_open", SliceLayout, func() bool {
		s.sidebarOpen = open
		return true
	})
}

// SetActivePanel switches the side panel. PanelNone closes it; unknown
// panels are ignored.
func (s *Store) SetActivePanel(p space.Panel) bool {
	return s.apply("set_active_panel", SliceLayout, func() bool {
		if !p.Valid() {
			s.logger.Debug("ignoring unknown panel", "panel", string(p))
			return false
		}
		s.activePanel = p
		return true
	})
}

// SetUserLocation replaces the preference location, leaving the other
// preference fields untouched.
func (s *Store) SetUserLocation(loc space.UserLocation) {
	s.apply("set_user_location", SlicePreferences, func() bool {
		s.preferences.Location = &loc
		return true
	})
}

// SetLoading sets the loading flag for a resource.
func (s *Store) SetLoading(r space.Resource, loading bool) bool {
	return s.apply("set_loading", SliceLoading, func() bool {
		if !r.Valid() {
			s.logger.Debug("ignoring unknown resource", "resource", string(r))
			return false
		}
		s.loading = s.loading.Set(r, loading)
		return true
	})
}

// UpdateISSPosition advances the simulated ISS one step and stamps it with
// the store clock.
func (s *Store) UpdateISSPosition() {
	s.apply("update_iss_position", SliceISS, func() bool {
		lng, lat := derive.AdvanceISS(s.iss.Longitude, s.issModel)
		s.iss.Longitude = lng
		s.iss.Latitude = lat
		s.iss.Timestamp = s.clock.Now()
		return true
	})
	s.metrics.Tick()
}

// FilterEventsByCategory returns the natural events matching filter, or all
// of them for derive.CategoryAll. It does not modify the store.
func (s *Store) FilterEventsByCategory(filter derive.CategoryFilter) []space.NaturalEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return space.CloneEach(derive.FilterByCategory(s.naturalEvents, filter))
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Version         uint64
	CosmicWeather   space.CosmicWeather
	Visibility      space.VisibilityForecast
	CelestialEvents []space.CelestialEvent
	NaturalEvents   []space.NaturalEvent
	Launches        []space.Launch
	ISS             space.ISSData
	OrbitPath       space.OrbitPath
	MapStyle        space.MapStyle
	Layers          []space.MapLayer
	SelectedEvent   *space.NaturalEvent
	SelectedLaunch  *space.Launch
	SidebarOpen     bool
	ActivePanel     space.Panel
	Preferences     space.UserPreferences
	Loading         space.Loading
}

// Snapshot returns a consistent deep copy of current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:         s.version,
		CosmicWeather:   s.cosmicWeather.Clone(),
		Visibility:      s.visibility,
		CelestialEvents: space.CloneEach(s.celestialEvents),
		NaturalEvents:   space.CloneEach(s.naturalEvents),
		Launches:        space.CloneEach(s.launches),
		ISS:             s.iss.Clone(),
		OrbitPath:       s.orbitPath.Clone(),
		MapStyle:        s.mapStyle,
		Layers:          append([]space.MapLayer(nil), s.layers...),
		SidebarOpen:     s.sidebarOpen,
		ActivePanel:     s.activePanel,
		Preferences:     s.preferences.Clone(),
		Loading:         s.loading,
	}
	if s.selectedEvent != nil {
		e := s.selectedEvent.Clone()
		snap.SelectedEvent = &e
	}
	if s.selectedLaunch != nil {
		l := s.selectedLaunch.Clone()
		snap.SelectedLaunch = &l
	}
	return snap
}

// getChangesOrdered returns changes in chronological order.
func (s *Store) getChangesOrdered() []Change {
	if len(s.changes) == 0 {
		return nil
	}

	if len(s.changes) < s.maxChanges {
		result := make([]Change, len(s.changes))
		copy(result, s.changes)
		return result
	}

	result := make([]Change, s.maxChanges)
	for i := 0; i < s.maxChanges; i++ {
		idx := (s.changeWriteAt + i) % s.maxChanges
		result[i] = s.changes[idx]
	}
	return result
}

// RecentChanges returns the last n applied actions, oldest first.
func (s *Store) RecentChanges(n int) []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.getChangesOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// ISSInterval returns the configured ISS update interval.
func (s *Store) ISSInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issInterval
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}
