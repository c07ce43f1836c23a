package space

// MapStyle is the base map rendering style.
type MapStyle string

const (
	MapSatellite MapStyle = "satellite"
	MapDark      MapStyle = "dark"
	MapLight     MapStyle = "light"
	MapTerrain   MapStyle = "terrain"
)

// MapStyles lists the styles in cycle order.
var MapStyles = []MapStyle{MapSatellite, MapDark, MapLight, MapTerrain}

// Valid reports whether s is one of the four supported styles.
func (s MapStyle) Valid() bool {
	switch s {
	case MapSatellite, MapDark, MapLight, MapTerrain:
		return true
	}
	return false
}

// LayerKind separates base maps from overlays.
type LayerKind string

const (
	LayerBase    LayerKind = "base"
	LayerOverlay LayerKind = "overlay"
)

// MapLayer is a toggleable map layer.
type MapLayer struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Kind    LayerKind `json:"type"`
	Visible bool      `json:"visible"`
	Opacity float64   `json:"opacity"` // 0-1
}

// MarkerType classifies a map marker.
type MarkerType string

const (
	MarkerISS        MarkerType = "iss"
	MarkerWildfire   MarkerType = "wildfire"
	MarkerVolcano    MarkerType = "volcano"
	MarkerStorm      MarkerType = "storm"
	MarkerLaunchSite MarkerType = "launch_site"
)

// MapMarker is a point drawn on the map.
type MapMarker struct {
	ID          string                 `json:"id"`
	Type        MarkerType             `json:"type"`
	Coordinates [2]float64             `json:"coordinates"` // [longitude, latitude]
	Label       string                 `json:"label"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// UserLocation is the observer location chosen by the user.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// Units is the measurement system.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Theme is the colour theme preference.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// Notifications holds per-category alert opt-ins.
type Notifications struct {
	Launches        bool `json:"launches"`
	CelestialEvents bool `json:"celestialEvents"`
	ISSPass         bool `json:"issPass"`
}

// UserPreferences is the session's user settings.
type UserPreferences struct {
	Location      *UserLocation `json:"location"`
	Units         Units         `json:"units"`
	Theme         Theme         `json:"theme"`
	Notifications Notifications `json:"notifications"`
}

// Panel is the active side panel. PanelNone closes it.
type Panel string

const (
	PanelNone       Panel = ""
	PanelEvents     Panel = "events"
	PanelMissions   Panel = "missions"
	PanelSatellites Panel = "satellites"
	PanelWeather    Panel = "weather"
)

// Panels lists the side panels in tab order.
var Panels = []Panel{PanelEvents, PanelMissions, PanelSatellites, PanelWeather}

// Valid reports whether p is a known panel or PanelNone.
func (p Panel) Valid() bool {
	switch p {
	case PanelNone, PanelEvents, PanelMissions, PanelSatellites, PanelWeather:
		return true
	}
	return false
}

// Resource names a dataset that carries a loading flag.
type Resource string

const (
	ResourceWeather    Resource = "weather"
	ResourceEvents     Resource = "events"
	ResourceLaunches   Resource = "launches"
	ResourceSatellites Resource = "satellites"
)

// Loading holds per-resource loading flags.
type Loading struct {
	Weather    bool `json:"weather"`
	Events     bool `json:"events"`
	Launches   bool `json:"launches"`
	Satellites bool `json:"satellites"`
}

// Set returns a copy of l with the flag for r set to v. Unknown resources
// leave l unchanged.
func (l Loading) Set(r Resource, v bool) Loading {
	switch r {
	case ResourceWeather:
		l.Weather = v
	case ResourceEvents:
		l.Events = v
	case ResourceLaunches:
		l.Launches = v
	case ResourceSatellites:
		l.Satellites = v
	}
	return l
}

// Any reports whether any resource is loading.
func (l Loading) Any() bool {
	return l.Weather || l.Events || l.Launches || l.Satellites
}

// Valid reports whether r names a known resource.
func (r Resource) Valid() bool {
	switch r {
	case ResourceWeather, ResourceEvents, ResourceLaunches, ResourceSatellites:
		return true
	}
	return false
}
