package space

import "time"

// TLEData is a two-line element set. Kept for a future tracker; unused.
type TLEData struct {
	SatelliteID int    `json:"satelliteId"`
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
}

// SatellitePosition is a generic sub-satellite point.
type SatellitePosition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Altitude  float64   `json:"altitude"` // km
	Velocity  float64   `json:"velocity"` // km/s
	Timestamp time.Time `json:"timestamp"`
}

// CrewMember is one person aboard the station.
type CrewMember struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

// PassVisibility is whether the station is currently visible from the user.
type PassVisibility string

const (
	PassVisible    PassVisibility = "visible"
	PassNotVisible PassVisibility = "not_visible"
)

// NextPass is the next visible overhead pass.
type NextPass struct {
	Rise        time.Time `json:"rise"`
	MaxAltitude float64   `json:"maxAltitude"`
	Set         time.Time `json:"set"`
}

// ISSData is the simulated International Space Station telemetry.
type ISSData struct {
	SatellitePosition
	Crew        []CrewMember   `json:"crew"`
	OrbitNumber int            `json:"orbitNumber"`
	Visibility  PassVisibility `json:"visibility"`
	NextPass    *NextPass      `json:"nextPass,omitempty"`
}

// OrbitSample is one ground-track point.
type OrbitSample struct {
	Lat  float64   `json:"lat"`
	Lng  float64   `json:"lng"`
	Time time.Time `json:"time"`
}

// OrbitPath is a ground track for a satellite.
type OrbitPath struct {
	SatelliteID string        `json:"satelliteId"`
	Path        []OrbitSample `json:"path"`
}
