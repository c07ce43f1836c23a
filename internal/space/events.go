package space

// CelestialEventType classifies a sky event.
type CelestialEventType string

const (
	CelestialMeteorShower CelestialEventType = "meteor_shower"
	CelestialEclipse      CelestialEventType = "eclipse"
	CelestialConjunction  CelestialEventType = "conjunction"
	CelestialOpposition   CelestialEventType = "opposition"
	CelestialTransit      CelestialEventType = "transit"
)

// SkyVisibility describes how well an event can be seen.
type SkyVisibility string

const (
	SkyVisible    SkyVisibility = "visible"
	SkyPartial    SkyVisibility = "partial"
	SkyNotVisible SkyVisibility = "not_visible"
)

// CelestialEvent is an upcoming astronomical event. Seeded once, read only.
type CelestialEvent struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        CelestialEventType `json:"type"`
	Date        string             `json:"date"` // YYYY-MM-DD
	Time        string             `json:"time"` // HH:MM local
	Azimuth     float64            `json:"azimuth"`   // degrees, [0, 360)
	Elevation   float64            `json:"elevation"` // degrees, [-90, 90]
	Magnitude   *float64           `json:"magnitude,omitempty"`
	Duration    string             `json:"duration,omitempty"`
	Description string             `json:"description"`
	Visibility  SkyVisibility      `json:"visibility"`
}

// CelestialBody is a planet or moon position from an astronomy feed.
type CelestialBody struct {
	Name      string  `json:"name"`
	Altitude  float64 `json:"altitude"`
	Azimuth   float64 `json:"azimuth"`
	Distance  float64 `json:"distance"`
	Magnitude float64 `json:"magnitude"`
	Rise      string  `json:"rise"`
	Set       string  `json:"set"`
	Transit   string  `json:"transit"`
}

// EventCategory is the EONET-derived natural event category.
type EventCategory string

const (
	CategoryWildfire   EventCategory = "wildfire"
	CategoryVolcano    EventCategory = "volcano"
	CategoryEarthquake EventCategory = "earthquake"
	CategoryStorm      EventCategory = "storm"
	CategoryFlood      EventCategory = "flood"
	CategoryIceberg    EventCategory = "iceberg"
)

// Categories lists every natural event category in display order.
var Categories = []EventCategory{
	CategoryWildfire,
	CategoryVolcano,
	CategoryEarthquake,
	CategoryStorm,
	CategoryFlood,
	CategoryIceberg,
}

// Valid reports whether c is a known category.
func (c EventCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// EventStatus is the lifecycle state of a natural event.
type EventStatus string

const (
	StatusActive EventStatus = "active"
	StatusClosed EventStatus = "closed"
)

// NaturalEvent is the simplified EONET event shown in the events panel.
type NaturalEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    EventCategory `json:"category"`
	Coordinates [2]float64    `json:"coordinates"` // [longitude, latitude]
	Date        string        `json:"date"`
	Magnitude   *float64      `json:"magnitude,omitempty"` // acreage or similar
	Status      EventStatus   `json:"status"`
}

// Longitude returns the stored longitude.
func (e NaturalEvent) Longitude() float64 { return e.Coordinates[0] }

// Latitude returns the stored latitude.
func (e NaturalEvent) Latitude() float64 { return e.Coordinates[1] }

// EONETCategory is a raw EONET category reference.
type EONETCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// EONETGeometry is a raw EONET geometry entry. Coordinates holds either a
// point or a polygon ring, as delivered by the API.
type EONETGeometry struct {
	MagnitudeValue *float64    `json:"magnitudeValue"`
	MagnitudeUnit  *string     `json:"magnitudeUnit"`
	Date           string      `json:"date"`
	Type           string      `json:"type"` // "Point" or "Polygon"
	Coordinates    interface{} `json:"coordinates"`
}

// EONETSource is an EONET source reference.
type EONETSource struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// EONETEvent is the raw EONET event shape.
type EONETEvent struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Link        string          `json:"link"`
	Closed      *string         `json:"closed"`
	Categories  []EONETCategory `json:"categories"`
	Sources     []EONETSource   `json:"sources"`
	Geometry    []EONETGeometry `json:"geometry"`
}

// EONETResponse is the raw EONET events envelope.
type EONETResponse struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	Events      []EONETEvent `json:"events"`
}
