// Package space provides the domain types shown on the SpaceScope dashboard.
//
// The shapes mirror the upstream provider responses (NASA DONKI, OpenWeather,
// astronomy feeds, EONET, Launch Library and satellite trackers) so a real
// integration can slot in later. Nothing in this package performs I/O.
package space

import "time"

// Kp index bounds.
const (
	MinKp = 0
	MaxKp = 9
)

// LinkedEvent references a related DONKI activity.
type LinkedEvent struct {
	ActivityID string `json:"activityID"`
}

// Instrument names the observing instrument for a flare.
type Instrument struct {
	DisplayName string `json:"displayName"`
}

// SolarFlare is a DONKI flare record.
type SolarFlare struct {
	FlareID         string        `json:"flrID"`
	Instruments     []Instrument  `json:"instruments"`
	BeginTime       time.Time     `json:"beginTime"`
	PeakTime        time.Time     `json:"peakTime"`
	EndTime         time.Time     `json:"endTime"`
	ClassType       string        `json:"classType"` // e.g. "M1.2", "X2.1"
	SourceLocation  string        `json:"sourceLocation"`
	ActiveRegionNum int           `json:"activeRegionNum"`
	LinkedEvents    []LinkedEvent `json:"linkedEvents"`
}

// KpReading is a single observed Kp value within a storm.
type KpReading struct {
	ObservedTime time.Time `json:"observedTime"`
	KpIndex      int       `json:"kpIndex"`
	Source       string    `json:"source"`
}

// GeomagneticStorm is a DONKI geomagnetic storm record.
type GeomagneticStorm struct {
	StormID      string        `json:"gstID"`
	StartTime    time.Time     `json:"startTime"`
	AllKpIndex   []KpReading   `json:"allKpIndex"`
	LinkedEvents []LinkedEvent `json:"linkedEvents"`
}

// CosmicWeather is the current space-weather snapshot.
type CosmicWeather struct {
	SolarFlares       []SolarFlare       `json:"solarFlares"`
	GeomagneticStorms []GeomagneticStorm `json:"geomagneticStorms"`
	CurrentKpIndex    int                `json:"currentKpIndex"`
	CurrentFlareClass string             `json:"currentFlareClass,omitempty"` // empty means no flare
	LastUpdated       time.Time          `json:"lastUpdated"`
}

// Valid reports whether the snapshot satisfies the Kp range invariant.
func (c CosmicWeather) Valid() bool {
	return c.CurrentKpIndex >= MinKp && c.CurrentKpIndex <= MaxKp
}

// ClampKp forces a Kp index into [0, 9].
func ClampKp(kp int) int {
	if kp < MinKp {
		return MinKp
	}
	if kp > MaxKp {
		return MaxKp
	}
	return kp
}

// LightPollution is the categorical sky-glow level at a site.
type LightPollution string

const (
	LightPollutionLow    LightPollution = "low"
	LightPollutionMedium LightPollution = "medium"
	LightPollutionHigh   LightPollution = "high"
)

// VisibilityScore is the overall stargazing rating.
type VisibilityScore string

const (
	ScoreExcellent VisibilityScore = "excellent"
	ScoreGood      VisibilityScore = "good"
	ScoreFair      VisibilityScore = "fair"
	ScorePoor      VisibilityScore = "poor"
)

// VisibilityForecast is tonight's observing forecast for a location.
//
// Score is authored independently of the other fields; it is not derived
// from cloud cover, moon phase or light pollution.
type VisibilityForecast struct {
	Location       string          `json:"location"`
	CloudCover     float64         `json:"cloudCover"` // 0-100 %
	Visibility     float64         `json:"visibility"` // meters
	Humidity       float64         `json:"humidity"`   // %
	MoonPhase      float64         `json:"moonPhase"`  // 0-1
	LightPollution LightPollution  `json:"lightPollution"`
	Score          VisibilityScore `json:"score"`
	Recommendation string          `json:"recommendation"`
}

// WeatherCondition is an OpenWeather condition entry.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentWeather mirrors the OpenWeather current-conditions response.
// Not populated by any source yet.
type CurrentWeather struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []WeatherCondition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Visibility float64 `json:"visibility"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	DT  int64 `json:"dt"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}
