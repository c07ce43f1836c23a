// Package mock provides the authored seed data the dashboard starts with.
//
// Every generator is deterministic. Fields that depend on wall-clock time
// take it as a parameter so callers can supply a fixed clock.
package mock

import (
	"math"
	"time"

	"github.com/litescript/spacescope/internal/space"
)

// Orbit path generation parameters.
const (
	OrbitSamples     = 100
	OrbitSampleStep  = time.Minute
	OrbitInclination = 51.6 // degrees
)

// Dataset bundles all seed data for store initialisation.
type Dataset struct {
	CosmicWeather   space.CosmicWeather
	Visibility      space.VisibilityForecast
	CelestialEvents []space.CelestialEvent
	NaturalEvents   []space.NaturalEvent
	Launches        []space.Launch
	ISS             space.ISSData
	OrbitPath       space.OrbitPath
	Layers          []space.MapLayer
	Preferences     space.UserPreferences
}

// Seed builds a complete dataset stamped at now.
func Seed(now time.Time) Dataset {
	return Dataset{
		CosmicWeather:   CosmicWeather(now),
		Visibility:      Visibility(),
		CelestialEvents: CelestialEvents(),
		NaturalEvents:   NaturalEvents(),
		Launches:        Launches(),
		ISS:             ISS(now),
		OrbitPath:       OrbitPath(now),
		Layers:          DefaultLayers(),
		Preferences:     DefaultPreferences(),
	}
}

func ptr[T any](v T) *T { return &v }

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// CosmicWeather returns the space-weather snapshot: Kp 3, one M2.1 flare.
func CosmicWeather(now time.Time) space.CosmicWeather {
	return space.CosmicWeather{
		SolarFlares: []space.SolarFlare{
			{
				FlareID:         "FLR-2024-01-15-001",
				Instruments:     []space.Instrument{{DisplayName: "GOES-16"}},
				BeginTime:       mustTime("2024-01-15T08:23:00Z"),
				PeakTime:        mustTime("2024-01-15T08:45:00Z"),
				EndTime:         mustTime("2024-01-15T09:12:00Z"),
				ClassType:       "M2.1",
				SourceLocation:  "N15W23",
				ActiveRegionNum: 3536,
			},
		},
		GeomagneticStorms: []space.GeomagneticStorm{},
		CurrentKpIndex:    3,
		CurrentFlareClass: "M2.1",
		LastUpdated:       now,
	}
}

// Visibility returns tonight's forecast for San Francisco.
func Visibility() space.VisibilityForecast {
	return space.VisibilityForecast{
		Location:       "San Francisco, CA",
		CloudCover:     15,
		Visibility:     10000,
		Humidity:       45,
		MoonPhase:      0.25,
		LightPollution: space.LightPollutionHigh,
		Score:          space.ScoreGood,
		Recommendation: "Clear skies expected. Good conditions for planetary observation.",
	}
}

// CelestialEvents returns the upcoming sky events.
func CelestialEvents() []space.CelestialEvent {
	return []space.CelestialEvent{
		{
			ID:          "evt-001",
			Name:        "Quadrantids Meteor Shower",
			Type:        space.CelestialMeteorShower,
			Date:        "2025-01-03",
			Time:        "02:00",
			Azimuth:     45,
			Elevation:   60,
			Magnitude:   ptr(120.0),
			Duration:    "6 hours",
			Description: "One of the best annual meteor showers, producing up to 120 meteors per hour.",
			Visibility:  space.SkyVisible,
		},
		{
			ID:          "evt-002",
			Name:        "Mars at Opposition",
			Type:        space.CelestialOpposition,
			Date:        "2025-01-16",
			Time:        "00:00",
			Azimuth:     180,
			Elevation:   45,
			Description: "Mars will be at its closest approach to Earth and fully illuminated by the Sun.",
			Visibility:  space.SkyVisible,
		},
		{
			ID:          "evt-003",
			Name:        "Total Lunar Eclipse",
			Type:        space.CelestialEclipse,
			Date:        "2025-03-14",
			Time:        "05:30",
			Azimuth:     270,
			Elevation:   30,
			Duration:    "3h 20m",
			Description: "The Moon will pass through Earth's shadow, turning a deep red color.",
			Visibility:  space.SkyPartial,
		},
		{
			ID:          "evt-004",
			Name:        "Lyrid Meteor Shower",
			Type:        space.CelestialMeteorShower,
			Date:        "2025-04-22",
			Time:        "03:00",
			Azimuth:     90,
			Elevation:   55,
			Magnitude:   ptr(20.0),
			Duration:    "4 hours",
			Description: "Annual meteor shower with bright meteors and occasional fireballs.",
			Visibility:  space.SkyVisible,
		},
	}
}

// NaturalEvents returns the tracked natural events: two volcanoes and two
// wildfires, interleaved.
func NaturalEvents() []space.NaturalEvent {
	return []space.NaturalEvent{
		{
			ID:          "EONET-001",
			Title:       "Kilauea Volcano",
			Category:    space.CategoryVolcano,
			Coordinates: [2]float64{-155.286, 19.421},
			Date:        "2025-01-10",
			Status:      space.StatusActive,
		},
		{
			ID:          "EONET-002",
			Title:       "California Wildfire Complex",
			Category:    space.CategoryWildfire,
			Coordinates: [2]float64{-121.5, 38.5},
			Date:        "2025-01-08",
			Magnitude:   ptr(15000.0),
			Status:      space.StatusActive,
		},
		{
			ID:          "EONET-003",
			Title:       "Iceland Volcanic Eruption",
			Category:    space.CategoryVolcano,
			Coordinates: [2]float64{-22.5, 63.9},
			Date:        "2025-01-05",
			Status:      space.StatusActive,
		},
		{
			ID:          "EONET-004",
			Title:       "Australian Bushfire",
			Category:    space.CategoryWildfire,
			Coordinates: [2]float64{149.1, -35.3},
			Date:        "2025-01-12",
			Magnitude:   ptr(8500.0),
			Status:      space.StatusActive,
		},
	}
}

// Launches returns two scheduled launches and one completed launch.
func Launches() []space.Launch {
	spaceX := space.LaunchServiceProvider{ID: 121, Name: "SpaceX", Type: "Commercial"}
	return []space.Launch{
		{
			ID:                    "launch-001",
			Name:                  "Falcon 9 | Starlink Group 6-35",
			Status:                space.LaunchStatus{ID: 1, Name: "Go for Launch", Abbrev: "Go"},
			NET:                   mustTime("2025-01-28T14:30:00Z"),
			WindowStart:           mustTime("2025-01-28T14:30:00Z"),
			WindowEnd:             mustTime("2025-01-28T18:30:00Z"),
			LaunchServiceProvider: spaceX,
			Rocket: space.Rocket{ID: 1, Configuration: space.RocketConfiguration{
				Name: "Falcon 9", Family: "Falcon", FullName: "Falcon 9 Block 5",
			}},
			Mission: &space.Mission{
				ID: 1, Name: "Starlink Group 6-35",
				Description: "Deployment of Starlink satellites.",
				Type:        "Communications",
				Orbit:       &space.Orbit{Name: "Low Earth Orbit"},
			},
			Pad: space.LaunchPad{ID: 80, Name: "SLC-40", Location: space.PadLocation{
				Name: "Cape Canaveral", CountryCode: "USA",
			}},
		},
		{
			ID:                    "launch-002",
			Name:                  "Ariane 6 | Galileo L13",
			Status:                space.LaunchStatus{ID: 2, Name: "TBD", Abbrev: "TBD"},
			NET:                   mustTime("2025-02-15T10:00:00Z"),
			WindowStart:           mustTime("2025-02-15T10:00:00Z"),
			WindowEnd:             mustTime("2025-02-15T12:00:00Z"),
			LaunchServiceProvider: space.LaunchServiceProvider{ID: 115, Name: "Arianespace", Type: "Commercial"},
			Rocket: space.Rocket{ID: 2, Configuration: space.RocketConfiguration{
				Name: "Ariane 6", Family: "Ariane", FullName: "Ariane 64",
			}},
			Mission: &space.Mission{
				ID: 2, Name: "Galileo L13",
				Description: "European navigation satellite deployment.",
				Type:        "Navigation",
				Orbit:       &space.Orbit{Name: "Medium Earth Orbit"},
			},
			Pad: space.LaunchPad{ID: 180, Name: "ELA-4", Location: space.PadLocation{
				Name: "Kourou", CountryCode: "GUF",
			}},
		},
		{
			ID:                    "launch-003",
			Name:                  "Falcon Heavy | Europa Clipper",
			Status:                space.LaunchStatus{ID: 3, Name: "Success", Abbrev: "Success"},
			NET:                   mustTime("2024-10-14T16:06:00Z"),
			WindowStart:           mustTime("2024-10-14T16:06:00Z"),
			WindowEnd:             mustTime("2024-10-14T16:06:00Z"),
			LaunchServiceProvider: spaceX,
			Rocket: space.Rocket{ID: 3, Configuration: space.RocketConfiguration{
				Name: "Falcon Heavy", Family: "Falcon", FullName: "Falcon Heavy",
			}},
			Mission: &space.Mission{
				ID: 3, Name: "Europa Clipper",
				Description: "Mission to study Jupiter's moon Europa.",
				Type:        "Planetary Science",
				Orbit:       &space.Orbit{Name: "Heliocentric"},
			},
			Pad: space.LaunchPad{ID: 87, Name: "LC-39A", Location: space.PadLocation{
				Name: "Kennedy Space Center", CountryCode: "USA",
			}},
		},
	}
}

// ISS returns the starting station telemetry, stamped at now.
func ISS(now time.Time) space.ISSData {
	return space.ISSData{
		SatellitePosition: space.SatellitePosition{
			ID:        "ISS",
			Name:      "International Space Station",
			Latitude:  28.5,
			Longitude: -80.6,
			Altitude:  420,
			Velocity:  7.66,
			Timestamp: now,
		},
		Crew: []space.CrewMember{
			{Name: "Oleg Kononenko", Nationality: "Russia"},
			{Name: "Nikolai Chub", Nationality: "Russia"},
			{Name: "Tracy Dyson", Nationality: "USA"},
			{Name: "Matthew Dominick", Nationality: "USA"},
			{Name: "Michael Barratt", Nationality: "USA"},
			{Name: "Jeanette Epps", Nationality: "USA"},
			{Name: "Alexander Grebenkin", Nationality: "Russia"},
		},
		OrbitNumber: 12847,
		Visibility:  space.PassNotVisible,
	}
}

// OrbitPath returns a two-orbit ground track of OrbitSamples points, one
// minute apart starting at now.
func OrbitPath(now time.Time) space.OrbitPath {
	path := make([]space.OrbitSample, 0, OrbitSamples)
	for i := 0; i < OrbitSamples; i++ {
		progress := float64(i) / OrbitSamples
		path = append(path, space.OrbitSample{
			Lat:  math.Sin(progress*math.Pi*4) * OrbitInclination,
			Lng:  math.Mod(progress*360*2, 360) - 180,
			Time: now.Add(time.Duration(i) * OrbitSampleStep),
		})
	}
	return space.OrbitPath{SatelliteID: "ISS", Path: path}
}

// DefaultLayers returns the fixed layer set.
func DefaultLayers() []space.MapLayer {
	return []space.MapLayer{
		{ID: "satellite", Name: "Satellite View", Kind: space.LayerBase, Visible: false, Opacity: 1},
		{ID: "weather", Name: "Weather Overlay", Kind: space.LayerOverlay, Visible: false, Opacity: 0.6},
		{ID: "iss", Name: "ISS Tracker", Kind: space.LayerOverlay, Visible: true, Opacity: 1},
		{ID: "events", Name: "Natural Events", Kind: space.LayerOverlay, Visible: true, Opacity: 1},
	}
}

// DefaultPreferences returns the initial user preferences.
func DefaultPreferences() space.UserPreferences {
	return space.UserPreferences{
		Units: space.UnitsMetric,
		Theme: space.ThemeDark,
		Notifications: space.Notifications{
			Launches:        true,
			CelestialEvents: true,
			ISSPass:         true,
		},
	}
}
