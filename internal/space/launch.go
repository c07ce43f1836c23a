package space

import "time"

// LaunchStatus is the Launch Library status triple.
type LaunchStatus struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`   // "Go for Launch", "TBD", "Success", "Failure"
	Abbrev string `json:"abbrev"` // "Go", "TBD", "Success", "Failure"
}

// LaunchServiceProvider is the launch operator.
type LaunchServiceProvider struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RocketConfiguration names the vehicle variant.
type RocketConfiguration struct {
	Name     string `json:"name"`
	Family   string `json:"family"`
	FullName string `json:"full_name"`
}

// Rocket is the launch vehicle.
type Rocket struct {
	ID            int                 `json:"id"`
	Configuration RocketConfiguration `json:"configuration"`
}

// Orbit names the target orbit of a mission.
type Orbit struct {
	Name string `json:"name"`
}

// Mission describes the payload mission.
type Mission struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Orbit       *Orbit `json:"orbit"`
}

// PadLocation is the launch site.
type PadLocation struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// LaunchPad is a specific pad at a site.
type LaunchPad struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Location PadLocation `json:"location"`
}

// Launch is a scheduled or completed launch.
//
// Upcoming versus past is not stored; it is derived by comparing NET with
// the current time.
type Launch struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Status                LaunchStatus          `json:"status"`
	NET                   time.Time             `json:"net"` // no earlier than
	WindowStart           time.Time             `json:"window_start"`
	WindowEnd             time.Time             `json:"window_end"`
	LaunchServiceProvider LaunchServiceProvider `json:"launch_service_provider"`
	Rocket                Rocket                `json:"rocket"`
	Mission               *Mission              `json:"mission"`
	Pad                   LaunchPad             `json:"pad"`
	Image                 string                `json:"image,omitempty"`
	WebcastLive           bool                  `json:"webcast_live"`
}

// LaunchResponse is the paginated Launch Library envelope.
type LaunchResponse struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Launch `json:"results"`
}
