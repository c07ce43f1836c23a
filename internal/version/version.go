// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Learning zone (climate timelapse, quiz), Prometheus metrics, JSON export
// 0.2.0 - Change-scoped subscriptions, simulated ISS ticker, map layers
// 0.1.0 - Initial release: TUI dashboard, events and launch panels, headless modes
