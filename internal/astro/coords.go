// Package astro provides small angle and sky-direction helpers.
package astro

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeLongitude maps any longitude into [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// NormalizeAzimuth maps any azimuth into [0, 360).
func NormalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassPoint returns the 16-wind compass label for an azimuth.
// 0° = N, 90° = E, 180° = S, 270° = W.
func CompassPoint(az float64) string {
	az = NormalizeAzimuth(az)
	idx := int(math.Floor(az/22.5+0.5)) % len(compassPoints)
	return compassPoints[idx]
}
