package derive

import (
	"math"

	"github.com/litescript/spacescope/internal/astro"
)

// ISSModel parameterises the decorative ISS ground-track simulation. It is
// not orbital mechanics: latitude is a closed-form function of longitude.
type ISSModel struct {
	StepDeg        float64 // longitude advance per tick
	InclinationDeg float64 // latitude amplitude
}

// DefaultISSModel advances 0.5° per tick along a 51.6° inclined track.
func DefaultISSModel() ISSModel {
	return ISSModel{StepDeg: 0.5, InclinationDeg: 51.6}
}

// AdvanceISS moves the simulated station one tick east from lng.
//
// The new longitude is (lng + step) mod 360, shifted down by 360 when it
// exceeds 180. Latitude is sin(longitude) scaled by the inclination.
func AdvanceISS(lng float64, m ISSModel) (newLng, newLat float64) {
	next := math.Mod(lng+m.StepDeg, 360)
	newLat = math.Sin(astro.DegToRad(next)) * m.InclinationDeg
	if next > 180 {
		next -= 360
	}
	return next, newLat
}

// TicksPerRevolution is how many AdvanceISS calls bring longitude back to
// its starting value.
func (m ISSModel) TicksPerRevolution() int {
	if m.StepDeg <= 0 {
		return 0
	}
	return int(math.Round(360 / m.StepDeg))
}
