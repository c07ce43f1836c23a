package astro

import (
	"math"
	"testing"
)

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{179.5, 179.5},
		{180.5, -179.5},
		{-180.5, 179.5},
		{540, -180},
		{-80.6, -80.6},
	}

	for _, tt := range tests {
		got := NormalizeLongitude(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{348.75, "N"},
		{-90, "W"},
		{360, "N"},
		{22.5, "NNE"},
	}

	for _, tt := range tests {
		if got := CompassPoint(tt.az); got != tt.want {
			t.Errorf("CompassPoint(%v) = %q, want %q", tt.az, got, tt.want)
		}
	}
}

func TestGetElevationTier(t *testing.T) {
	tests := []struct {
		el   float64
		want ElevationTier
	}{
		{-10, ElevationNone},
		{0, ElevationNone},
		{10, ElevationLow},
		{30, ElevationMedium},
		{45, ElevationHigh},
		{60, ElevationHigh},
	}

	for _, tt := range tests {
		if got := GetElevationTier(tt.el); got != tt.want {
			t.Errorf("GetElevationTier(%v) = %v, want %v", tt.el, got, tt.want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 45, 90, -80.1, 360} {
		if got := RadToDeg(DegToRad(d)); math.Abs(got-d) > 1e-9 {
			t.Errorf("round trip %v = %v", d, got)
		}
	}
}
