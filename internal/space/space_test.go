package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampKp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{5, 5},
		{9, 9},
		{12, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampKp(tt.in), "ClampKp(%d)", tt.in)
	}
}

func TestCosmicWeather_Valid(t *testing.T) {
	assert.True(t, CosmicWeather{CurrentKpIndex: 0}.Valid())
	assert.True(t, CosmicWeather{CurrentKpIndex: 9}.Valid())
	assert.False(t, CosmicWeather{CurrentKpIndex: 10}.Valid())
	assert.False(t, CosmicWeather{CurrentKpIndex: -1}.Valid())
}

func TestEnumValid(t *testing.T) {
	assert.True(t, MapDark.Valid())
	assert.False(t, MapStyle("neon").Valid())

	assert.True(t, PanelWeather.Valid())
	assert.False(t, Panel("settings").Valid())

	assert.True(t, CategoryVolcano.Valid())
	assert.False(t, EventCategory("meteor").Valid())

	assert.True(t, ResourceLaunches.Valid())
	assert.False(t, Resource("tides").Valid())
}

func TestLoading_Set(t *testing.T) {
	var l Loading
	assert.False(t, l.Any())

	l2 := l.Set(ResourceEvents, true)
	assert.True(t, l2.Events)
	assert.True(t, l2.Any())
	assert.False(t, l.Events, "Set must not modify the receiver")

	assert.Equal(t, l2, l2.Set(Resource("tides"), true))
	assert.False(t, l2.Set(ResourceEvents, false).Any())
}

func TestNaturalEvent_Coordinates(t *testing.T) {
	e := NaturalEvent{Coordinates: [2]float64{-155.3, 19.4}}
	assert.Equal(t, -155.3, e.Longitude())
	assert.Equal(t, 19.4, e.Latitude())
}

func TestClone_DeepCopies(t *testing.T) {
	mag := 4.5
	events := []NaturalEvent{{ID: "a", Magnitude: &mag}}
	cloned := CloneEach(events)
	require.Len(t, cloned, 1)
	*cloned[0].Magnitude = 9
	assert.Equal(t, 4.5, *events[0].Magnitude)

	l := Launch{ID: "l1", Mission: &Mission{Name: "Crew-9", Orbit: &Orbit{Name: "LEO"}}}
	lc := l.Clone()
	lc.Mission.Orbit.Name = "GTO"
	lc.Mission.Name = "changed"
	assert.Equal(t, "LEO", l.Mission.Orbit.Name)
	assert.Equal(t, "Crew-9", l.Mission.Name)

	iss := ISSData{Crew: []CrewMember{{Name: "A"}}, NextPass: &NextPass{MaxAltitude: 40}}
	ic := iss.Clone()
	ic.Crew[0].Name = "B"
	ic.NextPass.MaxAltitude = 10
	assert.Equal(t, "A", iss.Crew[0].Name)
	assert.Equal(t, 40.0, iss.NextPass.MaxAltitude)

	cw := CosmicWeather{SolarFlares: []SolarFlare{{ClassType: "M1.2", Instruments: []Instrument{{DisplayName: "GOES"}}}}}
	cc := cw.Clone()
	cc.SolarFlares[0].Instruments[0].DisplayName = "SDO"
	assert.Equal(t, "GOES", cw.SolarFlares[0].Instruments[0].DisplayName)

	prefs := UserPreferences{Location: &UserLocation{City: "Reykjavik"}}
	pc := prefs.Clone()
	pc.Location.City = "Oslo"
	assert.Equal(t, "Reykjavik", prefs.Location.City)
}

func TestCloneEach_Nil(t *testing.T) {
	assert.Nil(t, CloneEach[NaturalEvent](nil))
	assert.NotNil(t, CloneEach([]NaturalEvent{}))
}
