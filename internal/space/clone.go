package space

import "slices"

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the snapshot.
func (c CosmicWeather) Clone() CosmicWeather {
	out := c
	out.SolarFlares = make([]SolarFlare, len(c.SolarFlares))
	for i, f := range c.SolarFlares {
		f.Instruments = slices.Clone(f.Instruments)
		f.LinkedEvents = slices.Clone(f.LinkedEvents)
		out.SolarFlares[i] = f
	}
	out.GeomagneticStorms = make([]GeomagneticStorm, len(c.GeomagneticStorms))
	for i, s := range c.GeomagneticStorms {
		s.AllKpIndex = slices.Clone(s.AllKpIndex)
		s.LinkedEvents = slices.Clone(s.LinkedEvents)
		out.GeomagneticStorms[i] = s
	}
	return out
}

// Clone returns a deep copy of the event.
func (e CelestialEvent) Clone() CelestialEvent {
	e.Magnitude = clonePtr(e.Magnitude)
	return e
}

// Clone returns a deep copy of the event.
func (e NaturalEvent) Clone() NaturalEvent {
	e.Magnitude = clonePtr(e.Magnitude)
	return e
}

// Clone returns a deep copy of the launch.
func (l Launch) Clone() Launch {
	if l.Mission != nil {
		m := *l.Mission
		m.Orbit = clonePtr(m.Orbit)
		l.Mission = &m
	}
	return l
}

// Clone returns a deep copy of the station data.
func (d ISSData) Clone() ISSData {
	d.Crew = slices.Clone(d.Crew)
	d.NextPass = clonePtr(d.NextPass)
	return d
}

// Clone returns a deep copy of the path.
func (p OrbitPath) Clone() OrbitPath {
	p.Path = slices.Clone(p.Path)
	return p
}

// Clone returns a deep copy of the preferences.
func (p UserPreferences) Clone() UserPreferences {
	p.Location = clonePtr(p.Location)
	return p
}

// CloneEach deep-copies a slice of cloneable values. A nil input yields nil.
func CloneEach[T interface{ Clone() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
