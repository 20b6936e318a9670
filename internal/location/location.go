// Package location provides the read-only geographic directory used to
// validate task locations: state -> business area -> district -> block.
// The directory is an injected collaborator; callers never depend on how it
// is sourced.
package location

// Directory answers hierarchical location lookups. Every lookup reports
// whether the parent key chain exists so handlers can distinguish "no
// children" from "unknown parent".
type Directory interface {
	States() []string
	BusinessAreas(state string) ([]string, bool)
	Districts(state, businessArea string) ([]string, bool)
	Blocks(state, businessArea, district string) ([]string, bool)
}

type district struct {
	name   string
	blocks []string
}

type businessArea struct {
	name      string
	districts []district
}

type state struct {
	name  string
	areas []businessArea
}

type staticDirectory struct {
	states []state
}

// NewStaticDirectory returns the built-in directory.
func NewStaticDirectory() Directory {
	return &staticDirectory{states: directoryData}
}

func (d *staticDirectory) States() []string {
	names := make([]string, len(d.states))
	for i, s := range d.states {
		names[i] = s.name
	}
	return names
}

func (d *staticDirectory) BusinessAreas(stateName string) ([]string, bool) {
	s, ok := d.findState(stateName)
	if !ok {
		return nil, false
	}
	names := make([]string, len(s.areas))
	for i, a := range s.areas {
		names[i] = a.name
	}
	return names, true
}

func (d *staticDirectory) Districts(stateName, areaName string) ([]string, bool) {
	a, ok := d.findArea(stateName, areaName)
	if !ok {
		return nil, false
	}
	names := make([]string, len(a.districts))
	for i, dist := range a.districts {
		names[i] = dist.name
	}
	return names, true
}

func (d *staticDirectory) Blocks(stateName, areaName, districtName string) ([]string, bool) {
	a, ok := d.findArea(stateName, areaName)
	if !ok {
		return nil, false
	}
	// A district that exists under a different business area of the same
	// state is still a miss here.
	for _, dist := range a.districts {
		if dist.name == districtName {
			return dist.blocks, true
		}
	}
	return nil, false
}

func (d *staticDirectory) findState(name string) (*state, bool) {
	for i := range d.states {
		if d.states[i].name == name {
			return &d.states[i], true
		}
	}
	return nil, false
}

func (d *staticDirectory) findArea(stateName, areaName string) (*businessArea, bool) {
	s, ok := d.findState(stateName)
	if !ok {
		return nil, false
	}
	for i := range s.areas {
		if s.areas[i].name == areaName {
			return &s.areas[i], true
		}
	}
	return nil, false
}

// Contains checks a full location tuple against the directory.
func Contains(dir Directory, stateName, areaName, districtName, blockName string) bool {
	blocks, ok := dir.Blocks(stateName, areaName, districtName)
	if !ok {
		return false
	}
	for _, b := range blocks {
		if b == blockName {
			return true
		}
	}
	return false
}
