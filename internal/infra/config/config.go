// Package config loads shell configuration for fourbar: per-role slider
// bounds and named mechanism presets. The kinematic core never sees these
// types; bounds exist so the UI hands the core only positive lengths.
package config

import "github.com/mechkit/fourbar/internal/domain"

// Range is an inclusive slider range.
type Range struct {
	Min float64
	Max float64
}

// Clamp pins v into the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Bounds holds the slider range for each link role.
type Bounds struct {
	Frame   Range
	Input   Range
	Coupler Range
	Output  Range
}

// ForRole returns the range bound to the given role.
func (b Bounds) ForRole(r domain.Role) Range {
	switch r {
	case domain.RoleFrame:
		return b.Frame
	case domain.RoleInput:
		return b.Input
	case domain.RoleCoupler:
		return b.Coupler
	case domain.RoleOutput:
		return b.Output
	}
	return Range{}
}

// Preset is a named mechanism configuration the shell can jump to.
type Preset struct {
	Name     string
	Links    domain.LinkSet
	AngleDeg float64
}

// Config is the loaded shell configuration.
type Config struct {
	Bounds  Bounds
	Presets []Preset
}

// Default returns the built-in configuration used when no fourbar.yaml is
// found: classroom slider ranges and a preset per mechanism category.
func Default() Config {
	return Config{
		Bounds: Bounds{
			Frame:   Range{Min: 50, Max: 300},
			Input:   Range{Min: 20, Max: 200},
			Coupler: Range{Min: 20, Max: 300},
			Output:  Range{Min: 20, Max: 200},
		},
		Presets: []Preset{
			{
				Name:     "Crank-Rocker",
				Links:    domain.LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140},
				AngleDeg: 60,
			},
			{
				Name:     "Double-Crank",
				Links:    domain.LinkSet{Frame: 60, Input: 160, Coupler: 180, Output: 170},
				AngleDeg: 30,
			},
			{
				Name:     "Double-Rocker",
				Links:    domain.LinkSet{Frame: 240, Input: 200, Coupler: 80, Output: 200},
				AngleDeg: 30,
			},
			{
				Name:     "Change Point",
				Links:    domain.LinkSet{Frame: 100, Input: 100, Coupler: 100, Output: 100},
				AngleDeg: 45,
			},
		},
	}
}

// FindPreset returns the preset with the given name, case-sensitively.
func (c Config) FindPreset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
