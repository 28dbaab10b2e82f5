package wfc

import "strconv"

// NoGround disables the ground constraint.
const NoGround = -1

// Params controls pattern extraction and generation.
type Params struct {
	// N is the side length of the square patterns.
	N int
	// Width and Height are the output dimensions in pixels.
	Width  int
	Height int

	PeriodicInput  bool
	PeriodicOutput bool

	// Symmetry selects how many of the eight rotation/reflection variants of
	// every window are registered.
	Symmetry int

	// Ground is the pattern that fills the bottom row, or NoGround.
	Ground int
}

// DefaultParams returns the parameters of the classic 48×48 two-pixel setup.
func DefaultParams() Params {
	return Params{
		N:              2,
		Width:          48,
		Height:         48,
		PeriodicInput:  true,
		PeriodicOutput: false,
		Symmetry:       1,
		Ground:         NoGround,
	}
}

// FromMap populates Params from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Params {
	p := DefaultParams()
	return p.Apply(cfg)
}

// Apply overlays the recognized keys of cfg on p.
func (p Params) Apply(cfg map[string]string) Params {
	if cfg == nil {
		return p
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.N = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Height = parsed
		}
	}
	if v, ok := cfg["periodic_input"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			p.PeriodicInput = parsed
		}
	}
	if v, ok := cfg["periodic_output"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			p.PeriodicOutput = parsed
		}
	}
	if v, ok := cfg["symmetry"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 8 {
			p.Symmetry = parsed
		}
	}
	if v, ok := cfg["ground"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			if parsed < 0 {
				parsed = NoGround
			}
			p.Ground = parsed
		}
	}
	return p
}
