package wfc

import (
	"fmt"
	"image/color"
	"strconv"

	"wfcgen/internal/core"
	rng "wfcgen/pkg/core"
)

// entropyNoise scales the random perturbation added to each candidate's
// entropy so that ties are broken differently per seed.
const entropyNoise = 1e-6

// State is the phase of a generation attempt.
type State int

const (
	Running State = iota
	Success
	Contradiction
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Success:
		return "success"
	case Contradiction:
		return "contradiction"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Model runs generation attempts against a shared catalog. A Model is not safe
// for concurrent use; create one Model per goroutine over the same Catalog.
type Model struct {
	cat    *Catalog
	params Params

	wave  *Wave
	state State
}

// New canonicalizes pixels, builds the catalog and returns a model for it.
func New(pixels []color.RGBA, w, h int, p Params) (*Model, error) {
	in, err := NewInputGrid(pixels, w, h, p.PeriodicInput)
	if err != nil {
		return nil, err
	}
	cat, err := NewCatalog(in, p.N, p.Symmetry)
	if err != nil {
		return nil, err
	}
	return NewModel(cat, p)
}

// NewModel returns a model that generates p.Width×p.Height outputs from cat.
// Extraction settings in p (N, Symmetry, PeriodicInput) are taken from cat.
func NewModel(cat *Catalog, p Params) (*Model, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidOutput, p.Width, p.Height)
	}
	if p.Ground < 0 {
		p.Ground = NoGround
	} else if p.Ground >= cat.Len() {
		return nil, fmt.Errorf("%w: %d of %d patterns", ErrGroundOutOfRange, p.Ground, cat.Len())
	}
	p.N = cat.PatternSize()
	p.Symmetry = cat.Symmetry()
	p.PeriodicInput = cat.Periodic()
	return &Model{cat: cat, params: p, state: Running}, nil
}

// Catalog returns the shared pattern catalog.
func (m *Model) Catalog() *Catalog { return m.cat }

// Params returns the effective parameters.
func (m *Model) Params() Params { return m.params }

// State returns the outcome of the last attempt. It is Running before the
// first call to Generate.
func (m *Model) State() State { return m.state }

// Wave returns the wave of the last attempt, or nil.
func (m *Model) Wave() *Wave { return m.wave }

// Contradicted returns the coordinates of the cell that emptied during the
// last attempt.
func (m *Model) Contradicted() (x, y int, ok bool) {
	if m.wave == nil || m.state != Contradiction || m.wave.contradiction < 0 {
		return 0, 0, false
	}
	i := m.wave.contradiction
	return i % m.wave.w, i / m.wave.w, true
}

// Generate performs exactly one attempt and reports whether the wave fully
// collapsed. A negative ground uses the configured ground; a non-negative
// ground overrides it and is reduced modulo the pattern count. Every call
// starts from a fresh wave, so a failed attempt leaves nothing behind.
func (m *Model) Generate(src rng.Source, ground int) bool {
	g := m.params.Ground
	if ground >= 0 {
		g = ground % m.cat.Len()
	}
	w := newWave(m.cat, m.params.Width, m.params.Height, m.params.PeriodicOutput, g == NoGround)
	m.wave = w
	m.state = Running

	ok := w.prune()
	if ok && g != NoGround {
		ok = applyGround(w, g)
	}
	if ok {
		ok = w.propagate()
	}
	for ok {
		cell := w.selectCell(src)
		if cell < 0 {
			m.state = Success
			return true
		}
		ok = w.collapseCellTo(cell, w.sample(cell, src)) && w.propagate()
	}
	m.state = Contradiction
	return false
}

// applyGround pins the bottom row to pattern g and bans g everywhere else.
func applyGround(w *Wave, g int) bool {
	bottom := w.h - 1
	for x := 0; x < w.w; x++ {
		if !w.collapseCellTo(bottom*w.w+x, g) {
			return false
		}
		for y := 0; y < bottom; y++ {
			if !w.eliminate(y*w.w+x, g) {
				return false
			}
		}
	}
	return true
}

// Parameters describes the model for the viewer HUD.
func (m *Model) Parameters() core.ParameterSnapshot {
	p := m.params
	ground := "none"
	if p.Ground != NoGround {
		ground = strconv.Itoa(p.Ground)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Patterns",
			Params: []core.Parameter{
				intParam("n", "Pattern size", p.N),
				intParam("symmetry", "Symmetry", p.Symmetry),
				boolParam("periodic_input", "Periodic input", p.PeriodicInput),
				intParam("patterns", "Unique patterns", m.cat.Len()),
				intParam("colors", "Colors", len(m.cat.palette)),
			},
		},
		{
			Name: "Output",
			Params: []core.Parameter{
				intParam("w", "Width", p.Width),
				intParam("h", "Height", p.Height),
				boolParam("periodic_output", "Periodic output", p.PeriodicOutput),
				{Key: "ground", Label: "Ground", Type: core.ParamTypeString, Value: ground},
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: m.state.String()},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
