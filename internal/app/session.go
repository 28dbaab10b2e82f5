package app

import (
	"strconv"

	"wfcgen/internal/core"
	"wfcgen/internal/runner"
	"wfcgen/internal/wfc"
)

// Session owns a model and the frame produced by its latest retry loop. The
// GUI drives it from key presses; it has no ebiten dependency.
type Session struct {
	model *wfc.Model
	cfg   runner.Config

	result      runner.Result
	generations int
	frame       []byte
}

// NewSession runs a first generation with cfg.Seed.
func NewSession(model *wfc.Model, cfg runner.Config) *Session {
	s := &Session{model: model, cfg: cfg}
	s.Regenerate(cfg.Seed)
	return s
}

// Regenerate runs the retry loop starting from seed. A failed loop keeps the
// partial wave of its last attempt as the frame.
func (s *Session) Regenerate(seed int64) runner.Result {
	s.cfg.Seed = seed
	s.result = runner.Run(s.model, s.cfg)
	s.generations++
	if s.result.Success {
		if buf, err := s.model.Render(); err == nil {
			s.frame = buf
			return s.result
		}
	}
	s.frame = s.model.Preview()
	return s.result
}

// Next regenerates from the first seed after the streams the previous loop
// consumed.
func (s *Session) Next() runner.Result {
	return s.Regenerate(s.cfg.Seed + int64(max(s.result.Attempts, 1)))
}

// Seed returns the seed the latest loop started from.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Result returns the outcome of the latest loop.
func (s *Session) Result() runner.Result { return s.result }

// Frame returns the RGBA pixels of the latest output.
func (s *Session) Frame() []byte { return s.frame }

// Size returns the output dimensions.
func (s *Session) Size() core.Size {
	p := s.model.Params()
	return core.Size{W: p.Width, H: p.Height}
}

// Contradicted forwards the contradiction cell of the last attempt.
func (s *Session) Contradicted() (int, int, bool) { return s.model.Contradicted() }

// Parameters describes the model and the latest run.
func (s *Session) Parameters() core.ParameterSnapshot {
	return s.model.Parameters().Append(core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: strconv.FormatInt(s.cfg.Seed, 10)},
			{Key: "attempts", Label: "Attempts", Type: core.ParamTypeInt, Value: strconv.Itoa(s.result.Attempts)},
			{Key: "success", Label: "Success", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.result.Success)},
			{Key: "generations", Label: "Generations", Type: core.ParamTypeInt, Value: strconv.Itoa(s.generations)},
		},
	})
}
