// Package runner drives repeated generation attempts against a model. The
// engine performs one attempt per call; the cap, the fresh random stream per
// attempt and the success accounting live here.
package runner

import (
	"wfcgen/internal/wfc"
	"wfcgen/pkg/core"
)

// DefaultMaxAttempts bounds the retry loop when Config.MaxAttempts is unset.
const DefaultMaxAttempts = 100

// Generator is the single-attempt contract that Run retries.
type Generator interface {
	Generate(src core.Source, ground int) bool
}

// Config controls the retry loop.
type Config struct {
	MaxAttempts int
	Seed        int64

	// Ground is forwarded to every attempt; negative keeps the model's own.
	Ground int

	// NewSource returns the random stream for the given attempt. It defaults
	// to a PCG stream seeded with Seed+attempt.
	NewSource func(seed int64, attempt int) core.Source

	// Logf receives a summary line when set.
	Logf func(format string, args ...any)
}

// DefaultConfig returns a Config with the default attempt cap.
func DefaultConfig() Config {
	return Config{MaxAttempts: DefaultMaxAttempts, Ground: -1}
}

// Result summarizes a retry loop.
type Result struct {
	Success  bool
	Attempts int
	// Seed is the seed of the successful attempt's stream.
	Seed int64
}

// Run calls g.Generate with a fresh stream until it succeeds or the attempt
// cap is reached. Exhaustion is reported through Result, never as an error.
func Run(g Generator, cfg Config) Result {
	limit := cfg.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	newSource := cfg.NewSource
	if newSource == nil {
		newSource = func(seed int64, attempt int) core.Source {
			return core.NewRNG(seed + int64(attempt))
		}
	}

	res := Result{}
	for attempt := 0; attempt < limit; attempt++ {
		res.Attempts++
		if g.Generate(newSource(cfg.Seed, attempt), cfg.Ground) {
			res.Success = true
			res.Seed = cfg.Seed + int64(attempt)
			break
		}
	}

	if cfg.Logf != nil {
		switch {
		case !res.Success:
			cfg.Logf("WFC unsuccessful after %d attempts", res.Attempts)
		case res.Attempts > 1:
			cfg.Logf("WFC successful after %d attempts", res.Attempts)
		}
	}
	return res
}

// RunModel is Run specialized to a model, returning the rendered pixels on
// success.
func RunModel(m *wfc.Model, cfg Config) (Result, []byte, error) {
	res := Run(m, cfg)
	if !res.Success {
		return res, nil, nil
	}
	buf, err := m.Render()
	return res, buf, err
}
