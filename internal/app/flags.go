package app

import (
	"flag"

	"wfcgen/internal/runner"
	"wfcgen/internal/wfc"
)

// Config represents the command-line parameters shared by the tools.
type Config struct {
	Sample string
	In     string

	// Colors reduces an input image to this many colors; zero keeps them all.
	Colors  int
	Palette string

	Scale int
	TPS   int
	Seed  int64

	// Rate is the number of automatic regenerations per second.
	Rate int
	// HUDWidth is the width of the parameter panel; zero hides it.
	HUDWidth int

	MaxAttempts int
	Params      wfc.Params

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sample:      "rooms",
		Palette:     "kmeans",
		Scale:       8,
		TPS:         60,
		Seed:        42,
		Rate:        2,
		HUDWidth:    220,
		MaxAttempts: runner.DefaultMaxAttempts,
		Params:      wfc.DefaultParams(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sample, "sample", c.Sample, "built-in input sample")
	fs.StringVar(&c.In, "in", c.In, "input image path (overrides -sample)")
	fs.IntVar(&c.Colors, "colors", c.Colors, "reduce the input image to this many colors (0 keeps all)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette reduction method: kmeans or dominant")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first attempt")
	fs.IntVar(&c.Rate, "rate", c.Rate, "automatic regenerations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.IntVar(&c.MaxAttempts, "attempts", c.MaxAttempts, "attempt cap per generation")

	fs.IntVar(&c.Params.N, "n", c.Params.N, "pattern size N")
	fs.IntVar(&c.Params.Width, "w", c.Params.Width, "output width")
	fs.IntVar(&c.Params.Height, "h", c.Params.Height, "output height")
	fs.BoolVar(&c.Params.PeriodicInput, "periodic_input", c.Params.PeriodicInput, "wrap the input when extracting patterns")
	fs.BoolVar(&c.Params.PeriodicOutput, "periodic_output", c.Params.PeriodicOutput, "wrap the output at its edges")
	fs.IntVar(&c.Params.Symmetry, "symmetry", c.Params.Symmetry, "number of symmetry variants (1-8)")
	fs.IntVar(&c.Params.Ground, "ground", c.Params.Ground, "ground pattern index (-1 disables)")
	c.fs = fs
}

// Resolve layers the explicitly set generation flags over the sample
// defaults, which in turn override the built-in defaults.
func (c *Config) Resolve(defaults map[string]string) wfc.Params {
	explicit := map[string]string{}
	if c.fs != nil {
		c.fs.Visit(func(f *flag.Flag) {
			if _, ok := paramKeys[f.Name]; ok {
				explicit[f.Name] = f.Value.String()
			}
		})
	}
	return wfc.DefaultParams().Apply(defaults).Apply(explicit)
}

var paramKeys = map[string]struct{}{
	"n": {}, "w": {}, "h": {}, "periodic_input": {}, "periodic_output": {}, "symmetry": {}, "ground": {},
}

// RunnerConfig returns the retry-loop settings for the configured seed.
func (c *Config) RunnerConfig() runner.Config {
	rc := runner.DefaultConfig()
	rc.MaxAttempts = c.MaxAttempts
	rc.Seed = c.Seed
	return rc
}
