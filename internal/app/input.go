package app

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"wfcgen/internal/core"
	"wfcgen/internal/imageio"
	"wfcgen/internal/palette"
)

// Input is the source image the generator learns from.
type Input struct {
	Name     string
	Pixels   []color.RGBA
	W, H     int
	Defaults map[string]string
}

// LoadInput reads -in when set and falls back to the registered -sample.
func (c *Config) LoadInput() (Input, error) {
	if c.In == "" {
		factory, ok := core.Samples()[c.Sample]
		if !ok {
			return Input{}, fmt.Errorf("unknown sample %q (have %s)", c.Sample, strings.Join(core.SampleNames(), ", "))
		}
		s := factory(nil)
		return Input{Name: s.Name, Pixels: s.Pixels, W: s.Size.W, H: s.Size.H, Defaults: s.Defaults}, nil
	}

	img, err := imageio.Load(c.In)
	if err != nil {
		return Input{}, err
	}
	var pal []color.RGBA
	if c.Colors > 0 {
		pal = palette.Extract(img, c.Colors, palette.ParseMethod(c.Palette))
	}
	pixels, w, h, err := palette.Pixels(img, pal)
	if err != nil {
		return Input{}, fmt.Errorf("%s: %w", c.In, err)
	}
	name := strings.TrimSuffix(filepath.Base(c.In), filepath.Ext(c.In))
	return Input{Name: name, Pixels: pixels, W: w, H: h}, nil
}
