// Package samples registers small built-in input images so the tools can run
// without an image file.
package samples

import (
	"image/color"
	"strconv"

	"wfcgen/internal/core"
)

var (
	// Black and White are the two colors of the binary samples.
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var asciiColors = map[rune]color.RGBA{
	'#': Black,
	'.': White,
	'r': {R: 214, G: 69, B: 65, A: 255},
	'g': {R: 72, G: 160, B: 84, A: 255},
	'b': {R: 61, G: 106, B: 201, A: 255},
}

// FromRows builds a sample from rows of runes. '#' is black, '.' white and
// r, g, b are saturated accents. Unknown runes become white.
func FromRows(name string, defaults map[string]string, rows ...string) core.Sample {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len([]rune(rows[0]))
	}
	pixels := make([]color.RGBA, 0, w*h)
	for _, row := range rows {
		runes := []rune(row)
		for x := 0; x < w; x++ {
			c := White
			if x < len(runes) {
				if v, ok := asciiColors[runes[x]]; ok {
					c = v
				}
			}
			pixels = append(pixels, c)
		}
	}
	return core.Sample{Name: name, Size: core.Size{W: w, H: h}, Pixels: pixels, Defaults: defaults}
}

// FromBinary maps zero cells to white and everything else to black.
func FromBinary(name string, w, h int, cells []uint8, defaults map[string]string) core.Sample {
	pixels := make([]color.RGBA, len(cells))
	for i, c := range cells {
		if c != 0 {
			pixels[i] = Black
		} else {
			pixels[i] = White
		}
	}
	return core.Sample{Name: name, Size: core.Size{W: w, H: h}, Pixels: pixels, Defaults: defaults}
}

func intFrom(cfg map[string]string, key string, def, lo, hi int) int {
	if cfg == nil {
		return def
	}
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < lo || parsed > hi {
		return def
	}
	return parsed
}

func init() {
	core.Register("checker", func(map[string]string) core.Sample {
		return FromRows("checker", map[string]string{"n": "2", "periodic_input": "true"},
			"#.",
			".#",
		)
	})
	core.Register("stripes", func(map[string]string) core.Sample {
		return FromRows("stripes", map[string]string{"n": "2", "periodic_input": "true", "periodic_output": "true"},
			"rgbrgb",
			"gbrgbr",
			"brgbrg",
			"rgbrgb",
			"gbrgbr",
			"brgbrg",
		)
	})
	core.Register("rooms", func(map[string]string) core.Sample {
		return FromRows("rooms", map[string]string{"n": "3", "symmetry": "8", "periodic_input": "true", "periodic_output": "true"},
			"#.....#.....",
			"#.....#.....",
			"#...........",
			"#.....#.....",
			"#.....#.....",
			"###.#####.##",
			"#.....#.....",
			"#.....#.....",
			"......#.....",
			"#.....#.....",
			"#.....#.....",
			"####.####.##",
		)
	})
}
