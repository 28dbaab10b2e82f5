package wfc

import (
	"image/color"
	"testing"

	rng "wfcgen/pkg/core"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.RGBA{G: 160, A: 255}
	red   = color.RGBA{R: 200, A: 255}
)

var testColors = map[rune]color.RGBA{
	'#': black,
	'.': white,
	'G': green,
	'R': red,
}

// pixelsFrom converts rows of runes into a pixel buffer.
func pixelsFrom(t *testing.T, rows ...string) ([]color.RGBA, int, int) {
	t.Helper()
	h := len(rows)
	w := len([]rune(rows[0]))
	pixels := make([]color.RGBA, 0, w*h)
	for _, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			t.Fatalf("row %q has %d cells, want %d", row, len(runes), w)
		}
		for _, r := range runes {
			c, ok := testColors[r]
			if !ok {
				t.Fatalf("unknown test color %q", r)
			}
			pixels = append(pixels, c)
		}
	}
	return pixels, w, h
}

func noisePixels(w, h int, seed int64) []color.RGBA {
	r := rng.NewRNG(seed)
	pixels := make([]color.RGBA, w*h)
	for i := range pixels {
		if r.Bool() {
			pixels[i] = black
		} else {
			pixels[i] = white
		}
	}
	return pixels
}

func mustCatalog(t *testing.T, pixels []color.RGBA, w, h, n, symmetry int, periodic bool) *Catalog {
	t.Helper()
	in, err := NewInputGrid(pixels, w, h, periodic)
	if err != nil {
		t.Fatalf("NewInputGrid: %v", err)
	}
	cat, err := NewCatalog(in, n, symmetry)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func pixelAt(buf []byte, w, x, y int) color.RGBA {
	i := 4 * (y*w + x)
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}
