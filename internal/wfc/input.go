package wfc

import (
	"fmt"
	"image/color"

	"wfcgen/internal/core"
)

const maxColors = 1 << 16

// InputGrid is an immutable grid of color indices together with the palette
// that maps each index back to a color.
type InputGrid struct {
	grid     *core.IndexGrid
	palette  []color.RGBA
	periodic bool
}

// NewInputGrid canonicalizes pixels into color indices. Colors are compared by
// exact equality and numbered in first-seen order.
func NewInputGrid(pixels []color.RGBA, w, h int, periodic bool) (InputGrid, error) {
	if w <= 0 || h <= 0 || len(pixels) != w*h {
		return InputGrid{}, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidInput, len(pixels), w, h)
	}
	grid := core.NewIndexGrid(w, h)
	cells := grid.Cells()
	seen := make(map[color.RGBA]uint16)
	var palette []color.RGBA
	for i, px := range pixels {
		idx, ok := seen[px]
		if !ok {
			if len(palette) == maxColors {
				return InputGrid{}, ErrTooManyColors
			}
			idx = uint16(len(palette))
			seen[px] = idx
			palette = append(palette, px)
		}
		cells[i] = idx
	}
	return InputGrid{grid: grid, palette: palette, periodic: periodic}, nil
}

// NewIndexedInput builds an InputGrid from pre-quantized color indices. Every
// index must address an entry of palette.
func NewIndexedInput(indices []int, w, h int, palette []color.RGBA, periodic bool) (InputGrid, error) {
	if w <= 0 || h <= 0 || len(indices) != w*h {
		return InputGrid{}, fmt.Errorf("%w: %d indices for %dx%d", ErrInvalidInput, len(indices), w, h)
	}
	if len(palette) > maxColors {
		return InputGrid{}, ErrTooManyColors
	}
	grid := core.NewIndexGrid(w, h)
	cells := grid.Cells()
	for i, idx := range indices {
		if idx < 0 || idx >= len(palette) {
			return InputGrid{}, fmt.Errorf("%w: index %d outside palette of %d", ErrInvalidInput, idx, len(palette))
		}
		cells[i] = uint16(idx)
	}
	return InputGrid{grid: grid, palette: append([]color.RGBA(nil), palette...), periodic: periodic}, nil
}

// Width returns the input width.
func (in InputGrid) Width() int {
	if in.grid == nil {
		return 0
	}
	return in.grid.W
}

// Height returns the input height.
func (in InputGrid) Height() int {
	if in.grid == nil {
		return 0
	}
	return in.grid.H
}

// Periodic reports whether pattern extraction wraps at the edges.
func (in InputGrid) Periodic() bool { return in.periodic }

// WithPeriodic returns a copy of the grid with the periodic flag replaced.
func (in InputGrid) WithPeriodic(periodic bool) InputGrid {
	in.periodic = periodic
	return in
}

// Colors returns the number of distinct color indices.
func (in InputGrid) Colors() int { return len(in.palette) }

// Palette returns a copy of the index to color mapping.
func (in InputGrid) Palette() []color.RGBA {
	return append([]color.RGBA(nil), in.palette...)
}

// At returns the color index at (x, y), wrapping out of range coordinates.
func (in InputGrid) At(x, y int) uint16 { return in.grid.At(x, y) }
