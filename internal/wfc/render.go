package wfc

import (
	"fmt"
	"image"

	"wfcgen/internal/core"
	"wfcgen/internal/render"
)

// Observed returns the collapsed pattern of every cell in row-major order.
func (m *Model) Observed() ([]int, error) {
	if m.wave == nil || m.state != Success {
		return nil, ErrNotCollapsed
	}
	out := make([]int, m.wave.Cells())
	for i := range out {
		t, ok := m.wave.Collapsed(i)
		if !ok {
			return nil, fmt.Errorf("%w: cell %d has %d patterns", ErrNotCollapsed, i, m.wave.Remaining(i))
		}
		out[i] = t
	}
	return out, nil
}

// Indices resolves the color index of every output cell. Each cell takes the
// top-left color of its own pattern; overlapping neighbors agree on it.
func (m *Model) Indices() (*core.IndexGrid, error) {
	observed, err := m.Observed()
	if err != nil {
		return nil, err
	}
	grid := core.NewIndexGrid(m.wave.w, m.wave.h)
	cells := grid.Cells()
	for i, t := range observed {
		cells[i] = m.cat.colorAt(t, 0, 0)
	}
	return grid, nil
}

// Render returns the output as row-major RGBA bytes.
func (m *Model) Render() ([]byte, error) {
	grid, err := m.Indices()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4*len(grid.Cells()))
	render.FillPaletteRGBA(buf, grid.Cells(), m.cat.palette)
	return buf, nil
}

// Image returns the output as an *image.RGBA.
func (m *Model) Image() (*image.RGBA, error) {
	buf, err := m.Render()
	if err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    buf,
		Stride: 4 * m.wave.w,
		Rect:   image.Rect(0, 0, m.wave.w, m.wave.h),
	}, nil
}

// Verify checks that every pair of adjacent collapsed cells is compatible and
// that every pattern covering a pixel agrees on its color.
func (m *Model) Verify() error {
	observed, err := m.Observed()
	if err != nil {
		return err
	}
	w := m.wave
	table := m.cat.Compatibility()
	for i, a := range observed {
		for _, d := range Directions {
			j, ok := w.neighbor(i, d)
			if !ok {
				continue
			}
			dx, dy := d.Offset()
			if !table.Agrees(a, observed[j], dx, dy) {
				return fmt.Errorf("wfc: cells %d and %d (%s) hold incompatible patterns %d and %d", i, j, d, a, observed[j])
			}
		}
	}

	n := m.cat.PatternSize()
	for i := range observed {
		x, y := i%w.w, i/w.w
		want := m.cat.colorAt(observed[i], 0, 0)
		for dy := 0; dy < n; dy++ {
			for dx := 0; dx < n; dx++ {
				ax, ay, ok := w.anchor(x-dx, y-dy)
				if !ok {
					continue
				}
				if got := m.cat.colorAt(observed[ay*w.w+ax], dx, dy); got != want {
					return fmt.Errorf("wfc: pixel (%d,%d) is %d from its own pattern but %d from the pattern at (%d,%d)", x, y, want, got, ax, ay)
				}
			}
		}
	}
	return nil
}

// Preview renders the wave of the last attempt whatever its state. A cell
// shows the weighted mean color of its remaining patterns and an emptied cell
// is left transparent. It returns nil before the first attempt.
func (m *Model) Preview() []byte {
	w := m.wave
	if w == nil {
		return nil
	}
	buf := make([]byte, 4*w.Cells())
	for i := 0; i < w.Cells(); i++ {
		var r, g, b, total float64
		for t := 0; t < w.patterns; t++ {
			if !w.Possible(i, t) {
				continue
			}
			col := m.cat.palette[m.cat.colorAt(t, 0, 0)]
			weight := float64(m.cat.Weight(t))
			r += weight * float64(col.R)
			g += weight * float64(col.G)
			b += weight * float64(col.B)
			total += weight
		}
		if total == 0 {
			continue
		}
		base := i * 4
		buf[base+0] = uint8(r/total + 0.5)
		buf[base+1] = uint8(g/total + 0.5)
		buf[base+2] = uint8(b/total + 0.5)
		buf[base+3] = 255
	}
	return buf
}
