package core

// IndexGrid stores a 2D grid of color indices in row-major order.
type IndexGrid struct {
	W, H int
	data []uint16
}

// NewIndexGrid allocates a grid with the given dimensions.
func NewIndexGrid(w, h int) *IndexGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &IndexGrid{W: w, H: h, data: make([]uint16, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IndexGrid) Cells() []uint16 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *IndexGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y) after toroidal wrapping.
func (g *IndexGrid) At(x, y int) uint16 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set writes v at (x, y). Out of range coordinates are ignored.
func (g *IndexGrid) Set(x, y int, v uint16) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *IndexGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clone returns a deep copy of the grid.
func (g *IndexGrid) Clone() *IndexGrid {
	out := &IndexGrid{W: g.W, H: g.H, data: make([]uint16, len(g.data))}
	copy(out.data, g.data)
	return out
}
