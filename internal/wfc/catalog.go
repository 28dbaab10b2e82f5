package wfc

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
)

// Pattern is an N×N window of color indices extracted from the input.
type Pattern struct {
	ID     int
	Cells  []uint16
	Weight int
}

// At returns the color index at local coordinates (x, y).
func (p Pattern) At(x, y, n int) uint16 { return p.Cells[x+y*n] }

// Catalog holds the unique patterns of an input, their weights and the
// compatibility table between them. It is immutable after construction and
// may be shared by any number of models and goroutines.
type Catalog struct {
	n         int
	symmetry  int
	periodic  bool
	positions int

	palette     []color.RGBA
	patterns    [][]uint16
	weights     []int
	logWeights  []float64
	totalWeight float64
	sumWLogW    float64

	compat *CompatibilityTable
}

// NewCatalog extracts every N×N window of in, registers the first symmetry
// variants of each and counts how often each unique pattern occurs.
func NewCatalog(in InputGrid, n, symmetry int) (*Catalog, error) {
	if n < 1 {
		return nil, ErrInvalidPatternSize
	}
	if symmetry < 1 || symmetry > 8 {
		return nil, ErrInvalidSymmetry
	}
	w, h := in.Width(), in.Height()
	if w == 0 || h == 0 {
		return nil, ErrInvalidInput
	}
	xmax, ymax := w, h
	if !in.Periodic() {
		xmax, ymax = w-n+1, h-n+1
	}
	if xmax <= 0 || ymax <= 0 {
		return nil, fmt.Errorf("%w: %dx%d input is smaller than pattern size %d", ErrEmptyCatalog, w, h, n)
	}

	c := &Catalog{
		n:         n,
		symmetry:  symmetry,
		periodic:  in.Periodic(),
		positions: xmax * ymax,
		palette:   in.Palette(),
	}
	index := make(map[string]int)
	key := make([]byte, 2*n*n)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			window := patternFrom(n, func(dx, dy int) uint16 { return in.At(x+dx, y+dy) })
			for _, v := range variants(window, n, symmetry) {
				for i, cell := range v {
					binary.LittleEndian.PutUint16(key[2*i:], cell)
				}
				if id, ok := index[string(key)]; ok {
					c.weights[id]++
					continue
				}
				index[string(key)] = len(c.patterns)
				c.patterns = append(c.patterns, v)
				c.weights = append(c.weights, 1)
			}
		}
	}

	c.logWeights = make([]float64, len(c.weights))
	for i, wt := range c.weights {
		fw := float64(wt)
		c.logWeights[i] = math.Log(fw)
		c.totalWeight += fw
		c.sumWLogW += fw * c.logWeights[i]
	}
	c.compat = newCompatibilityTable(c.patterns, n)
	return c, nil
}

// Len returns the number of unique patterns.
func (c *Catalog) Len() int { return len(c.patterns) }

// PatternSize returns N.
func (c *Catalog) PatternSize() int { return c.n }

// Symmetry returns the number of variants registered per window.
func (c *Catalog) Symmetry() int { return c.symmetry }

// Periodic reports whether extraction wrapped around the input edges.
func (c *Catalog) Periodic() bool { return c.periodic }

// Positions returns the number of window positions that were sampled.
func (c *Catalog) Positions() int { return c.positions }

// Weight returns the occurrence count of pattern id.
func (c *Catalog) Weight(id int) int { return c.weights[id] }

// TotalWeight returns the sum of all pattern weights.
func (c *Catalog) TotalWeight() int { return int(c.totalWeight) }

// Pattern returns a copy of pattern id.
func (c *Catalog) Pattern(id int) Pattern {
	return Pattern{
		ID:     id,
		Cells:  append([]uint16(nil), c.patterns[id]...),
		Weight: c.weights[id],
	}
}

// Palette returns a copy of the color palette shared with the input.
func (c *Catalog) Palette() []color.RGBA {
	return append([]color.RGBA(nil), c.palette...)
}

// Compatibility returns the table of pairwise pattern agreement.
func (c *Catalog) Compatibility() *CompatibilityTable { return c.compat }

// colorAt returns the color index of pattern id at local coordinates.
func (c *Catalog) colorAt(id, x, y int) uint16 { return c.patterns[id][x+y*c.n] }
