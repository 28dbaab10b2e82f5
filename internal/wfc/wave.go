package wfc

import (
	"math"

	"wfcgen/pkg/core"
)

// Wave is the per-cell possibility state of one generation attempt. Cells are
// stored row-major; each keeps a possibility bit and four compatible counts
// per pattern, plus the weight sums used for O(1) entropy.
type Wave struct {
	cat      *Catalog
	w, h     int
	patterns int
	periodic bool
	wrapY    bool

	possible   []bool
	remaining  []int
	compatible []int32
	sumW       []float64
	sumWLogW   []float64

	queue []elimination
	head  int

	contradiction int
}

type elimination struct {
	cell    int32
	pattern int32
}

// newWave returns a fully unconstrained wave. wrapY is ignored unless the
// wave is periodic.
func newWave(cat *Catalog, w, h int, periodic, wrapY bool) *Wave {
	cells := w * h
	p := cat.Len()
	wave := &Wave{
		cat:           cat,
		w:             w,
		h:             h,
		patterns:      p,
		periodic:      periodic,
		wrapY:         periodic && wrapY,
		possible:      make([]bool, cells*p),
		remaining:     make([]int, cells),
		compatible:    make([]int32, cells*p*4),
		sumW:          make([]float64, cells),
		sumWLogW:      make([]float64, cells),
		queue:         make([]elimination, 0, cells),
		contradiction: -1,
	}
	table := cat.Compatibility()
	var initial [4][]int32
	for _, d := range Directions {
		initial[d] = make([]int32, p)
		for t := 0; t < p; t++ {
			initial[d][t] = int32(len(table.Compatible(d.Opposite(), t)))
		}
	}
	for i := 0; i < cells; i++ {
		for t := 0; t < p; t++ {
			wave.possible[i*p+t] = true
			base := (i*p + t) * 4
			for _, d := range Directions {
				wave.compatible[base+int(d)] = initial[d][t]
			}
		}
		wave.remaining[i] = p
		wave.sumW[i] = cat.totalWeight
		wave.sumWLogW[i] = cat.sumWLogW
	}
	return wave
}

// Width returns the number of columns.
func (w *Wave) Width() int { return w.w }

// Height returns the number of rows.
func (w *Wave) Height() int { return w.h }

// Cells returns the number of cells.
func (w *Wave) Cells() int { return w.w * w.h }

// Possible reports whether pattern t is still allowed in cell i.
func (w *Wave) Possible(i, t int) bool { return w.possible[i*w.patterns+t] }

// Remaining returns the number of patterns still allowed in cell i.
func (w *Wave) Remaining(i int) int { return w.remaining[i] }

// Collapsed returns the single pattern of cell i, if it has exactly one.
func (w *Wave) Collapsed(i int) (int, bool) {
	if w.remaining[i] != 1 {
		return -1, false
	}
	base := i * w.patterns
	for t := 0; t < w.patterns; t++ {
		if w.possible[base+t] {
			return t, true
		}
	}
	return -1, false
}

// Entropy returns the Shannon entropy of the weights left in cell i.
func (w *Wave) Entropy(i int) float64 {
	sum := w.sumW[i]
	if sum <= 0 {
		return 0
	}
	return math.Log(sum) - w.sumWLogW[i]/sum
}

// Contradiction returns the cell that ran out of patterns, or -1.
func (w *Wave) Contradiction() int { return w.contradiction }

// neighbor returns the index of the cell next to i in direction d.
func (w *Wave) neighbor(i int, d Direction) (int, bool) {
	dx, dy := d.Offset()
	x := i%w.w + dx
	y := i/w.w + dy
	if x < 0 || x >= w.w {
		if !w.periodic {
			return -1, false
		}
		x = (x + w.w) % w.w
	}
	if y < 0 || y >= w.h {
		if !w.wrapY {
			return -1, false
		}
		y = (y + w.h) % w.h
	}
	return y*w.w + x, true
}

// selectCell returns the undetermined cell with the lowest perturbed entropy,
// or -1 when every cell is collapsed.
func (w *Wave) selectCell(rng core.Source) int {
	best := -1
	lowest := math.Inf(1)
	for i := range w.remaining {
		if w.remaining[i] <= 1 {
			continue
		}
		e := w.Entropy(i) + entropyNoise*rng.Float64()
		if e < lowest {
			lowest = e
			best = i
		}
	}
	return best
}

// sample picks one allowed pattern of cell i with probability proportional to
// its weight.
func (w *Wave) sample(i int, rng core.Source) int {
	r := rng.Float64() * w.sumW[i]
	base := i * w.patterns
	last := -1
	acc := 0.0
	for t := 0; t < w.patterns; t++ {
		if !w.possible[base+t] {
			continue
		}
		last = t
		acc += float64(w.cat.weights[t])
		if acc > r {
			return t
		}
	}
	return last
}

// anchor resolves the cell at (x, y) under the wave's boundary policy.
func (w *Wave) anchor(x, y int) (int, int, bool) {
	if x < 0 || x >= w.w {
		if !w.periodic {
			return 0, 0, false
		}
		x = (x%w.w + w.w) % w.w
	}
	if y < 0 || y >= w.h {
		if !w.wrapY {
			return 0, 0, false
		}
		y = (y%w.h + w.h) % w.h
	}
	return x, y, true
}
