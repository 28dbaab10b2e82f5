package samples

import "wfcgen/internal/core"

// Elementary returns the first h generations of a one-dimensional Wolfram
// rule started from a single live cell, one generation per row.
func Elementary(w, h int, rule uint8) []uint8 {
	cells := make([]uint8, w*h)
	if w == 0 || h == 0 {
		return cells
	}
	cells[w/2] = 1
	for y := 1; y < h; y++ {
		prev := cells[(y-1)*w : y*w]
		row := cells[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			left := prev[(x-1+w)%w]
			center := prev[x]
			right := prev[(x+1)%w]
			row[x] = (rule >> ((left << 2) | (center << 1) | right)) & 1
		}
	}
	return cells
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sample {
		w := intFrom(cfg, "sample_w", 16, 3, 256)
		h := intFrom(cfg, "sample_h", 16, 2, 256)
		rule := intFrom(cfg, "rule", 90, 0, 255)
		return FromBinary("elementary", w, h, Elementary(w, h, uint8(rule)), map[string]string{"n": "3", "periodic_input": "false"})
	})
}
