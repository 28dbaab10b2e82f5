package samples

import (
	"wfcgen/internal/core"
	rng "wfcgen/pkg/core"
)

// Life evolves a seeded Game of Life board on a torus. A few generations turn
// noise into blobs with local structure worth learning from.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewLife returns a board of the given size filled from seed.
func NewLife(w, h int, seed int64) *Life {
	l := &Life{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
	rng.FillBinary(rng.NewRNG(seed).Source(), l.cur)
	return l
}

// Cells exposes the current generation.
func (l *Life) Cells() []uint8 { return l.cur }

// Step advances the board by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(l.cur[((y+dy+h)%h)*w+(x+dx+w)%w])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if neighbors == 3 || (alive && neighbors == 2) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sample {
		w := intFrom(cfg, "sample_w", 16, 2, 256)
		h := intFrom(cfg, "sample_h", 16, 2, 256)
		steps := intFrom(cfg, "sample_steps", 6, 0, 1000)
		seed := intFrom(cfg, "sample_seed", 7, 0, 1<<30)
		board := NewLife(w, h, int64(seed))
		for i := 0; i < steps; i++ {
			board.Step()
		}
		return FromBinary("life", w, h, board.Cells(), map[string]string{"n": "3", "periodic_input": "true", "symmetry": "8"})
	})
}
