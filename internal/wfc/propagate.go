package wfc

// eliminate removes pattern t from cell i and queues the removal so that
// propagate can update the neighbors. It returns false when the cell has no
// patterns left.
func (w *Wave) eliminate(i, t int) bool {
	idx := i*w.patterns + t
	if !w.possible[idx] {
		return true
	}
	w.possible[idx] = false
	base := idx * 4
	for d := 0; d < 4; d++ {
		w.compatible[base+d] = 0
	}
	w.queue = append(w.queue, elimination{cell: int32(i), pattern: int32(t)})

	w.remaining[i]--
	wt := float64(w.cat.weights[t])
	w.sumW[i] -= wt
	w.sumWLogW[i] -= wt * w.cat.logWeights[t]
	if w.remaining[i] == 0 {
		w.contradiction = i
		return false
	}
	return true
}

// collapseCellTo discards every pattern of cell i except t.
func (w *Wave) collapseCellTo(i, t int) bool {
	base := i * w.patterns
	for other := 0; other < w.patterns; other++ {
		if other == t || !w.possible[base+other] {
			continue
		}
		if !w.eliminate(i, other) {
			return false
		}
	}
	return true
}

// propagate drains the elimination queue in FIFO order. A neighbor pattern
// whose support count from some direction drops to zero is eliminated in
// turn. Propagation stops at the first contradiction.
func (w *Wave) propagate() bool {
	if w.contradiction >= 0 {
		w.reset()
		return false
	}
	table := w.cat.Compatibility()
	for w.head < len(w.queue) {
		e := w.queue[w.head]
		w.head++
		for _, d := range Directions {
			i2, ok := w.neighbor(int(e.cell), d)
			if !ok {
				continue
			}
			base := i2 * w.patterns
			for _, t2 := range table.Compatible(d, int(e.pattern)) {
				c := &w.compatible[(base+t2)*4+int(d)]
				*c--
				if *c != 0 {
					continue
				}
				if !w.eliminate(i2, t2) {
					w.reset()
					return false
				}
			}
		}
	}
	w.reset()
	return true
}

// prune removes patterns that have no supporter at all from an existing
// neighbor. Without it a pattern that is incompatible with every pattern,
// itself included, would never be eliminated.
func (w *Wave) prune() bool {
	for i := 0; i < w.Cells(); i++ {
		for _, d := range Directions {
			if _, ok := w.neighbor(i, d.Opposite()); !ok {
				continue
			}
			base := i * w.patterns
			for t := 0; t < w.patterns; t++ {
				if !w.possible[base+t] || w.compatible[(base+t)*4+int(d)] != 0 {
					continue
				}
				if !w.eliminate(i, t) {
					return false
				}
			}
		}
	}
	return true
}

// reset empties the queue while keeping its storage.
func (w *Wave) reset() {
	w.queue = w.queue[:0]
	w.head = 0
}
