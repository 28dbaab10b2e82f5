package wfc

// patternFrom builds an n*n pattern by sampling f at every local coordinate.
func patternFrom(n int, f func(x, y int) uint16) []uint16 {
	p := make([]uint16, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p[x+y*n] = f(x, y)
		}
	}
	return p
}

// rotate turns a pattern a quarter turn.
func rotate(p []uint16, n int) []uint16 {
	return patternFrom(n, func(x, y int) uint16 { return p[n-1-y+x*n] })
}

// reflect mirrors a pattern horizontally.
func reflect(p []uint16, n int) []uint16 {
	return patternFrom(n, func(x, y int) uint16 { return p[n-1-x+y*n] })
}

// variants returns the first symmetry entries of the eight rotations and
// reflections of p, in the order identity, reflect, rotate, rotate+reflect,
// rotate², rotate²+reflect, rotate³, rotate³+reflect.
func variants(p []uint16, n, symmetry int) [][]uint16 {
	var all [8][]uint16
	all[0] = p
	all[1] = reflect(all[0], n)
	all[2] = rotate(all[0], n)
	all[3] = reflect(all[2], n)
	all[4] = rotate(all[2], n)
	all[5] = reflect(all[4], n)
	all[6] = rotate(all[4], n)
	all[7] = reflect(all[6], n)
	if symmetry > len(all) {
		symmetry = len(all)
	}
	return all[:symmetry]
}
