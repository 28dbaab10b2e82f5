package wfc

import "testing"

func TestCompatibilitySymmetric(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		cat := mustCatalog(t, noisePixels(6, 6, 11), 6, 6, n, 2, true)
		table := cat.Compatibility()
		p := cat.Len()
		for a := 0; a < p; a++ {
			if !table.Agrees(a, a, 0, 0) {
				t.Fatalf("n=%d: pattern %d disagrees with itself at zero offset", n, a)
			}
			for b := 0; b < p; b++ {
				for dy := -(n - 1); dy < n; dy++ {
					for dx := -(n - 1); dx < n; dx++ {
						if table.Agrees(a, b, dx, dy) != table.Agrees(b, a, -dx, -dy) {
							t.Fatalf("n=%d: Agrees(%d,%d,%d,%d) is not symmetric", n, a, b, dx, dy)
						}
					}
				}
			}
		}
	}
}

func TestCompatibilityMatchesOverlap(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	cat := mustCatalog(t, pixels, w, h, 2, 1, true)
	table := cat.Compatibility()

	// Pattern 0 is "#. / .#" and pattern 1 is ".# / #.": a checkerboard only
	// continues with the other phase one step away.
	for _, d := range Directions {
		dx, dy := d.Offset()
		if table.Agrees(0, 0, dx, dy) {
			t.Fatalf("pattern 0 should not repeat %s", d)
		}
		if !table.Agrees(0, 1, dx, dy) {
			t.Fatalf("pattern 1 should follow pattern 0 %s", d)
		}
		if got := table.Compatible(d, 0); len(got) != 1 || got[0] != 1 {
			t.Fatalf("Compatible(%s, 0) = %v, want [1]", d, got)
		}
	}
	// Diagonal neighbors share one cell, which matches for the same phase.
	if !table.Agrees(0, 0, 1, 1) || table.Agrees(0, 1, 1, 1) {
		t.Fatal("diagonal overlap mismatch")
	}
}

func TestSinglePixelPatternsAlwaysCompatible(t *testing.T) {
	cat := mustCatalog(t, noisePixels(4, 4, 3), 4, 4, 1, 1, false)
	table := cat.Compatibility()
	for a := 0; a < cat.Len(); a++ {
		for _, d := range Directions {
			if len(table.Compatible(d, a)) != cat.Len() {
				t.Fatalf("1x1 pattern %d should accept every neighbor %s", a, d)
			}
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		if dx != -ox || dy != -oy {
			t.Fatalf("%s opposite %s does not negate the offset", d, d.Opposite())
		}
	}
}
