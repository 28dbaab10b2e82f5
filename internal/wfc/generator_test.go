package wfc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rng "wfcgen/pkg/core"
)

func TestTrivialInputSucceedsFirstAttempt(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"GG",
		"GG",
	)
	for _, size := range [][2]int{{1, 1}, {3, 7}, {16, 16}} {
		p := DefaultParams()
		p.N = 1
		p.Width, p.Height = size[0], size[1]
		m, err := New(pixels, w, h, p)
		require.NoError(t, err)

		require.True(t, m.Generate(rng.NewRNG(1), -1), "size %v", size)
		assert.Equal(t, Success, m.State())

		buf, err := m.Render()
		require.NoError(t, err)
		require.Len(t, buf, 4*size[0]*size[1])
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				assert.Equal(t, green, pixelAt(buf, size[0], x, y))
			}
		}
	}
}

func TestCheckerboardScenario(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	p := Params{N: 2, Width: 4, Height: 4, PeriodicInput: true, PeriodicOutput: false, Symmetry: 1, Ground: NoGround}
	m, err := New(pixels, w, h, p)
	require.NoError(t, err)

	for seed := int64(0); seed < 10; seed++ {
		require.True(t, m.Generate(rng.NewRNG(seed), -1), "seed %d", seed)
		require.NoError(t, m.Verify())
		buf, err := m.Render()
		require.NoError(t, err)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				c := pixelAt(buf, 4, x, y)
				if c != black && c != white {
					t.Fatalf("unexpected color %v at (%d,%d)", c, x, y)
				}
				if x+1 < 4 && pixelAt(buf, 4, x+1, y) == c {
					t.Fatalf("seed %d: row %d does not alternate at x=%d", seed, y, x)
				}
				if y+1 < 4 && pixelAt(buf, 4, x, y+1) == c {
					t.Fatalf("seed %d: column %d does not alternate at y=%d", seed, x, y)
				}
			}
		}
	}
}

func TestCheckerboardPeriodicOutputParity(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	cat := mustCatalog(t, pixels, w, h, 2, 1, true)

	even, err := NewModel(cat, Params{Width: 4, Height: 4, PeriodicOutput: true, Ground: NoGround})
	require.NoError(t, err)
	assert.True(t, even.Generate(rng.NewRNG(5), -1))
	assert.NoError(t, even.Verify())

	// A checkerboard cannot close around an odd torus.
	odd, err := NewModel(cat, Params{Width: 3, Height: 4, PeriodicOutput: true, Ground: NoGround})
	require.NoError(t, err)
	for seed := int64(0); seed < 5; seed++ {
		assert.False(t, odd.Generate(rng.NewRNG(seed), -1))
		assert.Equal(t, Contradiction, odd.State())
	}
}

func TestCompatibilityInvariantHolds(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		symmetry int
		periodic bool
		required bool
	}{
		{name: "n2 bounded", n: 2, symmetry: 1, required: true},
		{name: "n2 periodic symmetric", n: 2, symmetry: 8, periodic: true, required: true},
		{name: "n3 bounded", n: 3, symmetry: 8},
		{name: "n3 periodic", n: 3, symmetry: 8, periodic: true},
	}
	cat := func(n, s int) *Catalog { return mustCatalog(t, noisePixels(8, 8, 21), 8, 8, n, s, true) }
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewModel(cat(tc.n, tc.symmetry), Params{Width: 12, Height: 10, PeriodicOutput: tc.periodic, Ground: NoGround})
			require.NoError(t, err)
			successes := 0
			for seed := int64(0); seed < 20; seed++ {
				if !m.Generate(rng.NewRNG(seed), -1) {
					continue
				}
				successes++
				require.NoError(t, m.Verify(), "seed %d", seed)
			}
			if tc.required {
				require.Positive(t, successes)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cat := mustCatalog(t, noisePixels(8, 8, 3), 8, 8, 2, 2, true)
	p := Params{Width: 20, Height: 14, Ground: NoGround}
	first, err := NewModel(cat, p)
	require.NoError(t, err)
	second, err := NewModel(cat, p)
	require.NoError(t, err)

	var seed int64
	for ; seed < 20; seed++ {
		if first.Generate(rng.NewRNG(seed), -1) {
			break
		}
	}
	require.Equal(t, Success, first.State(), "no seed succeeded")
	require.True(t, second.Generate(rng.NewRNG(seed), -1))

	a, err := first.Render()
	require.NoError(t, err)
	b, err := second.Render()
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different output (-first +second):\n%s", diff)
	}

	// A replayed stream is deterministic too, including across reuse of a model.
	require.Equal(t, first.Generate(rng.NewReplay(0.1, 0.7, 0.3), -1), first.Generate(rng.NewReplay(0.1, 0.7, 0.3), -1))
}

func TestContradictionReported(t *testing.T) {
	// The only pattern has a black left column and a white right one, so it
	// can never sit next to itself horizontally.
	pixels, w, h := pixelsFrom(t,
		"#.",
		"#.",
	)
	m, err := New(pixels, w, h, Params{N: 2, Width: 4, Height: 4, Symmetry: 1, Ground: NoGround})
	require.NoError(t, err)
	require.Equal(t, 1, m.Catalog().Len())

	for seed := int64(0); seed < 5; seed++ {
		assert.False(t, m.Generate(rng.NewRNG(seed), -1))
		assert.Equal(t, Contradiction, m.State())
		_, _, ok := m.Contradicted()
		assert.True(t, ok)
	}
	_, err = m.Render()
	if !errors.Is(err, ErrNotCollapsed) {
		t.Fatalf("expected ErrNotCollapsed, got %v", err)
	}

	// A single column has no horizontal neighbors and succeeds.
	column, err := NewModel(m.Catalog(), Params{Width: 1, Height: 5, Ground: NoGround})
	require.NoError(t, err)
	assert.True(t, column.Generate(rng.NewRNG(1), -1))
}

func TestGroundConstraint(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		".....",
		".#...",
		"...#.",
		"GGGGG",
		"GGGGG",
	)
	cat := mustCatalog(t, pixels, w, h, 2, 1, false)
	ground := -1
	for i := 0; i < cat.Len(); i++ {
		if cells := cat.Pattern(i).Cells; cells[0] == 2 && cells[1] == 2 && cells[2] == 2 && cells[3] == 2 {
			ground = i
		}
	}
	require.GreaterOrEqual(t, ground, 0, "all-ground pattern missing")

	p := Params{Width: 10, Height: 8, PeriodicOutput: true, Ground: ground}
	m, err := NewModel(cat, p)
	require.NoError(t, err)

	var ok bool
	for seed := int64(0); seed < 50 && !ok; seed++ {
		ok = m.Generate(rng.NewRNG(seed), -1)
	}
	require.True(t, ok, "no seed satisfied the ground constraint")
	require.NoError(t, m.Verify())

	observed, err := m.Observed()
	require.NoError(t, err)
	for i, pat := range observed {
		bottom := i/p.Width == p.Height-1
		if bottom != (pat == ground) {
			t.Fatalf("cell %d (bottom=%v) holds pattern %d, ground is %d", i, bottom, pat, ground)
		}
	}

	// Ground indices beyond the catalog are rejected at construction.
	_, err = NewModel(cat, Params{Width: 4, Height: 4, Ground: cat.Len()})
	assert.ErrorIs(t, err, ErrGroundOutOfRange)
}

func TestGroundOverride(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		".....",
		".#...",
		"...#.",
		"GGGGG",
		"GGGGG",
	)
	cat := mustCatalog(t, pixels, w, h, 2, 1, false)
	m, err := NewModel(cat, Params{Width: 8, Height: 6, Ground: NoGround})
	require.NoError(t, err)
	mod, err := NewModel(cat, Params{Width: 8, Height: 6, Ground: NoGround})
	require.NoError(t, err)

	ground := cat.Len() - 1
	for seed := int64(0); seed < 10; seed++ {
		// The override is reduced modulo the pattern count.
		a := m.Generate(rng.NewRNG(seed), ground)
		b := mod.Generate(rng.NewRNG(seed), ground+cat.Len())
		require.Equal(t, a, b)
		if !a {
			continue
		}
		ra, err := m.Render()
		require.NoError(t, err)
		rb, err := mod.Render()
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(ra, rb))

		observed, err := m.Observed()
		require.NoError(t, err)
		for x := 0; x < 8; x++ {
			assert.Equal(t, ground, observed[5*8+x])
		}
	}
}

func TestNewModelValidatesOutput(t *testing.T) {
	cat := mustCatalog(t, noisePixels(4, 4, 1), 4, 4, 2, 1, true)
	_, err := NewModel(cat, Params{Width: 0, Height: 4})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestImageMatchesRender(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	m, err := New(pixels, w, h, Params{N: 2, Width: 6, Height: 3, PeriodicInput: true, Symmetry: 1, Ground: NoGround})
	require.NoError(t, err)
	require.True(t, m.Generate(rng.NewRNG(9), -1))

	img, err := m.Image()
	require.NoError(t, err)
	buf, err := m.Render()
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Empty(t, cmp.Diff(buf, img.Pix))
}

func TestParametersSnapshot(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	m, err := New(pixels, w, h, DefaultParams())
	require.NoError(t, err)
	snap := m.Parameters()
	patterns, ok := snap.Lookup("patterns")
	require.True(t, ok)
	assert.Equal(t, "2", patterns.Value)
	state, ok := snap.Lookup("state")
	require.True(t, ok)
	assert.Equal(t, "running", state.Value)
}

func TestFromMap(t *testing.T) {
	p := FromMap(map[string]string{
		"n":               "3",
		"w":               "32",
		"periodic_output": "true",
		"symmetry":        "12",
		"ground":          "-4",
	})
	assert.Equal(t, 3, p.N)
	assert.Equal(t, 32, p.Width)
	assert.Equal(t, 48, p.Height)
	assert.True(t, p.PeriodicOutput)
	assert.Equal(t, 1, p.Symmetry, "out of range symmetry is ignored")
	assert.Equal(t, NoGround, p.Ground)
}

func TestPreview(t *testing.T) {
	pixels, w, h := pixelsFrom(t,
		"#.",
		".#",
	)
	m, err := New(pixels, w, h, Params{N: 2, Width: 3, Height: 3, PeriodicInput: true, Symmetry: 1, Ground: NoGround})
	require.NoError(t, err)
	assert.Nil(t, m.Preview())

	require.True(t, m.Generate(rng.NewRNG(4), -1))
	buf, err := m.Render()
	require.NoError(t, err)
	if diff := cmp.Diff(buf, m.Preview()); diff != "" {
		t.Fatalf("collapsed preview differs from render (-render +preview):\n%s", diff)
	}

	broken, _, _ := pixelsFrom(t,
		"#.",
		"#.",
	)
	m, err = New(broken, 2, 2, Params{N: 2, Width: 3, Height: 3, Symmetry: 1, Ground: NoGround})
	require.NoError(t, err)
	require.False(t, m.Generate(rng.NewRNG(1), -1))
	x, y, ok := m.Contradicted()
	require.True(t, ok)
	preview := m.Preview()
	require.Len(t, preview, 4*9)
	assert.Equal(t, uint8(0), preview[4*(y*3+x)+3])
}
