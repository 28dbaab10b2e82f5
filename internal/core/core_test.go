package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := newFixedStep(2, func() time.Time { return clock })
	require.Equal(t, 500*time.Millisecond, fs.Step())

	assert.True(t, fs.ShouldStep(), "first call is due immediately")
	clock = clock.Add(200 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(300 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall yields at most two runs.
	clock = clock.Add(5 * time.Second)
	assert.True(t, fs.ShouldStep())
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())

	fs.SetRate(0)
	assert.Equal(t, time.Second, fs.Step())
}

func TestIndexGridWrap(t *testing.T) {
	g := NewIndexGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(5, 5, 9)
	assert.Equal(t, uint16(7), g.At(-1, -1))
	assert.Equal(t, uint16(7), g.At(2, 3))
	assert.Equal(t, 5, g.Index(2, 1))

	c := g.Clone()
	c.Set(2, 1, 1)
	assert.Equal(t, uint16(7), g.At(2, 1))
	assert.Equal(t, []uint16{0, 0, 0, 0, 0, 1}, c.Cells())
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{}.Append(ParameterGroup{Name: "a", Params: []Parameter{{Key: "n", Value: "2"}}})
	p, ok := snap.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestSampleRegistry(t *testing.T) {
	Register("", func(map[string]string) Sample { return Sample{} })
	Register("zz-test", nil)
	for _, name := range SampleNames() {
		assert.NotEmpty(t, name)
		assert.NotEqual(t, "zz-test", name)
	}
	Register("zz-test", func(map[string]string) Sample { return Sample{Name: "zz-test"} })
	t.Cleanup(func() { delete(samples, "zz-test") })
	assert.Equal(t, "zz-test", Samples()["zz-test"](nil).Name)
}
