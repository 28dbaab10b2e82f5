package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		v := a.IntN(5)
		assert.Equal(t, v, b.IntN(5))
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Zero(t, a.IntN(0))
}

func TestFillBinary(t *testing.T) {
	buf := make([]uint8, 64)
	FillBinary(NewRNG(1).Source(), buf)
	ones := 0
	for _, v := range buf {
		assert.LessOrEqual(t, v, uint8(1))
		ones += int(v)
	}
	assert.Positive(t, ones)
	assert.Less(t, ones, len(buf))
}

func TestReplay(t *testing.T) {
	r := NewReplay(-1, 0.25, 3)
	assert.Equal(t, 0.0, r.Float64())
	assert.Equal(t, 0.25, r.Float64())
	assert.Less(t, r.Float64(), 1.0)
	assert.Equal(t, 0, r.Pos())
	assert.Equal(t, 0.0, r.Float64())

	assert.Equal(t, 0.0, NewReplay().Float64())

	var src Source = SourceFunc(func() float64 { return 0.5 })
	assert.Equal(t, 0.5, src.Float64())
}
