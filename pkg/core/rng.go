package core

import "math/rand/v2"

// Source supplies uniformly distributed floats in [0, 1). It is the only way
// randomness enters the generator.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 { return f() }

// Replay is a Source that cycles through a fixed list of values. It is meant
// for tests that need an exactly reproducible stream.
type Replay struct {
	values []float64
	pos    int
}

// NewReplay returns a Replay over values. Values outside [0, 1) are clamped.
func NewReplay(values ...float64) *Replay {
	vs := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = 0.9999999999
		}
		vs[i] = v
	}
	return &Replay{values: vs}
}

// Float64 returns the next value of the stream, wrapping at the end. An empty
// Replay always yields 0.
func (r *Replay) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos]
	r.pos = (r.pos + 1) % len(r.values)
	return v
}

// Pos reports the index of the next value to be drawn.
func (r *Replay) Pos() int { return r.pos }
