package dist

import "github.com/nozzle/crand"

// UniformF32 describes a uniform distribution over the half-open
// interval [low, high).
type UniformF32 struct {
	off float32
	rng float32 // high - low
}

// NewUniformF32 builds a spec for [low, high). Callers must ensure
// low < high and that high-low does not overflow.
func NewUniformF32(low, high float32) UniformF32 {
	return UniformF32{off: low, rng: high - low}
}

// Sample returns a value in [low, high): one 24-bit unit draw scaled onto
// the interval.
func (u UniformF32) Sample(g *crand.PCG32) float32 {
	return u.off + u.rng*g.Float32()
}

// UniformF64 describes a uniform distribution over the half-open
// interval [low, high).
type UniformF64 struct {
	off float64
	rng float64 // high - low
}

// NewUniformF64 builds a spec for [low, high). Callers must ensure
// low < high and that high-low does not overflow.
func NewUniformF64(low, high float64) UniformF64 {
	return UniformF64{off: low, rng: high - low}
}

// Sample returns a value in [low, high): one 53-bit unit draw scaled onto
// the interval.
func (u UniformF64) Sample(g *crand.STC64) float64 {
	return u.off + u.rng*g.Float64()
}
