// Package dist implements distribution sampling over the crand engines:
// bounded uniform integers with a choice of biased or bias-free range
// reduction, uniform floats over half-open intervals, normally
// distributed doubles, and slice shuffling.
//
// Each distribution is split into a spec, built once from the
// distribution parameters, and sampling calls that take the engine
// explicitly. Specs other than Normal are immutable plain values and may
// be shared freely; the engine passed in must be private to the calling
// goroutine, as everywhere else. Parameter preconditions are caller
// obligations and are not rechecked at sampling time.
package dist

import (
	"math/bits"

	"github.com/nozzle/crand"
)

// UniformI32 describes a uniform integer distribution over the inclusive
// range [low, high].
type UniformI32 struct {
	off int32
	rng uint32 // outcome count, high-low+1
}

// NewUniformI32 builds a spec for the inclusive range [low, high].
// Callers must ensure high >= low. The full int32 domain is the one range
// whose outcome count does not fit in 32 bits and is not supported.
func NewUniformI32(low, high int32) UniformI32 {
	return UniformI32{off: low, rng: uint32(high-low) + 1}
}

// Sample returns a value in [low, high] from one draw and a modulo
// reduction. When the outcome count does not divide 2^32 the low end of
// the range is favored by at most rng/2^32 per value; use UnbiasedSample
// where exact uniformity matters.
func (u UniformI32) Sample(g *crand.PCG32) int32 {
	return u.off + int32(g.Uint32()%u.rng)
}

// UnbiasedSample returns a value in [low, high] with exactly uniform
// probability, using Lemire's multiply-and-reject reduction: widen one
// draw to 64 bits, multiply by the outcome count and keep the high half,
// redrawing while the low half falls under 2^32 mod rng. Fewer than rng
// out of every 2^32 draws are rejected.
func (u UniformI32) UnbiasedSample(g *crand.PCG32) int32 {
	m := uint64(g.Uint32()) * uint64(u.rng)
	if uint32(m) < u.rng {
		for thresh := -u.rng % u.rng; uint32(m) < thresh; {
			m = uint64(g.Uint32()) * uint64(u.rng)
		}
	}
	return u.off + int32(m>>32)
}

// UniformI64 describes a uniform integer distribution over the inclusive
// range [low, high].
type UniformI64 struct {
	off int64
	rng uint64 // outcome count, high-low+1
}

// NewUniformI64 builds a spec for the inclusive range [low, high].
// Callers must ensure high >= low. The full int64 domain is the one range
// whose outcome count does not fit in 64 bits and is not supported.
func NewUniformI64(low, high int64) UniformI64 {
	return UniformI64{off: low, rng: uint64(high-low) + 1}
}

// Sample returns a value in [low, high] from one draw and a modulo
// reduction, favoring the low end by at most rng/2^64 per value. Use
// UnbiasedSample where exact uniformity matters.
func (u UniformI64) Sample(g *crand.STC64) int64 {
	return u.off + int64(g.Uint64()%u.rng)
}

// UnbiasedSample returns a value in [low, high] with exactly uniform
// probability. It is the 128-bit form of the 32-bit reduction: one
// widening multiply via bits.Mul64, keeping the high word and redrawing
// while the low word falls under 2^64 mod rng.
func (u UniformI64) UnbiasedSample(g *crand.STC64) int64 {
	hi, lo := bits.Mul64(g.Uint64(), u.rng)
	if lo < u.rng {
		for thresh := -u.rng % u.rng; lo < thresh; {
			hi, lo = bits.Mul64(g.Uint64(), u.rng)
		}
	}
	return u.off + int64(hi)
}
