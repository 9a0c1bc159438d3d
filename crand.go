// Package crand implements small, fast pseudo-random number generators
// with explicit caller-owned state and first-class support for
// independent parallel streams.
//
// Two engines are provided. STC64 is the primary 64-bit generator: three
// mixed state words driven by a Weyl-sequence counter, with a guaranteed
// minimum period of 2^64 per stream. PCG32 is a compact 32-bit generator
// with 64-bit linear state and a permuted output. Both are statistical
// generators: their output is predictable from their state, so neither is
// suitable for security-sensitive work (use crypto/rand for that).
//
// There is no global generator and no locking. Engines are plain values
// that must not be shared between goroutines; concurrent use means giving
// each goroutine its own engine on a distinct stream:
//
//	for i := range workers {
//	    g := crand.NewSTC64Seq(seed, uint64(i))
//	    go worker(&g)
//	}
//
// Streams with the same seed and different sequence identifiers are
// structurally disjoint, so there is no jump or skip-ahead operation;
// assigning identifiers is the whole parallelization story. Copying an
// engine value yields an independent generator that continues from the
// copied state, which is also how callers checkpoint a generator.
//
// Bounded integer, uniform float and normal sampling over these engines
// live in the dist subpackage.
package crand

import "math/bits"

// STC64 is a 64-bit generator implementing the stc64 algorithm by Tyge
// Løvset, a Weyl-sequence variant of Chris Doty-Humphrey's SFC64.
//
// The mutable state is 256 bits: three mixing words and a Weyl counter.
// The counter advances by a fixed odd increment every draw, which bounds
// the period below by 2^64 per stream regardless of how the mixing words
// evolve; the expected period is about 2^127. Each distinct odd increment
// yields a disjoint Weyl sub-sequence, giving up to 2^63 independent
// streams per seed.
type STC64 struct {
	a, b, c uint64 // mixing words
	w       uint64 // Weyl counter
	inc     uint64 // counter step, odd, fixed after construction
}

// NewSTC64 returns a generator seeded with seed on the default stream.
// Every seed value is valid.
func NewSTC64(seed uint64) STC64 {
	return NewSTC64Seq(seed, 0)
}

// NewSTC64Seq returns a generator seeded with seed on the stream selected
// by seq. The low 63 bits of seq are significant; the derived counter
// step is forced odd so that no two streams share one.
//
// The mixing words are spread from the seed with splitmix64 and the state
// is warmed up for a few draws, so low-entropy seeds (0, 1, small
// integers) do not produce correlated early output.
func NewSTC64Seq(seed, seq uint64) STC64 {
	var g STC64
	g.a = splitmix64(&seed)
	g.b = splitmix64(&seed)
	g.c = splitmix64(&seed)
	g.w = seed
	g.inc = seq<<1 | 1
	for range 12 {
		g.Uint64()
	}
	return g
}

// Uint64 returns the next value in the stream and advances the state
// exactly once.
func (g *STC64) Uint64() uint64 {
	g.w += g.inc
	out := (g.a ^ g.w) + g.b
	g.a, g.b, g.c = g.b^(g.b>>11), g.c+(g.c<<3), bits.RotateLeft64(g.c, 24)+out
	return out
}

// Float64 returns a uniformly distributed float64 in [0, 1), using the
// top 53 bits of one draw. 1 is never returned.
func (g *STC64) Float64() float64 {
	return float64(g.Uint64()>>11) * 0x1p-53
}
