package crand

import "math/bits"

const (
	pcg32Mult = 6364136223846793005

	// Stream used by NewPCG32, matching the PCG reference default.
	pcg32DefaultSeq = 0xda3e39cb94b95bdb >> 1
)

// PCG32 is a 32-bit permuted congruential generator, the XSH-RR 64/32
// member of Melissa O'Neill's PCG family (pcg-random.org).
//
// State is a 64-bit linear congruential word plus an odd stream
// increment fixed at construction. Output is derived from the
// pre-advance state by an xorshift and a data-dependent rotation, so raw
// congruential bits never reach the caller. Each stream has period 2^64.
type PCG32 struct {
	state uint64
	inc   uint64 // odd, fixed after construction
}

// NewPCG32 returns a generator seeded with seed on the default stream.
// Every seed value is valid.
func NewPCG32(seed uint64) PCG32 {
	return NewPCG32Seq(seed, pcg32DefaultSeq)
}

// NewPCG32Seq returns a generator seeded with seed on the stream selected
// by seq. The low 63 bits of seq are significant; the derived increment
// is forced odd so that no two streams share one.
func NewPCG32Seq(seed, seq uint64) PCG32 {
	inc := seq<<1 | 1
	// Closed form of the reference initialization: advance once from a
	// zero state, add the seed, advance again.
	return PCG32{state: (seed+inc)*pcg32Mult + inc, inc: inc}
}

// Uint32 returns the next value in the stream and advances the state
// exactly once.
func (g *PCG32) Uint32() uint32 {
	old := g.state
	g.state = old*pcg32Mult + g.inc
	xsh := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xsh, -int(old>>59))
}

// Uint64 returns the next two 32-bit draws packed big end first into one
// uint64. It advances the state twice.
func (g *PCG32) Uint64() uint64 {
	return uint64(g.Uint32())<<32 | uint64(g.Uint32())
}

// Float32 returns a uniformly distributed float32 in [0, 1), using the
// top 24 bits of one draw. 1 is never returned.
func (g *PCG32) Float32() float32 {
	return float32(g.Uint32()>>8) * 0x1p-24
}
