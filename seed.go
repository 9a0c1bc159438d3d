package crand

import (
	cryptorand "crypto/rand"
	"encoding/binary"

	"github.com/dgryski/go-farm"
)

// splitmix64 advances state by the golden-ratio increment and returns the
// mixed result (Vigna's SplitMix64 step). It spreads a single user seed
// across the generator words so that nearby seeds yield unrelated states.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewSeed returns a 64-bit seed drawn from the operating system's entropy
// source, for callers that want unpredictable generator initialization
// without managing seed material themselves.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("crand: reading entropy: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SeedString derives a stable 64-bit value from s, usable as a seed or as
// a sequence identifier. The mapping is a FarmHash fingerprint, so it is
// fixed across releases and platforms; handing each worker the
// fingerprint of its name is an easy way to assign distinct streams
// without coordinating counters.
func SeedString(s string) uint64 {
	return farm.Fingerprint64([]byte(s))
}
