package crand

import "math/rand/v2"

// Both engines satisfy math/rand/v2's Source, so rand.New can wrap a
// pointer to either one when the standard library's method set is wanted
// on top of a crand stream:
//
//	g := crand.NewSTC64(seed)
//	r := rand.New(&g)
var (
	_ rand.Source = (*STC64)(nil)
	_ rand.Source = (*PCG32)(nil)
)
