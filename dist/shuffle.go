package dist

import "github.com/nozzle/crand"

// Shuffle pseudo-randomizes the order of n elements through the swap
// callback, mirroring the signature of math/rand/v2. It runs a
// Fisher-Yates pass with bias-free index selection, so every permutation
// is equally likely. n must be non-negative.
func Shuffle(g *crand.STC64, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := NewUniformI64(0, int64(i)).UnbiasedSample(g)
		swap(i, int(j))
	}
}
