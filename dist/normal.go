package dist

import (
	"math"

	"github.com/nozzle/crand"
)

// Normal describes a normal (Gaussian) distribution with the given mean
// and standard deviation.
//
// The polar method produces deviates in pairs, so the spec caches the
// second deviate of each accepted pair and serves it on the following
// call. Normal is therefore the one mutable spec in this package: sample
// through a pointer, and keep each value private to one goroutine.
type Normal struct {
	mean, stddev float64
	spare        float64
	hasSpare     bool
}

// NewNormal builds a spec with the given parameters. Callers must ensure
// stddev > 0.
func NewNormal(mean, stddev float64) Normal {
	return Normal{mean: mean, stddev: stddev}
}

// Sample returns the next normally distributed value using the Marsaglia
// polar method: draw a point (u, v) uniform on the square (-1, 1]² until
// its squared radius s lands in (0, 1), then scale both coordinates by
// sqrt(-2·ln(s)/s). One coordinate is returned and the other cached for
// the next call. Each attempt accepts with probability π/4, so the loop
// runs about 1.27 times on average.
func (n *Normal) Sample(g *crand.STC64) float64 {
	if n.hasSpare {
		n.hasSpare = false
		return n.mean + n.stddev*n.spare
	}
	var u, v, s float64
	for {
		u = 1 - 2*g.Float64()
		v = 1 - 2*g.Float64()
		s = u*u + v*v
		if s < 1 && s > 0 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(s) / s)
	n.spare = v * f
	n.hasSpare = true
	return n.mean + n.stddev*u*f
}
