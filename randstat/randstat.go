// Package randstat implements the statistical acceptance checks used to
// score generator and sampler output: sample moments, chi-square goodness
// of fit against a uniform expectation, histogram binning, per-bit
// balance and central-mass fractions.
//
// The helpers take plain sample slices, so they can score any source of
// draws, not only the engines in this module. They report values and
// verdicts; thresholds and sample sizes belong to the caller.
package randstat

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Moments returns the sample mean and the sample standard deviation of
// xs. The standard deviation carries Bessel's correction.
func Moments(xs []float64) (mean, stddev float64) {
	return stat.MeanStdDev(xs, nil)
}

// ChiSquareUniform scores observed outcome counts against a uniform
// expectation over all cells. It returns the chi-square statistic, the
// critical value for len(counts)-1 degrees of freedom at the given
// confidence level, and whether the statistic falls below it. Counts
// should average at least ~5 per cell for the test to mean anything.
func ChiSquareUniform(counts []int, confidence float64) (statistic, critical float64, ok bool) {
	total := 0
	for _, c := range counts {
		total += c
	}
	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - expected
		statistic += d * d / expected
	}
	critical = distuv.ChiSquared{K: float64(len(counts) - 1)}.Quantile(confidence)
	return statistic, critical, statistic < critical
}

// BinCounts counts the samples falling into each of bins equally wide
// cells spanning [low, high), for feeding ChiSquareUniform. Every sample
// must lie within [low, high); xs itself is left unsorted.
func BinCounts(xs []float64, low, high float64, bins int) []int {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	dividers := make([]float64, bins+1)
	floats.Span(dividers, low, high)
	counts := make([]int, bins)
	for i, w := range stat.Histogram(nil, dividers, sorted, nil) {
		counts[i] = int(w)
	}
	return counts
}

// BitBalance returns, for each of the width low-order bit positions, the
// fraction of draws with that bit set. A sound generator holds every
// fraction near 1/2.
func BitBalance(draws []uint64, width int) []float64 {
	fractions := make([]float64, width)
	for _, d := range draws {
		for b := range width {
			if d>>b&1 == 1 {
				fractions[b]++
			}
		}
	}
	for b := range fractions {
		fractions[b] /= float64(len(draws))
	}
	return fractions
}

// WithinSigma returns the fraction of xs within k standard deviations of
// mean, alongside the mass a normal distribution places there.
func WithinSigma(xs []float64, mean, stddev, k float64) (got, want float64) {
	lo, hi := mean-k*stddev, mean+k*stddev
	in := 0
	for _, x := range xs {
		if x >= lo && x <= hi {
			in++
		}
	}
	want = distuv.UnitNormal.CDF(k) - distuv.UnitNormal.CDF(-k)
	return float64(in) / float64(len(xs)), want
}
