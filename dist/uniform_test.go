package dist_test

import (
	"math"
	"testing"

	"github.com/nozzle/crand"
	"github.com/nozzle/crand/dist"
	"github.com/nozzle/crand/randstat"
)

func TestUniformI64Dice(t *testing.T) {
	// Six d6 rolls for seed 42, stream 1, pinned for both reductions.
	d := dist.NewUniformI64(1, 6)

	g := crand.NewSTC64Seq(42, 1)
	wantMod := []int64{4, 4, 6, 5, 6, 2}
	for i, want := range wantMod {
		if got := d.Sample(&g); got != want {
			t.Errorf("Sample %d: got %d, want %d", i, got, want)
		}
	}

	g = crand.NewSTC64Seq(42, 1)
	wantLemire := []int64{5, 4, 4, 5, 4, 5}
	for i, want := range wantLemire {
		if got := d.UnbiasedSample(&g); got != want {
			t.Errorf("UnbiasedSample %d: got %d, want %d", i, got, want)
		}
	}
}

func TestUniformI64Pinned(t *testing.T) {
	g := crand.NewSTC64Seq(42, 1)
	d := dist.NewUniformI64(-1000, 1000)
	want := []int64{-919, -157, 16, -516, 523}
	for i, w := range want {
		if got := d.Sample(&g); got != w {
			t.Errorf("Sample %d: got %d, want %d", i, got, w)
		}
	}
}

func TestUniformI32Pinned(t *testing.T) {
	d := dist.NewUniformI32(0, 5)

	g := crand.NewPCG32Seq(42, 54)
	wantMod := []int32{3, 3, 2, 1, 1, 4}
	for i, want := range wantMod {
		if got := d.Sample(&g); got != want {
			t.Errorf("Sample %d: got %d, want %d", i, got, want)
		}
	}

	g = crand.NewPCG32Seq(42, 54)
	wantLemire := []int32{3, 2, 4, 3, 4, 4}
	for i, want := range wantLemire {
		if got := d.UnbiasedSample(&g); got != want {
			t.Errorf("UnbiasedSample %d: got %d, want %d", i, got, want)
		}
	}

	g = crand.NewPCG32Seq(42, 54)
	span := dist.NewUniformI32(-3, 3)
	wantSpan := []int32{1, 0, 2, 0, 2, 2}
	for i, want := range wantSpan {
		if got := span.UnbiasedSample(&g); got != want {
			t.Errorf("UnbiasedSample[-3,3] %d: got %d, want %d", i, got, want)
		}
	}
}

func TestUniformI64Ranges(t *testing.T) {
	cases := []struct {
		name      string
		low, high int64
	}{
		{"d6", 1, 6},
		{"negative", -5, -1},
		{"single", 9, 9},
		{"wide", -1000, 1000},
		{"near full domain", math.MinInt64 + 1, math.MaxInt64},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := crand.NewSTC64(1)
			d := dist.NewUniformI64(tc.low, tc.high)
			seen := make(map[int64]bool)
			for range 10000 {
				v := d.Sample(&g)
				if v < tc.low || v > tc.high {
					t.Fatalf("Sample outside [%d, %d]: %d", tc.low, tc.high, v)
				}
				v = d.UnbiasedSample(&g)
				if v < tc.low || v > tc.high {
					t.Fatalf("UnbiasedSample outside [%d, %d]: %d", tc.low, tc.high, v)
				}
				seen[v] = true
			}
			// Small ranges should be covered end to end.
			if span := uint64(tc.high-tc.low) + 1; span <= 16 && uint64(len(seen)) != span {
				t.Errorf("hit %d of %d values in 10000 draws", len(seen), span)
			}
		})
	}
}

func TestUniformI32Ranges(t *testing.T) {
	cases := []struct {
		name      string
		low, high int32
	}{
		{"d6", 1, 6},
		{"negative", -5, -1},
		{"single", -7, -7},
		{"bytes", 0, 255},
		{"near full domain", math.MinInt32 + 1, math.MaxInt32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := crand.NewPCG32(1)
			d := dist.NewUniformI32(tc.low, tc.high)
			seen := make(map[int32]bool)
			for range 10000 {
				v := d.Sample(&g)
				if v < tc.low || v > tc.high {
					t.Fatalf("Sample outside [%d, %d]: %d", tc.low, tc.high, v)
				}
				v = d.UnbiasedSample(&g)
				if v < tc.low || v > tc.high {
					t.Fatalf("UnbiasedSample outside [%d, %d]: %d", tc.low, tc.high, v)
				}
				seen[v] = true
			}
			if span := uint32(tc.high-tc.low) + 1; span <= 16 && uint32(len(seen)) != span {
				t.Errorf("hit %d of %d values in 10000 draws", len(seen), span)
			}
		})
	}
}

func TestUniformI32ModBias(t *testing.T) {
	// With 3*2^30 outcomes the modulo reduction doubles the probability
	// of the first 2^30 values, so half of all samples land in the low
	// third of the range. The multiply-and-reject form keeps every
	// third at 1/3.
	const low = math.MinInt32
	const high = low + 3*(1<<30) - 1
	const third = 1 << 30
	const draws = 300000

	d := dist.NewUniformI32(low, high)

	g := crand.NewPCG32(7)
	cells := make([]int, 3)
	for range draws {
		cells[(int64(d.Sample(&g))-low)/third]++
	}
	biased := float64(cells[0]) / draws
	stat, crit, ok := randstat.ChiSquareUniform(cells, 0.99999)
	t.Logf("modulo: low third %.4f, chi-square %.1f (critical %.1f)", biased, stat, crit)
	if biased < 0.48 || biased > 0.52 {
		t.Errorf("modulo low-third fraction = %.4f, expected about 0.5", biased)
	}
	if ok {
		t.Errorf("modulo reduction passed uniformity: chi-square %.1f <= %.1f", stat, crit)
	}

	g = crand.NewPCG32(7)
	for i := range cells {
		cells[i] = 0
	}
	for range draws {
		cells[(int64(d.UnbiasedSample(&g))-low)/third]++
	}
	fair := float64(cells[0]) / draws
	stat, crit, ok = randstat.ChiSquareUniform(cells, 0.99999)
	t.Logf("unbiased: low third %.4f, chi-square %.1f (critical %.1f)", fair, stat, crit)
	if fair < 0.31 || fair > 0.35 {
		t.Errorf("unbiased low-third fraction = %.4f, expected about 1/3", fair)
	}
	if !ok {
		t.Errorf("unbiased reduction failed uniformity: chi-square %.1f > %.1f", stat, crit)
	}
}

func TestUniformSmallRangeFrequencies(t *testing.T) {
	// Over three outcomes the modulo bias is about 1/2^63 per value, so
	// both reductions must look flat.
	const draws = 300000
	d := dist.NewUniformI64(0, 2)

	for _, form := range []struct {
		name   string
		sample func(g *crand.STC64) int64
	}{
		{"mod", d.Sample},
		{"unbiased", d.UnbiasedSample},
	} {
		t.Run(form.name, func(t *testing.T) {
			g := crand.NewSTC64(2)
			counts := make([]int, 3)
			for range draws {
				counts[form.sample(&g)]++
			}
			for v, c := range counts {
				if f := float64(c) / draws; math.Abs(f-1.0/3) > 0.01 {
					t.Errorf("outcome %d: frequency %.4f, want 1/3", v, f)
				}
			}
			stat, crit, ok := randstat.ChiSquareUniform(counts, 0.99999)
			if !ok {
				t.Errorf("counts %v not uniform: chi-square %.2f > %.2f", counts, stat, crit)
			}
		})
	}
}

func TestSpecIdempotence(t *testing.T) {
	// Specs are plain values: equal parameters give equal specs, and
	// equal specs drive equal engines identically.
	d1 := dist.NewUniformI64(3, 17)
	d2 := dist.NewUniformI64(3, 17)
	if d1 != d2 {
		t.Fatal("equal parameters produced unequal specs")
	}

	g1 := crand.NewSTC64(5)
	g2 := crand.NewSTC64(5)
	for i := range 1000 {
		if a, b := d1.Sample(&g1), d2.Sample(&g2); a != b {
			t.Fatalf("draw %d: Sample diverged: %d vs %d", i, a, b)
		}
		if a, b := d1.UnbiasedSample(&g1), d2.UnbiasedSample(&g2); a != b {
			t.Fatalf("draw %d: UnbiasedSample diverged: %d vs %d", i, a, b)
		}
	}
}

func TestUniformChiSquare(t *testing.T) {
	counts := make([]int, 128)

	g := crand.NewSTC64(2024)
	d64 := dist.NewUniformI64(0, 127)
	for range 1 << 20 {
		counts[d64.UnbiasedSample(&g)]++
	}
	stat, crit, ok := randstat.ChiSquareUniform(counts, 0.99999)
	t.Logf("stc64: chi-square = %.1f, critical = %.1f", stat, crit)
	if !ok {
		t.Errorf("stc64 sampler failed uniformity: chi-square %.1f > %.1f", stat, crit)
	}

	p := crand.NewPCG32(2024)
	d32 := dist.NewUniformI32(0, 127)
	for i := range counts {
		counts[i] = 0
	}
	for range 1 << 20 {
		counts[d32.UnbiasedSample(&p)]++
	}
	stat, crit, ok = randstat.ChiSquareUniform(counts, 0.99999)
	t.Logf("pcg32: chi-square = %.1f, critical = %.1f", stat, crit)
	if !ok {
		t.Errorf("pcg32 sampler failed uniformity: chi-square %.1f > %.1f", stat, crit)
	}
}

var (
	sinkI32 int32
	sinkI64 int64
)

func BenchmarkUniformI64Sample(b *testing.B) {
	g := crand.NewSTC64(1)
	d := dist.NewUniformI64(0, 999)
	b.ResetTimer()
	var acc int64
	for i := 0; i < b.N; i++ {
		acc += d.Sample(&g)
	}
	sinkI64 = acc
}

func BenchmarkUniformI64Unbiased(b *testing.B) {
	g := crand.NewSTC64(1)
	d := dist.NewUniformI64(0, 999)
	b.ResetTimer()
	var acc int64
	for i := 0; i < b.N; i++ {
		acc += d.UnbiasedSample(&g)
	}
	sinkI64 = acc
}

func BenchmarkUniformI32Unbiased(b *testing.B) {
	g := crand.NewPCG32(1)
	d := dist.NewUniformI32(0, 999)
	b.ResetTimer()
	var acc int32
	for i := 0; i < b.N; i++ {
		acc += d.UnbiasedSample(&g)
	}
	sinkI32 = acc
}
