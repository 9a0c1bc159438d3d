// Command crand emits generator output for inspection or external test
// batteries, and runs the module's statistical acceptance suite.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/nozzle/crand"
	"github.com/nozzle/crand/dist"
	"github.com/nozzle/crand/randstat"
)

// source is the draw surface shared by both engines.
type source interface {
	Uint64() uint64
}

// generators maps -gen values to engine constructors.
var generators = map[string]func(seed, seq uint64) source{
	"stc64": func(seed, seq uint64) source { g := crand.NewSTC64Seq(seed, seq); return &g },
	"pcg32": func(seed, seq uint64) source { g := crand.NewPCG32Seq(seed, seq); return &g },
}

func main() {
	// Parse command-line flags
	gen := flag.String("gen", "stc64", "Generator: stc64 or pcg32")
	seed := flag.Uint64("seed", 0, "Seed (0 draws one from the OS entropy source)")
	seq := flag.Uint64("seq", 0, "Stream/sequence identifier")
	name := flag.String("name", "", "Derive the stream identifier from a name instead of -seq")
	n := flag.Int("n", 16, "Number of values to emit")
	format := flag.String("format", "u64", "Output format: u64, hex or raw")
	check := flag.Bool("check", false, "Run the statistical acceptance suite over both engines and exit")
	flag.Parse()

	newSource, ok := generators[*gen]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown generator %q\n", *gen)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = crand.NewSeed()
	}
	q := *seq
	if *name != "" {
		q = crand.SeedString(*name)
	}

	if *check {
		fmt.Printf("seed=%d seq=%d\n", s, q)
		if !runChecks(s, q) {
			os.Exit(1)
		}
		return
	}

	if err := emit(newSource(s, q), *n, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// emit writes n draws from g to stdout. The raw format is little-endian
// binary, suitable for piping into external batteries such as PractRand
// or dieharder.
func emit(g source, n int, format string) error {
	switch format {
	case "u64", "hex", "raw":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	w := bufio.NewWriter(os.Stdout)
	for range n {
		v := g.Uint64()
		switch format {
		case "u64":
			fmt.Fprintln(w, v)
		case "hex":
			fmt.Fprintf(w, "%016x\n", v)
		case "raw":
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], v)
			w.Write(b[:])
		}
	}
	return w.Flush()
}

// runChecks scores both engines and the samplers built on them, printing
// one verdict line per check. It reports whether every check passed.
func runChecks(seed, seq uint64) bool {
	const draws = 1 << 20
	pass := true
	report := func(name string, ok bool, detail string) {
		verdict := "PASS"
		if !ok {
			verdict = "FAIL"
			pass = false
		}
		fmt.Printf("%-28s %s  %s\n", name, verdict, detail)
	}

	// Raw output: every bit position should be set about half the time.
	for _, gen := range []string{"stc64", "pcg32"} {
		g := generators[gen](seed, seq)
		raw := make([]uint64, draws)
		for i := range raw {
			raw[i] = g.Uint64()
		}
		worst := 0.0
		for _, f := range randstat.BitBalance(raw, 64) {
			if d := math.Abs(f - 0.5); d > worst {
				worst = d
			}
		}
		report(gen+" bit balance", worst < 0.005, fmt.Sprintf("max |p-1/2| = %.5f", worst))
	}

	// Bounded samplers: cell counts against a uniform expectation.
	g := crand.NewSTC64Seq(seed, seq)
	u64 := dist.NewUniformI64(0, 99)
	counts := make([]int, 100)
	for range draws {
		counts[u64.UnbiasedSample(&g)]++
	}
	statistic, critical, ok := randstat.ChiSquareUniform(counts, 0.9999)
	report("stc64 uniform chi-square", ok, fmt.Sprintf("x2 = %.1f, crit = %.1f", statistic, critical))

	p := crand.NewPCG32Seq(seed, seq)
	u32 := dist.NewUniformI32(0, 99)
	for i := range counts {
		counts[i] = 0
	}
	for range draws {
		counts[u32.UnbiasedSample(&p)]++
	}
	statistic, critical, ok = randstat.ChiSquareUniform(counts, 0.9999)
	report("pcg32 uniform chi-square", ok, fmt.Sprintf("x2 = %.1f, crit = %.1f", statistic, critical))

	// Normal sampler: moments and central mass.
	nrm := dist.NewNormal(0, 1)
	xs := make([]float64, draws)
	for i := range xs {
		xs[i] = nrm.Sample(&g)
	}
	mean, stddev := randstat.Moments(xs)
	report("normal moments", math.Abs(mean) < 0.01 && math.Abs(stddev-1) < 0.01,
		fmt.Sprintf("mean = %+.4f, stddev = %.4f", mean, stddev))
	got, want := randstat.WithinSigma(xs, 0, 1, 3)
	report("normal 3-sigma mass", math.Abs(got-want) < 0.002,
		fmt.Sprintf("got = %.5f, want = %.5f", got, want))

	return pass
}
