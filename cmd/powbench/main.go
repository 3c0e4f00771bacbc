// Command powbench compares the four routes to an integer power of a
// perplex number: the naive multiplication loop, repeated squaring, the
// polar power law, and the matrix representation.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gonum.org/v1/gonum/mat"

	"github.com/perplexnum/perplex"
)

func naive(z perplex.Perplex[float64], n uint) perplex.Perplex[float64] {
	result := perplex.Identity[float64]()
	for i := uint(0); i < n; i++ {
		result = result.Mul(z)
	}
	return result
}

func matrixPow(z perplex.Perplex[float64], n uint) perplex.Perplex[float64] {
	m := z.Matrix()
	result := mat.DenseCopyOf(perplex.Identity[float64]().Matrix())
	for i := uint(0); i < n; i++ {
		var prod mat.Dense
		prod.Mul(result, m)
		result = &prod
	}
	return perplex.New(result.At(0, 0), result.At(0, 1))
}

func measure(rounds int, f func() perplex.Perplex[float64]) (perplex.Perplex[float64], time.Duration) {
	start := time.Now()
	var last perplex.Perplex[float64]
	for i := 0; i < rounds; i++ {
		last = f()
	}
	return last, time.Since(start)
}

func main() {
	exp := flag.Uint("exp", 50, "exponent")
	rounds := flag.Int("rounds", 100_000, "repetitions per route")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelInfo,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	z := perplex.New(0.123, 4.321)
	n := *exp
	slog.Info("comparing power routes",
		"z", z.String(),
		"exp", n,
		"rounds", humanize.Comma(int64(*rounds)))

	routes := []struct {
		name string
		f    func() perplex.Perplex[float64]
	}{
		{"naive loop", func() perplex.Perplex[float64] { return naive(z, n) }},
		{"repeated squaring", func() perplex.Perplex[float64] { return z.PowU(n) }},
		{"polar", func() perplex.Perplex[float64] { return z.Polar().PowU(n).Perplex() }},
		{"matrix", func() perplex.Perplex[float64] { return matrixPow(z, n) }},
	}

	want := z.PowU(n)
	for _, r := range routes {
		got, d := measure(*rounds, r.f)
		if !got.ApproxEqual(want, 1e-6*want.MaxNorm()) {
			slog.Error("route disagrees", "route", r.name, "got", got.String(), "want", want.String())
			continue
		}
		slog.Info("route timed",
			"route", r.name,
			"total", d,
			"per_op", d/time.Duration(*rounds))
	}
}
