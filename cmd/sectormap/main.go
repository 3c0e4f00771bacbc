// Command sectormap renders an ASCII map of the four sectors of the
// hyperbolic plane and walks a sample point through its Klein orbit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/perplexnum/perplex"
)

func glyph(s perplex.Sector) byte {
	switch s {
	case perplex.Right:
		return '>'
	case perplex.Up:
		return '^'
	case perplex.Left:
		return '<'
	case perplex.Down:
		return 'v'
	default:
		return '.'
	}
}

func main() {
	extent := flag.Float64("extent", 2.0, "half-width of the rendered plane")
	step := flag.Float64("step", 0.25, "grid step")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelInfo,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	if *step <= 0 || *extent <= 0 {
		slog.Error("extent and step must be positive", "extent", *extent, "step", *step)
		os.Exit(1)
	}

	var sb strings.Builder
	for x := *extent; x >= -*extent; x -= *step {
		for t := -*extent; t <= *extent; t += *step {
			sb.WriteByte(glyph(perplex.New(t, x).Sector()))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	z := perplex.New(math.Sqrt2, 1.0)
	slog.Info("klein orbit of a time-like sample", "z", z.String(), "sector", z.Sector())
	for _, s := range []perplex.Sector{perplex.Right, perplex.Up, perplex.Left, perplex.Down} {
		k, _ := perplex.Klein[float64](s)
		w := k.Mul(z)
		slog.Info("orbit point",
			"element", k.String(),
			"value", w.String(),
			"sector", w.Sector(),
			"modulus", w.Modulus(),
			"arg", w.Arg())
	}
}
