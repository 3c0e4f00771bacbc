package perplex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// perplexComparer compares perplex numbers within a fixed tolerance, for
// results that take different floating point paths to the same value.
var perplexComparer = cmp.Comparer(func(z1, z2 Perplex[float64]) bool {
	return z1.ApproxEqual(z2, 1e-10)
})

func perplexTolerance(eps float64) cmp.Option {
	return cmp.Comparer(func(z1, z2 Perplex[float64]) bool {
		return z1.ApproxEqual(z2, eps)
	})
}
