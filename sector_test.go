package perplex

import (
	"testing"
)

func TestSectorClassification(t *testing.T) {
	cases := []struct {
		z    Perplex[float64]
		want Sector
	}{
		{New(2.0, 1.0), Right},
		{New(2.0, -1.0), Right},
		{New(-2.0, 1.0), Left},
		{New(-2.0, -1.0), Left},
		{New(1.0, 2.0), Up},
		{New(-1.0, 2.0), Up},
		{New(1.0, -2.0), Down},
		{New(-1.0, -2.0), Down},
		// the boundaries are never assigned to a sector
		{New(1.0, 1.0), Diagonal},
		{New(1.0, -1.0), Diagonal},
		{New(-1.0, 1.0), Diagonal},
		{New(-1.0, -1.0), Diagonal},
		{Perplex[float64]{}, Diagonal},
	}
	for _, c := range cases {
		if got := c.z.Sector(); got != c.want {
			t.Errorf("%v: got sector %v, want %v", c.z, got, c.want)
		}
	}
}

func TestKleinElements(t *testing.T) {
	cases := []struct {
		sector Sector
		want   Perplex[float64]
	}{
		{Right, New(1.0, 0.0)},
		{Up, New(0.0, 1.0)},
		{Left, New(-1.0, 0.0)},
		{Down, New(0.0, -1.0)},
	}
	for _, c := range cases {
		k, ok := Klein[float64](c.sector)
		if !ok {
			t.Fatalf("%v: expected a Klein element", c.sector)
		}
		diff(t, c.want, k)
		// each element is its own inverse
		diff(t, Identity[float64](), k.Mul(k))
	}
	if _, ok := Klein[float64](Diagonal); ok {
		t.Error("Diagonal should have no Klein element")
	}
}

func TestKleinMapsToRight(t *testing.T) {
	zs := []Perplex[float64]{
		New(2.0, 1.0),
		New(-2.0, 1.0),
		New(1.0, 2.0),
		New(1.0, -2.0),
		New(-0.1, -7.25),
	}
	for _, z := range zs {
		k, ok := z.Klein()
		if !ok {
			t.Fatalf("%v: expected a Klein element", z)
		}
		mapped := k.Mul(z)
		if mapped.Sector() != Right {
			t.Errorf("%v: k·z = %v is in %v, want Right", z, mapped, mapped.Sector())
		}
		// the self-inverse round trip restores z
		diff(t, z, k.Mul(mapped))
	}

	if _, ok := New(1.0, 1.0).Klein(); ok {
		t.Error("light-like values should have no Klein element")
	}
}

// TestUpSectorScenario pins down the worked example z = 0 + 2h.
func TestUpSectorScenario(t *testing.T) {
	z := New(0.0, 2.0)
	if d := z.SquaredDistance(); d != -4.0 {
		t.Errorf("got D(z) = %v, want -4", d)
	}
	if z.Sector() != Up {
		t.Errorf("got sector %v, want Up", z.Sector())
	}
	k, ok := z.Klein()
	if !ok {
		t.Fatal("expected a Klein element")
	}
	diff(t, H[float64](), k)
	diff(t, New(2.0, 0.0), k.Mul(z))
	if k.Mul(z).Sector() != Right {
		t.Error("h·z should be in the Right sector")
	}
}

func TestSectorString(t *testing.T) {
	want := map[Sector]string{
		Right:    "Right",
		Up:       "Up",
		Left:     "Left",
		Down:     "Down",
		Diagonal: "Diagonal",
	}
	for s, w := range want {
		if got := s.String(); got != w {
			t.Errorf("got %q, want %q", got, w)
		}
	}
}
