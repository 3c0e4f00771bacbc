package perplex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the real component type of a perplex number.
// It admits the built-in floating point types; consumers choose the
// precision. Real-valued helper functions compute through float64
// internally, so float32 intermediates are widened.
type Scalar interface {
	constraints.Float
}

func abs[F Scalar](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

func sqrt[F Scalar](v F) F {
	return F(math.Sqrt(float64(v)))
}

func exp[F Scalar](v F) F {
	return F(math.Exp(float64(v)))
}

func log[F Scalar](v F) F {
	return F(math.Log(float64(v)))
}

func atanh[F Scalar](v F) F {
	return F(math.Atanh(float64(v)))
}

func sinh[F Scalar](v F) F {
	return F(math.Sinh(float64(v)))
}

func cosh[F Scalar](v F) F {
	return F(math.Cosh(float64(v)))
}

func sin[F Scalar](v F) F {
	return F(math.Sin(float64(v)))
}

func cos[F Scalar](v F) F {
	return F(math.Cos(float64(v)))
}

func powInt[F Scalar](v F, n int) F {
	return F(math.Pow(float64(v), float64(n)))
}

func inf[F Scalar](sign int) F {
	return F(math.Inf(sign))
}

func isNaN[F Scalar](v F) bool {
	return v != v
}

func isInf[F Scalar](v F) bool {
	return math.IsInf(float64(v), 0)
}
