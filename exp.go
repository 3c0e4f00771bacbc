package perplex

// extendRight lifts a function defined on the Right sector to the whole
// plane: move z to the Right sector with its Klein element, apply f, and
// move the result back with the same element. This is exact because every
// Klein element is its own inverse. Light-like values have no Klein
// element and fail with [ErrOutsideDomain].
func extendRight[F Scalar](z Perplex[F], f func(Perplex[F]) Perplex[F]) (Perplex[F], error) {
	k, ok := z.Klein()
	if !ok {
		return Perplex[F]{}, ErrOutsideDomain
	}
	return k.Mul(f(k.Mul(z))), nil
}

// Exp returns the hyperbolic exponential of z. In the Right sector
// exp(t + x·h) = eᵗ·(cosh x + h·sinh x); the Klein mapping extends the
// formula to the other sectors. On the light-like diagonals the same
// closed form applies directly, so Exp is total.
func (z Perplex[F]) Exp() Perplex[F] {
	k, ok := z.Klein()
	if !ok {
		k = Identity[F]()
	}
	w := k.Mul(z)
	et := exp(w.T)
	return k.Mul(New(et*cosh(w.X), et*sinh(w.X)))
}

// Ln returns the natural logarithm of z, the inverse of [Perplex.Exp]. In
// the Right sector ln z = ln(D(z))/2 + h·atanh(x/t); the Klein mapping
// extends it to the other sectors. It fails with [ErrOutsideDomain] for
// light-like z, where the modulus vanishes.
func (z Perplex[F]) Ln() (Perplex[F], error) {
	return extendRight(z, func(w Perplex[F]) Perplex[F] {
		return New(log(w.SquaredDistance())/2, atanh(w.X/w.T))
	})
}

// Log returns the logarithm of z with respect to the real base, computed
// as Ln(z)/ln(base). It fails with [ErrOutsideDomain] for light-like z.
func (z Perplex[F]) Log(base F) (Perplex[F], error) {
	w, err := z.Ln()
	if err != nil {
		return Perplex[F]{}, err
	}
	return w.Scale(1 / log(base)), nil
}

// Sqrt returns the square root of z. It is defined only on the closed
// Right sector t ≥ |x|, where
//
//	√z = (√(t+x) + √(t−x))/2 + h·(√(t+x) − √(t−x))/2
//
// and fails with [ErrOutsideDomain] elsewhere. Unlike Exp and Ln, the
// Klein mapping does not extend Sqrt: squaring maps every sector into
// Right, so points outside Right have no square root in the plane.
func (z Perplex[F]) Sqrt() (Perplex[F], error) {
	sum, diff := z.T+z.X, z.T-z.X
	if sum < 0 || diff < 0 {
		return Perplex[F]{}, ErrOutsideDomain
	}
	a, b := sqrt(sum), sqrt(diff)
	return New((a+b)/2, (a-b)/2), nil
}

// Sin returns the circular sine of z:
// sin(t + x·h) = sin t·cos x + h·cos t·sin x.
func (z Perplex[F]) Sin() Perplex[F] {
	return New(sin(z.T)*cos(z.X), cos(z.T)*sin(z.X))
}

// Cos returns the circular cosine of z:
// cos(t + x·h) = cos t·cos x + h·sin t·sin x.
func (z Perplex[F]) Cos() Perplex[F] {
	return New(cos(z.T)*cos(z.X), sin(z.T)*sin(z.X))
}

// Tan returns sin(z)/cos(z). It fails with [ErrNotInvertible] when cos(z)
// is light-like.
func (z Perplex[F]) Tan() (Perplex[F], error) {
	return z.Sin().Div(z.Cos())
}

// Sinh returns the hyperbolic sine of z:
// sinh(t + x·h) = sinh t·cosh x + h·cosh t·sinh x.
func (z Perplex[F]) Sinh() Perplex[F] {
	return New(sinh(z.T)*cosh(z.X), cosh(z.T)*sinh(z.X))
}

// Cosh returns the hyperbolic cosine of z:
// cosh(t + x·h) = cosh t·cosh x + h·sinh t·sinh x.
func (z Perplex[F]) Cosh() Perplex[F] {
	return New(cosh(z.T)*cosh(z.X), sinh(z.T)*sinh(z.X))
}

// Tanh returns sinh(z)/cosh(z). It fails with [ErrNotInvertible] when
// cosh(z) is light-like.
func (z Perplex[F]) Tanh() (Perplex[F], error) {
	return z.Sinh().Div(z.Cosh())
}
