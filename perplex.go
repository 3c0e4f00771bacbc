package perplex

import "fmt"

// Perplex is a split-complex number z = t + x·h with h² = 1. T is the real
// (time) component and X the hyperbolic (space) component. The zero value
// is the additive identity.
//
// Values are immutable; every operation returns a new value.
type Perplex[F Scalar] struct {
	T F
	X F
}

// New returns the perplex number t + x·h.
func New[F Scalar](t, x F) Perplex[F] {
	return Perplex[F]{T: t, X: x}
}

// FromReal returns the perplex number t + 0·h.
func FromReal[F Scalar](t F) Perplex[F] {
	return Perplex[F]{T: t}
}

// H returns the hyperbolic unit h.
func H[F Scalar]() Perplex[F] {
	return Perplex[F]{X: 1}
}

// Identity returns the multiplicative identity 1 + 0·h.
func Identity[F Scalar]() Perplex[F] {
	return Perplex[F]{T: 1}
}

// Splat returns the time and space components.
func (z Perplex[F]) Splat() (F, F) {
	return z.T, z.X
}

func (z Perplex[F]) String() string {
	if z.X < 0 {
		return fmt.Sprintf("%g-%gh", float64(z.T), float64(-z.X))
	}
	return fmt.Sprintf("%g+%gh", float64(z.T), float64(z.X))
}

// Add adds two perplex numbers componentwise.
func (z Perplex[F]) Add(w Perplex[F]) Perplex[F] {
	return Perplex[F]{
		T: z.T + w.T,
		X: z.X + w.X,
	}
}

// Sub subtracts two perplex numbers componentwise.
func (z Perplex[F]) Sub(w Perplex[F]) Perplex[F] {
	return Perplex[F]{
		T: z.T - w.T,
		X: z.X - w.X,
	}
}

// AddReal adds a real scalar, affecting only the time component.
func (z Perplex[F]) AddReal(v F) Perplex[F] {
	return Perplex[F]{
		T: z.T + v,
		X: z.X,
	}
}

// SubReal subtracts a real scalar, affecting only the time component.
func (z Perplex[F]) SubReal(v F) Perplex[F] {
	return Perplex[F]{
		T: z.T - v,
		X: z.X,
	}
}

// Mul multiplies two perplex numbers:
//
//	(t1 + x1·h)(t2 + x2·h) = (t1·t2 + x1·x2) + (t1·x2 + t2·x1)·h
//
// Multiplication is commutative, associative, and distributes over Add.
func (z Perplex[F]) Mul(w Perplex[F]) Perplex[F] {
	return Perplex[F]{
		T: z.T*w.T + z.X*w.X,
		X: z.T*w.X + w.T*z.X,
	}
}

// MulAdd returns z·w + a.
func (z Perplex[F]) MulAdd(w, a Perplex[F]) Perplex[F] {
	return Perplex[F]{
		T: z.T*w.T + z.X*w.X + a.T,
		X: z.T*w.X + w.T*z.X + a.X,
	}
}

// Scale multiplies both components by the real scalar f.
func (z Perplex[F]) Scale(f F) Perplex[F] {
	return Perplex[F]{
		T: f * z.T,
		X: f * z.X,
	}
}

// Div divides z by w. It fails with [ErrNotInvertible] when w is
// light-like.
func (z Perplex[F]) Div(w Perplex[F]) (Perplex[F], error) {
	d := w.SquaredDistance()
	if d == 0 {
		return Perplex[F]{}, ErrNotInvertible
	}
	return Perplex[F]{
		T: (z.T*w.T - z.X*w.X) / d,
		X: (w.T*z.X - z.T*w.X) / d,
	}, nil
}

// Neg returns the additive inverse −t − x·h.
func (z Perplex[F]) Neg() Perplex[F] {
	return Perplex[F]{
		T: -z.T,
		X: -z.X,
	}
}

// Conj returns the hyperbolic conjugate t − x·h.
func (z Perplex[F]) Conj() Perplex[F] {
	return Perplex[F]{
		T: z.T,
		X: -z.X,
	}
}

// SquaredDistance returns D(z) = t² − x², the quadratic form of the
// hyperbolic plane. Unlike a Euclidean norm it may be negative; its sign
// separates time-like, space-like, and light-like values. It equals
// z·Conj(z) and is invariant under conjugation.
func (z Perplex[F]) SquaredDistance() F {
	return z.T*z.T - z.X*z.X
}

// Modulus returns √|D(z)|. It is always defined and non-negative; it is
// zero exactly on the light-like diagonals.
func (z Perplex[F]) Modulus() F {
	return sqrt(abs(z.SquaredDistance()))
}

// L1Norm returns the Manhattan distance |t| + |x| from the origin.
func (z Perplex[F]) L1Norm() F {
	return abs(z.T) + abs(z.X)
}

// L2Norm returns the Euclidean distance √(t² + x²) from the origin.
func (z Perplex[F]) L2Norm() F {
	return sqrt(z.T*z.T + z.X*z.X)
}

// MaxNorm returns max(|t|, |x|).
func (z Perplex[F]) MaxNorm() F {
	return max(abs(z.T), abs(z.X))
}

// Inverse returns 1/z, computed as Conj(z)/D(z). It fails with
// [ErrNotInvertible] when z is light-like, i.e. when D(z) = 0.
func (z Perplex[F]) Inverse() (Perplex[F], error) {
	d := z.SquaredDistance()
	if d == 0 {
		return Perplex[F]{}, ErrNotInvertible
	}
	return Perplex[F]{
		T: z.T / d,
		X: -z.X / d,
	}, nil
}

// IsTimeLike reports whether D(z) > 0.
func (z Perplex[F]) IsTimeLike() bool {
	return z.SquaredDistance() > 0
}

// IsSpaceLike reports whether D(z) < 0.
func (z Perplex[F]) IsSpaceLike() bool {
	return z.SquaredDistance() < 0
}

// IsLightLike reports whether D(z) = 0, i.e. z lies on one of the two
// diagonals |t| = |x|. Light-like values other than zero are zero
// divisors.
func (z Perplex[F]) IsLightLike() bool {
	return z.SquaredDistance() == 0
}

// IsZero reports whether z is the additive identity.
func (z Perplex[F]) IsZero() bool {
	return z.T == 0 && z.X == 0
}

// IsIdentity reports whether z is the multiplicative identity.
func (z Perplex[F]) IsIdentity() bool {
	return z.T == 1 && z.X == 0
}

// IsNaN reports whether at least one component is NaN.
func (z Perplex[F]) IsNaN() bool {
	return isNaN(z.T) || isNaN(z.X)
}

// IsInf reports whether at least one component is infinite and none is
// NaN.
func (z Perplex[F]) IsInf() bool {
	return !z.IsNaN() && (isInf(z.T) || isInf(z.X))
}

// IsFinite reports whether both components are finite.
func (z Perplex[F]) IsFinite() bool {
	return !z.IsNaN() && !isInf(z.T) && !isInf(z.X)
}

// ApproxEqual reports whether the components of z and w agree within eps.
// Results computed along different code paths, such as [Perplex.PowU]
// versus a naive multiplication loop, compare equal under a small eps even
// when they differ in the last bits.
func (z Perplex[F]) ApproxEqual(w Perplex[F], eps F) bool {
	return abs(z.T-w.T) <= eps && abs(z.X-w.X) <= eps
}
