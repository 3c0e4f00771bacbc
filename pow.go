package perplex

// PowU raises z to the power n by repeated squaring, using O(log n)
// multiplications. It agrees with the n-fold product within floating
// tolerance. PowU(z, 0) is the multiplicative identity for every z,
// including zero.
func (z Perplex[F]) PowU(n uint) Perplex[F] {
	result := Identity[F]()
	if n == 0 {
		return result
	}
	base := z
	for n > 1 {
		if n%2 == 1 {
			result = result.Mul(base)
		}
		n /= 2
		base = base.Mul(base)
	}
	return result.Mul(base)
}

// PowI raises z to a signed integer power. Non-negative exponents delegate
// to [Perplex.PowU]. Negative exponents invert z first and fail with
// [ErrNotInvertible] when z is light-like.
func (z Perplex[F]) PowI(n int) (Perplex[F], error) {
	if n < 0 {
		inv, err := z.Inverse()
		if err != nil {
			return Perplex[F]{}, err
		}
		// two's complement negation is exact even for the minimum int
		return inv.PowU(uint(-n)), nil
	}
	return z.PowU(uint(n)), nil
}
