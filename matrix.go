package perplex

import "gonum.org/v1/gonum/mat"

// Matrix returns the symmetric 2×2 matrix form of z,
//
//	⎡t x⎤
//	⎣x t⎦
//
// The conversion is a ring isomorphism: matrix addition and matrix
// multiplication correspond to [Perplex.Add] and [Perplex.Mul], the
// determinant equals [Perplex.SquaredDistance], and the matrix inverse
// corresponds to [Perplex.Inverse]. No sector or polar logic applies to
// the matrix form.
func (z Perplex[F]) Matrix() *mat.SymDense {
	t, x := float64(z.T), float64(z.X)
	return mat.NewSymDense(2, []float64{
		t, x,
		x, t,
	})
}

// FromMatrix converts a symmetric 2×2 matrix back to a perplex number,
// reading the diagonal as the time component and the off-diagonal as the
// space component.
func FromMatrix[F Scalar](m mat.Symmetric) Perplex[F] {
	return New(F(m.At(0, 0)), F(m.At(0, 1)))
}
