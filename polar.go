package perplex

// Polar is the hyperbolic polar form of a perplex number: the modulus Rho,
// the hyperbolic argument Theta, and the sector the number came from. Rho
// and Theta alone do not determine a point; the sector is required to
// invert the transform, via z = k·ρ·(cosh θ + h·sinh θ) with k the Klein
// element of the sector.
//
// Light-like values are carried by the [Diagonal] sector: Rho is zero and
// Theta is ±∞ there, so Diag records the time component, which together
// with the sign of Theta pins down the point on the diagonal.
type Polar[F Scalar] struct {
	Rho    F
	Theta  F
	Sector Sector

	// Diag is the time component of a light-like value. It is meaningful
	// only when Sector == Diagonal.
	Diag F
}

// IdentityPolar returns the polar form of the multiplicative identity:
// ρ = 1, θ = 0, Right sector.
func IdentityPolar[F Scalar]() Polar[F] {
	return Polar[F]{Rho: 1}
}

// Cis returns exp(h·θ) = cosh θ + h·sinh θ, the perplex number of modulus
// one with argument θ in the Right sector.
func Cis[F Scalar](theta F) Perplex[F] {
	return Perplex[F]{
		T: cosh(theta),
		X: sinh(theta),
	}
}

// Arg returns the hyperbolic argument of z: the hyperbolic angle between
// the positive time axis and the ray through z, measured within z's
// sector. It is atanh(x/t) for |t| > |x| and atanh(t/x) for |x| > |t|.
// The diagonal t = x maps to +∞ and the diagonal t = −x to −∞. By
// convention the argument of zero is 0.
func (z Perplex[F]) Arg() F {
	if z.IsZero() {
		return 0
	}
	tAbs, xAbs := abs(z.T), abs(z.X)
	switch {
	case tAbs == xAbs:
		if z.T == z.X {
			return inf[F](1)
		}
		return inf[F](-1)
	case tAbs > xAbs:
		return atanh(z.X / z.T)
	default:
		return atanh(z.T / z.X)
	}
}

// Polar returns the hyperbolic polar form of z. Zero maps to
// (ρ=0, θ=0, Right) by convention; all other light-like values map to the
// Diagonal sector with θ = ±∞ and their time component in Diag.
func (z Perplex[F]) Polar() Polar[F] {
	if z.IsZero() {
		return Polar[F]{}
	}
	p := Polar[F]{
		Rho:    z.Modulus(),
		Theta:  z.Arg(),
		Sector: z.Sector(),
	}
	if p.Sector == Diagonal {
		p.Diag = z.T
	}
	return p
}

// Perplex converts the polar form back to a perplex number, applying the
// sector-specific inverse of the polar transform. For every z,
// z.Polar().Perplex() reproduces z, and for ρ > 0, finite θ and an open
// sector s, the round trip through Perplex and back to Polar is the
// identity on (ρ, θ, s).
func (p Polar[F]) Perplex() Perplex[F] {
	switch p.Sector {
	case Right:
		return New(p.Rho*cosh(p.Theta), p.Rho*sinh(p.Theta))
	case Up:
		return New(p.Rho*sinh(p.Theta), p.Rho*cosh(p.Theta))
	case Left:
		return New(-p.Rho*cosh(p.Theta), -p.Rho*sinh(p.Theta))
	case Down:
		return New(-p.Rho*sinh(p.Theta), -p.Rho*cosh(p.Theta))
	default:
		if p.Theta > 0 {
			// diagonal t = x
			return New(p.Diag, p.Diag)
		}
		// diagonal t = -x
		return New(p.Diag, -p.Diag)
	}
}

// PowU raises the polar form to the power n. For the open sectors this is
// the hyperbolic de Moivre law ρⁿ·(cosh nθ + h·sinh nθ), with the sector
// collapsing to Right for even n since both −1 and h square to 1. On the
// diagonals (t ± t·h)ⁿ = 2ⁿ⁻¹·tⁿ·(1 ± h), so only Diag changes.
//
// The result agrees with [Perplex.PowU] on the direct representation
// within floating tolerance.
func (p Polar[F]) PowU(n uint) Polar[F] {
	switch n {
	case 0:
		return IdentityPolar[F]()
	case 1:
		return p
	}
	if p.Sector == Diagonal {
		p.Diag = p.Diag * powInt(p.Diag+p.Diag, int(n)-1)
		return p
	}
	if n%2 == 0 {
		p.Sector = Right
	}
	p.Rho = powInt(p.Rho, int(n))
	p.Theta = F(n) * p.Theta
	return p
}
