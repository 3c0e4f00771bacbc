package perplex

import "errors"

// Sentinel errors returned by the partial operations. All other operations
// are total and never fail. Match with [errors.Is].
var (
	// ErrNotInvertible is returned by [Perplex.Inverse], [Perplex.Div] and
	// [Perplex.PowI] with a negative exponent when the (divisor) value is
	// light-like: its squared distance is zero, so no multiplicative
	// inverse exists. This covers the zero value as well as the zero
	// divisors x±xh.
	ErrNotInvertible = errors.New("perplex: light-like value has no multiplicative inverse")

	// ErrOutsideDomain is returned when a function is evaluated outside
	// the region of the plane it is defined on: [Perplex.Sqrt] outside the
	// closed Right sector, and [Perplex.Ln] or [Perplex.Log] on a
	// light-like value.
	ErrOutsideDomain = errors.New("perplex: value outside the domain of the function")
)
