// Package perplex implements arithmetic and elementary functions for
// split-complex numbers, also called perplex or hyperbolic numbers: pairs
// t + x·h with a unit h satisfying h² = 1 instead of i² = −1. They play
// the role in two-dimensional space-time geometry that ordinary complex
// numbers play in Euclidean plane geometry.
//
// # Perplex-num
//
// This package is a manual, idiomatic Go port of the [perplex_num] Rust
// crate. Where the crate expresses operations as trait implementations, we
// use plain methods on immutable value types.
//
// # The hyperbolic plane
//
// The quadratic form D(z) = t² − x² replaces the Euclidean norm. Its sign
// divides the plane: D > 0 is time-like, D < 0 space-like, and D = 0
// light-like. The light-like values form the two diagonals t = ±x; the
// nonzero ones are zero divisors and have no multiplicative inverse, which
// is why [Perplex.Inverse], [Perplex.Div], and negative powers can fail.
//
// The diagonals cut the plane into four open sectors, classified by
// [Perplex.Sector] as [Right], [Up], [Left], and [Down]. The Klein group
// {1, h, −1, −h} permutes the sectors by multiplication: each element is
// its own inverse, and [Perplex.Klein] returns the element that carries a
// value into the Right sector. Functions with a natural formula on the
// Right sector only, such as the logarithm, extend to the whole plane by
// conjugating with the Klein element; [Perplex.Exp], [Perplex.Ln], and the
// trigonometric functions are built this way.
//
// Off the diagonals a value factors as k·ρ·(cosh θ + h·sinh θ) with k the
// Klein element, ρ the modulus, and θ the hyperbolic argument. [Polar]
// captures this hyperbolic polar form; the diagonals appear there with
// θ = ±∞. Integer powers are available on the direct representation
// ([Perplex.PowU], [Perplex.PowI]), on the polar form ([Polar.PowU]), and
// through the symmetric 2×2 matrix form ([Perplex.Matrix]), and all three
// agree within floating tolerance.
//
// All types are immutable values; every operation returns a new value, so
// values may be shared freely between goroutines.
//
// # Literature
//
// This package makes use of the following sources:
//   - [The Mathematics of Minkowski Space-Time] by Catoni et al.
//   - [Hyperbolic trigonometry in two-dimensional space-time geometry] by Catoni et al.
//   - [Fundamental Theorems of Algebra for the Perplexes] by Poodiack and LeClair
//   - [New characterizations of the ring of the split-complex numbers and the field C of complex numbers] by Gargoubi and Kossentini
//
// [perplex_num]: https://crates.io/crates/perplex_num
// [The Mathematics of Minkowski Space-Time]: https://doi.org/10.1007/978-3-7643-8614-6
// [Hyperbolic trigonometry in two-dimensional space-time geometry]: https://doi.org/10.1393/ncb/i2003-10012-9
// [Fundamental Theorems of Algebra for the Perplexes]: https://doi.org/10.4169/074683409X475643
// [New characterizations of the ring of the split-complex numbers and the field C of complex numbers]: https://doi.org/10.48550/arXiv.2305.04586
package perplex
