package perplex

// Sector identifies the region of the hyperbolic plane a perplex number
// lies in. The two diagonals t = x and t = −x divide the plane into four
// open sectors; values on the diagonals themselves are light-like and
// belong to no sector.
type Sector int

const (
	// The sector where t > |x|.
	Right Sector = iota
	// The sector where x > |t|.
	Up
	// The sector where −t > |x|.
	Left
	// The sector where −x > |t|.
	Down
	// A light-like value on one of the diagonals |t| = |x|, including
	// zero. Not a sector proper; such values have no Klein element.
	Diagonal
)

func (s Sector) String() string {
	switch s {
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Diagonal:
		return "Diagonal"
	default:
		return "InvalidSector"
	}
}

// Sector classifies z by strict inequalities on its components. Equality
// |t| = |x| always classifies as [Diagonal], regardless of the signs of t
// and x.
func (z Perplex[F]) Sector() Sector {
	tAbs, xAbs := abs(z.T), abs(z.X)
	switch {
	case tAbs == xAbs:
		return Diagonal
	case tAbs > xAbs:
		if z.T > 0 {
			return Right
		}
		return Left
	case z.X > 0:
		return Up
	default:
		return Down
	}
}

// Klein returns the Klein group element {1, h, −1, −h} that maps the given
// sector to [Right], and false for [Diagonal]. The Klein group elements
// are perplex numbers themselves, so applying one is ordinary
// multiplication, and each is its own inverse: applying the same element
// twice is the identity.
func Klein[F Scalar](s Sector) (Perplex[F], bool) {
	switch s {
	case Right:
		return Identity[F](), true
	case Up:
		return H[F](), true
	case Left:
		return Identity[F]().Neg(), true
	case Down:
		return H[F]().Neg(), true
	default:
		return Perplex[F]{}, false
	}
}

// Klein returns the Klein group element for z's sector, i.e. the element k
// with k·z in the Right sector. It returns false when z is light-like.
func (z Perplex[F]) Klein() (Perplex[F], bool) {
	return Klein[F](z.Sector())
}
