package grid

// Span is one dimension's closed interval [Min, Max].
// A valid span has Min strictly below Max.
type Span struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (s Span) Width() float64 { return s.Max - s.Min }

// Contains reports whether x lies in [Min, Max], inclusive at both ends.
func (s Span) Contains(x float64) bool { return x >= s.Min && x <= s.Max }

// Domain is an ordered sequence of per-dimension spans. It doubles as the
// representation of a resolved hyperrectangle (see Hyperrect.Resolve), since
// both are axis-aligned boxes. Domains are value objects: once handed to a
// generator call they are read, never mutated.
type Domain []Span

// Hyperrect describes a hyperrectangle of interest inside a surrounding
// Domain by its center and either a uniform Ratio of the domain width
// (Widths == nil) or explicit per-dimension side lengths (Widths != nil,
// Ratio ignored). Resolve turns it into a concrete Domain.
type Hyperrect struct {
	// Center is the hyperrectangle's center, one coordinate per dimension.
	Center []float64

	// Ratio scales every dimension's domain width uniformly; must lie in
	// (0, 1]. Used only when Widths is nil.
	Ratio float64

	// Widths gives explicit side lengths per dimension and overrides Ratio.
	Widths []float64
}

// Order fixes how a multi-dimensional grid is flattened into a linear index.
// It is an explicit contract, not a convention: points, histogram bins, and
// volume vectors are parallel only when produced under the same Order.
type Order int

const (
	// RowMajor flattens with the last dimension varying fastest. This is
	// numpy's meshgrid(..., indexing="ij") followed by ravel, and the
	// default throughout the module.
	RowMajor Order = iota

	// ColMajor flattens with the first dimension varying fastest.
	ColMajor
)

// String returns the order's name for diagnostics.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(unknown)"
	}
}

// valid reports whether o is a defined Order value.
func (o Order) valid() bool { return o == RowMajor || o == ColMajor }
