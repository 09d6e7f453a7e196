package division

// Numeric tolerances. Each comparison category uses exactly one of these.
const (
	// SumTolerance bounds the difference between a participant's valuation
	// sum and the total value H.
	SumTolerance = 0.01

	// Epsilon is used for strict geometric comparisons: boundary
	// monotonicity, threshold tests and segment parameter ranges.
	Epsilon = 1e-9

	// EquityTolerance is the largest |gainA - gainB| accepted as equal at a
	// boundary vertex.
	EquityTolerance = 1e-2

	// DominanceTolerance is the margin by which a point must beat another on
	// both gains before it is said to dominate it.
	DominanceTolerance = 1e-6
)

const (
	// DefaultTotal is the conventional total value H each participant
	// distributes over the items.
	DefaultTotal = 100.0

	// MaxIndivisibleItems caps the 2^M assignment enumeration.
	MaxIndivisibleItems = 20
)
