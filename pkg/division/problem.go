// Package division computes fair divisions of mixed divisible and
// indivisible goods between two participants with additive valuations.
//
// The attainable region is the union, over every Pareto-optimal assignment
// of the indivisible items, of the divisible-item boundary shifted by that
// assignment's gains. Proportional and equitable divisions are located on
// that region geometrically; each carries at most one split divisible item.
package division

// Problem is a two-participant division instance. Participant A's
// valuations of the divisible and indivisible items sum to Total, and so do
// participant B's.
type Problem struct {
	DivisibleA   []float64
	DivisibleB   []float64
	IndivisibleA []float64
	IndivisibleB []float64
	Total        float64
}

// L returns the number of divisible items.
func (p Problem) L() int { return len(p.DivisibleA) }

// M returns the number of indivisible items.
func (p Problem) M() int { return len(p.IndivisibleA) }

// Threshold is the proportional share H/2.
func (p Problem) Threshold() float64 { return p.Total / 2 }

// Validate checks the problem with counts taken from participant A's
// vectors.
func (p Problem) Validate() error {
	return Validate(p.L(), p.M(), p.DivisibleA, p.DivisibleB, p.IndivisibleA, p.IndivisibleB, p.Total)
}

// Gains evaluates an allocation. shares[i] is the fraction of divisible
// item i given to A and assignment[j] is 1 when indivisible item j goes to
// A. Missing entries count as allocated to B.
func (p Problem) Gains(shares []float64, assignment []int) Gains {
	var g Gains
	for i := range p.DivisibleA {
		x := 0.0
		if i < len(shares) {
			x = shares[i]
		}
		g.A += p.DivisibleA[i] * x
		g.B += p.DivisibleB[i] * (1 - x)
	}
	for j := range p.IndivisibleA {
		if j < len(assignment) && assignment[j] == 1 {
			g.A += p.IndivisibleA[j]
		} else {
			g.B += p.IndivisibleB[j]
		}
	}
	return g
}
