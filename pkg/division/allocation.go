package division

import "math"

// boundaryShares gives A the items at permutation positions below k and a
// fraction alpha of the item at position k.
func boundaryShares(l int, perm []int, k int, alpha float64) []float64 {
	shares := make([]float64, l)
	for pos, item := range perm {
		switch {
		case pos < k:
			shares[item] = 1
		case pos == k:
			shares[item] = alpha
		}
	}
	return shares
}

func copyAssignment(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)
	return out
}

// vertexSolution builds the allocation for vertex v of the boundary shifted
// by frontier outcome sp.
func vertexSolution(p Problem, perm []int, fi int, sp Outcome, v int, at Point) *Solution {
	alloc := Allocation{
		Shares:     boundaryShares(p.L(), perm, v, 0),
		Assignment: copyAssignment(sp.Assignment),
	}
	return &Solution{
		Allocation: alloc,
		Gains:      p.Gains(alloc.Shares, alloc.Assignment),
		Witness: Witness{
			Method:        MethodVertex,
			FrontierIndex: fi,
			FrontierPoint: sp.Point(),
			VertexIndex:   v,
			SegmentIndex:  -1,
			SplitItem:     -1,
			Intersection:  &at,
		},
	}
}

// segmentSolution builds the allocation for point at on segment s, which
// starts at start, of the boundary shifted by frontier outcome sp. The item
// at permutation position s is split.
func segmentSolution(p Problem, perm []int, fi int, sp Outcome, s int, start, at Point) *Solution {
	item := perm[s]
	alpha := 0.0
	if a := p.DivisibleA[item]; a > Epsilon {
		alpha = (at.A - start.A) / a
	}
	alpha = math.Max(0, math.Min(1, alpha))

	alloc := Allocation{
		Shares:     boundaryShares(p.L(), perm, s, alpha),
		Assignment: copyAssignment(sp.Assignment),
	}
	return &Solution{
		Allocation: alloc,
		Gains:      p.Gains(alloc.Shares, alloc.Assignment),
		Witness: Witness{
			Method:        MethodSegment,
			FrontierIndex: fi,
			FrontierPoint: sp.Point(),
			VertexIndex:   -1,
			SegmentIndex:  s,
			SplitItem:     item,
			SplitFraction: alpha,
			Intersection:  &at,
		},
	}
}

// evaluate returns the proportional and equitable memberships of g.
// Efficiency depends on the attainable region and is added by Classify.
func evaluate(g Gains, total float64) Class {
	var c Class
	threshold := total / 2
	if g.A >= threshold-Epsilon && g.B >= threshold-Epsilon {
		c |= ClassProportional
	}
	if math.Abs(g.A-g.B) < EquityTolerance {
		c |= ClassEquitable
	}
	return c
}
