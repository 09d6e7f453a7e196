package division

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Point is a pair of gains, A's first.
type Point struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Polygon is an ordered chain of boundary vertices.
type Polygon []Point

// BuildBoundary returns the upper-right boundary of the divisible-item
// region together with the permutation used to build it.
//
// Items are ordered by decreasing a/b ratio (a zero B-valuation counts as
// +Inf), ties broken by decreasing A-valuation. The chain starts at
// (0, ΣB), where B holds everything, and moves one whole item to A per
// vertex until it reaches (ΣA, 0). With no divisible items the boundary is
// the single point (0, 0).
func BuildBoundary(ad, bd []float64) (Polygon, []int) {
	l := len(ad)
	if l == 0 {
		return Polygon{{}}, []int{}
	}

	ratio := func(i int) float64 {
		if bd[i] < Epsilon {
			return math.Inf(1)
		}
		return ad[i] / bd[i]
	}
	perm := make([]int, l)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool {
		i, j := perm[x], perm[y]
		ri, rj := ratio(i), ratio(j)
		if ri != rj {
			return ri > rj
		}
		return ad[i] > ad[j]
	})

	poly := make(Polygon, 0, l+1)
	x, y := 0.0, floats.Sum(bd)
	poly = append(poly, Point{A: x, B: y})
	for _, i := range perm {
		x += ad[i]
		y -= bd[i]
		poly = append(poly, Point{A: x, B: y})
	}
	// B holds nothing at the last vertex; drop accumulated rounding.
	poly[l].B = 0
	return poly, perm
}

// Validate reports ErrDegenerateBoundary when the A-coordinate fails to
// strictly increase or the B-coordinate increases between two vertices.
func (p Polygon) Validate() error {
	for i := 1; i < len(p); i++ {
		prev, cur := p[i-1], p[i]
		if cur.A-prev.A <= Epsilon {
			return fmt.Errorf("%w: vertex %d (%.6g, %.6g) does not move right of (%.6g, %.6g)",
				ErrDegenerateBoundary, i, cur.A, cur.B, prev.A, prev.B)
		}
		if cur.B-prev.B > Epsilon {
			return fmt.Errorf("%w: vertex %d (%.6g, %.6g) rises above (%.6g, %.6g)",
				ErrDegenerateBoundary, i, cur.A, cur.B, prev.A, prev.B)
		}
	}
	return nil
}

// CheckMonotonic reports whether p is a valid boundary chain.
func CheckMonotonic(p Polygon) bool {
	return p.Validate() == nil
}

// Shift translates every vertex by (dx, dy).
func (p Polygon) Shift(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{A: pt.A + dx, B: pt.B + dy}
	}
	return out
}
