package division

import (
	"fmt"
	"strings"
)

// EfficiencyCheck selects how IsEfficient searches for dominating points.
type EfficiencyCheck int

const (
	// EfficiencyExact tests every vertex and every segment of each shifted
	// boundary.
	EfficiencyExact EfficiencyCheck = iota
	// EfficiencyVertices tests shifted boundary vertices only. It can miss a
	// dominating point in the interior of a segment.
	EfficiencyVertices
)

func (c EfficiencyCheck) String() string {
	switch c {
	case EfficiencyExact:
		return "exact"
	case EfficiencyVertices:
		return "vertices"
	}
	return fmt.Sprintf("EfficiencyCheck(%d)", int(c))
}

// ParseEfficiencyCheck parses "exact" or "vertices".
func ParseEfficiencyCheck(s string) (EfficiencyCheck, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return EfficiencyExact, nil
	case "vertices", "vertex":
		return EfficiencyVertices, nil
	}
	return 0, fmt.Errorf("unknown efficiency check %q (want exact or vertices)", s)
}

// IsEfficient reports whether no point of the attainable region beats g by
// more than DominanceTolerance on both gains.
func IsEfficient(g Gains, r Polygon, sp []Outcome, check EfficiencyCheck) bool {
	for _, o := range sp {
		shifted := r.Shift(o.A, o.B)
		for _, pt := range shifted {
			if dominates(pt, g) {
				return false
			}
		}
		if check == EfficiencyVertices {
			continue
		}
		for s := 0; s+1 < len(shifted); s++ {
			if segmentDominates(shifted[s], shifted[s+1], g) {
				return false
			}
		}
	}
	return true
}

func dominates(pt Point, g Gains) bool {
	return pt.A > g.A+DominanceTolerance && pt.B > g.B+DominanceTolerance
}

// segmentDominates relies on the boundary invariant: A increases and B does
// not along the segment, so among the points with A above g.A the highest B
// sits at the left end of that range.
func segmentDominates(p1, p2 Point, g Gains) bool {
	x := g.A + DominanceTolerance
	if p2.A <= x {
		return false
	}
	if p1.A > x {
		return dominates(p1, g)
	}
	t := (x - p1.A) / (p2.A - p1.A)
	y := p1.B + t*(p2.B-p1.B)
	return y > g.B+DominanceTolerance
}

// Classify returns every division concept g satisfies on region.
func Classify(g Gains, region *Region, total float64, check EfficiencyCheck) Class {
	c := evaluate(g, total)
	if region != nil && IsEfficient(g, region.Boundary, region.Frontier, check) {
		c |= ClassEfficient
	}
	return c
}
