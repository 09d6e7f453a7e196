package division

// FindProportional returns the first division giving both participants at
// least H/2.
//
// Frontier outcomes are visited in order. For each, the shifted boundary's
// vertices are tested first, then every segment that crosses the vertical
// line x = H/2 at a height of at least H/2. The first hit wins, so the
// result is deterministic but not necessarily the best proportional
// division.
func FindProportional(p Problem, r Polygon, perm []int, sp []Outcome) (*Solution, bool) {
	threshold := p.Threshold()
	for fi, o := range sp {
		shifted := r.Shift(o.A, o.B)
		for v, pt := range shifted {
			if pt.A >= threshold-Epsilon && pt.B >= threshold-Epsilon {
				sol := vertexSolution(p, perm, fi, o, v, pt)
				sol.Kind = KindProportional
				sol.Class = evaluate(sol.Gains, p.Total)
				return sol, true
			}
		}
		for s := 0; s+1 < len(shifted); s++ {
			y, ok := verticalCrossing(shifted[s], shifted[s+1], threshold)
			if !ok || y < threshold-Epsilon {
				continue
			}
			sol := segmentSolution(p, perm, fi, o, s, shifted[s], Point{A: threshold, B: y})
			sol.Kind = KindProportional
			sol.Class = evaluate(sol.Gains, p.Total)
			return sol, true
		}
	}
	return nil, false
}

// verticalCrossing returns the height at which segment p1-p2 meets the line
// A = x.
func verticalCrossing(p1, p2 Point, x float64) (float64, bool) {
	lo, hi := min(p1.A, p2.A), max(p1.A, p2.A)
	if x < lo-Epsilon || x > hi+Epsilon {
		return 0, false
	}
	dx := p2.A - p1.A
	if dx > -Epsilon && dx < Epsilon {
		return max(p1.B, p2.B), true
	}
	t := (x - p1.A) / dx
	return p1.B + t*(p2.B-p1.B), true
}
