package division

import "math"

// FindEquitable returns the equitable division with the largest total gain.
//
// Every frontier outcome is scanned. A shifted boundary vertex qualifies
// when its gains differ by less than EquityTolerance; a segment qualifies
// where it crosses the diagonal A = B. Candidates are scored by A + B and
// only a strictly larger score replaces the current best, so the first
// candidate found wins ties. The returned Class records whether the
// division is also proportional.
func FindEquitable(p Problem, r Polygon, perm []int, sp []Outcome) (*Solution, bool) {
	var best *Solution
	bestScore := math.Inf(-1)

	for fi, o := range sp {
		shifted := r.Shift(o.A, o.B)
		for v, pt := range shifted {
			if math.Abs(pt.A-pt.B) >= EquityTolerance {
				continue
			}
			if score := pt.A + pt.B; best == nil || score > bestScore {
				best, bestScore = vertexSolution(p, perm, fi, o, v, pt), score
			}
		}
		for s := 0; s+1 < len(shifted); s++ {
			pt, ok := diagonalCrossing(shifted[s], shifted[s+1])
			if !ok {
				continue
			}
			if score := pt.A + pt.B; best == nil || score > bestScore {
				best, bestScore = segmentSolution(p, perm, fi, o, s, shifted[s], pt), score
			}
		}
	}

	if best == nil {
		return nil, false
	}
	best.Kind = KindEquitable
	best.Class = evaluate(best.Gains, p.Total)
	return best, true
}

// diagonalCrossing returns the point where segment p1-p2 meets A = B.
// A segment parallel to the diagonal crosses it only when it lies on it, in
// which case the endpoint with the larger total is returned.
func diagonalCrossing(p1, p2 Point) (Point, bool) {
	den := (p2.A - p1.A) - (p2.B - p1.B)
	if math.Abs(den) < Epsilon {
		if math.Abs(p1.A-p1.B) >= Epsilon {
			return Point{}, false
		}
		if p2.A+p2.B > p1.A+p1.B {
			return p2, true
		}
		return p1, true
	}
	t := (p1.B - p1.A) / den
	if t < -Epsilon || t > 1+Epsilon {
		return Point{}, false
	}
	t = math.Max(0, math.Min(1, t))
	return Point{
		A: p1.A + t*(p2.A-p1.A),
		B: p1.B + t*(p2.B-p1.B),
	}, true
}
