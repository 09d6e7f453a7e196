package division

import "sort"

// ParetoFilter returns the Pareto-optimal outcomes ordered by decreasing
// A-gain. Outcomes are sorted by (A, B) descending; the first survives, and
// each later one survives only if its B-gain exceeds every B-gain kept so
// far. The input is not modified.
func ParetoFilter(outcomes []Outcome) []Outcome {
	if len(outcomes) == 0 {
		return []Outcome{}
	}

	sorted := make([]Outcome, len(outcomes))
	copy(sorted, outcomes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].A != sorted[j].A {
			return sorted[i].A > sorted[j].A
		}
		return sorted[i].B > sorted[j].B
	})

	return sweepFrontier(sorted, func(o Outcome) float64 { return o.B })
}

// sweepFrontier keeps the first item of a slice sorted by decreasing A and
// then each item whose B beats every B kept so far.
func sweepFrontier[T any](sorted []T, b func(T) float64) []T {
	if len(sorted) == 0 {
		return []T{}
	}
	frontier := []T{sorted[0]}
	maxB := b(sorted[0])
	for _, o := range sorted[1:] {
		if ob := b(o); ob > maxB {
			frontier = append(frontier, o)
			maxB = ob
		}
	}
	return frontier
}
