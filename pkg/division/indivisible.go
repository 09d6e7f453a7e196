package division

import (
	"fmt"
	"sort"
)

// Outcome is the gain pair produced by one assignment of the indivisible
// items. Assignment[i] is 1 when item i goes to A, 0 when it goes to B.
type Outcome struct {
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	Assignment []int   `json:"assignment"`
}

// Point returns the outcome's gains.
func (o Outcome) Point() Point {
	return Point{A: o.A, B: o.B}
}

// packedOutcome keeps the assignment as its enumeration mask. Only frontier
// survivors are expanded into an Outcome.
type packedOutcome struct {
	a, b float64
	mask uint32
}

func (o packedOutcome) unpack(m int) Outcome {
	out := Outcome{A: o.a, B: o.b, Assignment: make([]int, m)}
	for i := 0; i < m; i++ {
		if o.mask&(1<<i) != 0 {
			out.Assignment[i] = 1
		}
	}
	return out
}

// EnumerateAssignments lists all 2^M assignments of the indivisible items.
// Bit i of the enumeration index set means item i goes to A, so the first
// outcome gives everything to B. With no items it returns the single
// outcome (0, 0) with an empty assignment.
func EnumerateAssignments(aw, bw []float64) ([]Outcome, error) {
	return enumerateAssignments(aw, bw, MaxIndivisibleItems)
}

func enumerateAssignments(aw, bw []float64, limit int) ([]Outcome, error) {
	packed, err := enumeratePacked(aw, bw, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Outcome, len(packed))
	for i, o := range packed {
		out[i] = o.unpack(len(aw))
	}
	return out, nil
}

func enumeratePacked(aw, bw []float64, limit int) ([]packedOutcome, error) {
	// The mask is 32 bits wide.
	limit = min(limit, 32)
	m := len(aw)
	if len(bw) != m {
		return nil, structuralError("indivisible", "B", len(bw), m)
	}
	if m > limit {
		return nil, fmt.Errorf("%w: %d items exceeds the limit of %d", ErrTooManyItems, m, limit)
	}

	n := 1 << m
	out := make([]packedOutcome, n)
	for mask := 0; mask < n; mask++ {
		o := packedOutcome{mask: uint32(mask)}
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				o.a += aw[i]
			} else {
				o.b += bw[i]
			}
		}
		out[mask] = o
	}
	return out, nil
}

// paretoFrontier enumerates the assignments and returns the Pareto frontier
// in ParetoFilter order, plus the number of assignments enumerated. Memory
// stays at one packed entry per assignment.
func paretoFrontier(aw, bw []float64, limit int) ([]Outcome, int, error) {
	packed, err := enumeratePacked(aw, bw, limit)
	if err != nil {
		return nil, 0, err
	}

	// Ties fall back to the mask, which is the enumeration order.
	sort.Slice(packed, func(i, j int) bool {
		if packed[i].a != packed[j].a {
			return packed[i].a > packed[j].a
		}
		if packed[i].b != packed[j].b {
			return packed[i].b > packed[j].b
		}
		return packed[i].mask < packed[j].mask
	})

	kept := sweepFrontier(packed, func(o packedOutcome) float64 { return o.b })
	frontier := make([]Outcome, len(kept))
	for i, o := range kept {
		frontier[i] = o.unpack(len(aw))
	}
	return frontier, len(packed), nil
}
