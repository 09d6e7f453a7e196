package division

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Validate checks counts, vector lengths, valuation domains and sums.
// It returns a *ValidationError wrapping ErrStructural or ErrDomain for the
// first problem found, checking structure before values.
func Validate(l, m int, ad, bd, aw, bw []float64, total float64) error {
	if l < 0 {
		return &ValidationError{Kind: ErrStructural, Field: "divisible count", Index: -1, Value: float64(l), msg: "must not be negative"}
	}
	if m < 0 {
		return &ValidationError{Kind: ErrStructural, Field: "indivisible count", Index: -1, Value: float64(m), msg: "must not be negative"}
	}

	lengths := []struct {
		field, participant string
		values             []float64
		want               int
	}{
		{"divisible", "A", ad, l},
		{"divisible", "B", bd, l},
		{"indivisible", "A", aw, m},
		{"indivisible", "B", bw, m},
	}
	for _, v := range lengths {
		if len(v.values) != v.want {
			return structuralError(v.field, v.participant, len(v.values), v.want)
		}
	}

	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return domainError("total", "", -1, total, 0, "must be a positive finite number")
	}

	for _, v := range lengths {
		for i, x := range v.values {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return domainError(v.field, v.participant, i, x, 0, "must be finite")
			}
			if x < 0 {
				return domainError(v.field, v.participant, i, x, 0, "must not be negative")
			}
		}
	}

	sums := []struct {
		participant string
		sum         float64
	}{
		{"A", floats.Sum(ad) + floats.Sum(aw)},
		{"B", floats.Sum(bd) + floats.Sum(bw)},
	}
	for _, s := range sums {
		if !scalar.EqualWithinAbs(s.sum, total, SumTolerance) {
			return domainError("valuations", s.participant, -1, s.sum, total,
				fmt.Sprintf("sum %.4f does not match total %.4f", s.sum, total))
		}
	}
	return nil
}
