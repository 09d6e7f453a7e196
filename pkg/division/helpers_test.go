package division

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const testTol = 1e-6

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// randomValuations returns n positive values summing to total.
func randomValuations(rng *rand.Rand, n int, total float64) []float64 {
	w := make([]float64, n)
	if n == 0 {
		return w
	}
	for i := range w {
		w[i] = 0.05 + rng.Float64()
	}
	floats.Scale(total/floats.Sum(w), w)
	return w
}

// randomProblem splits each participant's total over l divisible and m
// indivisible items. An empty problem gets one divisible item.
func randomProblem(rng *rand.Rand, l, m int) Problem {
	if l+m == 0 {
		l = 1
	}
	a := randomValuations(rng, l+m, DefaultTotal)
	b := randomValuations(rng, l+m, DefaultTotal)
	return Problem{
		DivisibleA:   a[:l],
		DivisibleB:   b[:l],
		IndivisibleA: a[l:],
		IndivisibleB: b[l:],
		Total:        DefaultTotal,
	}
}

// bruteForceDominator searches a grid of divisible shares combined with
// every indivisible assignment for a point beating g by more than margin on
// both gains.
func bruteForceDominator(p Problem, g Gains, steps int, margin float64) (Gains, bool) {
	outcomes, err := EnumerateAssignments(p.IndivisibleA, p.IndivisibleB)
	if err != nil {
		return Gains{}, false
	}
	shares := make([]float64, p.L())
	var walk func(i int) (Gains, bool)
	walk = func(i int) (Gains, bool) {
		if i == len(shares) {
			for _, o := range outcomes {
				cand := p.Gains(shares, o.Assignment)
				if cand.A > g.A+margin && cand.B > g.B+margin {
					return cand, true
				}
			}
			return Gains{}, false
		}
		for s := 0; s <= steps; s++ {
			shares[i] = float64(s) / float64(steps)
			if cand, ok := walk(i + 1); ok {
				return cand, true
			}
		}
		return Gains{}, false
	}
	return walk(0)
}
