package division

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnumerateAssignments_Count(t *testing.T) {
	for m := 0; m <= 6; m++ {
		aw := make([]float64, m)
		bw := make([]float64, m)
		for i := range aw {
			aw[i] = float64(i + 1)
			bw[i] = float64(2 * (i + 1))
		}
		got, err := EnumerateAssignments(aw, bw)
		if err != nil {
			t.Fatalf("m=%d: unexpected error: %v", m, err)
		}
		if len(got) != 1<<m {
			t.Errorf("m=%d: got %d outcomes, want %d", m, len(got), 1<<m)
		}
	}
}

func TestEnumerateAssignments_Empty(t *testing.T) {
	got, err := EnumerateAssignments(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Outcome{{A: 0, B: 0, Assignment: []int{}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateAssignments_BitOrder(t *testing.T) {
	got, err := EnumerateAssignments([]float64{60, 40}, []float64{30, 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Outcome{
		{A: 0, B: 100, Assignment: []int{0, 0}},
		{A: 60, B: 70, Assignment: []int{1, 0}},
		{A: 40, B: 30, Assignment: []int{0, 1}},
		{A: 100, B: 0, Assignment: []int{1, 1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateAssignments_GainsUseOwnValuations(t *testing.T) {
	aw := []float64{25, 15, 20, 10}
	bw := []float64{10, 20, 35, 25}
	got, err := EnumerateAssignments(aw, bw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, o := range got {
		var a, b float64
		for i, s := range o.Assignment {
			if s == 1 {
				a += aw[i]
			} else {
				b += bw[i]
			}
		}
		if o.A != a || o.B != b {
			t.Errorf("outcome %+v: want gains (%v, %v)", o, a, b)
		}
	}
}

func TestEnumerateAssignments_TooMany(t *testing.T) {
	n := MaxIndivisibleItems + 1
	_, err := EnumerateAssignments(make([]float64, n), make([]float64, n))
	if !errors.Is(err, ErrTooManyItems) {
		t.Errorf("error = %v, want ErrTooManyItems", err)
	}
}

func TestEnumerateAssignments_CustomLimit(t *testing.T) {
	_, err := enumerateAssignments(make([]float64, 4), make([]float64, 4), 3)
	if !errors.Is(err, ErrTooManyItems) {
		t.Errorf("error = %v, want ErrTooManyItems", err)
	}
	if _, err := enumerateAssignments(make([]float64, 3), make([]float64, 3), 3); err != nil {
		t.Errorf("unexpected error at the limit: %v", err)
	}
}

func TestEnumerateAssignments_LengthMismatch(t *testing.T) {
	_, err := EnumerateAssignments([]float64{1, 2}, []float64{3})
	if !errors.Is(err, ErrStructural) {
		t.Errorf("error = %v, want ErrStructural", err)
	}
}

func TestParetoFrontier_MatchesFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	cases := []Problem{
		mergersProblem(),
		{IndivisibleA: []float64{50, 50}, IndivisibleB: []float64{50, 50}, Total: 100},
		{IndivisibleA: []float64{25, 25, 25, 25}, IndivisibleB: []float64{10, 40, 10, 40}, Total: 100},
	}
	for i := 0; i < 50; i++ {
		cases = append(cases, randomProblem(rng, 0, rng.Intn(10)))
	}
	for i, p := range cases {
		outcomes, err := EnumerateAssignments(p.IndivisibleA, p.IndivisibleB)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		got, n, err := paretoFrontier(p.IndivisibleA, p.IndivisibleB, MaxIndivisibleItems)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if n != len(outcomes) {
			t.Errorf("case %d: enumerated %d, want %d", i, n, len(outcomes))
		}
		if diff := cmp.Diff(ParetoFilter(outcomes), got); diff != "" {
			t.Errorf("case %d: frontier mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParetoFrontier_Errors(t *testing.T) {
	if _, _, err := paretoFrontier(make([]float64, 4), make([]float64, 4), 3); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("error = %v, want ErrTooManyItems", err)
	}
	if _, _, err := paretoFrontier([]float64{1}, nil, 3); !errors.Is(err, ErrStructural) {
		t.Errorf("error = %v, want ErrStructural", err)
	}
}

func TestEnumeratePacked_SingleAllocation(t *testing.T) {
	const m = 16
	aw := make([]float64, m)
	bw := make([]float64, m)
	for i := range aw {
		aw[i], bw[i] = 1, 1
	}
	allocs := testing.AllocsPerRun(3, func() {
		if _, err := enumeratePacked(aw, bw, m); err != nil {
			t.Fatal(err)
		}
	})
	if allocs > 1 {
		t.Errorf("enumeratePacked made %v allocations for 2^%d assignments, want 1", allocs, m)
	}
}

func TestParetoFrontier_AllocationsTrackFrontier(t *testing.T) {
	const m = 16
	aw := make([]float64, m)
	bw := make([]float64, m)
	for i := range aw {
		aw[i], bw[i] = 1, 1
	}
	frontier, n, err := paretoFrontier(aw, bw, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1<<m || len(frontier) != m+1 {
		t.Fatalf("enumerated %d frontier %d, want %d and %d", n, len(frontier), 1<<m, m+1)
	}
	allocs := testing.AllocsPerRun(3, func() {
		if _, _, err := paretoFrontier(aw, bw, m); err != nil {
			t.Fatal(err)
		}
	})
	// One per frontier assignment plus a handful for the slices and the sort.
	if allocs > 64 {
		t.Errorf("paretoFrontier made %v allocations for 2^%d assignments, want at most 64", allocs, m)
	}
}
