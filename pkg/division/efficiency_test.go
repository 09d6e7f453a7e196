package division

import (
	"math/rand"
	"testing"
)

func TestIsEfficient_SegmentInteriorDominates(t *testing.T) {
	p := Problem{DivisibleA: []float64{100}, DivisibleB: []float64{100}, Total: 100}
	region := mustRegion(t, p)
	g := Gains{A: 40, B: 40}

	if IsEfficient(g, region.Boundary, region.Frontier, EfficiencyExact) {
		t.Error("exact check: (40, 40) is dominated by (50, 50) on the segment")
	}
	if !IsEfficient(g, region.Boundary, region.Frontier, EfficiencyVertices) {
		t.Error("vertex check: no vertex dominates (40, 40)")
	}
	if _, ok := bruteForceDominator(p, g, 20, DominanceTolerance); !ok {
		t.Error("brute force should find a dominating allocation")
	}
}

func TestIsEfficient_FrontierPoints(t *testing.T) {
	p := Problem{
		DivisibleA:   []float64{30},
		DivisibleB:   []float64{10},
		IndivisibleA: []float64{25, 15, 20, 10},
		IndivisibleB: []float64{10, 20, 35, 25},
		Total:        100,
	}
	region := mustRegion(t, p)

	tests := []struct {
		name string
		g    Gains
		want bool
	}{
		{"equitable crossing", Gains{62.5, 62.5}, true},
		{"shifted vertex", Gains{70, 60}, true},
		{"interior", Gains{50, 50}, false},
		{"dominated by a hair", Gains{62.5 - 1e-3, 62.5 - 1e-3}, false},
		{"within dominance tolerance", Gains{62.5 - 1e-7, 62.5 - 1e-7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEfficient(tt.g, region.Boundary, region.Frontier, EfficiencyExact); got != tt.want {
				t.Errorf("IsEfficient(%+v) = %v, want %v", tt.g, got, tt.want)
			}
		})
	}
}

func TestIsEfficient_BruteForceOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for iter := 0; iter < 60; iter++ {
		p := randomProblem(rng, 1+rng.Intn(2), rng.Intn(3))
		region := mustRegion(t, p)

		// A random allocation is usually dominated.
		shares := make([]float64, p.L())
		for i := range shares {
			shares[i] = rng.Float64()
		}
		assignment := make([]int, p.M())
		for i := range assignment {
			assignment[i] = rng.Intn(2)
		}
		g := p.Gains(shares, assignment)
		if dom, ok := bruteForceDominator(p, g, 20, DominanceTolerance); ok {
			if IsEfficient(g, region.Boundary, region.Frontier, EfficiencyExact) {
				t.Errorf("iter %d: %+v reported efficient but %+v dominates it", iter, g, dom)
			}
		}

		// Every solution reported efficient must survive the oracle.
		rep, err := SolveAll(p)
		if err != nil {
			t.Fatalf("iter %d: SolveAll() error = %v", iter, err)
		}
		for _, sol := range []*Solution{rep.Efficient, rep.Proportional, rep.Equitable, rep.Fair} {
			if sol == nil || !sol.Class.Has(ClassEfficient) {
				continue
			}
			if dom, ok := bruteForceDominator(p, sol.Gains, 20, DominanceTolerance); ok {
				t.Errorf("iter %d: %s solution %+v is dominated by %+v", iter, sol.Kind, sol.Gains, dom)
			}
		}
	}
}

func TestSegmentDominates(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		g      Gains
		want   bool
	}{
		{"interior beats", Point{0, 10}, Point{10, 0}, Gains{4, 4}, true},
		{"segment left of point", Point{0, 10}, Point{3, 8}, Gains{4, 4}, false},
		{"segment below point", Point{5, 3}, Point{10, 0}, Gains{4, 4}, false},
		{"left vertex beats", Point{5, 6}, Point{10, 0}, Gains{4, 4}, true},
		{"touches only", Point{0, 10}, Point{10, 0}, Gains{5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentDominates(tt.p1, tt.p2, tt.g); got != tt.want {
				t.Errorf("segmentDominates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseEfficiencyCheck(t *testing.T) {
	tests := []struct {
		in      string
		want    EfficiencyCheck
		wantErr bool
	}{
		{"exact", EfficiencyExact, false},
		{"", EfficiencyExact, false},
		{"Vertices", EfficiencyVertices, false},
		{"segments", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseEfficiencyCheck(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEfficiencyCheck(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEfficiencyCheck(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
