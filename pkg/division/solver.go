package division

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Options configures a Solver.
type Options struct {
	// MaxIndivisibleItems caps the 2^M enumeration. Zero means
	// the package default.
	MaxIndivisibleItems int
	// Efficiency selects the dominance test.
	Efficiency EfficiencyCheck
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		MaxIndivisibleItems: MaxIndivisibleItems,
		Efficiency:          EfficiencyExact,
	}
}

// Solver runs the full pipeline. It holds no per-problem state and is safe
// for concurrent use.
type Solver struct {
	opts Options
}

// NewSolver creates a solver with opts.
func NewSolver(opts Options) *Solver {
	if opts.MaxIndivisibleItems <= 0 {
		opts.MaxIndivisibleItems = MaxIndivisibleItems
	}
	return &Solver{opts: opts}
}

// Options returns the solver's effective options.
func (s *Solver) Options() Options { return s.opts }

// Region is the attainable region of a problem: the divisible boundary, the
// item order that built it, and the Pareto frontier of indivisible
// outcomes. Enumerated is the number of assignments considered.
type Region struct {
	Boundary    Polygon   `json:"boundary"`
	Permutation []int     `json:"permutation"`
	Frontier    []Outcome `json:"frontier"`
	Enumerated  int       `json:"enumerated"`
}

// BuildRegion validates p and constructs its attainable region.
func (s *Solver) BuildRegion(p Problem) (*Region, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	boundary, perm := BuildBoundary(p.DivisibleA, p.DivisibleB)
	if err := boundary.Validate(); err != nil {
		return nil, err
	}

	frontier, enumerated, err := paretoFrontier(p.IndivisibleA, p.IndivisibleB, s.opts.MaxIndivisibleItems)
	if err != nil {
		return nil, err
	}

	klog.V(4).InfoS("Built attainable region",
		"divisible", p.L(),
		"indivisible", p.M(),
		"enumerated", enumerated,
		"frontier", len(frontier))

	return &Region{
		Boundary:    boundary,
		Permutation: perm,
		Frontier:    frontier,
		Enumerated:  enumerated,
	}, nil
}

// Statement1 classifies a report into the sets E(S), P(S), Q(S), F(S).
type Statement1 struct {
	Sets      []string `json:"sets"`
	BelongsTo Kind     `json:"belongsTo"`
	Summary   string   `json:"summary"`
}

// Report holds every division found for a problem.
type Report struct {
	Region
	Total float64 `json:"total"`

	Efficient    *Solution `json:"efficient,omitempty"`
	Proportional *Solution `json:"proportional,omitempty"`
	Equitable    *Solution `json:"equitable,omitempty"`
	Fair         *Solution `json:"fair,omitempty"`

	Statement1 Statement1 `json:"statement1"`
}

func (r *Report) HasEfficient() bool    { return r.Efficient != nil }
func (r *Report) HasProportional() bool { return r.Proportional != nil }
func (r *Report) HasEquitable() bool    { return r.Equitable != nil }
func (r *Report) HasFair() bool         { return r.Fair != nil }

// Solution returns the division reported for k, or nil.
func (r *Report) Solution(k Kind) *Solution {
	switch k {
	case KindEfficient:
		return r.Efficient
	case KindProportional:
		return r.Proportional
	case KindEquitable:
		return r.Equitable
	case KindFair:
		return r.Fair
	}
	return nil
}

// Best returns the highest priority division found, or nil.
func (r *Report) Best() *Solution {
	return r.Solution(r.Statement1.BelongsTo)
}

func (r *Report) classify() {
	st := Statement1{Sets: []string{}, BelongsTo: KindNone}
	for _, k := range []Kind{KindEfficient, KindProportional, KindEquitable, KindFair} {
		if r.Solution(k) != nil {
			st.Sets = append(st.Sets, k.Set())
		}
	}
	for _, k := range []Kind{KindFair, KindEquitable, KindProportional, KindEfficient} {
		if r.Solution(k) != nil {
			st.BelongsTo = k
			break
		}
	}
	if st.BelongsTo == KindNone {
		st.Summary = fmt.Sprintf("%s - No Solution", KindNone.Set())
	} else {
		st.Summary = fmt.Sprintf("%s - %s Division", st.BelongsTo.Set(), st.BelongsTo)
	}
	r.Statement1 = st
}

// Solve runs validation, region construction and the solvers in order:
// equitable first (stopping when it is also proportional and efficient),
// then proportional if none was recorded, then the maximum-sum efficient
// fallback.
func (s *Solver) Solve(p Problem) (*Report, error) {
	region, err := s.BuildRegion(p)
	if err != nil {
		return nil, err
	}
	rep := &Report{Region: *region, Total: p.Total}

	if eq, ok := FindEquitable(p, region.Boundary, region.Permutation, region.Frontier); ok {
		eq.Class = Classify(eq.Gains, region, p.Total, s.opts.Efficiency)
		rep.Equitable = eq
		if eq.Class.Has(ClassProportional) {
			rep.Proportional = eq.as(KindProportional)
		}
		if eq.Class.Has(ClassEfficient) {
			rep.Efficient = eq.as(KindEfficient)
		}
		if eq.Class.Has(ClassFair) {
			rep.Fair = eq.as(KindFair)
			rep.classify()
			klog.V(3).InfoS("Fair division found", "gainA", eq.Gains.A, "gainB", eq.Gains.B)
			return rep, nil
		}
	}

	if rep.Proportional == nil {
		if pr, ok := FindProportional(p, region.Boundary, region.Permutation, region.Frontier); ok {
			pr.Class = Classify(pr.Gains, region, p.Total, s.opts.Efficiency)
			rep.Proportional = pr
			if rep.Efficient == nil && pr.Class.Has(ClassEfficient) {
				rep.Efficient = pr.as(KindEfficient)
			}
		}
	}

	if rep.Efficient == nil {
		rep.Efficient = maxSumSolution(p, region)
	}

	rep.classify()
	klog.V(3).InfoS("Division solved", "belongsTo", rep.Statement1.BelongsTo.String(), "sets", rep.Statement1.Sets)
	return rep, nil
}

// maxSumSolution takes the frontier outcome with the largest total and
// gives each divisible item to whoever values it more, A on ties. The
// result maximizes A + B over the whole region and is therefore efficient.
func maxSumSolution(p Problem, region *Region) *Solution {
	if len(region.Frontier) == 0 {
		return nil
	}
	fi := 0
	for i, o := range region.Frontier {
		if o.A+o.B > region.Frontier[fi].A+region.Frontier[fi].B {
			fi = i
		}
	}
	o := region.Frontier[fi]

	shares := make([]float64, p.L())
	for i := range shares {
		if p.DivisibleA[i] >= p.DivisibleB[i] {
			shares[i] = 1
		}
	}
	alloc := Allocation{Shares: shares, Assignment: copyAssignment(o.Assignment)}
	g := p.Gains(alloc.Shares, alloc.Assignment)
	return &Solution{
		Kind:       KindEfficient,
		Class:      evaluate(g, p.Total) | ClassEfficient,
		Allocation: alloc,
		Gains:      g,
		Witness: Witness{
			Method:        MethodHeuristic,
			FrontierIndex: fi,
			FrontierPoint: o.Point(),
			VertexIndex:   -1,
			SegmentIndex:  -1,
			SplitItem:     -1,
		},
	}
}

// SolveAll solves p with the default options.
func SolveAll(p Problem) (*Report, error) {
	return NewSolver(DefaultOptions()).Solve(p)
}
