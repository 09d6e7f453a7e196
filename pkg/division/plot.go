package division

// PlotData is the geometry needed to draw a division: the divisible
// boundary, the indivisible frontier, the H/2 threshold and optionally the
// chosen solution point.
type PlotData struct {
	Boundary    Polygon `json:"boundary"`
	Permutation []int   `json:"permutation"`
	Frontier    []Point `json:"frontier"`
	Threshold   float64 `json:"threshold"`
	Solution    *Point  `json:"solution,omitempty"`
}

// PlotData exports the report's geometry. point may be nil.
func (r *Report) PlotData(point *Point) PlotData {
	frontier := make([]Point, len(r.Frontier))
	for i, o := range r.Frontier {
		frontier[i] = o.Point()
	}
	pd := PlotData{
		Boundary:    append(Polygon(nil), r.Boundary...),
		Permutation: append([]int(nil), r.Permutation...),
		Frontier:    frontier,
		Threshold:   r.Total / 2,
	}
	if point != nil {
		pt := *point
		pd.Solution = &pt
	}
	return pd
}

// Debug summarizes how the attainable region was built.
type Debug struct {
	Boundary        Polygon `json:"boundary"`
	SortedIndices   []int   `json:"sortedIndices"`
	AssignmentCount int     `json:"assignmentCount"`
	FrontierCount   int     `json:"frontierCount"`
	FrontierPoints  []Point `json:"frontierPoints"`
}

// Debug returns the region summary of the report.
func (r *Report) Debug() Debug {
	pd := r.PlotData(nil)
	return Debug{
		Boundary:        pd.Boundary,
		SortedIndices:   pd.Permutation,
		AssignmentCount: r.Enumerated,
		FrontierCount:   len(r.Frontier),
		FrontierPoints:  pd.Frontier,
	}
}
