package v1alpha1

import (
	"fairdiv/pkg/division"
)

// Problem converts the spec into a solver problem. A zero Total is replaced
// with defaultTotal.
func (s *FairDivisionSpec) Problem(defaultTotal float64) division.Problem {
	total := s.Total
	if total == 0 {
		total = defaultTotal
	}
	return division.Problem{
		DivisibleA:   append([]float64(nil), s.ParticipantA.Divisible...),
		DivisibleB:   append([]float64(nil), s.ParticipantB.Divisible...),
		IndivisibleA: append([]float64(nil), s.ParticipantA.Indivisible...),
		IndivisibleB: append([]float64(nil), s.ParticipantB.Indivisible...),
		Total:        total,
	}
}

// NewDivisionOutcome converts a solver solution. It returns nil for nil.
func NewDivisionOutcome(sol *division.Solution) *DivisionOutcome {
	if sol == nil {
		return nil
	}
	out := &DivisionOutcome{
		DivisibleShares: append([]float64(nil), sol.Allocation.Shares...),
		GainA:           sol.Gains.A,
		GainB:           sol.Gains.B,
		Method:          string(sol.Witness.Method),
		Sets:            sol.Class.Sets(),
	}
	if len(sol.Allocation.Assignment) > 0 {
		out.IndivisibleAssignment = make([]int32, len(sol.Allocation.Assignment))
		for i, v := range sol.Allocation.Assignment {
			out.IndivisibleAssignment[i] = int32(v)
		}
	}
	if sol.Witness.SplitItem >= 0 {
		item := int32(sol.Witness.SplitItem)
		fraction := sol.Witness.SplitFraction
		out.SplitItem = &item
		out.SplitFraction = &fraction
	}
	return out
}

// SetReport records rep in the status. The phase fields are left to the
// caller.
func (st *FairDivisionStatus) SetReport(rep *division.Report) {
	st.HasEfficient = rep.HasEfficient()
	st.HasProportional = rep.HasProportional()
	st.HasEquitable = rep.HasEquitable()
	st.HasFair = rep.HasFair()
	st.Efficient = NewDivisionOutcome(rep.Efficient)
	st.Proportional = NewDivisionOutcome(rep.Proportional)
	st.Equitable = NewDivisionOutcome(rep.Equitable)
	st.Fair = NewDivisionOutcome(rep.Fair)
	st.Statement1Sets = append([]string(nil), rep.Statement1.Sets...)
	st.BelongsTo = rep.Statement1.Summary
	st.FrontierSize = int32(len(rep.Frontier))
	st.EnumeratedAssignments = int32(rep.Enumerated)
}

// ClearReport removes every solver result from the status.
func (st *FairDivisionStatus) ClearReport() {
	st.HasEfficient = false
	st.HasProportional = false
	st.HasEquitable = false
	st.HasFair = false
	st.Efficient = nil
	st.Proportional = nil
	st.Equitable = nil
	st.Fair = nil
	st.Statement1Sets = nil
	st.BelongsTo = ""
	st.FrontierSize = 0
	st.EnumeratedAssignments = 0
}
