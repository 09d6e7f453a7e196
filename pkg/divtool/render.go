package divtool

import (
	"fmt"
	"io"
	"math"
	"strings"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/division"
)

// Display rounding: gains to 2 decimals, split fractions to 4.
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round4(x float64) float64 { return math.Round(x*10000) / 10000 }

func renderReport(w io.Writer, fd *v1alpha1.FairDivision, rep *division.Report, debug bool) {
	fmt.Fprintf(w, "Division %s: %d divisible, %d indivisible, total %.2f\n",
		displayName(fd), len(fd.Spec.ParticipantA.Divisible), len(fd.Spec.ParticipantA.Indivisible), rep.Total)
	fmt.Fprintf(w, "Valuation sums: A=%.2f B=%.2f\n",
		round2(fd.Spec.ParticipantA.Sum()), round2(fd.Spec.ParticipantB.Sum()))
	fmt.Fprintf(w, "Statement 1: %s\n", rep.Statement1.Summary)
	if len(rep.Statement1.Sets) > 0 {
		fmt.Fprintf(w, "Sets: %s\n", strings.Join(rep.Statement1.Sets, ", "))
	}

	for _, k := range []division.Kind{division.KindFair, division.KindEquitable, division.KindProportional, division.KindEfficient} {
		fmt.Fprintln(w)
		sol := rep.Solution(k)
		if sol == nil {
			fmt.Fprintf(w, "%s division: none\n", k)
			continue
		}
		renderSolution(w, sol)
	}

	if debug {
		d := rep.Debug()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Debug:")
		fmt.Fprintf(w, "  Boundary:        %s\n", formatPoints(d.Boundary))
		fmt.Fprintf(w, "  Sorted indices:  %v\n", d.SortedIndices)
		fmt.Fprintf(w, "  Assignments:     %d\n", d.AssignmentCount)
		fmt.Fprintf(w, "  Frontier size:   %d\n", d.FrontierCount)
		fmt.Fprintf(w, "  Frontier points: %s\n", formatPoints(d.FrontierPoints))
	}
}

func renderSolution(w io.Writer, sol *division.Solution) {
	fmt.Fprintf(w, "%s division (%s):\n", sol.Kind, sol.Witness.Method)
	fmt.Fprintf(w, "  Gains:       A=%.2f  B=%.2f\n", round2(sol.Gains.A), round2(sol.Gains.B))
	fmt.Fprintf(w, "  Belongs to:  %s\n", sol.Class)

	if len(sol.Allocation.Shares) > 0 {
		parts := make([]string, len(sol.Allocation.Shares))
		for i, x := range sol.Allocation.Shares {
			parts[i] = fmt.Sprintf("#%d A=%g B=%g", i, round4(x), round4(1-x))
		}
		fmt.Fprintf(w, "  Divisible:   %s\n", strings.Join(parts, ", "))
	}
	if len(sol.Allocation.Assignment) > 0 {
		var toA, toB []int
		for i, s := range sol.Allocation.Assignment {
			if s == 1 {
				toA = append(toA, i)
			} else {
				toB = append(toB, i)
			}
		}
		fmt.Fprintf(w, "  Indivisible: A=%v B=%v\n", toA, toB)
	}
	if sol.Witness.SplitItem >= 0 {
		fmt.Fprintf(w, "  Split:       item %d, %.4f to A\n", sol.Witness.SplitItem, round4(sol.Witness.SplitFraction))
	}
}

func formatPoints(pts []division.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("(%g, %g)", round2(p.A), round2(p.B))
	}
	return strings.Join(parts, " ")
}
