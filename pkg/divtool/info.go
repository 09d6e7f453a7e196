package divtool

import (
	"context"
	"flag"
	"fmt"

	"fairdiv/pkg/division"
)

// Version is the CLI version, overridden at build time with -ldflags.
var Version = "dev"

// RunInfo implements the `info` subcommand.
func (a *App) RunInfo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := a.Solver.Options()
	w := a.Out
	fmt.Fprintf(w, "fairdiv %s\n", Version)
	fmt.Fprintln(w, "Method: Rubchinsky (2009) two-party division of divisible and indivisible goods")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Concepts:")
	fmt.Fprintln(w, "  E(S) Efficient      no division gives both participants more")
	fmt.Fprintln(w, "  P(S) Proportional   each participant receives at least half the total")
	fmt.Fprintln(w, "  Q(S) Equitable      both participants receive the same gain")
	fmt.Fprintln(w, "  F(S) Fair           efficient, proportional and equitable")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Limits:")
	fmt.Fprintf(w, "  Max indivisible items: %d (2^M assignments)\n", opts.MaxIndivisibleItems)
	fmt.Fprintf(w, "  Efficiency check:      %s\n", opts.Efficiency)
	fmt.Fprintf(w, "  Default total:         %g\n", a.Config.DefaultTotal)
	fmt.Fprintf(w, "  Sum tolerance:         %g\n", division.SumTolerance)
	fmt.Fprintf(w, "  Equity tolerance:      %g\n", division.EquityTolerance)
	fmt.Fprintf(w, "  Dominance tolerance:   %g\n", division.DominanceTolerance)
	return nil
}
