package divtool

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"fairdiv/pkg/division"
)

// RunRegion implements the `region` subcommand.
func (a *App) RunRegion(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("region", flag.ContinueOnError)
	file := fs.String("f", "", "FairDivision manifest (YAML or JSON, - for stdin)")
	solution := fs.String("solution", "", "Mark a division: fair, equitable, proportional, efficient or best")
	output := fs.String("o", "json", "Output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output != "json" && *output != "yaml" {
		return fmt.Errorf("unknown output format %q (want yaml or json)", *output)
	}

	fd, err := LoadManifest(*file)
	if err != nil {
		return err
	}
	rep, err := a.Solve(fd)
	if err != nil {
		return fmt.Errorf("solve %s: %w", displayName(fd), err)
	}
	pd, err := plotData(rep, *solution)
	if err != nil {
		return err
	}
	return encode(a.Out, pd, *output)
}

// plotData exports the region with the named division marked. A missing
// division leaves the point unset.
func plotData(rep *division.Report, name string) (division.PlotData, error) {
	var sol *division.Solution
	switch strings.ToLower(name) {
	case "":
	case "best":
		sol = rep.Best()
	case "fair":
		sol = rep.Fair
	case "equitable":
		sol = rep.Equitable
	case "proportional":
		sol = rep.Proportional
	case "efficient":
		sol = rep.Efficient
	default:
		return division.PlotData{}, fmt.Errorf("unknown solution %q", name)
	}
	if sol == nil {
		return rep.PlotData(nil), nil
	}
	pt := sol.Gains.Point()
	return rep.PlotData(&pt), nil
}
