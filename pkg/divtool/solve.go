package divtool

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/division"
)

// SolveOutput is the machine-readable result of the solve command.
type SolveOutput struct {
	Name         string                    `json:"name,omitempty"`
	Problem      v1alpha1.FairDivisionSpec `json:"problem"`
	Statement1   division.Statement1       `json:"statement1"`
	Efficient    *division.Solution        `json:"efficient,omitempty"`
	Proportional *division.Solution        `json:"proportional,omitempty"`
	Equitable    *division.Solution        `json:"equitable,omitempty"`
	Fair         *division.Solution        `json:"fair,omitempty"`
	Debug        *division.Debug           `json:"debug,omitempty"`
}

// RunSolve implements the `solve` subcommand.
func (a *App) RunSolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	file := fs.String("f", "", "FairDivision manifest (YAML or JSON, - for stdin)")
	output := fs.String("o", "text", "Output format: text, yaml or json")
	debug := fs.Bool("debug", false, "Include the attainable region summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fd, err := LoadManifest(*file)
	if err != nil {
		return err
	}
	rep, err := a.Solve(fd)
	if err != nil {
		return fmt.Errorf("solve %s: %w", displayName(fd), err)
	}
	return writeReport(a.Out, fd, rep, *output, *debug)
}

// Solve runs the configured solver on a manifest.
func (a *App) Solve(fd *v1alpha1.FairDivision) (*division.Report, error) {
	return a.Solver.Solve(fd.Spec.Problem(a.Config.DefaultTotal))
}

func writeReport(w io.Writer, fd *v1alpha1.FairDivision, rep *division.Report, format string, debug bool) error {
	switch format {
	case "text", "":
		renderReport(w, fd, rep, debug)
		return nil
	case "yaml", "json":
		out := SolveOutput{
			Name:         fd.Name,
			Statement1:   rep.Statement1,
			Efficient:    rep.Efficient,
			Proportional: rep.Proportional,
			Equitable:    rep.Equitable,
			Fair:         rep.Fair,
			Problem:      fd.Spec,
		}
		if debug {
			d := rep.Debug()
			out.Debug = &d
		}
		return encode(w, out, format)
	}
	return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
}

func encode(w io.Writer, v interface{}, format string) error {
	var (
		data []byte
		err  error
	)
	if format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

func displayName(fd *v1alpha1.FairDivision) string {
	if fd.Name == "" {
		return "manifest"
	}
	if fd.Namespace == "" {
		return fd.Name
	}
	return fd.Namespace + "/" + fd.Name
}
