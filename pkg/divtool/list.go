package divtool

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"text/tabwriter"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"fairdiv/api/v1alpha1"
)

// DivisionSummary is a lightweight view of a FairDivision for listing.
type DivisionSummary struct {
	Namespace string
	Name      string
	Phase     string
	BelongsTo string
	HasFair   bool
}

// RunList implements the `list` subcommand.
func (a *App) RunList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	namespace := fs.String("namespace", "", "Namespace to list from (empty = all namespaces)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	divisions, err := a.listDivisions(ctx, *namespace)
	if err != nil {
		return fmt.Errorf("list FairDivisions: %w", err)
	}
	if len(divisions) == 0 {
		fmt.Fprintln(a.Out, "No FairDivisions found.")
		return nil
	}

	tw := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAMESPACE\tNAME\tPHASE\tFAIR\tBELONGS TO")
	for _, d := range divisions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", d.Namespace, d.Name, d.Phase, d.HasFair, d.BelongsTo)
	}
	return tw.Flush()
}

func (a *App) listDivisions(ctx context.Context, namespace string) ([]DivisionSummary, error) {
	list := &v1alpha1.FairDivisionList{}
	var opts []client.ListOption
	if namespace != "" {
		opts = append(opts, client.InNamespace(namespace))
	}
	if err := a.Client.List(ctx, list, opts...); err != nil {
		return nil, err
	}

	summaries := make([]DivisionSummary, 0, len(list.Items))
	for _, fd := range list.Items {
		// Not reconciled yet.
		phase := fd.Status.Phase
		if phase == "" {
			phase = "Pending"
		}
		summaries = append(summaries, DivisionSummary{
			Namespace: fd.Namespace,
			Name:      fd.Name,
			Phase:     phase,
			BelongsTo: fd.Status.BelongsTo,
			HasFair:   fd.Status.HasFair,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Namespace != summaries[j].Namespace {
			return summaries[i].Namespace < summaries[j].Namespace
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

// RunGet implements the `get` subcommand.
func (a *App) RunGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	namespace := fs.String("namespace", "default", "Namespace of the FairDivision")
	name := fs.String("name", "", "Name of the FairDivision")
	output := fs.String("o", "yaml", "Output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("-name is required")
	}
	if *output != "json" && *output != "yaml" {
		return fmt.Errorf("unknown output format %q (want yaml or json)", *output)
	}

	fd := &v1alpha1.FairDivision{}
	if err := a.Client.Get(ctx, types.NamespacedName{Namespace: *namespace, Name: *name}, fd); err != nil {
		return fmt.Errorf("get FairDivision %s/%s: %w", *namespace, *name, err)
	}
	return encode(a.Out, fd.Status, *output)
}
