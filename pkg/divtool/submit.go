package divtool

import (
	"context"
	"flag"
	"fmt"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"fairdiv/api/v1alpha1"
)

// Writer creates and updates FairDivision resources.
type Writer struct {
	client client.Client
}

// NewWriter creates a new FairDivision writer.
func NewWriter(c client.Client) *Writer {
	return &Writer{client: c}
}

// Apply creates fd or, if it exists, replaces its spec. Conflicting updates
// are retried against the latest resourceVersion. It reports whether the
// object was created.
func (w *Writer) Apply(ctx context.Context, fd *v1alpha1.FairDivision) (bool, error) {
	key := types.NamespacedName{Namespace: fd.Namespace, Name: fd.Name}

	existing := &v1alpha1.FairDivision{}
	err := w.client.Get(ctx, key, existing)
	if errors.IsNotFound(err) {
		obj := &v1alpha1.FairDivision{
			ObjectMeta: *fd.ObjectMeta.DeepCopy(),
			Spec:       *fd.Spec.DeepCopy(),
		}
		obj.ResourceVersion = ""
		if err := w.client.Create(ctx, obj); err != nil {
			return false, fmt.Errorf("create FairDivision: %w", err)
		}
		klog.V(4).InfoS("Created FairDivision", "name", fd.Name, "namespace", fd.Namespace)
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("get FairDivision: %w", err)
	}

	if equality.Semantic.DeepEqual(existing.Spec, fd.Spec) {
		return false, nil
	}

	return false, retry.RetryOnConflict(retry.DefaultBackoff, func() error {
		// Re-fetch to get latest resourceVersion
		latest := &v1alpha1.FairDivision{}
		if err := w.client.Get(ctx, key, latest); err != nil {
			return fmt.Errorf("re-fetch FairDivision: %w", err)
		}
		latest.Spec = *fd.Spec.DeepCopy()
		if err := w.client.Update(ctx, latest); err != nil {
			return err // retry.RetryOnConflict will retry if this is a conflict
		}
		klog.V(4).InfoS("Updated FairDivision", "name", fd.Name, "namespace", fd.Namespace)
		return nil
	})
}

// RunSubmit implements the `submit` subcommand.
func (a *App) RunSubmit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	file := fs.String("f", "", "FairDivision manifest (YAML or JSON, - for stdin)")
	namespace := fs.String("namespace", "", "Namespace (overrides the manifest; default \"default\")")
	check := fs.Bool("check", true, "Solve locally first and refuse invalid problems")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fd, err := LoadManifest(*file)
	if err != nil {
		return err
	}
	if fd.Name == "" {
		return fmt.Errorf("manifest has no metadata.name")
	}
	if *namespace != "" {
		fd.Namespace = *namespace
	}
	if fd.Namespace == "" {
		fd.Namespace = "default"
	}
	if *check {
		if _, err := a.Solve(fd); err != nil {
			return fmt.Errorf("refusing to submit %s: %w", displayName(fd), err)
		}
	}

	created, err := NewWriter(a.Client).Apply(ctx, fd)
	if err != nil {
		return err
	}
	verb := "configured"
	if created {
		verb = "created"
	}
	fmt.Fprintf(a.Out, "fairdivision.%s/%s %s\n", v1alpha1.GroupVersion.Group, fd.Name, verb)
	return nil
}
