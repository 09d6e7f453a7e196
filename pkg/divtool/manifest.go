package divtool

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"

	"fairdiv/api/v1alpha1"
)

const manifestKind = "FairDivision"

// LoadManifest reads a FairDivision manifest from path, or stdin for "-".
func LoadManifest(path string) (*v1alpha1.FairDivision, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest path is required (-f)")
	}
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()
		r = f
	}
	return ReadManifest(r)
}

// ReadManifest decodes a YAML or JSON FairDivision manifest. Unknown fields
// are rejected; apiVersion and kind may be omitted.
func ReadManifest(r io.Reader) (*v1alpha1.FairDivision, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	fd := &v1alpha1.FairDivision{}
	if err := yaml.UnmarshalStrict(data, fd); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if fd.Kind != "" && fd.Kind != manifestKind {
		return nil, fmt.Errorf("manifest kind is %q, want %s", fd.Kind, manifestKind)
	}
	if fd.APIVersion != "" && fd.APIVersion != v1alpha1.GroupVersion.String() {
		return nil, fmt.Errorf("manifest apiVersion is %q, want %s", fd.APIVersion, v1alpha1.GroupVersion.String())
	}
	fd.APIVersion = v1alpha1.GroupVersion.String()
	fd.Kind = manifestKind
	return fd, nil
}
