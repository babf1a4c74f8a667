// Package nwbext assembles NWB extension namespaces for lab metadata and
// exports them as namespace and specification YAML documents. The root
// package re-exports the common entry points; the building blocks live under
// pkg/.
package nwbext

import (
	"context"

	"github.com/goliatone/go-nwbext/pkg/docgen"
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/oas"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

// Metadata aliases namespace.Metadata for callers overriding profile
// identity fields.
type Metadata = namespace.Metadata

// Catalog aliases namespace.Catalog.
type Catalog = namespace.Catalog

// Profile aliases profiles.Profile.
type Profile = profiles.Profile

// NewNamespace exposes the namespace builder constructor from the top-level
// module.
func NewNamespace(doc, name string, options ...namespace.Option) *namespace.Builder {
	return namespace.New(doc, name, options...)
}

// DefaultProfiles returns the registry of built-in ScanImage profiles.
func DefaultProfiles() *profiles.Registry {
	return profiles.Default()
}

// ExportProfile writes the named built-in profile into dir and returns the
// namespace document path.
func ExportProfile(name, dir string, overrides Metadata) (string, error) {
	profile, err := profiles.Default().Get(name)
	if err != nil {
		return "", err
	}
	return profile.Export(dir, overrides)
}

// LoadCatalog reads a namespace document and its spec files from disk.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	return namespace.LoadFile(ctx, path)
}

// RenderMarkdown renders the reference page for a catalog with the built-in
// template.
func RenderMarkdown(cat Catalog) ([]byte, error) {
	gen, err := docgen.New()
	if err != nil {
		return nil, err
	}
	return gen.Render(cat)
}

// RenderOpenAPI renders a catalog as OpenAPI component schemas.
func RenderOpenAPI(ctx context.Context, cat Catalog) ([]byte, error) {
	return oas.Marshal(ctx, cat)
}
