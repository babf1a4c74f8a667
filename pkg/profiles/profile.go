package profiles

import (
	"strings"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/spec"
)

// Profile describes one schema variant and how to assemble it.
type Profile struct {
	// Name is the registry key, e.g. "cycle-files".
	Name string
	// Summary is a one-line description for listings.
	Summary string
	// Metadata is the namespace identity written to the namespace document.
	Metadata namespace.Metadata
	// Source is the spec file name the groups are registered under.
	Source string
	// NamespaceFile is the namespace document file name.
	NamespaceFile string
	// Groups returns fresh group definitions in emission order.
	Groups func() []spec.Group
}

// Builder assembles the profile into a namespace builder, applying any
// non-empty metadata overrides.
func (p Profile) Builder(overrides namespace.Metadata, options ...namespace.Option) *namespace.Builder {
	meta := p.Metadata.Merge(overrides)
	opts := []namespace.Option{
		namespace.WithVersion(meta.Version),
		namespace.WithAuthor(meta.Author),
		namespace.WithContact(meta.Contact),
	}
	opts = append(opts, options...)

	builder := namespace.New(meta.Doc, meta.Name, opts...)
	if p.Groups == nil {
		return builder
	}
	for _, group := range p.Groups() {
		builder.AddSpec(p.Source, group)
	}
	return builder
}

// TypeNames lists the neurodata types the profile defines.
func (p Profile) TypeNames() []string {
	if p.Groups == nil {
		return nil
	}
	var out []string
	for _, group := range p.Groups() {
		if name := strings.TrimSpace(group.TypeDef); name != "" {
			out = append(out, name)
		}
	}
	return out
}
