package namespace

import (
	"strings"

	"github.com/goliatone/go-nwbext/pkg/spec"
)

// DefaultCoreNamespace is the NWB namespace base types are included from.
const DefaultCoreNamespace = "core"

// Option configures a Builder.
type Option func(*Builder)

// WithVersion sets the namespace semantic version.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.meta.Version = strings.TrimSpace(version)
	}
}

// WithAuthor sets the namespace author.
func WithAuthor(author string) Option {
	return func(b *Builder) {
		b.meta.Author = strings.TrimSpace(author)
	}
}

// WithContact sets the namespace contact address.
func WithContact(contact string) Option {
	return func(b *Builder) {
		b.meta.Contact = strings.TrimSpace(contact)
	}
}

// WithCoreNamespace overrides the namespace inherited base types are listed
// under. An empty name disables the include entry.
func WithCoreNamespace(name string) Option {
	return func(b *Builder) {
		b.core = strings.TrimSpace(name)
	}
}

type entry struct {
	source string
	group  spec.Group
}

// Builder accumulates group definitions for one namespace.
type Builder struct {
	meta    Metadata
	core    string
	entries []entry
}

// New creates an empty namespace with the given title and short name.
func New(doc, name string, options ...Option) *Builder {
	b := &Builder{
		meta: Metadata{Doc: doc, Name: name},
		core: DefaultCoreNamespace,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Metadata returns the namespace identity.
func (b *Builder) Metadata() Metadata {
	return b.meta
}

// AddSpec appends group under the spec file named source. Call order is the
// emission order; groups that share a source end up in the same file.
func (b *Builder) AddSpec(source string, group spec.Group) {
	b.entries = append(b.entries, entry{source: source, group: group.Clone()})
}

// Len reports how many groups were added.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Catalog builds the document model that Export serialises. path is recorded
// as the namespace document location.
func (b *Builder) Catalog(path string) Catalog {
	var (
		files   []SpecFile
		indexes = map[string]int{}
		defined = map[string]struct{}{}
	)
	for _, e := range b.entries {
		if e.group.TypeDef != "" {
			defined[e.group.TypeDef] = struct{}{}
		}
		idx, ok := indexes[e.source]
		if !ok {
			idx = len(files)
			indexes[e.source] = idx
			files = append(files, SpecFile{Source: e.source, Groups: []spec.Group{}})
		}
		files[idx].Groups = append(files[idx].Groups, e.group.Clone())
	}

	var schema []SchemaEntry
	if included := b.includedTypes(defined); len(included) > 0 && b.core != "" {
		schema = append(schema, SchemaEntry{Namespace: b.core, NeurodataType: included})
	}
	for _, file := range files {
		schema = append(schema, SchemaEntry{Source: file.Source})
	}
	if schema == nil {
		schema = []SchemaEntry{}
	}

	return Catalog{
		Path:       path,
		Namespaces: []Namespace{{Metadata: b.meta, Schema: schema}},
		Specs:      files,
	}
}

// includedTypes lists inherited types that the namespace does not define
// itself, in first-use order.
func (b *Builder) includedTypes(defined map[string]struct{}) []string {
	var (
		out  []string
		seen = map[string]struct{}{}
	)
	for _, e := range b.entries {
		inc := e.group.TypeInc
		if inc == "" {
			continue
		}
		if _, ok := defined[inc]; ok {
			continue
		}
		if _, ok := seen[inc]; ok {
			continue
		}
		seen[inc] = struct{}{}
		out = append(out, inc)
	}
	return out
}
