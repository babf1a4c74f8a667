package namespace

import "github.com/goliatone/go-nwbext/pkg/spec"

// Metadata identifies an authored namespace.
type Metadata struct {
	Doc     string `yaml:"doc" json:"doc"`
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Author  string `yaml:"author" json:"author"`
	Contact string `yaml:"contact" json:"contact"`
}

// Merge returns m with every non-empty field of override applied.
func (m Metadata) Merge(override Metadata) Metadata {
	out := m
	if override.Doc != "" {
		out.Doc = override.Doc
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Version != "" {
		out.Version = override.Version
	}
	if override.Author != "" {
		out.Author = override.Author
	}
	if override.Contact != "" {
		out.Contact = override.Contact
	}
	return out
}

// SchemaEntry is one item of a namespace `schema` list: either a spec file
// source or an included namespace with the types taken from it.
type SchemaEntry struct {
	Source        string   `yaml:"source,omitempty" json:"source,omitempty"`
	Namespace     string   `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	NeurodataType []string `yaml:"neurodata_types,omitempty" json:"neurodata_types,omitempty"`
}

// Namespace is a single entry of the namespace document.
type Namespace struct {
	Metadata `yaml:",inline"`
	Schema   []SchemaEntry `yaml:"schema" json:"schema"`
}

// SpecFile is a specification document and the groups it defines.
type SpecFile struct {
	Source string       `yaml:"-" json:"source"`
	Groups []spec.Group `yaml:"groups" json:"groups"`
}

// Catalog is the document model behind a namespace file: the namespaces it
// declares plus the spec files they reference, in emission order.
type Catalog struct {
	Path       string      `json:"path"`
	Namespaces []Namespace `json:"namespaces"`
	Specs      []SpecFile  `json:"specs"`
}

// Spec returns the spec file registered under source.
func (c Catalog) Spec(source string) (SpecFile, bool) {
	for _, file := range c.Specs {
		if file.Source == source {
			return file, true
		}
	}
	return SpecFile{}, false
}

// Groups returns every group across spec files in emission order.
func (c Catalog) Groups() []spec.Group {
	var out []spec.Group
	for _, file := range c.Specs {
		out = append(out, file.Groups...)
	}
	return out
}

type namespaceDocument struct {
	Namespaces []Namespace `yaml:"namespaces"`
}
