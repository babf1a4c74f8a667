package spec

import "strings"

// BaseLabMetaData is the NWB core type lab-specific metadata groups extend.
const BaseLabMetaData = "LabMetaData"

// Column describes one named field of a compound dtype.
type Column struct {
	Name  string `yaml:"name" json:"name"`
	Doc   string `yaml:"doc" json:"doc"`
	DType DType  `yaml:"dtype" json:"dtype"`
}

// NewColumn declares a compound dtype column.
func NewColumn(name, doc string, dtype DType) Column {
	return Column{Name: name, Doc: doc, DType: dtype}
}

// Dataset is a named, typed value stored inside a group.
type Dataset struct {
	Name  string `yaml:"name" json:"name"`
	Doc   string `yaml:"doc" json:"doc"`
	DType DType  `yaml:"dtype" json:"dtype"`
}

// NewDataset declares a dataset. No validation happens here; an unknown dtype
// is carried through to the emitted document.
func NewDataset(doc, name string, dtype DType) Dataset {
	return Dataset{Name: name, Doc: doc, DType: dtype}
}

// Attribute is a fixed-value annotation attached to a group, such as the
// conventional `help` attribute.
type Attribute struct {
	Name  string `yaml:"name" json:"name"`
	Doc   string `yaml:"doc" json:"doc"`
	DType DType  `yaml:"dtype" json:"dtype"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// NewAttribute declares a fixed-value attribute.
func NewAttribute(name, doc string, dtype DType, value any) Attribute {
	return Attribute{Name: name, Doc: doc, DType: dtype, Value: value}
}

// HelpAttribute is the `help` text attribute NWB groups carry by convention.
func HelpAttribute(doc, value string) Attribute {
	return NewAttribute("help", doc, Text, value)
}

// Group defines a new neurodata type. Datasets and Attributes are always
// emitted, as `[]` when empty.
type Group struct {
	TypeDef    string      `yaml:"neurodata_type_def" json:"neurodata_type_def"`
	TypeInc    string      `yaml:"neurodata_type_inc" json:"neurodata_type_inc"`
	Name       string      `yaml:"name" json:"name"`
	Doc        string      `yaml:"doc" json:"doc"`
	Datasets   []Dataset   `yaml:"datasets" json:"datasets"`
	Attributes []Attribute `yaml:"attributes" json:"attributes"`
}

// GroupOption configures a group under construction.
type GroupOption func(*Group)

// WithDatasets appends datasets in declaration order.
func WithDatasets(datasets ...Dataset) GroupOption {
	return func(g *Group) {
		g.Datasets = append(g.Datasets, datasets...)
	}
}

// WithAttributes appends attributes in declaration order.
func WithAttributes(attributes ...Attribute) GroupOption {
	return func(g *Group) {
		g.Attributes = append(g.Attributes, attributes...)
	}
}

// WithBaseType overrides the inherited type (LabMetaData by default).
func WithBaseType(typeInc string) GroupOption {
	return func(g *Group) {
		g.TypeInc = strings.TrimSpace(typeInc)
	}
}

// WithTypeDef names the neurodata type the group defines.
func WithTypeDef(typeDef string) GroupOption {
	return func(g *Group) {
		g.TypeDef = strings.TrimSpace(typeDef)
	}
}

// NewGroup assembles a group definition. It performs no cross-checks against
// other groups; see package lint for that.
func NewGroup(doc, name string, options ...GroupOption) Group {
	group := Group{
		TypeInc:    BaseLabMetaData,
		Name:       name,
		Doc:        doc,
		Datasets:   []Dataset{},
		Attributes: []Attribute{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&group)
	}
	return group
}

// Clone returns a deep copy so callers can hand groups across package
// boundaries without sharing slices.
func (g Group) Clone() Group {
	out := g
	out.Datasets = make([]Dataset, len(g.Datasets))
	copy(out.Datasets, g.Datasets)
	out.Attributes = make([]Attribute, len(g.Attributes))
	copy(out.Attributes, g.Attributes)
	return out
}

// Dataset looks up a dataset by name.
func (g Group) Dataset(name string) (Dataset, bool) {
	for _, ds := range g.Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return Dataset{}, false
}

// Attribute looks up an attribute by name.
func (g Group) Attribute(name string) (Attribute, bool) {
	for _, attr := range g.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}
