package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Primitive dtype names understood by NWB tooling.
const (
	DTypeInt         = "int"
	DTypeText        = "text"
	DTypeIsoDatetime = "isodatetime"
)

// DType is either a primitive type name or a compound row type made of named
// columns. The zero value is an unset dtype.
type DType struct {
	primitive string
	columns   []Column
}

var (
	// Int is a signed integer dataset or attribute.
	Int = Primitive(DTypeInt)
	// Text is a variable length UTF-8 string.
	Text = Primitive(DTypeText)
	// IsoDatetime is an ISO-8601 timestamp stored as text.
	IsoDatetime = Primitive(DTypeIsoDatetime)
)

// Primitive returns a dtype for the named primitive. The name is carried
// verbatim; unknown names are left for downstream tooling to reject.
func Primitive(name string) DType {
	return DType{primitive: strings.TrimSpace(name)}
}

// Compound returns a row-typed dtype whose columns are emitted in order.
func Compound(columns ...Column) DType {
	return DType{columns: append([]Column{}, columns...)}
}

// IsCompound reports whether the dtype describes table rows.
func (d DType) IsCompound() bool {
	return d.columns != nil
}

// IsZero reports whether no dtype was declared.
func (d DType) IsZero() bool {
	return d.primitive == "" && d.columns == nil
}

// Name returns the primitive type name, or "" for compound dtypes.
func (d DType) Name() string {
	return d.primitive
}

// Columns returns a copy of the compound columns.
func (d DType) Columns() []Column {
	if d.columns == nil {
		return nil
	}
	return append([]Column{}, d.columns...)
}

// String renders the dtype for messages and documentation.
func (d DType) String() string {
	if !d.IsCompound() {
		return d.primitive
	}
	parts := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		parts = append(parts, col.Name+":"+col.DType.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal compares two dtypes including column order.
func (d DType) Equal(other DType) bool {
	if d.primitive != other.primitive || d.IsCompound() != other.IsCompound() {
		return false
	}
	if len(d.columns) != len(other.columns) {
		return false
	}
	for i := range d.columns {
		a, b := d.columns[i], other.columns[i]
		if a.Name != b.Name || a.Doc != b.Doc || !a.DType.Equal(b.DType) {
			return false
		}
	}
	return true
}

// MarshalYAML emits a scalar for primitives and a sequence for compounds.
func (d DType) MarshalYAML() (any, error) {
	if d.IsCompound() {
		return d.columns, nil
	}
	return d.primitive, nil
}

// UnmarshalYAML accepts either layout produced by MarshalYAML.
func (d *DType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return fmt.Errorf("spec: decode dtype: %w", err)
		}
		*d = Primitive(name)
		return nil
	case yaml.SequenceNode:
		columns := []Column{}
		if err := node.Decode(&columns); err != nil {
			return fmt.Errorf("spec: decode compound dtype: %w", err)
		}
		*d = DType{columns: columns}
		return nil
	default:
		return fmt.Errorf("spec: dtype must be a string or a list of columns (line %d)", node.Line)
	}
}

// MarshalJSON mirrors the YAML layout.
func (d DType) MarshalJSON() ([]byte, error) {
	if d.IsCompound() {
		return json.Marshal(d.columns)
	}
	return json.Marshal(d.primitive)
}

// UnmarshalJSON mirrors UnmarshalYAML.
func (d *DType) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*d = DType{}
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		columns := []Column{}
		if err := json.Unmarshal(data, &columns); err != nil {
			return fmt.Errorf("spec: decode compound dtype: %w", err)
		}
		*d = DType{columns: columns}
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.New("spec: dtype must be a string or a list of columns")
	}
	*d = Primitive(name)
	return nil
}
