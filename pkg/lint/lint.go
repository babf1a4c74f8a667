package lint

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/spec"
)

// Option configures a Linter.
type Option func(*Linter)

// WithBaseTypes replaces the set of allowed neurodata_type_inc values.
func WithBaseTypes(types ...string) Option {
	return func(l *Linter) {
		l.baseTypes = toSet(types)
	}
}

// WithDTypes adds primitive dtype names to the accepted vocabulary.
func WithDTypes(names ...string) Option {
	return func(l *Linter) {
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				l.dtypes[trimmed] = struct{}{}
			}
		}
	}
}

// Linter checks catalogs against a configured vocabulary.
type Linter struct {
	baseTypes map[string]struct{}
	dtypes    map[string]struct{}
}

// New returns a Linter accepting LabMetaData groups and the int, text and
// isodatetime primitives.
func New(options ...Option) *Linter {
	l := &Linter{
		baseTypes: toSet([]string{spec.BaseLabMetaData}),
		dtypes:    toSet([]string{spec.DTypeInt, spec.DTypeText, spec.DTypeIsoDatetime}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Catalog lints with default options.
func Catalog(cat namespace.Catalog, options ...Option) []Violation {
	return New(options...).Catalog(cat)
}

// Catalog returns every violation found in cat, sorted.
func (l *Linter) Catalog(cat namespace.Catalog) []Violation {
	var result []Violation
	for i, ns := range cat.Namespaces {
		result = append(result, l.namespace(cat.Path, i, ns)...)
	}

	typeOwners := map[string]string{}
	for _, file := range cat.Specs {
		result = append(result, l.specFile(file, typeOwners)...)
	}

	sortViolations(result)
	return result
}

func (l *Linter) namespace(file string, index int, ns namespace.Namespace) []Violation {
	base := []string{fmt.Sprintf("namespaces[%d]", index)}
	if ns.Name != "" {
		base = []string{"namespace", ns.Name}
	}

	var result []Violation
	required := []struct {
		key   string
		value string
	}{
		{"doc", ns.Doc},
		{"name", ns.Name},
		{"version", ns.Version},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			result = append(result, errorf(file, base, "%s is required", field.key))
		}
	}

	if len(ns.Schema) == 0 {
		result = append(result, errorf(file, base, "schema lists no sources"))
	}
	for i, item := range ns.Schema {
		loc := appendPath(base, fmt.Sprintf("schema[%d]", i))
		hasSource := strings.TrimSpace(item.Source) != ""
		hasNamespace := strings.TrimSpace(item.Namespace) != ""
		switch {
		case hasSource && hasNamespace:
			result = append(result, errorf(file, loc, "entry names both source %q and namespace %q", item.Source, item.Namespace))
		case !hasSource && !hasNamespace:
			result = append(result, errorf(file, loc, "entry names neither a source nor a namespace"))
		case hasSource && len(item.NeurodataType) > 0:
			result = append(result, warnf(file, loc, "neurodata_types is ignored on source entries"))
		}
	}
	return result
}

func (l *Linter) specFile(file namespace.SpecFile, typeOwners map[string]string) []Violation {
	var result []Violation
	if len(file.Groups) == 0 {
		result = append(result, warnf(file.Source, []string{"groups"}, "spec file defines no groups"))
	}

	names := map[string]int{}
	for i, group := range file.Groups {
		base := []string{fmt.Sprintf("groups[%d]", i)}
		if group.TypeDef != "" {
			base = []string{"group", group.TypeDef}
		}
		result = append(result, l.group(file.Source, base, group)...)

		if group.TypeDef != "" {
			if owner, exists := typeOwners[group.TypeDef]; exists {
				result = append(result, errorf(file.Source, base, "neurodata_type_def %q already defined in %s", group.TypeDef, owner))
			} else {
				typeOwners[group.TypeDef] = file.Source
			}
		}
		if group.Name != "" {
			if prev, exists := names[group.Name]; exists {
				result = append(result, errorf(file.Source, base, "group name %q duplicates groups[%d]", group.Name, prev))
			} else {
				names[group.Name] = i
			}
		}
	}
	return result
}

func (l *Linter) group(file string, base []string, group spec.Group) []Violation {
	var result []Violation
	if strings.TrimSpace(group.TypeDef) == "" {
		result = append(result, errorf(file, base, "neurodata_type_def is required"))
	}
	if _, ok := l.baseTypes[group.TypeInc]; !ok {
		result = append(result, errorf(file, base, "neurodata_type_inc %q is not an allowed base type (allowed: %s)", group.TypeInc, strings.Join(sortedKeys(l.baseTypes), ", ")))
	}
	if strings.TrimSpace(group.Name) == "" {
		result = append(result, errorf(file, base, "name is required"))
	}
	if strings.TrimSpace(group.Doc) == "" {
		result = append(result, warnf(file, base, "doc is empty"))
	}

	fields := map[string]string{}
	for i, ds := range group.Datasets {
		loc := appendPath(base, fieldLabel("datasets", i, ds.Name))
		result = append(result, l.field(file, loc, ds.Name, ds.Doc, ds.DType)...)
		result = append(result, uniqueField(file, loc, fields, ds.Name, "dataset")...)
	}
	for i, attr := range group.Attributes {
		loc := appendPath(base, fieldLabel("attributes", i, attr.Name))
		result = append(result, l.field(file, loc, attr.Name, attr.Doc, attr.DType)...)
		result = append(result, uniqueField(file, loc, fields, attr.Name, "attribute")...)
		if attr.Value == nil {
			result = append(result, warnf(file, loc, "attribute has no fixed value"))
		}
	}
	return result
}

func (l *Linter) field(file string, loc []string, name, doc string, dtype spec.DType) []Violation {
	var result []Violation
	if strings.TrimSpace(name) == "" {
		result = append(result, errorf(file, loc, "name is required"))
	}
	if strings.TrimSpace(doc) == "" {
		result = append(result, warnf(file, loc, "doc is empty"))
	}
	result = append(result, l.dtype(file, loc, dtype)...)
	return result
}

func (l *Linter) dtype(file string, loc []string, dtype spec.DType) []Violation {
	if dtype.IsZero() {
		return []Violation{errorf(file, loc, "dtype is required")}
	}
	if !dtype.IsCompound() {
		if _, ok := l.dtypes[dtype.Name()]; !ok {
			return []Violation{errorf(file, loc, "unsupported dtype %q (supported: %s)", dtype.Name(), strings.Join(sortedKeys(l.dtypes), ", "))}
		}
		return nil
	}

	columns := dtype.Columns()
	if len(columns) == 0 {
		return []Violation{errorf(file, loc, "compound dtype has no columns")}
	}
	var result []Violation
	seen := map[string]struct{}{}
	for i, col := range columns {
		colLoc := appendPath(loc, fieldLabel("dtype", i, col.Name))
		if strings.TrimSpace(col.Name) == "" {
			result = append(result, errorf(file, colLoc, "column name is required"))
		} else if _, dup := seen[col.Name]; dup {
			result = append(result, errorf(file, colLoc, "duplicate column %q", col.Name))
		} else {
			seen[col.Name] = struct{}{}
		}
		if col.DType.IsCompound() {
			result = append(result, errorf(file, colLoc, "nested compound dtypes are not supported"))
			continue
		}
		result = append(result, l.dtype(file, colLoc, col.DType)...)
	}
	return result
}

func uniqueField(file string, loc []string, seen map[string]string, name, kind string) []Violation {
	if name == "" {
		return nil
	}
	if prev, exists := seen[name]; exists {
		return []Violation{errorf(file, loc, "%s name %q collides with %s", kind, name, prev)}
	}
	seen[name] = kind
	return nil
}

func fieldLabel(collection string, index int, name string) string {
	if name == "" {
		return fmt.Sprintf("%s[%d]", collection, index)
	}
	return collection + "." + name
}

func errorf(file string, loc []string, format string, args ...any) Violation {
	return Violation{File: file, Location: formatLocation(loc), Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

func warnf(file string, loc []string, format string, args ...any) Violation {
	return Violation{File: file, Location: formatLocation(loc), Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}
