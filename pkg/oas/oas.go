package oas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/spec"
)

// OpenAPIVersion is the document version emitted.
const OpenAPIVersion = "3.0.3"

// Extension keys attached to generated schemas.
const (
	ExtTypeInc = "x-nwb-type-inc"
	ExtName    = "x-nwb-name"
	ExtSource  = "x-nwb-source"
	ExtDType   = "x-nwb-dtype"
)

// Document converts a catalog into a validated OpenAPI document with one
// component schema per group.
func Document(ctx context.Context, cat namespace.Catalog) (*openapi3.T, error) {
	if len(cat.Namespaces) == 0 {
		return nil, errors.New("oas: catalog has no namespace")
	}
	ns := cat.Namespaces[0]

	info := &openapi3.Info{
		Title:       ns.Name,
		Description: ns.Doc,
		Version:     ns.Version,
	}
	if ns.Author != "" || ns.Contact != "" {
		info.Contact = &openapi3.Contact{Name: ns.Author, Email: ns.Contact}
	}

	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info:    info,
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	for _, file := range cat.Specs {
		for _, group := range file.Groups {
			name := strings.TrimSpace(group.TypeDef)
			if name == "" {
				return nil, fmt.Errorf("oas: group %q in %s has no neurodata_type_def", group.Name, file.Source)
			}
			if _, exists := doc.Components.Schemas[name]; exists {
				return nil, fmt.Errorf("oas: duplicate neurodata_type_def %q", name)
			}
			doc.Components.Schemas[name] = openapi3.NewSchemaRef("", groupSchema(file.Source, group))
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("oas: validate document: %w", err)
	}
	return doc, nil
}

// Marshal renders the catalog as indented OpenAPI JSON.
func Marshal(ctx context.Context, cat namespace.Catalog) ([]byte, error) {
	doc, err := Document(ctx, cat)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("oas: encode document: %w", err)
	}
	return append(payload, '\n'), nil
}

func groupSchema(source string, group spec.Group) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = group.TypeDef
	schema.Description = group.Doc
	schema.Extensions = map[string]any{
		ExtTypeInc: group.TypeInc,
		ExtName:    group.Name,
		ExtSource:  source,
	}

	for _, ds := range group.Datasets {
		prop := dtypeSchema(ds.DType)
		prop.Description = ds.Doc
		schema.WithProperty(ds.Name, prop)
		schema.Required = append(schema.Required, ds.Name)
	}
	for _, attr := range group.Attributes {
		prop := dtypeSchema(attr.DType)
		prop.Description = attr.Doc
		prop.ReadOnly = true
		if attr.Value != nil {
			prop.Default = attr.Value
		}
		schema.WithProperty(attr.Name, prop)
		schema.Required = append(schema.Required, attr.Name)
	}
	return schema
}

func dtypeSchema(dtype spec.DType) *openapi3.Schema {
	if dtype.IsCompound() {
		row := openapi3.NewObjectSchema()
		for _, col := range dtype.Columns() {
			prop := dtypeSchema(col.DType)
			prop.Description = col.Doc
			row.WithProperty(col.Name, prop)
			row.Required = append(row.Required, col.Name)
		}
		return openapi3.NewArraySchema().WithItems(row)
	}

	var schema *openapi3.Schema
	switch dtype.Name() {
	case spec.DTypeInt:
		schema = openapi3.NewInt64Schema()
	case spec.DTypeIsoDatetime:
		schema = openapi3.NewDateTimeSchema()
	case spec.DTypeText:
		schema = openapi3.NewStringSchema()
	default:
		schema = openapi3.NewSchema()
	}
	schema.Extensions = map[string]any{ExtDType: dtype.Name()}
	return schema
}
