package docgen

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/spec"
)

// DefaultTemplate is the template rendered when none is configured.
const DefaultTemplate = "extension.md.tpl"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates so callers can extend them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures a Generator.
type Option func(*config)

type config struct {
	templates fs.FS
	name      string
}

// WithTemplates replaces the template filesystem.
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithTemplateName selects the template rendered by Render.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// Generator renders catalogs to Markdown.
type Generator struct {
	engine   *engine
	template string
}

// New builds a Generator backed by the embedded templates unless overridden.
func New(options ...Option) (*Generator, error) {
	cfg := &config{templates: TemplatesFS(), name: DefaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	eng, err := newEngine(cfg.templates)
	if err != nil {
		return nil, err
	}
	return &Generator{engine: eng, template: cfg.name}, nil
}

// Render produces the reference page for cat and copies it to any writers.
func (g *Generator) Render(cat namespace.Catalog, out ...io.Writer) ([]byte, error) {
	if len(cat.Namespaces) == 0 {
		return nil, fmt.Errorf("docgen: catalog %q has no namespace", cat.Path)
	}
	return g.engine.render(g.template, map[string]any{
		"namespaces": namespaceViews(cat),
		"groups":     groupViews(cat),
	}, out...)
}

type namespaceView struct {
	Name     string   `json:"name"`
	Doc      string   `json:"doc"`
	Version  string   `json:"version"`
	Author   string   `json:"author"`
	Contact  string   `json:"contact"`
	Sources  []string `json:"sources"`
	Includes []string `json:"includes"`
}

type columnView struct {
	Name  string `json:"name"`
	Doc   string `json:"doc"`
	DType string `json:"dtype"`
}

type fieldView struct {
	Name    string       `json:"name"`
	Doc     string       `json:"doc"`
	DType   string       `json:"dtype"`
	Value   string       `json:"value"`
	Columns []columnView `json:"columns"`
}

type groupView struct {
	TypeDef    string      `json:"type_def"`
	TypeInc    string      `json:"type_inc"`
	Name       string      `json:"name"`
	Doc        string      `json:"doc"`
	Source     string      `json:"source"`
	Datasets   []fieldView `json:"datasets"`
	Attributes []fieldView `json:"attributes"`
}

func namespaceViews(cat namespace.Catalog) []namespaceView {
	out := make([]namespaceView, 0, len(cat.Namespaces))
	for _, ns := range cat.Namespaces {
		view := namespaceView{
			Name:    plainText(ns.Name),
			Doc:     sanitizeDoc(ns.Doc),
			Version: plainText(ns.Version),
			Author:  plainText(ns.Author),
			Contact: plainText(ns.Contact),
		}
		for _, item := range ns.Schema {
			if item.Source != "" {
				view.Sources = append(view.Sources, plainText(item.Source))
			}
			for _, typ := range item.NeurodataType {
				view.Includes = append(view.Includes, plainText(item.Namespace+"."+typ))
			}
		}
		out = append(out, view)
	}
	return out
}

func groupViews(cat namespace.Catalog) []groupView {
	var out []groupView
	for _, file := range cat.Specs {
		for _, group := range file.Groups {
			view := groupView{
				TypeDef: plainText(group.TypeDef),
				TypeInc: plainText(group.TypeInc),
				Name:    plainText(group.Name),
				Doc:     sanitizeDoc(group.Doc),
				Source:  plainText(file.Source),
			}
			for _, ds := range group.Datasets {
				view.Datasets = append(view.Datasets, newFieldView(ds.Name, ds.Doc, ds.DType, nil))
			}
			for _, attr := range group.Attributes {
				view.Attributes = append(view.Attributes, newFieldView(attr.Name, attr.Doc, attr.DType, attr.Value))
			}
			out = append(out, view)
		}
	}
	return out
}

func newFieldView(name, doc string, dtype spec.DType, value any) fieldView {
	view := fieldView{
		Name:  plainText(name),
		Doc:   sanitizeDoc(doc),
		DType: plainText(dtype.Name()),
	}
	if dtype.IsCompound() {
		view.DType = "compound"
		for _, col := range dtype.Columns() {
			view.Columns = append(view.Columns, columnView{
				Name:  plainText(col.Name),
				Doc:   sanitizeDoc(col.Doc),
				DType: plainText(col.DType.String()),
			})
		}
	}
	if value != nil {
		view.Value = sanitizeDoc(fmt.Sprint(value))
	}
	return view
}
