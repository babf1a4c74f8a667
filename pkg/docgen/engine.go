package docgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// engine is a pongo2 template set with a compiled-template cache.
type engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

func newEngine(files fs.FS) (*engine, error) {
	if files == nil {
		return nil, errors.New("docgen: template filesystem is required")
	}
	registerDefaultFilters()
	return &engine{
		templateSet: pongo2.NewSet("nwbext-docs", pongo2.NewFSLoader(files)),
		templates:   make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) render(name string, data map[string]any, out ...io.Writer) ([]byte, error) {
	tmpl, err := e.getTemplate(name)
	if err != nil {
		return nil, err
	}

	viewContext, err := convertToContext(data)
	if err != nil {
		return nil, fmt.Errorf("docgen: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("docgen: execute template %q: %w", name, err)
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (e *engine) getTemplate(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.templateSet.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("docgen: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// convertToContext round-trips values through JSON so templates only ever see
// maps, slices and scalars keyed by their json names.
func convertToContext(data map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(data))
	for key, value := range data {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		out[key] = decoded
	}
	return out, nil
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("mdcell") {
		_ = pongo2.RegisterFilter("mdcell", filterMarkdownCell)
	}
}

// filterMarkdownCell makes a value safe to place inside a Markdown table cell.
func filterMarkdownCell(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsSafeValue(markdownCell(in.String())), nil
}

func markdownCell(s string) string {
	replacer := strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(replacer.Replace(s))
}
