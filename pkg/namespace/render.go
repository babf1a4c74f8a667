package namespace

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoSpecs is returned when a namespace without any group is exported.
var ErrNoSpecs = errors.New("namespace: no specs added")

// ErrAbsoluteSource is returned for spec sources that are not relative to the
// namespace document.
var ErrAbsoluteSource = errors.New("namespace: spec source must be relative")

const yamlIndent = 2

// RenderedSpec is the serialised form of one spec file.
type RenderedSpec struct {
	Source string
	Data   []byte
}

// Rendered holds the serialised namespace document and its spec files.
type Rendered struct {
	Namespace []byte
	Specs     []RenderedSpec
}

// Render serialises a catalog. Output depends only on the catalog contents,
// so rendering the same declarations twice yields identical bytes.
func Render(cat Catalog) (Rendered, error) {
	if len(cat.Specs) == 0 {
		return Rendered{}, ErrNoSpecs
	}

	nsData, err := encodeYAML(namespaceDocument{Namespaces: cat.Namespaces})
	if err != nil {
		return Rendered{}, fmt.Errorf("namespace: encode namespace document: %w", err)
	}

	out := Rendered{Namespace: nsData, Specs: make([]RenderedSpec, 0, len(cat.Specs))}
	for _, file := range cat.Specs {
		if strings.TrimSpace(file.Source) == "" {
			return Rendered{}, errors.New("namespace: spec source is required")
		}
		if isAbsSource(file.Source) {
			return Rendered{}, fmt.Errorf("%w: %s", ErrAbsoluteSource, file.Source)
		}
		data, err := encodeYAML(file)
		if err != nil {
			return Rendered{}, fmt.Errorf("namespace: encode %s: %w", file.Source, err)
		}
		out.Specs = append(out.Specs, RenderedSpec{Source: file.Source, Data: data})
	}
	return out, nil
}

func encodeYAML(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isAbsSource reports slash-rooted and OS-absolute sources. Load resolves
// sources through fs.FS, which only accepts relative names.
func isAbsSource(source string) bool {
	return path.IsAbs(filepath.ToSlash(source)) || filepath.IsAbs(source)
}
