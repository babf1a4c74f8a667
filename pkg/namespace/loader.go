package namespace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a namespace document from fsys together with every spec file it
// lists as a source. Sources resolve relative to the namespace document.
func Load(ctx context.Context, fsys fs.FS, name string) (Catalog, error) {
	if fsys == nil {
		return Catalog{}, errors.New("namespace loader: filesystem is not configured")
	}
	if name == "" {
		return Catalog{}, errors.New("namespace loader: path is required")
	}

	data, err := readFS(ctx, fsys, name)
	if err != nil {
		return Catalog{}, err
	}

	var doc namespaceDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("namespace loader: parse %s: %w", name, err)
	}
	if len(doc.Namespaces) == 0 {
		return Catalog{}, fmt.Errorf("namespace loader: %s declares no namespaces", name)
	}

	cat := Catalog{Path: name, Namespaces: doc.Namespaces}
	seen := map[string]struct{}{}
	base := path.Dir(name)
	for _, ns := range doc.Namespaces {
		for _, item := range ns.Schema {
			source := strings.TrimSpace(item.Source)
			if source == "" {
				continue
			}
			if _, ok := seen[source]; ok {
				continue
			}
			seen[source] = struct{}{}

			raw, err := readFS(ctx, fsys, path.Join(base, source))
			if err != nil {
				return Catalog{}, fmt.Errorf("namespace loader: source %s: %w", source, err)
			}
			var file SpecFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return Catalog{}, fmt.Errorf("namespace loader: parse %s: %w", source, err)
			}
			file.Source = source
			cat.Specs = append(cat.Specs, file)
		}
	}
	return cat, nil
}

// LoadFile loads a namespace document from the operating system filesystem.
// The returned catalog keeps the caller's path.
func LoadFile(ctx context.Context, filename string) (Catalog, error) {
	cleaned := filepath.Clean(filename)
	cat, err := Load(ctx, os.DirFS(filepath.Dir(cleaned)), filepath.Base(cleaned))
	if err != nil {
		return Catalog{}, err
	}
	cat.Path = filename
	return cat, nil
}

func readFS(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("namespace loader: read %s: %w", name, err)
	}
	return data, nil
}
