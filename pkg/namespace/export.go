package namespace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Export writes the namespace document to path and each spec file next to it
// (sources are resolved relative to the directory of path). Existing files
// are overwritten.
func (b *Builder) Export(path string) error {
	if b.Len() == 0 {
		return ErrNoSpecs
	}
	return WriteCatalog(b.Catalog(path))
}

// WriteCatalog renders a catalog and writes it to disk at cat.Path. Spec
// sources are written relative to the directory of cat.Path.
func WriteCatalog(cat Catalog) error {
	if cat.Path == "" {
		return fmt.Errorf("namespace: export path is required")
	}
	rendered, err := Render(cat)
	if err != nil {
		return err
	}

	// The namespace document is written last; it must only reference spec
	// files that exist.
	dir := filepath.Dir(cat.Path)
	for _, file := range rendered.Specs {
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(file.Source)), file.Data); err != nil {
			return err
		}
	}
	return writeFile(cat.Path, rendered.Namespace)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("namespace: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("namespace: write %s: %w", path, err)
	}
	return nil
}
