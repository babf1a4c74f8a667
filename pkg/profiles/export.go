package profiles

import (
	"path/filepath"

	"github.com/goliatone/go-nwbext/pkg/namespace"
)

// Export writes the profile's namespace and spec documents into dir.
func (p Profile) Export(dir string, overrides namespace.Metadata) (string, error) {
	nsFile := p.NamespaceFile
	if nsFile == "" {
		nsFile = p.Metadata.Name + ".namespace.yaml"
	}
	path := filepath.Join(dir, nsFile)
	if err := p.Builder(overrides).Export(path); err != nil {
		return "", err
	}
	return path, nil
}
