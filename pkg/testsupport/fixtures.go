package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML fixture into a generic tree so documents can be
// compared without depending on indentation or quoting style.
func LoadYAML(path string) (any, error) {
	if path == "" {
		return nil, errors.New("testsupport: yaml path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read yaml: %w", err)
	}
	return DecodeYAML(data)
}

// DecodeYAML decodes raw YAML into a generic tree.
func DecodeYAML(data []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: decode yaml: %w", err)
	}
	return out, nil
}

// MustLoadYAML is LoadYAML for tests.
func MustLoadYAML(t *testing.T, path string) any {
	t.Helper()

	out, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	return out
}

// AssertYAMLGolden compares got against the golden YAML at path after
// decoding both. With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertYAMLGolden(t *testing.T, path string, got []byte) {
	t.Helper()

	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustLoadYAML(t, path)
	decoded, err := DecodeYAML(got)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := CompareGolden(want, decoded); diff != "" {
		t.Fatalf("mismatch with %s (-want +got):\n%s", path, diff)
	}
}

// CompareGolden returns a diff string if the values differ. Nil and empty
// collections compare equal.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
