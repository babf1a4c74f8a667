package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

// Profiles lints every registered profile and warns when two profiles define
// type names that differ only by case, which NWB tooling treats as distinct
// types while readers rarely do.
func Profiles(registry *profiles.Registry, options ...Option) []Violation {
	linter := New(options...)

	var result []Violation
	spellings := map[string]map[string][]string{}
	for _, profile := range registry.Profiles() {
		cat := profile.Builder(namespace.Metadata{}).Catalog(profile.Name + "/" + profile.NamespaceFile)
		for _, v := range linter.Catalog(cat) {
			v.File = profile.Name + "/" + v.File
			result = append(result, v)
		}

		for _, name := range profile.TypeNames() {
			key := strings.ToLower(name)
			if spellings[key] == nil {
				spellings[key] = map[string][]string{}
			}
			spellings[key][name] = append(spellings[key][name], profile.Name)
		}
	}

	for _, key := range sortedKeys(spellings) {
		variants := spellings[key]
		if len(variants) < 2 {
			continue
		}
		parts := make([]string, 0, len(variants))
		for _, spelling := range sortedKeys(variants) {
			parts = append(parts, fmt.Sprintf("%s (%s)", spelling, strings.Join(variants[spelling], ", ")))
		}
		result = append(result, warnf("profiles", []string{"type", key}, "type name spelled differently across profiles: %s", strings.Join(parts, "; ")))
	}

	sortViolations(result)
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out[trimmed] = struct{}{}
		}
	}
	return out
}
