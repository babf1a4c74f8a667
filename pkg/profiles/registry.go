package profiles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when a profile name is not registered.
var ErrNotFound = errors.New("profiles: profile not found")

// Registry stores profiles by name and guards against duplicates.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]Profile),
	}
}

// Register adds a profile by its Name. Duplicate names return an error.
func (r *Registry) Register(profile Profile) error {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return fmt.Errorf("profiles: profile name is required")
	}
	if profile.Groups == nil {
		return fmt.Errorf("profiles: profile %q has no groups", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[name]; exists {
		return fmt.Errorf("profiles: profile %q already registered", name)
	}
	profile.Name = name
	r.profiles[name] = profile
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(profile Profile) {
	if err := r.Register(profile); err != nil {
		panic(err)
	}
}

// Get retrieves a profile by name.
func (r *Registry) Get(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[strings.TrimSpace(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return profile, nil
}

// List returns a sorted list of profile names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns every registered profile sorted by name.
func (r *Registry) Profiles() []Profile {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Profile, 0, len(names))
	for _, name := range names {
		out = append(out, r.profiles[name])
	}
	return out
}

// Has reports whether a profile is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[name]
	return ok
}

// Default returns a registry populated with the built-in ScanImage profiles.
func Default() *Registry {
	registry := NewRegistry()
	registry.MustRegister(CycleFiles())
	registry.MustRegister(Timer())
	registry.MustRegister(Notes())
	return registry
}
