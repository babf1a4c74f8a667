package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/profiles"
	"github.com/goliatone/go-nwbext/pkg/prompt"
)

// GenerateCmd exports profiles to disk.
type GenerateCmd struct {
	Profiles    []string `arg:"" optional:"" name:"profile" help:"Profiles to export. Defaults to every registered profile."`
	All         bool     `help:"Export every registered profile."`
	Out         string   `short:"o" help:"Output directory." default:"extensions" type:"path"`
	Version     string   `help:"Override the namespace version."`
	Author      string   `help:"Override the namespace author."`
	Contact     string   `help:"Override the namespace contact."`
	Interactive bool     `short:"i" help:"Prompt for namespace metadata before each export."`
}

// Run exports each selected profile. A single named profile is written
// straight into --out; several are written into --out/<profile>.
func (c *GenerateCmd) Run(ctx context.Context, logger zerolog.Logger, registry *profiles.Registry, driver prompt.Driver) error {
	names := c.Profiles
	nested := true
	switch {
	case c.All || len(names) == 0:
		names = registry.List()
	case len(names) == 1:
		nested = false
	}
	if len(names) == 0 {
		return fmt.Errorf("generate: no profiles registered")
	}

	overrides := namespace.Metadata{Version: c.Version, Author: c.Author, Contact: c.Contact}
	for _, name := range names {
		profile, err := registry.Get(name)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		meta := overrides
		if c.Interactive {
			answered, err := prompt.Metadata(ctx, driver, profile.Metadata.Merge(overrides))
			if err != nil {
				return fmt.Errorf("generate %s: %w", name, err)
			}
			meta = answered
		}

		dir := c.Out
		if nested {
			dir = filepath.Join(c.Out, name)
		}
		path, err := profile.Export(dir, meta)
		if err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		logger.Info().
			Str("profile", name).
			Str("namespace", path).
			Strs("types", profile.TypeNames()).
			Msg("exported extension")
	}
	return nil
}
