package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-nwbext/pkg/docgen"
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/oas"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

// CatalogSource selects the catalog a rendering command works on.
type CatalogSource struct {
	Profile   string `arg:"" optional:"" help:"Registered profile to render."`
	Namespace string `help:"Namespace document to render instead of a profile." type:"existingfile"`
	Out       string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (s CatalogSource) catalog(ctx context.Context, registry *profiles.Registry) (namespace.Catalog, error) {
	switch {
	case s.Namespace != "" && s.Profile != "":
		return namespace.Catalog{}, errors.New("give either a profile or --namespace, not both")
	case s.Namespace != "":
		return namespace.LoadFile(ctx, s.Namespace)
	case s.Profile == "":
		return namespace.Catalog{}, errors.New("a profile or --namespace is required")
	}

	profile, err := registry.Get(s.Profile)
	if err != nil {
		return namespace.Catalog{}, err
	}
	return profile.Builder(namespace.Metadata{}).Catalog(profile.NamespaceFile), nil
}

func (s CatalogSource) write(logger zerolog.Logger, stdout io.Writer, data []byte) error {
	if s.Out == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.Out, data, 0o644); err != nil {
		return err
	}
	logger.Info().Str("path", s.Out).Int("bytes", len(data)).Msg("wrote output")
	return nil
}

// DocsCmd renders a Markdown reference page.
type DocsCmd struct {
	CatalogSource `embed:""`
	Template      string `help:"Template directory overriding the built-in templates." type:"existingdir"`
}

func (c *DocsCmd) Run(ctx context.Context, logger zerolog.Logger, out io.Writer, registry *profiles.Registry) error {
	cat, err := c.catalog(ctx, registry)
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}

	var opts []docgen.Option
	if c.Template != "" {
		opts = append(opts, docgen.WithTemplates(os.DirFS(c.Template)))
	}
	generator, err := docgen.New(opts...)
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	data, err := generator.Render(cat)
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	return c.write(logger, out, data)
}

// OpenAPICmd renders OpenAPI component schemas as JSON.
type OpenAPICmd struct {
	CatalogSource `embed:""`
}

func (c *OpenAPICmd) Run(ctx context.Context, logger zerolog.Logger, out io.Writer, registry *profiles.Registry) error {
	cat, err := c.catalog(ctx, registry)
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	data, err := oas.Marshal(ctx, cat)
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return c.write(logger, out, data)
}
