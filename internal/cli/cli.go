// Package cli implements the nwbext command tree. Commands receive their
// collaborators through kong bindings so tests can run them without a
// terminal.
package cli

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-nwbext/pkg/profiles"
	"github.com/goliatone/go-nwbext/pkg/prompt"
)

// CLI is the root command.
type CLI struct {
	Config string     `help:"YAML configuration file; flags override its values." type:"path" env:"NWBEXT_CONFIG"`
	Log    LogOptions `embed:"" prefix:"log-"`

	Generate GenerateCmd `cmd:"" help:"Export schema profiles as NWB namespace and spec documents."`
	List     ListCmd     `cmd:"" help:"List registered schema profiles."`
	Lint     LintCmd     `cmd:"" help:"Check namespace documents for structural problems."`
	Docs     DocsCmd     `cmd:"" help:"Render a Markdown reference for a profile or namespace document."`
	OpenAPI  OpenAPICmd  `cmd:"" name:"openapi" help:"Render OpenAPI component schemas for a profile or namespace document."`
}

// Deps are the collaborators bound into every command.
type Deps struct {
	Logger   zerolog.Logger
	Registry *profiles.Registry
	Driver   prompt.Driver
	Stdout   io.Writer
}

// Run binds deps and runs the selected command.
func Run(ctx context.Context, kctx *kong.Context, deps Deps) error {
	if deps.Registry == nil {
		deps.Registry = profiles.Default()
	}
	if deps.Driver == nil {
		deps.Driver = prompt.NewSurveyDriver()
	}
	if deps.Stdout == nil {
		deps.Stdout = kctx.Stdout
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(deps.Logger)
	kctx.Bind(deps.Registry)
	kctx.BindTo(deps.Driver, (*prompt.Driver)(nil))
	kctx.BindTo(deps.Stdout, (*io.Writer)(nil))
	return kctx.Run()
}

// Options returns the kong options shared by the binary and tests.
func Options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("nwbext"),
		kong.Description("Assemble and export NWB lab metadata extensions."),
		kong.UsageOnError(),
		kong.Configuration(yamlLoader, configPaths...),
	}
}
