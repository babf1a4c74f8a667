package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-nwbext/pkg/lint"
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

// ErrLintFailed is returned when lint reports error-severity violations,
// or any violation under --strict.
var ErrLintFailed = errors.New("lint: violations found")

// LintCmd checks namespace documents.
type LintCmd struct {
	Paths     []string `arg:"" optional:"" name:"path" help:"Namespace documents to check." type:"existingfile"`
	Profiles  bool     `help:"Also check the registered profiles and compare their type names."`
	BaseTypes []string `name:"base-type" help:"Additional allowed neurodata_type_inc values."`
	DTypes    []string `name:"dtype" help:"Additional allowed primitive dtypes."`
	Strict    bool     `help:"Fail on warnings too."`
}

func (c *LintCmd) Run(ctx context.Context, logger zerolog.Logger, out io.Writer, registry *profiles.Registry) error {
	var opts []lint.Option
	if len(c.BaseTypes) > 0 {
		opts = append(opts, lint.WithBaseTypes(c.BaseTypes...))
	}
	if len(c.DTypes) > 0 {
		opts = append(opts, lint.WithDTypes(c.DTypes...))
	}

	var violations []lint.Violation
	for _, path := range c.Paths {
		cat, err := namespace.LoadFile(ctx, path)
		if err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}
		violations = append(violations, lint.Catalog(cat, opts...)...)
	}
	if c.Profiles || len(c.Paths) == 0 {
		violations = append(violations, lint.Profiles(registry, opts...)...)
	}

	for _, v := range violations {
		fmt.Fprintln(out, v.String())
	}
	logger.Debug().Int("violations", len(violations)).Int("files", len(c.Paths)).Msg("lint finished")

	if lint.HasErrors(violations) || (c.Strict && len(violations) > 0) {
		return ErrLintFailed
	}
	return nil
}
