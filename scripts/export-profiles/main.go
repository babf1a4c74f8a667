package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/goliatone/go-nwbext/internal/cli"
	"github.com/goliatone/go-nwbext/pkg/lint"
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

func main() {
	var (
		outDir   = flag.String("out", "extensions", "directory receiving one subdirectory per profile")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	logger := cli.NewLogger(cli.LogOptions{Level: *logLevel}, os.Stderr)
	registry := profiles.Default()

	for _, profile := range registry.Profiles() {
		dir := filepath.Join(*outDir, profile.Name)
		path, err := profile.Export(dir, namespace.Metadata{})
		if err != nil {
			logger.Fatal().Err(err).Str("profile", profile.Name).Msg("export failed")
		}
		logger.Info().Str("profile", profile.Name).Str("namespace", path).Msg("exported")
	}

	for _, v := range lint.Profiles(registry) {
		event := logger.Warn()
		if v.Severity == lint.SeverityError {
			event = logger.Error()
		}
		event.Str("file", v.File).Str("location", v.Location).Msg(v.Message)
	}
}
