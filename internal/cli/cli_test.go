package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-nwbext/internal/cli"
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/profiles"
	"github.com/goliatone/go-nwbext/pkg/prompt"
	"github.com/goliatone/go-nwbext/pkg/testsupport"
)

type scriptedDriver struct {
	answers map[string]string
	confirm bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if answer, ok := d.answers[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func execute(t *testing.T, driver prompt.Driver, args ...string) (string, error) {
	t.Helper()

	var root cli.CLI
	var stdout bytes.Buffer
	options := append(cli.Options(),
		kong.Writers(&stdout, &stdout),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	parser, err := kong.New(&root, options...)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = cli.Run(context.Background(), kctx, cli.Deps{
		Logger: zerolog.Nop(),
		Driver: driver,
		Stdout: &stdout,
	})
	return stdout.String(), err
}

func TestGenerate_SingleProfileWritesIntoOut(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, nil, "generate", "cycle-files", "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{profiles.ScanImageNamespaceFile, profiles.ScanImageSource} {
		want := testsupport.MustLoadYAML(t, filepath.Join("..", "..", "extensions", "cycle-files", name))
		got := testsupport.MustLoadYAML(t, filepath.Join(dir, name))
		assert.Empty(t, testsupport.CompareGolden(want, got), name)
	}
}

func TestGenerate_AllProfilesNestedPerProfile(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, nil, "generate", "--all", "--out", dir)
	require.NoError(t, err)

	for _, name := range profiles.Default().List() {
		assert.FileExists(t, filepath.Join(dir, name, profiles.ScanImageNamespaceFile))
		assert.FileExists(t, filepath.Join(dir, name, profiles.ScanImageSource))
	}
}

func TestGenerate_MetadataOverrides(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, nil, "generate", "timer", "--out", dir, "--version", "0.2", "--author", "Lab Team")
	require.NoError(t, err)

	cat, err := namespace.LoadFile(context.Background(), filepath.Join(dir, profiles.ScanImageNamespaceFile))
	require.NoError(t, err)
	require.Len(t, cat.Namespaces, 1)
	assert.Equal(t, "0.2", cat.Namespaces[0].Version)
	assert.Equal(t, "Lab Team", cat.Namespaces[0].Author)
	assert.Equal(t, "lawrence@vidriotech.com", cat.Namespaces[0].Contact)
}

func TestGenerate_Interactive(t *testing.T) {
	dir := t.TempDir()
	driver := &scriptedDriver{
		answers: map[string]string{"Contact": "lab@example.org"},
		confirm: true,
	}

	_, err := execute(t, driver, "generate", "notes", "--out", dir, "--interactive")
	require.NoError(t, err)

	cat, err := namespace.LoadFile(context.Background(), filepath.Join(dir, profiles.ScanImageNamespaceFile))
	require.NoError(t, err)
	assert.Equal(t, "lab@example.org", cat.Namespaces[0].Contact)
	assert.Equal(t, "0.1", cat.Namespaces[0].Version)
}

func TestGenerate_InteractiveDeclined(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, &scriptedDriver{}, "generate", "notes", "--out", dir, "-i")
	assert.ErrorIs(t, err, prompt.ErrDeclined)
	assert.NoFileExists(t, filepath.Join(dir, profiles.ScanImageNamespaceFile))
}

func TestGenerate_UnknownProfile(t *testing.T) {
	_, err := execute(t, nil, "generate", "missing", "--out", t.TempDir())
	assert.ErrorIs(t, err, profiles.ErrNotFound)
}

func TestList(t *testing.T) {
	out, err := execute(t, nil, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "cycle-files")
	assert.Contains(t, out, "ScanImageMetaData,CycleFiles")
	assert.Contains(t, out, "ScanImageMetadata")
}

func TestLint_CleanDocument(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, nil, "generate", "cycle-files", "--out", dir)
	require.NoError(t, err)

	out, err := execute(t, nil, "lint", filepath.Join(dir, profiles.ScanImageNamespaceFile))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLint_ReportsErrors(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "broken.namespace.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte(`namespaces:
  - doc: Broken extension
    name: broken
    schema:
      - source: broken.specs.yaml
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.specs.yaml"), []byte(`groups:
  - neurodata_type_def: Broken
    neurodata_type_inc: NWBFile
    name: broken
    doc: Broken group
    datasets: []
    attributes: []
`), 0o644))

	out, err := execute(t, nil, "lint", nsPath)
	assert.ErrorIs(t, err, cli.ErrLintFailed)
	assert.Contains(t, out, "version is required")
	assert.Contains(t, out, `neurodata_type_inc "NWBFile"`)

	_, err = execute(t, nil, "lint", nsPath, "--base-type", "NWBFile")
	assert.ErrorIs(t, err, cli.ErrLintFailed, "missing version is still an error")
}

func TestLint_ProfilesWarnOnly(t *testing.T) {
	out, err := execute(t, nil, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "spelled differently")

	_, err = execute(t, nil, "lint", "--strict")
	assert.ErrorIs(t, err, cli.ErrLintFailed)
}

func TestDocs_Profile(t *testing.T) {
	out, err := execute(t, nil, "docs", "cycle-files")
	require.NoError(t, err)

	assert.Contains(t, out, "# sb_scanimage 0.1")
	assert.Contains(t, out, "## ScanImageMetaData")
	assert.Contains(t, out, "## CycleFiles")
}

func TestDocs_NamespaceFileToOut(t *testing.T) {
	target := filepath.Join(t.TempDir(), "docs", "timer.md")
	nsPath := filepath.Join("..", "..", "extensions", "timer", profiles.ScanImageNamespaceFile)

	out, err := execute(t, nil, "docs", "--namespace", nsPath, "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timer_version")
}

func TestDocs_RequiresSource(t *testing.T) {
	_, err := execute(t, nil, "docs")
	assert.ErrorContains(t, err, "a profile or --namespace is required")
}

func TestOpenAPI_Profile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "notes.json")

	_, err := execute(t, nil, "openapi", "notes", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var doc struct {
		OpenAPI    string `json:"openapi"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Components.Schemas, "ScanImageMetadata")
}

func TestFindUserConfig(t *testing.T) {
	t.Setenv(cli.ConfigEnv, "")

	assert.Equal(t, "a.yaml", cli.FindUserConfig([]string{"generate", "--config", "a.yaml"}))
	assert.Equal(t, "b.yaml", cli.FindUserConfig([]string{"--config=b.yaml", "list"}))
	assert.Equal(t, "", cli.FindUserConfig([]string{"list"}))

	t.Setenv(cli.ConfigEnv, "env.yaml")
	assert.Equal(t, "env.yaml", cli.FindUserConfig([]string{"list"}))
}

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	paths := cli.ConfigCandidatePaths("custom.yaml")
	assert.Equal(t, []string{
		"custom.yaml",
		"nwbext.yaml",
		"nwbext.yml",
		filepath.Join("/tmp/xdg", "nwbext", "config.yaml"),
		filepath.Join("/tmp/xdg", "nwbext", "config.yml"),
	}, paths)
}

func TestNewLogger_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := cli.NewLogger(cli.LogOptions{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("profile", "timer").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "timer", line["profile"])
}
