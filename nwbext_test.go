package nwbext_test

import (
	"context"
	"strings"
	"testing"

	nwbext "github.com/goliatone/go-nwbext"
	"github.com/goliatone/go-nwbext/pkg/profiles"
)

func TestExportProfile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path, err := nwbext.ExportProfile(profiles.NameTimer, dir, nwbext.Metadata{Version: "0.3"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	cat, err := nwbext.LoadCatalog(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cat.Namespaces[0].Version; got != "0.3" {
		t.Fatalf("expected overridden version, got %q", got)
	}

	md, err := nwbext.RenderMarkdown(cat)
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if !strings.Contains(string(md), "`timer_version`") {
		t.Fatalf("expected timer_version in markdown:\n%s", md)
	}

	spec, err := nwbext.RenderOpenAPI(ctx, cat)
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	if !strings.Contains(string(spec), `"ScanImageMetaData"`) {
		t.Fatalf("expected schema name in openapi output")
	}
}

func TestExportProfile_Unknown(t *testing.T) {
	if _, err := nwbext.ExportProfile("nope", t.TempDir(), nwbext.Metadata{}); err == nil {
		t.Fatalf("expected unknown profile to fail")
	}
}

func TestNewNamespace(t *testing.T) {
	b := nwbext.NewNamespace("doc", "name")
	if b.Metadata().Name != "name" || len(nwbext.DefaultProfiles().List()) != 3 {
		t.Fatalf("unexpected facade state")
	}
}
