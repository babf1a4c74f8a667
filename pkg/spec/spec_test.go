package spec_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nwbext/pkg/spec"
)

func TestNewGroup_Defaults(t *testing.T) {
	group := spec.NewGroup("Associated Cycle Files", "cycle_file", spec.WithTypeDef("CycleFiles"))

	if group.TypeInc != spec.BaseLabMetaData {
		t.Fatalf("expected default base type %q, got %q", spec.BaseLabMetaData, group.TypeInc)
	}
	if group.TypeDef != "CycleFiles" {
		t.Fatalf("expected type def CycleFiles, got %q", group.TypeDef)
	}
	if group.Datasets == nil || group.Attributes == nil {
		t.Fatalf("expected non-nil empty collections")
	}
}

func TestNewGroup_CapturesFieldsVerbatim(t *testing.T) {
	datasets := []spec.Dataset{
		spec.NewDataset("Software timer version", "software_timer_version", spec.Int),
		spec.NewDataset("startup time", "startup_time", spec.IsoDatetime),
	}
	attrs := []spec.Attribute{spec.HelpAttribute("Software timer version", "software timer version")}

	group := spec.NewGroup("ScanImage-specific metadata", "scanimage_metadata",
		spec.WithDatasets(datasets...),
		spec.WithAttributes(attrs...),
		spec.WithTypeDef("ScanImageMetaData"),
	)

	datasets[0].Name = "mutated"

	want := spec.Group{
		TypeDef: "ScanImageMetaData",
		TypeInc: "LabMetaData",
		Name:    "scanimage_metadata",
		Doc:     "ScanImage-specific metadata",
		Datasets: []spec.Dataset{
			{Name: "software_timer_version", Doc: "Software timer version", DType: spec.Int},
			{Name: "startup_time", Doc: "startup time", DType: spec.IsoDatetime},
		},
		Attributes: []spec.Attribute{
			{Name: "help", Doc: "Software timer version", DType: spec.Text, Value: "software timer version"},
		},
	}
	if diff := cmp.Diff(want, group); diff != "" {
		t.Fatalf("group mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_EmptyCollectionsAreEmitted(t *testing.T) {
	group := spec.NewGroup("empty", "empty_group", spec.WithTypeDef("Empty"))

	out, err := yaml.Marshal(group)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(out)
	for _, want := range []string{"datasets: []", "attributes: []"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}
}

func TestGroup_KeyOrder(t *testing.T) {
	group := spec.NewGroup("doc", "name", spec.WithTypeDef("Def"))
	out, err := yaml.Marshal(group)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	keys := []string{"neurodata_type_def:", "neurodata_type_inc:", "name:", "doc:", "datasets:", "attributes:"}
	last := -1
	for _, key := range keys {
		idx := strings.Index(string(out), key)
		if idx <= last {
			t.Fatalf("key %q out of order in:\n%s", key, out)
		}
		last = idx
	}
}

func TestGroup_CloneAndLookup(t *testing.T) {
	group := spec.NewGroup("doc", "name",
		spec.WithDatasets(spec.NewDataset("d", "timer_version", spec.Int)),
		spec.WithAttributes(spec.HelpAttribute("h", "help text")),
		spec.WithBaseType("NWBDataInterface"),
	)
	clone := group.Clone()
	clone.Datasets[0].Name = "changed"

	if _, ok := group.Dataset("timer_version"); !ok {
		t.Fatalf("clone shares dataset storage with original")
	}
	attr, ok := group.Attribute("help")
	if !ok || attr.Value != "help text" {
		t.Fatalf("expected help attribute, got %+v", attr)
	}
	if group.TypeInc != "NWBDataInterface" {
		t.Fatalf("expected overridden base type, got %q", group.TypeInc)
	}
}
