package spec_test

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nwbext/pkg/spec"
)

func TestDType_MarshalYAMLPrimitive(t *testing.T) {
	out, err := yaml.Marshal(map[string]spec.DType{"dtype": spec.IsoDatetime})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "dtype: isodatetime" {
		t.Fatalf("unexpected yaml %q", got)
	}
}

func TestDType_CompoundKeepsColumnOrder(t *testing.T) {
	dtype := spec.Compound(
		spec.NewColumn("name", "Cycle file name", spec.Text),
		spec.NewColumn("path", "Cycle path location", spec.Text),
	)

	out, err := yaml.Marshal(spec.NewDataset("cycles", "cycle_table", dtype))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded spec.Dataset
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.DType.IsCompound() {
		t.Fatalf("expected compound dtype, got %q", decoded.DType)
	}
	if !decoded.DType.Equal(dtype) {
		t.Fatalf("dtype mismatch: want %s got %s", dtype, decoded.DType)
	}
	cols := decoded.DType.Columns()
	if cols[0].Name != "name" || cols[1].Name != "path" {
		t.Fatalf("column order changed: %+v", cols)
	}
}

func TestDType_UnknownPrimitiveIsCarried(t *testing.T) {
	var ds spec.Dataset
	if err := yaml.Unmarshal([]byte("name: x\ndoc: y\ndtype: float128\n"), &ds); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ds.DType.Name() != "float128" {
		t.Fatalf("expected dtype to be carried verbatim, got %q", ds.DType.Name())
	}
}

func TestDType_RejectsMappingNode(t *testing.T) {
	var ds spec.Dataset
	err := yaml.Unmarshal([]byte("name: x\ndtype:\n  a: b\n"), &ds)
	if err == nil {
		t.Fatalf("expected mapping dtype to be rejected")
	}
}

func TestDType_JSONMatchesYAMLLayout(t *testing.T) {
	dtype := spec.Compound(spec.NewColumn("name", "n", spec.Text))
	payload, err := json.Marshal(dtype)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `[{"name":"name","doc":"n","dtype":"text"}]` {
		t.Fatalf("unexpected json %s", payload)
	}

	var decoded spec.DType
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(dtype) {
		t.Fatalf("dtype mismatch after json decode: %s", decoded)
	}

	if err := json.Unmarshal([]byte(`"int"`), &decoded); err != nil {
		t.Fatalf("unmarshal primitive: %v", err)
	}
	if !decoded.Equal(spec.Int) {
		t.Fatalf("expected int, got %s", decoded)
	}
}

func TestDType_String(t *testing.T) {
	dtype := spec.Compound(
		spec.NewColumn("name", "", spec.Text),
		spec.NewColumn("path", "", spec.Text),
	)
	if got := dtype.String(); got != "[name:text, path:text]" {
		t.Fatalf("unexpected string %q", got)
	}
	if !(spec.DType{}).IsZero() {
		t.Fatalf("zero dtype should report IsZero")
	}
}
