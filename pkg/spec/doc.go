// Package spec declares the building blocks of an NWB extension: datasets,
// attributes and the group types that bundle them. Values are plain structs
// that serialise to the NWB specification YAML layout (neurodata_type_def,
// neurodata_type_inc, name, doc, datasets, attributes). Constructors copy
// their inputs so a declared group is never mutated by later edits to the
// slices it was built from.
package spec
