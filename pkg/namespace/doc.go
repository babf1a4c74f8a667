// Package namespace bundles group definitions under an authored, versioned
// NWB namespace and writes the namespace and specification YAML documents.
//
// The flow is linear: New, AddSpec once per group, then Export. The builder
// does not validate the groups it is given; run package lint over the
// resulting Catalog when checks are needed.
package namespace
