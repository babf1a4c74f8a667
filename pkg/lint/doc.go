// Package lint checks namespace catalogs for the structural rules NWB
// tooling expects from an extension: one type definition per group, a known
// base type, unique type and group names, and dtypes from the supported
// vocabulary. Violations are collected, never fixed.
package lint
