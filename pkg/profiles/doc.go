// Package profiles holds the named ScanImage schema variants. Each profile is
// a complete, independent namespace definition; profiles that reuse a type
// name are never merged, and lint.Profiles reports names that collide by case.
package profiles
