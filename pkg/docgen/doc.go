// Package docgen renders a Markdown reference page for an NWB extension
// catalog. Templates are pongo2 (Django-style) files; the built-in
// extension.md.tpl can be replaced with WithTemplates. Free-text doc strings
// are stripped of markup before rendering.
package docgen
