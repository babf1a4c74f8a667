package docgen

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	docPolicyOnce sync.Once
	docPolicy     *bluemonday.Policy
)

// sanitizeDoc strips every HTML element from free text. The policy escapes
// the text it keeps; that is undone since the output is Markdown, not HTML.
func sanitizeDoc(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(docSanitizer().Sanitize(trimmed)))
}

// plainText is used for identity fields (names, versions, contacts) which
// are rendered as written.
func plainText(raw string) string {
	return strings.TrimSpace(raw)
}

func docSanitizer() *bluemonday.Policy {
	docPolicyOnce.Do(func() {
		docPolicy = bluemonday.StrictPolicy()
	})
	return docPolicy
}
