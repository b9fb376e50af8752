package definition

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips every HTML element from builder-authored text. Form
// definitions are written by moderators and rendered to other users, so
// labels, titles, and descriptions are treated as plain text only.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := sanitizer().Sanitize(trimmed)
	// StrictPolicy entity-escapes what it keeps; undo that so "Why?" does
	// not round-trip as "Why&#63;" in narratives and prompts.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
