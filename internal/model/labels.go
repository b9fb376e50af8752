package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field id into a presentable label. It splits on
// underscores, dashes, whitespace, and camelCase boundaries, then
// title-cases each word. The builder applies it when a field is created
// without a label.
func DefaultLabeler(id string) string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.ToLower(current.String())
		words = append(words, strings.ToUpper(word[:1])+word[1:])
		current.Reset()
	}

	var prev rune
	for _, r := range id {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case current.Len() > 0 && wordBoundary(prev, r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()

	return strings.Join(words, " ")
}

func wordBoundary(prev, r rune) bool {
	if unicode.IsLower(prev) && unicode.IsUpper(r) {
		return true
	}
	if unicode.IsLetter(prev) && unicode.IsDigit(r) {
		return true
	}
	return unicode.IsDigit(prev) && unicode.IsLetter(r)
}
