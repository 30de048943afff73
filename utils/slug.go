package utils

import (
	"strings"
	"unicode"
)

// Slugify turns a display title into a lowercase token usable for equality
// comparison across tables ("Home  Repair!" -> "home-repair"). Idempotent.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// KeywordOverlap reports whether phrase occurs in text, either literally as a
// substring or through a shared word longer than minWordLen characters. This
// is the keyword-overlap strategy used for category inference; the thresholds
// (3 for taxonomy names, 2 for free-text custom subcategories) are part of
// the ranking contract.
func KeywordOverlap(text, phrase string, minWordLen int) bool {
	text = strings.ToLower(text)
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	if len(phrase) > minWordLen && strings.Contains(text, phrase) {
		return true
	}
	textWords := make(map[string]bool)
	for _, w := range splitWords(text) {
		textWords[w] = true
	}
	for _, w := range splitWords(phrase) {
		if len(w) > minWordLen && textWords[w] {
			return true
		}
	}
	return false
}
