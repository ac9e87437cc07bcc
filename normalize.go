package metrica

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// quoteReplacer folds typographic quotes and apostrophes onto their ASCII
// forms, so that "ch’io" and "ch'io" are the same word.
var quoteReplacer = strings.NewReplacer(
	"’", "'", // ’ → '
	"‘", "'", // ‘ → '
	"ʼ", "'", // ʼ → '
	"“", `"`, // “ → "
	"”", `"`, // ” → "
	"«", `"`, // « → "
	"»", `"`, // » → "
)

// isEdgePunct reports whether r is one of the marks stripped from both
// ends of a word: . , ; : ! ? ' " ) ( -
func isEdgePunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '\'', '"', ')', '(', '-':
		return true
	}
	return unicode.IsSpace(r)
}

// Normalize returns the canonical form of a word: typographic quotes
// folded, lower-cased, NFC-composed, and stripped of surrounding
// whitespace and punctuation. Normalize is idempotent.
func Normalize(word string) string {
	if word == "" {
		return ""
	}
	word = quoteReplacer.Replace(word)
	word = norm.NFC.String(strings.ToLower(word))
	return strings.TrimFunc(word, isEdgePunct)
}

// Words splits a verse into its whitespace-separated tokens.
func Words(verse string) []string {
	return strings.Fields(verse)
}
