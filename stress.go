package metrica

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// oxytoneEndingRe matches unaccented or accented endings of words stressed
// on the last syllable.
var oxytoneEndingRe = regexp.MustCompile(`(?:[aeiou]tà|[aeiou]tù|[aeiou]chè|[aeiou]ché|ità|età|[aeiou]zione)$`)

// DetectAccentPattern returns the verse syllable indices (0-based, counted
// across all words) that carry a tonic accent, one per stressed word.
//
// An orthographic accent decides first; otherwise oxytone endings put the
// stress on the last syllable, proparoxytone suffixes on the third from
// last, and every other polysyllable on the second from last.
// Monosyllables are stressed unless they are known atonic function words.
func DetectAccentPattern(words []string) []int {
	pattern := make([]int, 0, len(words))
	offset := 0
	for _, word := range words {
		clean := Normalize(word)
		syllables := Syllabify(clean)
		if idx, ok := stressedSyllable(clean, syllables); ok {
			pattern = append(pattern, offset+idx)
		}
		offset += len(syllables)
	}
	return pattern
}

// StressIndex returns the index of the stressed syllable within word, or
// -1 when the word carries no stress.
func StressIndex(word string) int {
	clean := Normalize(word)
	if idx, ok := stressedSyllable(clean, Syllabify(clean)); ok {
		return idx
	}
	return -1
}

// stressedSyllable locates the stress inside one normalized word.
func stressedSyllable(clean string, syllables []string) (int, bool) {
	n := len(syllables)
	switch {
	case n == 0:
		return 0, false
	case n == 1:
		return 0, IsTonicMonosyllable(clean)
	}

	if containsAccent(clean) {
		for i, s := range syllables {
			if containsAccent(s) {
				return i, true
			}
		}
	}
	if HasStressedEnding(clean) {
		return n - 1, true
	}
	if HasStressedAntepenultimate(clean) {
		return max(n-3, 0), true
	}
	return n - 2, true
}

// IsTonicMonosyllable reports whether a one-syllable word carries its own
// stress. Words in neither closed list are treated as tonic.
func IsTonicMonosyllable(word string) bool {
	w := Normalize(word)
	if tonicMonosyllables[w] {
		return true
	}
	return !stressAtonicMonosyllables[w]
}

// HasStressedEnding reports whether word is oxytone (parola tronca).
func HasStressedEnding(word string) bool {
	w := Normalize(word)
	if w == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(w)
	if accentedVowels[last] {
		return true
	}
	return oxytoneEndingRe.MatchString(w)
}

// HasStressedAntepenultimate reports whether word ends with a suffix of
// proparoxytone words (parola sdrucciola).
func HasStressedAntepenultimate(word string) bool {
	w := Normalize(word)
	for _, ending := range proparoxytoneEndings {
		if strings.HasSuffix(w, ending) {
			return true
		}
	}
	return false
}

func containsAccent(s string) bool {
	for _, r := range s {
		if accentedVowels[r] {
			return true
		}
	}
	return false
}
