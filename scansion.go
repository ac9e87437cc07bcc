package metrica

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// endsWithVowelRe and startsWithVowelRe test the syllables that meet
	// at a word boundary.
	endsWithVowelRe   = regexp.MustCompile(`[aeiouàèéìòóù]$`)
	startsWithVowelRe = regexp.MustCompile(`^[aeiouàèéìòóù]`)

	// specialElisionRe matches archaic contractions such as "ch'io" and
	// "s'ei".
	specialElisionRe = regexp.MustCompile(`^[cs]h'[ei]`)
)

// CountMetricSyllables scans one verse.
//
// The grammatical count is the sum of the words' syllables. Each
// synaloepha between a vowel-final word and a vowel-initial one removes a
// syllable, unless both words are atonic monosyllables. Archaic
// contractions remove one more syllable from verses still longer than a
// hendecasyllable, and a nine-syllable verse with an apostrophe and no
// synaloepha loses one for the elision it hides. The verse classifier
// then names the verse and may adjust the count.
func CountMetricSyllables(verse string) MetricalResult {
	words := Words(verse)

	grammatical := 0
	for _, w := range words {
		grammatical += len(Syllabify(w))
	}

	metrical := grammatical
	sinalefi := []string{}

	for i := 0; i+1 < len(words); i++ {
		cur := Normalize(words[i])
		next := Normalize(words[i+1])
		if elisionAtonicMonosyllables[cur] && elisionAtonicMonosyllables[next] {
			continue
		}
		curSyl := Syllabify(cur)
		nextSyl := Syllabify(next)
		if len(curSyl) == 0 || len(nextSyl) == 0 {
			continue
		}
		if endsWithVowelRe.MatchString(curSyl[len(curSyl)-1]) && startsWithVowelRe.MatchString(nextSyl[0]) {
			metrical--
			sinalefi = append(sinalefi, cur+"-"+next)
		}
	}

	for _, w := range words {
		word := Normalize(w)
		if specialElisionRe.MatchString(word) && metrical > 11 {
			metrical--
			sinalefi = append(sinalefi, word+"-elisione speciale")
		}
	}

	if grammatical == 9 && len(sinalefi) == 0 {
		for _, w := range words {
			if strings.Contains(quoteReplacer.Replace(w), "'") && metrical == 9 {
				metrical--
				sinalefi = append(sinalefi, fmt.Sprintf("%s-elision effect", Normalize(w)))
			}
		}
	}

	accents := DetectAccentPattern(words)
	class := Classify(metrical, accents, grammatical)

	return MetricalResult{
		Count:            class.AdjustedCount,
		GrammaticalCount: grammatical,
		ElidedCount:      metrical,
		Type:             class.Type,
		Accents:          accents,
		Sinalefi:         sinalefi,
		Dialefi:          []string{},
	}
}
