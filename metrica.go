// Package metrica analyzes Italian verse: it splits words into syllables,
// tags diphthongs, triphthongs and hiatuses, locates the tonic accents,
// counts metrical syllables applying synaloepha, names the verse
// (endecasillabo, settenario, …) and extracts rhymes to build a poem's
// rhyme scheme.
//
// Every function is pure and safe for concurrent use. The heuristics are
// approximate: irregular verse gets a best-effort reading, never an error.
package metrica

import "strings"

// AnalyzeVerse scans verse and syllabifies each of its words. The rhyme
// letter and color are left empty; they only make sense within a poem.
func AnalyzeVerse(verse string) VerseAnalysis {
	verse = strings.TrimSpace(verse)
	words := Words(verse)

	va := VerseAnalysis{
		Verse:  verse,
		Metric: CountMetricSyllables(verse),
		Words:  make([][]Syllable, 0, len(words)),
	}
	for _, w := range words {
		va.Words = append(va.Words, SyllabifyWithVowelGroups(w))
	}
	if len(words) > 0 {
		va.LastWord = words[len(words)-1]
		va.Rhyme = Rhyme(va.LastWord)
	}
	return va
}

// AnalyzePoem analyzes every non-blank line of text as a verse and builds
// the poem's rhyme scheme and vowel-group statistics.
func AnalyzePoem(text string) PoemAnalysis {
	var (
		scheme  RhymeScheme
		letters strings.Builder
	)
	pa := PoemAnalysis{Verses: []VerseAnalysis{}}

	for _, line := range Verses(text) {
		va := AnalyzeVerse(line)
		va.RhymeLetter = scheme.Letter(va.Rhyme)
		va.RhymeColor = RhymeColor(va.Rhyme)
		letters.WriteString(va.RhymeLetter)

		for _, word := range va.Words {
			for _, s := range word {
				pa.Stats.add(s.VowelGroup)
			}
		}
		pa.Verses = append(pa.Verses, va)
	}

	pa.Scheme = letters.String()
	pa.Legend = scheme.Legend()
	return pa
}

// Verses splits a poem into its non-blank lines, trimmed.
func Verses(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
