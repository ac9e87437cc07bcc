package metrica

import (
	"fmt"
	"slices"
)

const (
	endecasillabo = "Endecasillabo"
	settenario    = "Settenario"
)

// Classify names a verse from its metrical count, accent pattern and
// grammatical count, and returns the count the name implies.
//
// The hendecasyllable is tried first, then the settenario; any other
// verse is named from its count alone. Note that every count from 10 to
// 12 is read as a hendecasyllable, which also captures genuine
// decasillabi and dodecasillabi.
func Classify(metricalCount int, accents []int, grammaticalCount int) Classification {
	if metricalCount == 11 ||
		HasHendecasyllableRhythm(accents, grammaticalCount) ||
		(metricalCount >= 10 && metricalCount <= 12) {
		return Classification{Type: endecasillabo, AdjustedCount: 11}
	}

	if metricalCount == 7 ||
		((metricalCount == 6 || metricalCount == 8) && HasSettenarioRhythm(accents)) {
		return Classification{Type: settenario, AdjustedCount: 7}
	}

	return Classification{Type: ClassifyVerse(metricalCount), AdjustedCount: metricalCount}
}

// ClassifyVerse returns the traditional name of a verse of count syllables.
func ClassifyVerse(count int) string {
	if name, ok := verseNames[count]; ok {
		return name
	}
	return fmt.Sprintf("Verso di %d sillabe", count)
}

// IsNamedVerse reports whether name is one of the traditional verse names
// returned by ClassifyVerse, as opposed to the "Verso di N sillabe" form.
func IsNamedVerse(name string) bool {
	for _, n := range verseNames {
		if n == name {
			return true
		}
	}
	return false
}

// HasHendecasyllableRhythm reports whether accents look like a
// hendecasyllable: the principal accent on index 10 with a secondary one
// on 4, 6 or 8 (a minore / a maiore), one of the Dantean rhythms, or a
// verse of 9 or 10 grammatical syllables stressed on 4, 6 or 8, where an
// elision was most likely missed.
func HasHendecasyllableRhythm(accents []int, grammaticalCount int) bool {
	has := func(i int) bool { return slices.Contains(accents, i) }
	secondary := has(4) || has(6) || has(8)

	if has(10) && secondary {
		return true
	}
	for _, rhythm := range danteanRhythms {
		if containsAll(accents, rhythm) {
			return true
		}
	}
	return (grammaticalCount == 9 || grammaticalCount == 10) && secondary
}

// HasSettenarioRhythm reports whether accents carry the settenario's
// principal stress on index 5 or 6.
func HasSettenarioRhythm(accents []int) bool {
	return slices.Contains(accents, 5) || slices.Contains(accents, 6)
}

func containsAll(accents, want []int) bool {
	for _, i := range want {
		if !slices.Contains(accents, i) {
			return false
		}
	}
	return true
}
