package metrica

import "strings"

// IdentifyVowelGroup reports the first vowel group contained in syllable,
// looking for triphthongs, then diphthongs, then hiatuses. A diphthong
// that is part of a hiatus sequence present in the syllable is skipped.
func IdentifyVowelGroup(syllable string) VowelGroup {
	s := strings.ToLower(syllable)

	for _, tri := range triphthongList {
		if strings.Contains(s, tri) {
			return VowelGroup{Type: Triphthong, Sequence: tri}
		}
	}
	for _, di := range diphthongList {
		if strings.Contains(s, di) && !partOfHiatus(s, di) {
			return VowelGroup{Type: Diphthong, Sequence: di}
		}
	}
	for _, hi := range hiatusList {
		if strings.Contains(s, hi) {
			return VowelGroup{Type: Hiatus, Sequence: hi}
		}
	}
	return VowelGroup{Type: Normal}
}

func partOfHiatus(s, di string) bool {
	for _, hi := range hiatusList {
		if strings.Contains(s, hi) && strings.Contains(hi, di) {
			return true
		}
	}
	return false
}
