package metrica

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// RhymeScheme assigns letters to rhymes in order of first appearance.
// The zero value is ready to use. A RhymeScheme is not safe for
// concurrent use.
type RhymeScheme struct {
	letters map[string]string
	order   []string
}

// Letter returns the letter of rhyme, assigning the next free one when
// the rhyme has not been seen before.
func (s *RhymeScheme) Letter(rhyme string) string {
	if s.letters == nil {
		s.letters = make(map[string]string)
	}
	if l, ok := s.letters[rhyme]; ok {
		return l
	}
	l := schemeLetter(len(s.order))
	s.letters[rhyme] = l
	s.order = append(s.order, rhyme)
	return l
}

// Legend lists the rhymes seen so far with their letters and colors.
func (s *RhymeScheme) Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(s.order))
	for _, r := range s.order {
		out = append(out, LegendEntry{Letter: s.letters[r], Rhyme: r, Color: RhymeColor(r)})
	}
	return out
}

// schemeLetter returns "a" … "z" for the first 26 rhymes, then "a2",
// "b2", … and so on.
func schemeLetter(i int) string {
	l := string(rune('a' + i%26))
	if i >= 26 {
		l += strconv.Itoa(i/26 + 1)
	}
	return l
}

// RhymeColor returns a stable CSS color for rhyme. The hue comes from a
// string hash over the UTF-16 code units of rhyme in which only the
// shifted term is truncated to 32 bits, as browsers compute it.
func RhymeColor(rhyme string) string {
	var hash int64
	for _, c := range utf16.Encode([]rune(rhyme)) {
		hash = int64(c) + int64(int32(hash)<<5) - hash
	}
	hue := hash % 360
	if hue < 0 {
		hue = -hue
	}
	return fmt.Sprintf("hsl(%d, 70%%, 40%%)", hue)
}

// add counts the vowel group of one syllable.
func (v *VowelStats) add(g VowelGroup) {
	switch g.Type {
	case Diphthong:
		v.Diphthongs++
	case Triphthong:
		v.Triphthongs++
	case Hiatus:
		v.Hiatuses++
	}
}
