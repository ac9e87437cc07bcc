package metrica

// Rhyme returns the rhyming tail of word: everything from its
// next-to-last vowel onwards. Words of up to three letters, and words
// with fewer than two vowels, rhyme as a whole.
func Rhyme(word string) string {
	w := []rune(Normalize(word))
	if len(w) <= 3 {
		return string(w)
	}

	last := lastVowel(w, len(w)-1)
	if last < 0 {
		return string(w)
	}
	prev := lastVowel(w, last-1)
	if prev < 0 {
		return string(w)
	}
	return string(w[prev:])
}

// lastVowel returns the index of the last vowel at or before from, or -1.
func lastVowel(w []rune, from int) int {
	for i := from; i >= 0; i-- {
		if elisionVowels[w[i]] {
			return i
		}
	}
	return -1
}
