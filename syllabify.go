package metrica

// Syllabify splits an Italian word into its syllables, scanning the
// normalized word left to right.
//
// Triphthongs, diphthongs and the "qu" group are never split; the
// hiatus pairs always are. Between a vowel and the next one a lone
// consonant opens the following syllable, two consonants are split
// unless they form an inseparable cluster, and two adjacent vowels not
// covered by the tables are split. Words of at most two letters are a
// single syllable. The syllables always concatenate back to
// Normalize(word).
func Syllabify(word string) []string {
	w := []rune(Normalize(word))
	if len(w) == 0 {
		return nil
	}
	if len(w) <= 2 {
		return []string{string(w)}
	}

	var (
		syllables []string
		cur       []rune
	)
	flush := func() {
		syllables = append(syllables, string(cur))
		cur = cur[:0]
	}

	n := len(w)
	for i := 0; i < n; i++ {
		if i+1 < n && w[i] == 'q' && w[i+1] == 'u' {
			cur = append(cur, 'q', 'u')
			i++
			continue
		}
		if i+2 < n && triphthongs[string(w[i:i+3])] {
			cur = append(cur, w[i:i+3]...)
			i += 2
			continue
		}
		if i+1 < n {
			pair := string(w[i : i+2])
			if diphthongs[pair] {
				cur = append(cur, w[i], w[i+1])
				i++
				continue
			}
			if hiatuses[pair] {
				cur = append(cur, w[i])
				flush()
				continue
			}
		}

		cur = append(cur, w[i])
		if !vowels[w[i]] || i == n-1 {
			continue
		}

		switch {
		case vowels[w[i+1]]:
			flush()
		case i+2 < n && !vowels[w[i+2]]:
			if inseparableClusters[string(w[i+1:i+3])] {
				flush()
			} else {
				// First consonant closes this syllable.
				cur = append(cur, w[i+1])
				flush()
				i++
			}
		case i+1 < n-1:
			flush()
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return syllables
}

// SyllabifyWithVowelGroups syllabifies word and tags every syllable with
// the vowel group it contains.
func SyllabifyWithVowelGroups(word string) []Syllable {
	parts := Syllabify(word)
	out := make([]Syllable, 0, len(parts))
	for _, p := range parts {
		out = append(out, Syllable{Text: p, VowelGroup: IdentifyVowelGroup(p)})
	}
	return out
}
