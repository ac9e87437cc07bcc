package metrica

// VowelGroupType classifies the vowel sequence inside a syllable.
type VowelGroupType string

const (
	Normal     VowelGroupType = "normal"
	Diphthong  VowelGroupType = "diphthong"
	Triphthong VowelGroupType = "triphthong"
	Hiatus     VowelGroupType = "hiatus"
)

// VowelGroup is the vowel group found in a syllable.
type VowelGroup struct {
	// Type is the kind of group; Normal when none was found.
	Type VowelGroupType `json:"type"`
	// Sequence is the exact matched characters, empty for Normal.
	Sequence string `json:"sequence"`
}

// Syllable is one syllable of a word tagged with its vowel group.
type Syllable struct {
	Text       string     `json:"text"`
	VowelGroup VowelGroup `json:"vowel_group"`
}

// Classification is the outcome of the verse classifier.
type Classification struct {
	// Type is the verse name, e.g. "Endecasillabo".
	Type string `json:"type"`
	// AdjustedCount is the metrical count the classifier settled on.
	AdjustedCount int `json:"adjusted_count"`
}

// MetricalResult holds the scansion of one verse.
type MetricalResult struct {
	// Count is the metrical syllable count after elisions and
	// classifier adjustment.
	Count int `json:"count"`
	// GrammaticalCount is the sum of the words' syllable counts.
	GrammaticalCount int `json:"grammatical_count"`
	// ElidedCount is the count after elisions, before the classifier
	// adjusted it. It never exceeds GrammaticalCount.
	ElidedCount int `json:"elided_count"`
	// Type is the verse name.
	Type string `json:"type"`
	// Accents holds the 0-based verse syllable indices carrying stress.
	Accents []int `json:"accents"`
	// Sinalefi describes every elision applied, in order.
	Sinalefi []string `json:"sinalefi"`
	// Dialefi is reserved for forced hiatus and is always empty.
	Dialefi []string `json:"dialefi"`
}

// VerseAnalysis holds everything computed for one verse of a poem.
type VerseAnalysis struct {
	Verse  string         `json:"verse"`
	Metric MetricalResult `json:"metric"`
	// Words holds the syllables of every word, in verse order.
	Words [][]Syllable `json:"words"`
	// LastWord is the word the rhyme was taken from.
	LastWord    string `json:"last_word"`
	Rhyme       string `json:"rhyme"`
	RhymeLetter string `json:"rhyme_letter"`
	RhymeColor  string `json:"rhyme_color"`
}

// LegendEntry describes one rhyme of the scheme.
type LegendEntry struct {
	Letter string `json:"letter"`
	Rhyme  string `json:"rhyme"`
	Color  string `json:"color"`
}

// VowelStats counts the vowel groups found across a poem.
type VowelStats struct {
	Diphthongs  int `json:"diphthongs"`
	Triphthongs int `json:"triphthongs"`
	Hiatuses    int `json:"hiatuses"`
}

// PoemAnalysis holds the analysis of a whole poem.
type PoemAnalysis struct {
	Verses []VerseAnalysis `json:"verses"`
	// Scheme is the rhyme letter of each verse, e.g. "abba".
	Scheme string        `json:"scheme"`
	Legend []LegendEntry `json:"legend"`
	Stats  VowelStats    `json:"stats"`
}
