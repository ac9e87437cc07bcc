package metrica

// Rule tables used by the syllabifier, the stress locator and the verse
// classifier. They are built once at package initialization and never
// written afterwards, so they are safe for concurrent readers.

// vowels is the vowel set used when segmenting words. It includes y and
// the accented vowels found in Italian orthography.
var vowels = runeSet("aeiouàèéìòóùy")

// elisionVowels is the vowel set used at word boundaries (synaloepha)
// and by the rhyme extractor. Unlike vowels it does not contain y.
var elisionVowels = runeSet("aeiouàèéìòóù")

// accentedVowels are the orthographic accent marks that pin the stress.
var accentedVowels = runeSet("àèéìòóù")

// triphthongs never split.
var triphthongs = stringSet("iai", "iei", "uai", "uei", "uoi")

// diphthongs never split.
var diphthongs = stringSet("ia", "ie", "io", "iu", "ai", "ei", "oi", "ui", "au", "eu")

// hiatuses always split after the first vowel during syllabification.
var hiatuses = stringSet("ìa", "ìe", "ìo", "ùi", "ùe", "ùo", "àe", "èa", "èo", "òe")

// Ordered lookup lists for the vowel-group classifier. Order matters:
// the first contained sequence wins.
var (
	triphthongList = []string{"iai", "iei", "uai", "uei", "uoi"}
	diphthongList  = []string{"ia", "ie", "io", "iu", "ai", "ei", "oi", "ui", "au", "eu"}
	hiatusList     = []string{
		"ìa", "ìe", "ìo", "ùi", "ùe", "ùo", "àe", "èa", "èo", "òe",
		"aé", "aò", "eà", "eò", "oa", "oe", "ea", "ua",
	}
)

// inseparableClusters are the consonant pairs that open a syllable together.
var inseparableClusters = stringSet(
	"br", "cr", "dr", "fr", "gr", "pr", "tr", "vr",
	"bl", "cl", "dl", "fl", "gl", "pl", "tl", "vl",
	"ch", "gh", "gn", "sc", "qu",
)

// tonicMonosyllables carry their own stress. Checked before
// stressAtonicMonosyllables, so words present in both (la, mi, si, su, fa)
// resolve to tonic. Normalize strips the apostrophe of "po'".
var tonicMonosyllables = stringSet(
	"me", "te", "sé", "noi", "voi", "tu", "qui", "qua", "già", "giù", "più",
	"sì", "no", "su", "mai", "chi", "che", "do", "re", "mi", "fa", "sol", "la",
	"si", "va", "sa", "sta", "dà", "è", "ho", "ha", "so", "po",
)

// stressAtonicMonosyllables lean on the following word and carry no stress.
var stressAtonicMonosyllables = stringSet(
	"il", "lo", "la", "i", "gli", "le", "un", "una", "di", "a", "da", "in", "con",
	"su", "per", "tra", "fra", "e", "o", "ma", "né", "se", "mi", "ti", "si", "ci", "vi",
)

// elisionAtonicMonosyllables are the function words that do not fuse with
// each other across a word boundary.
var elisionAtonicMonosyllables = stringSet(
	"e", "o", "a", "il", "lo", "la", "i", "gli", "le", "un", "di", "da", "in",
	"con", "su", "per", "tra", "fra", "ma", "né", "se",
)

// proparoxytoneEndings mark words stressed on the third-from-last syllable.
var proparoxytoneEndings = []string{
	"abile", "abili", "evole", "evoli", "acolo", "acoli", "ondolo", "ondoli",
	"esimo", "esimi", "agine", "agini", "iscono", "assero", "essero", "issero",
	"avano", "evano", "ivano", "ebbero", "eranno", "iranno", "ettero",
}

// verseNames maps a canonical syllable count to its traditional name.
var verseNames = map[int]string{
	2:  "Bisillabo",
	3:  "Trisillabo",
	4:  "Quadrisillabo",
	5:  "Quinario",
	6:  "Senario",
	7:  "Settenario",
	8:  "Ottonario",
	9:  "Novenario",
	10: "Decasillabo",
	11: "Endecasillabo",
	12: "Dodecasillabo",
	14: "Martelliano",
}

// danteanRhythms are accent sets (0-based syllable indices) found in
// Dante's hendecasyllables.
var danteanRhythms = [][]int{
	{1, 4, 10},
	{4, 8, 10},
	{3, 6, 10},
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool)
	for _, r := range s {
		m[r] = true
	}
	return m
}

func stringSet(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}
