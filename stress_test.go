package metrica

import (
	"slices"
	"testing"
)

func TestStressIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"città", 1},
		{"perché", 1},
		{"nazione", 1},
		{"casa", 0},
		{"amore", 1},
		{"amabile", 1},
		{"mobile", 1},
		{"il", -1},
		{"con", -1},
		{"me", 0},
		{"la", 0},
		{"sol", 0},
		{"xyz", 0},
		{"", -1},
	}
	for _, tt := range tests {
		got := StressIndex(tt.in)
		if got != tt.want {
			t.Errorf("StressIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsTonicMonosyllable(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"di", false},
		{"gli", false},
		{"con", false},
		{"Su", true},
		{"qua", true},
		{"mi", true},
		{"è", true},
		{"pan", true},
		{"po'", true},
		{"un", false},
	}
	for _, tt := range tests {
		if got := IsTonicMonosyllable(tt.in); got != tt.want {
			t.Errorf("IsTonicMonosyllable(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasStressedEnding(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"virtù", true},
		{"bontà", true},
		{"dirò", true},
		{"nazione", true},
		{"casa", false},
		{"ritrovai", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasStressedEnding(tt.in); got != tt.want {
			t.Errorf("HasStressedEnding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasStressedAntepenultimate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"amabile", true},
		{"dissero", true},
		{"cantavano", true},
		{"piacevoli", true},
		{"casa", false},
		{"mobile", false},
	}
	for _, tt := range tests {
		if got := HasStressedAntepenultimate(tt.in); got != tt.want {
			t.Errorf("HasStressedAntepenultimate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDetectAccentPattern(t *testing.T) {
	tests := []struct {
		verse string
		want  []int
	}{
		{"Nel mezzo del cammin di nostra vita", []int{0, 1, 3, 4, 7, 9}},
		{"mi ritrovai per una selva oscura,", []int{0, 2, 5, 7, 10}},
		{"la donna è mobile", []int{0, 1, 3, 5}},
		{"di per con", []int{}},
		{"", []int{}},
	}
	for _, tt := range tests {
		got := DetectAccentPattern(Words(tt.verse))
		if !slices.Equal(got, tt.want) {
			t.Errorf("DetectAccentPattern(%q) = %v, want %v", tt.verse, got, tt.want)
		}
	}
}

func TestDetectAccentPatternSkipsPunctuation(t *testing.T) {
	// A bare dash has no syllables and must not shift the offsets.
	got := DetectAccentPattern([]string{"casa", "-", "vita"})
	want := []int{0, 2}
	if !slices.Equal(got, want) {
		t.Errorf("DetectAccentPattern = %v, want %v", got, want)
	}
}
