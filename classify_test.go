package metrica

import (
	"strings"
	"testing"
)

func TestClassifyVerse(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{2, "Bisillabo"},
		{5, "Quinario"},
		{7, "Settenario"},
		{11, "Endecasillabo"},
		{13, "Verso di 13 sillabe"},
		{14, "Martelliano"},
		{15, "Verso di 15 sillabe"},
		{0, "Verso di 0 sillabe"},
	}
	for _, tt := range tests {
		if got := ClassifyVerse(tt.in); got != tt.want {
			t.Errorf("ClassifyVerse(%d) = %q, want %q", tt.in, got, tt.want)
		}
		named := !strings.HasPrefix(tt.want, "Verso di ")
		if got := IsNamedVerse(tt.want); got != named {
			t.Errorf("IsNamedVerse(%q) = %v, want %v", tt.want, got, named)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		metrical    int
		accents     []int
		grammatical int
		want        Classification
	}{
		{"eleven", 11, nil, 11, Classification{"Endecasillabo", 11}},
		{"ten read as eleven", 10, nil, 10, Classification{"Endecasillabo", 11}},
		{"twelve read as eleven", 12, nil, 13, Classification{"Endecasillabo", 11}},
		{"a minore", 9, []int{4, 10}, 12, Classification{"Endecasillabo", 11}},
		{"a maiore", 9, []int{6, 10}, 12, Classification{"Endecasillabo", 11}},
		{"missed elision", 8, []int{2, 6}, 9, Classification{"Endecasillabo", 11}},
		{"plain novenario", 9, []int{1, 3}, 12, Classification{"Novenario", 9}},
		{"seven", 7, nil, 7, Classification{"Settenario", 7}},
		{"short settenario", 6, []int{1, 5}, 6, Classification{"Settenario", 7}},
		{"long settenario", 8, []int{6}, 8, Classification{"Settenario", 7}},
		{"ottonario", 8, []int{2, 7}, 8, Classification{"Ottonario", 8}},
		{"senario", 6, []int{1, 4}, 6, Classification{"Senario", 6}},
		{"quinario", 5, nil, 5, Classification{"Quinario", 5}},
		{"out of table", 13, []int{2, 7}, 13, Classification{"Verso di 13 sillabe", 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.metrical, tt.accents, tt.grammatical)
			if got != tt.want {
				t.Errorf("Classify(%d, %v, %d) = %+v, want %+v", tt.metrical, tt.accents, tt.grammatical, got, tt.want)
			}
			if again := Classify(tt.metrical, tt.accents, tt.grammatical); again != got {
				t.Errorf("Classify is not deterministic: %+v then %+v", got, again)
			}
		})
	}
}

func TestHasHendecasyllableRhythm(t *testing.T) {
	tests := []struct {
		accents     []int
		grammatical int
		want        bool
	}{
		{[]int{4, 10}, 11, true},
		{[]int{8, 10}, 11, true},
		{[]int{1, 4, 10}, 14, true},
		{[]int{3, 6, 10}, 14, true},
		{[]int{10}, 11, false},
		{[]int{4}, 10, true},
		{[]int{4}, 11, false},
		{nil, 9, false},
	}
	for _, tt := range tests {
		if got := HasHendecasyllableRhythm(tt.accents, tt.grammatical); got != tt.want {
			t.Errorf("HasHendecasyllableRhythm(%v, %d) = %v, want %v", tt.accents, tt.grammatical, got, tt.want)
		}
	}
}
