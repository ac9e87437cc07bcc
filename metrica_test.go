package metrica

import (
	"slices"
	"testing"
)

const inferno = `Nel mezzo del cammin di nostra vita
mi ritrovai per una selva oscura,

ché la diritta via era smarrita.`

func TestAnalyzeVerse(t *testing.T) {
	va := AnalyzeVerse("  Nel mezzo del cammin di nostra vita  ")
	if va.Verse != "Nel mezzo del cammin di nostra vita" {
		t.Errorf("Verse = %q, want it trimmed", va.Verse)
	}
	if va.Metric.Type != "Endecasillabo" || va.Metric.Count != 11 {
		t.Errorf("Metric = %+v, want an 11-syllable Endecasillabo", va.Metric)
	}
	if len(va.Words) != 7 {
		t.Fatalf("len(Words) = %d, want 7", len(va.Words))
	}
	if va.Words[1][0].Text != "mez" || va.Words[1][1].Text != "zo" {
		t.Errorf("Words[1] = %+v, want mez-zo", va.Words[1])
	}
	if va.LastWord != "vita" || va.Rhyme != "ita" {
		t.Errorf("LastWord, Rhyme = %q, %q, want %q, %q", va.LastWord, va.Rhyme, "vita", "ita")
	}
	if va.RhymeLetter != "" || va.RhymeColor != "" {
		t.Errorf("a lone verse should carry no rhyme letter or color, got %q %q", va.RhymeLetter, va.RhymeColor)
	}
}

func TestAnalyzeVerseEmpty(t *testing.T) {
	va := AnalyzeVerse("   ")
	if len(va.Words) != 0 || va.Rhyme != "" || va.Metric.GrammaticalCount != 0 {
		t.Errorf("AnalyzeVerse(blank) = %+v, want an empty analysis", va)
	}
}

func TestAnalyzePoem(t *testing.T) {
	pa := AnalyzePoem(inferno)
	if len(pa.Verses) != 3 {
		t.Fatalf("len(Verses) = %d, want 3 (blank lines are skipped)", len(pa.Verses))
	}
	if pa.Scheme != "aba" {
		t.Errorf("Scheme = %q, want %q", pa.Scheme, "aba")
	}
	wantLegend := []LegendEntry{
		{Letter: "a", Rhyme: "ita", Color: RhymeColor("ita")},
		{Letter: "b", Rhyme: "ura", Color: RhymeColor("ura")},
	}
	if !slices.Equal(pa.Legend, wantLegend) {
		t.Errorf("Legend = %+v, want %+v", pa.Legend, wantLegend)
	}
	for i, v := range pa.Verses {
		if v.Metric.Type != "Endecasillabo" {
			t.Errorf("Verses[%d] (%q) type = %q, want Endecasillabo", i, v.Verse, v.Metric.Type)
		}
		if v.RhymeColor != RhymeColor(v.Rhyme) {
			t.Errorf("Verses[%d] color = %q, want %q", i, v.RhymeColor, RhymeColor(v.Rhyme))
		}
	}
	want := VowelStats{Diphthongs: 2}
	if pa.Stats != want {
		t.Errorf("Stats = %+v, want %+v", pa.Stats, want)
	}
}

func TestAnalyzePoemEmpty(t *testing.T) {
	pa := AnalyzePoem("\n   \n")
	if len(pa.Verses) != 0 || pa.Scheme != "" || len(pa.Legend) != 0 {
		t.Errorf("AnalyzePoem(blank) = %+v, want an empty analysis", pa)
	}
}

func TestVerses(t *testing.T) {
	got := Verses("uno\r\n\n  due  \n\ntre")
	want := []string{"uno", "due", "tre"}
	if !slices.Equal(got, want) {
		t.Errorf("Verses = %q, want %q", got, want)
	}
}
