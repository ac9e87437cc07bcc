package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cours-de-latin/metrica"
	"github.com/cours-de-latin/metrica/store"
)

// ---- JSON response types ------------------------------------------------

type syllabifyResponse struct {
	Word       string             `json:"word"`
	Normalized string             `json:"normalized"`
	Syllables  []metrica.Syllable `json:"syllables"`
	Stress     int                `json:"stress"`
}

type rhymeResponse struct {
	Word  string `json:"word"`
	Rhyme string `json:"rhyme"`
	Color string `json:"color"`
}

type storedPoemResponse struct {
	Poem     store.Poem           `json:"poem"`
	Analysis metrica.PoemAnalysis `json:"analysis"`
}

type poemsResponse struct {
	Poems []store.Poem `json:"poems"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody decodes a JSON request body of at most maxBytes into v.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func recordVerse(m metrica.MetricalResult) {
	versesAnalyzed.WithLabelValues(verseTypeLabel(m.Type)).Inc()
}

// verseTypeLabel keeps the label set bounded: every unnamed
// "Verso di N sillabe" type is reported as "other".
func verseTypeLabel(verseType string) string {
	if metrica.IsNamedVerse(verseType) {
		return verseType
	}
	return "other"
}

// ---- handlers -----------------------------------------------------------

func handleSyllabify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		if strings.TrimSpace(word) == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, syllabifyResponse{
			Word:       word,
			Normalized: metrica.Normalize(word),
			Syllables:  metrica.SyllabifyWithVowelGroups(word),
			Stress:     metrica.StressIndex(word),
		})
	}
}

func handleRhyme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		if strings.TrimSpace(word) == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		rhyme := metrica.Rhyme(word)
		writeJSON(w, http.StatusOK, rhymeResponse{
			Word:  word,
			Rhyme: rhyme,
			Color: metrica.RhymeColor(rhyme),
		})
	}
}

func handleVerse(maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Verse string `json:"verse"`
		}
		if err := decodeBody(w, r, maxBytes, &body); err != nil || strings.TrimSpace(body.Verse) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'verse' field")
			return
		}
		res := metrica.CountMetricSyllables(body.Verse)
		recordVerse(res)
		writeJSON(w, http.StatusOK, res)
	}
}

func handlePoem(maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		if err := decodeBody(w, r, maxBytes, &body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		pa := metrica.AnalyzePoem(body.Text)
		if len(pa.Verses) == 0 {
			writeError(w, http.StatusBadRequest, "poem has no verses")
			return
		}
		for _, v := range pa.Verses {
			recordVerse(v.Metric)
		}
		writeJSON(w, http.StatusOK, pa)
	}
}

func handleSavePoem(st *store.PoemStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		}
		if err := decodeBody(w, r, maxBytes, &body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		p, err := st.Save(body.Title, body.Text)
		if errors.Is(err, store.ErrEmptyPoem) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			slog.Error("save poem", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "could not save poem")
			return
		}
		slog.Debug("poem saved", slog.String("id", p.ID))
		writeJSON(w, http.StatusCreated, p)
	}
}

func handleListPoems(st *store.PoemStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poems, err := st.List()
		if err != nil {
			slog.Error("list poems", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "could not list poems")
			return
		}
		writeJSON(w, http.StatusOK, poemsResponse{Poems: poems})
	}
}

func handleLoadPoem(st *store.PoemStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		p, err := st.Load(id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "poem "+id+" not found")
			return
		}
		if err != nil {
			slog.Error("load poem", slog.Any("error", err), slog.String("id", id))
			writeError(w, http.StatusInternalServerError, "could not load poem")
			return
		}
		writeJSON(w, http.StatusOK, storedPoemResponse{Poem: p, Analysis: metrica.AnalyzePoem(p.Text)})
	}
}

func handleDeletePoem(st *store.PoemStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		err := st.Delete(id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "poem "+id+" not found")
			return
		}
		if err != nil {
			slog.Error("delete poem", slog.Any("error", err), slog.String("id", id))
			writeError(w, http.StatusInternalServerError, "could not delete poem")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
