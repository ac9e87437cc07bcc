// Package store persists poems in BadgerDB so that a client can save the
// text it is working on and reload it later.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no poem has the requested ID.
	ErrNotFound = errors.New("poem not found")
	// ErrEmptyPoem is returned when saving a poem with no text.
	ErrEmptyPoem = errors.New("poem text is empty")
)

const keyPrefix = "poem:"

// Poem is a stored poem.
type Poem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title,omitempty"`
	Text    string    `json:"text"`
	SavedAt time.Time `json:"saved_at"`
}

// PoemStore saves and loads poems. It is safe for concurrent use.
type PoemStore struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens the store at path. With inMemory set, path is ignored and
// nothing is written to disk.
func Open(path string, inMemory bool) (*PoemStore, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithCompression(options.ZSTD).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("PoemStore failed to open database", slog.Any("error", err))
		return nil, fmt.Errorf("open poem store: %w", err)
	}

	slog.Info("PoemStore opened",
		slog.String("path", path),
		slog.Bool("inMemory", inMemory))

	return &PoemStore{db: db, now: time.Now}, nil
}

// Save stores a new poem and returns it with its ID.
func (s *PoemStore) Save(title, text string) (Poem, error) {
	if strings.TrimSpace(text) == "" {
		return Poem{}, ErrEmptyPoem
	}
	p := Poem{
		ID:      uuid.NewString(),
		Title:   strings.TrimSpace(title),
		Text:    text,
		SavedAt: s.now().UTC(),
	}
	val, err := json.Marshal(p)
	if err != nil {
		return Poem{}, fmt.Errorf("encode poem: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(poemKey(p.ID), val)
	})
	if err != nil {
		slog.Error("PoemStore failed to save poem", slog.Any("error", err), slog.String("id", p.ID))
		return Poem{}, fmt.Errorf("save poem: %w", err)
	}
	return p, nil
}

// Load returns the poem with the given ID.
func (s *PoemStore) Load(id string) (Poem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Poem{}, ErrNotFound
	}

	var p Poem
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(poemKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Poem{}, ErrNotFound
	}
	if err != nil {
		return Poem{}, fmt.Errorf("load poem %s: %w", id, err)
	}
	return p, nil
}

// List returns every stored poem, newest first.
func (s *PoemStore) List() ([]Poem, error) {
	poems := []Poem{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var p Poem
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			})
			if err != nil {
				return err
			}
			poems = append(poems, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}

	sort.SliceStable(poems, func(i, j int) bool {
		return poems[i].SavedAt.After(poems[j].SavedAt)
	})
	return poems, nil
}

// Delete removes the poem with the given ID.
func (s *PoemStore) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(poemKey(id)); err != nil {
			return err
		}
		return txn.Delete(poemKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete poem %s: %w", id, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *PoemStore) Close() error {
	if err := s.db.Close(); err != nil {
		slog.Error("PoemStore failed to close database", slog.Any("error", err))
		return fmt.Errorf("close poem store: %w", err)
	}
	slog.Info("PoemStore closed")
	return nil
}

func poemKey(id string) []byte {
	return []byte(keyPrefix + id)
}
