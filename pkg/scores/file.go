package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// The file is keyed game -> date -> player. Wordle entries are a bare attempt
// count, the other games are objects.
type fileFormat map[game.Kind]map[string]map[string]json.RawMessage

type connectionsEntry struct {
	Mistakes int    `json:"mistakes"`
	Points   int    `json:"points"`
	Summary  string `json:"summary"`
}

type strandsEntry struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

type globleEntry struct {
	Guesses int    `json:"guesses"`
	Summary string `json:"summary"`
}

func encodeRecord(kind game.Kind, rec game.Record) (json.RawMessage, error) {
	switch kind {
	case game.Wordle:
		return json.Marshal(rec.Attempts)
	case game.Connections:
		return json.Marshal(connectionsEntry{Mistakes: rec.Mistakes, Points: rec.Points, Summary: rec.Summary})
	case game.Strands:
		return json.Marshal(strandsEntry{Score: rec.Score, Summary: rec.Summary})
	case game.Globle:
		return json.Marshal(globleEntry{Guesses: rec.Guesses, Summary: rec.Summary})
	}
	return nil, fmt.Errorf("unknown game: %s", kind)
}

func decodeRecord(kind game.Kind, raw json.RawMessage) (game.Record, error) {
	switch kind {
	case game.Wordle:
		var attempts int
		if err := json.Unmarshal(raw, &attempts); err != nil {
			return game.Record{}, err
		}
		if attempts < 1 || attempts > 6 {
			return game.Record{}, fmt.Errorf("attempts out of range: %d", attempts)
		}
		return game.Record{Attempts: attempts}, nil
	case game.Connections:
		e := connectionsEntry{}
		if err := json.Unmarshal(raw, &e); err != nil {
			return game.Record{}, err
		}
		if e.Mistakes < 0 {
			return game.Record{}, fmt.Errorf("mistakes out of range: %d", e.Mistakes)
		}
		return game.Record{Mistakes: e.Mistakes, Points: e.Points, Summary: e.Summary}, nil
	case game.Strands:
		e := strandsEntry{}
		if err := json.Unmarshal(raw, &e); err != nil {
			return game.Record{}, err
		}
		return game.Record{Score: e.Score, Summary: e.Summary}, nil
	case game.Globle:
		e := globleEntry{}
		if err := json.Unmarshal(raw, &e); err != nil {
			return game.Record{}, err
		}
		if e.Guesses < 1 {
			return game.Record{}, fmt.Errorf("guesses out of range: %d", e.Guesses)
		}
		return game.Record{Guesses: e.Guesses, Summary: e.Summary}, nil
	}
	return game.Record{}, fmt.Errorf("unknown game: %s", kind)
}

// Encode writes the store as indented JSON.
func (s *Store) Encode(w io.Writer) error {
	out := fileFormat{}
	for kind, days := range s.snapshot() {
		out[kind] = make(map[string]map[string]json.RawMessage, len(days))
		for date, day := range days {
			out[kind][date] = make(map[string]json.RawMessage, len(day))
			for player, rec := range day {
				raw, err := encodeRecord(kind, rec)
				if err != nil {
					return err
				}
				out[kind][date][player] = raw
			}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Decode reads a store previously written by Encode.
func Decode(r io.Reader) (*Store, error) {
	in := fileFormat{}
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	s := NewStore()
	for kind, days := range in {
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown game: %s", kind)
		}
		for date, day := range days {
			for player, raw := range day {
				rec, err := decodeRecord(kind, raw)
				if err != nil {
					return nil, fmt.Errorf("%s/%s/%s: %w", kind, date, player, err)
				}
				s.Put(kind, date, player, rec)
			}
		}
	}
	return s, nil
}

func NewFileStore(logger *slog.Logger, path string) *FileStore {
	return &FileStore{logger: logger, path: path}
}

// FileStore loads and saves a Store as a single JSON file.
type FileStore struct {
	logger *slog.Logger
	path   string

	saveLock sync.Mutex
}

func (f *FileStore) Path() string {
	return f.path
}

// Load never fails: a missing or unreadable file gives an empty store.
func (f *FileStore) Load() *Store {
	fh, err := os.Open(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Error("failed to open scores file, starting empty", slog.String("path", f.path), slog.String("err", err.Error()))
		}
		return NewStore()
	}
	defer fh.Close()

	s, err := Decode(fh)
	if err != nil {
		f.logger.Error("scores file is corrupt, starting empty", slog.String("path", f.path), slog.String("err", err.Error()))
		return NewStore()
	}
	return s
}

// Save replaces the file with the store's current contents.
func (f *FileStore) Save(s *Store) error {
	f.saveLock.Lock()
	defer f.saveLock.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create scores dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.Encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace scores file: %w", err)
	}
	return nil
}
