package scores

import (
	"bytes"
	"fmt"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmans/puzzleboard/pkg/game"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func randomRecord(f *gofakeit.Faker, kind game.Kind) game.Record {
	switch kind {
	case game.Wordle:
		return game.Record{Attempts: f.IntRange(1, 6)}
	case game.Connections:
		return game.Record{Mistakes: f.IntRange(0, 4), Points: f.IntRange(0, 11), Summary: f.Sentence(3)}
	case game.Strands:
		return game.Record{Score: f.IntRange(-10, 60), Summary: f.Sentence(4)}
	default:
		return game.Record{Guesses: f.IntRange(1, 40), Summary: f.Sentence(2)}
	}
}

func randomStore(seed uint64) *Store {
	f := gofakeit.New(seed)
	s := NewStore()
	for i := 0; i < 200; i++ {
		kind := game.Kinds[f.IntRange(0, len(game.Kinds)-1)]
		date := f.DateRange(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		).Format(game.DateFormat)
		s.Put(kind, date, f.FirstName(), randomRecord(f, kind))
	}
	return s
}

func TestStorePutOverwrites(t *testing.T) {
	s := NewStore()
	s.Put(game.Wordle, "2025-01-01", "alice", game.Record{Attempts: 4})
	s.Put(game.Wordle, "2025-01-01", "alice", game.Record{Attempts: 2})

	require.Len(t, s.Day(game.Wordle, "2025-01-01"), 1)
	rec, ok := s.Get(game.Wordle, "2025-01-01", "alice")
	require.True(t, ok)
	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, 1, s.Len())
}

func TestStoreDayIsACopy(t *testing.T) {
	s := NewStore()
	s.Put(game.Globle, "2025-01-01", "alice", game.Record{Guesses: 3})

	day := s.Day(game.Globle, "2025-01-01")
	day["bob"] = game.Record{Guesses: 1}

	assert.Len(t, s.Day(game.Globle, "2025-01-01"), 1)
}

func TestStoreDatesAndPlayers(t *testing.T) {
	s := NewStore()
	s.Put(game.Wordle, "2025-01-02", "carol", game.Record{Attempts: 4})
	s.Put(game.Strands, "2025-01-01", "alice", game.Record{Score: 10})
	s.Put(game.Globle, "2025-01-02", "bob", game.Record{Guesses: 3})

	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, s.Dates())
	assert.Equal(t, []string{"alice", "bob", "carol"}, s.Players())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 1234} {
		want := randomStore(seed)

		buff := &bytes.Buffer{}
		require.NoError(t, want.Encode(buff))

		got, err := Decode(buff)
		require.NoError(t, err)
		if !assert.Equal(t, want.snapshot(), got.snapshot()) {
			t.Log(spew.Sdump(got.snapshot()))
		}
	}
}

func TestEncodeWordleAsCount(t *testing.T) {
	s := NewStore()
	s.Put(game.Wordle, "2025-01-01", "alice", game.Record{Attempts: 3})
	s.Put(game.Globle, "2025-01-01", "alice", game.Record{Guesses: 5, Summary: "5 guesses, nice! 🌏"})

	buff := &bytes.Buffer{}
	require.NoError(t, s.Encode(buff))

	assert.JSONEq(t, `{
		"wordle": {"2025-01-01": {"alice": 3}},
		"connections": {},
		"strands": {},
		"globle": {"2025-01-01": {"alice": {"guesses": 5, "summary": "5 guesses, nice! 🌏"}}}
	}`, buff.String())
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "var", "scores.json")
	fs := NewFileStore(testLogger(), path)

	want := randomStore(99)
	require.NoError(t, fs.Save(want))

	got := fs.Load()
	assert.Equal(t, want.snapshot(), got.snapshot())
}

func TestFileStoreLoadFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte(`{"wordle": {"2025-01-01": `), 0644))

	wrongShape := filepath.Join(dir, "wrong.json")
	require.NoError(t, os.WriteFile(wrongShape, []byte(`{"wordle": {"2025-01-01": {"alice": "three"}}}`), 0644))

	unknownGame := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknownGame, []byte(`{"sudoku": {}}`), 0644))

	zeroWordle := filepath.Join(dir, "zero-wordle.json")
	require.NoError(t, os.WriteFile(zeroWordle, []byte(`{"wordle": {"2025-01-01": {"alice": 0}}}`), 0644))

	nullWordle := filepath.Join(dir, "null-wordle.json")
	require.NoError(t, os.WriteFile(nullWordle, []byte(`{"wordle": {"2025-01-01": {"alice": null}}}`), 0644))

	zeroGloble := filepath.Join(dir, "zero-globle.json")
	require.NoError(t, os.WriteFile(zeroGloble, []byte(`{"globle": {"2025-01-01": {"alice": {"guesses": 0, "summary": ""}}}}`), 0644))

	for _, path := range []string{filepath.Join(dir, "missing.json"), corrupt, wrongShape, unknownGame, zeroWordle, nullWordle, zeroGloble} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s := NewFileStore(testLogger(), path).Load()
			require.NotNil(t, s)
			assert.Equal(t, 0, s.Len())
			snap := s.snapshot()
			for _, k := range game.Kinds {
				days, ok := snap[k]
				assert.True(t, ok, k)
				assert.Empty(t, days)
			}
		})
	}
}

func TestFileStoreConcurrentSavesKeepEveryRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	fs := NewFileStore(testLogger(), path)
	s := NewStore()

	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put(game.Wordle, "2025-01-01", fmt.Sprintf("player-%02d", i), game.Record{Attempts: 1 + i%6})
			assert.NoError(t, fs.Save(s))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, fs.Load().Len())
}
