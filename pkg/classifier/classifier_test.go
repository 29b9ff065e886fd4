package classifier

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmans/puzzleboard/pkg/decoder"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/scores"
	"io"
	"log/slog"
	"testing"
	"time"
)

type countingSaver struct {
	saves int
	err   error
}

func (s *countingSaver) Save(_ *scores.Store) error {
	s.saves++
	return s.err
}

func newTestClassifier(saver Saver) (*Classifier, *scores.Store) {
	store := scores.NewStore()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), store, saver, time.UTC), store
}

var received = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func TestClassifyRecordsEachGame(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind game.Kind
		want game.Record
	}{
		{
			name: "wordle",
			text: "Wordle 1,365 4/6\n\n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩",
			kind: game.Wordle,
			want: game.Record{Attempts: 4},
		},
		{
			name: "connections",
			text: "Connections\nPuzzle #640\n🟪🟪🟪🟪\n🟦🟦🟦🟦\n🟩🟩🟩🟩\n🟨🟨🟨🟨",
			kind: game.Connections,
			want: game.Record{Mistakes: 0, Points: 7, Summary: "No mistakes! Solved purple first 💜"},
		},
		{
			name: "strands",
			text: "Strands #373\n“Dig in”\n🟡🔵🔵🔵\n🔵🔵🔵🔵\n🔵🔵🔵💡",
			kind: game.Strands,
			want: game.Record{Score: 16, Summary: "10 correct, 1 hint, spangram early 🟡"},
		},
		{
			name: "globle",
			text: "🌎 Mar 14, 2025 🌍\n🔥 1 | Avg. Guesses: 5.2\n🟧🟨🟩 = 3\n\nhttps://globle-game.com",
			kind: game.Globle,
			want: game.Record{Guesses: 3, Summary: "3 guesses, great job! 🌎"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &countingSaver{}
			c, store := newTestClassifier(saver)

			outcome := c.Classify("alice", "  "+tt.text+"\n", received)
			require.Equal(t, decoder.Decoded, outcome.Status)
			assert.Equal(t, tt.kind, outcome.Kind)

			got, ok := store.Get(tt.kind, "2025-03-14", "alice")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, saver.saves)
		})
	}
}

func TestClassifyIgnoresNonResults(t *testing.T) {
	for _, text := range []string{
		"morning all",
		"Wordle X/6 was a disaster",
		"Connections today was rough",
		"Strands? never heard of it",
		"🌎 I could not find Chad",
		"",
	} {
		saver := &countingSaver{}
		c, store := newTestClassifier(saver)

		outcome := c.Classify("alice", text, received)
		assert.False(t, outcome.Ok(), text)
		assert.Equal(t, 0, store.Len(), text)
		assert.Equal(t, 0, saver.saves, text)
	}
}

func TestClassifySameResultTwiceKeepsOneRecord(t *testing.T) {
	saver := &countingSaver{}
	c, store := newTestClassifier(saver)

	c.Classify("alice", "Wordle 1,365 4/6", received)
	c.Classify("alice", "Wordle 1,365 4/6", received.Add(time.Hour))

	assert.Equal(t, 1, store.Len())
	assert.Len(t, store.Day(game.Wordle, "2025-03-14"), 1)
}

func TestClassifyLaterResultReplacesEarlier(t *testing.T) {
	c, store := newTestClassifier(&countingSaver{})

	c.Classify("alice", "Wordle 1,365 5/6", received)
	c.Classify("alice", "Wordle 1,365 2/6", received)

	got, ok := store.Get(game.Wordle, "2025-03-14", "alice")
	require.True(t, ok)
	assert.Equal(t, 2, got.Attempts)
}

func TestClassifyKeepsResultWhenSaveFails(t *testing.T) {
	saver := &countingSaver{err: errors.New("disk full")}
	c, store := newTestClassifier(saver)

	outcome := c.Classify("alice", "Wordle 1,365 3/6", received)
	require.True(t, outcome.Ok())

	_, ok := store.Get(game.Wordle, "2025-03-14", "alice")
	assert.True(t, ok)
	assert.Equal(t, 1, saver.saves)
}

func TestClassifyUsesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	store := scores.NewStore()
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), store, &countingSaver{}, loc)

	// 02:00 UTC on the 15th is still the 14th eight hours west.
	c.Classify("alice", "Wordle 1,365 3/6", time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC))

	_, ok := store.Get(game.Wordle, "2025-03-14", "alice")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-14", c.Today(time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC)))
}
