package command

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmans/puzzleboard/pkg/classifier"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/leaderboard"
	"github.com/warmans/puzzleboard/pkg/scores"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"
)

type noopSaver struct{}

func (noopSaver) Save(*scores.Store) error { return nil }

func newTestPuzzles() (*Puzzles, *scores.Store) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := scores.NewStore()
	c := NewPuzzlesCommand(
		logger,
		store,
		classifier.New(logger, store, noopSaver{}, time.UTC),
		leaderboard.NewBuilder("Framily", rand.New(rand.NewPCG(1, 1))),
		false,
	)
	c.now = func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC) }
	return c, store
}

func TestParseTextCommand(t *testing.T) {
	tests := []struct {
		content string
		want    textCommand
		wantOk  bool
	}{
		{content: "!hello", want: textCommand{name: "hello"}, wantOk: true},
		{content: "  !leaderboard ", want: textCommand{name: "leaderboard"}, wantOk: true},
		{content: "!stats", want: textCommand{name: "stats"}, wantOk: true},
		{content: "!stats Grandma Jo", want: textCommand{name: "stats", arg: "Grandma Jo"}, wantOk: true},
		{content: "!statsfor me", wantOk: false},
		{content: "hello", wantOk: false},
		{content: "Wordle 1,234 3/6", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got, ok := parseTextCommand(tt.content)
			require.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunTextCommand(t *testing.T) {
	c, store := newTestPuzzles()
	store.Put(game.Wordle, "2025-03-14", "Grandma Jo", game.Record{Attempts: 3})
	store.Put(game.Wordle, "2025-03-14", "alice", game.Record{Attempts: 5})

	assert.Equal(t, "👋 Hello alice! The bot is working!", c.runTextCommand(textCommand{name: "hello"}, "alice"))

	board := c.runTextCommand(textCommand{name: "leaderboard"}, "alice")
	assert.Contains(t, board, "Daily Leaderboard (2025-03-14)")
	assert.Contains(t, board, "2. **alice** : 5/6")

	assert.Equal(t,
		"📊 **Stats for alice**\n2025-03-14 — Wordle: 5",
		c.runTextCommand(textCommand{name: "stats"}, "alice"),
	)
	assert.Equal(t,
		"📊 **Stats for Grandma Jo**\n2025-03-14 — Wordle: 3",
		c.runTextCommand(textCommand{name: "stats", arg: "grandma jo"}, "alice"),
	)
	assert.Equal(t,
		"No stats found for **Bartholomew**.",
		c.runTextCommand(textCommand{name: "stats", arg: "Bartholomew"}, "alice"),
	)
}

func TestToday(t *testing.T) {
	c, _ := newTestPuzzles()
	assert.Equal(t, "2025-03-14", c.Today())
}

func TestStatsNeverShowsAnotherPlayer(t *testing.T) {
	c, store := newTestPuzzles()
	store.Put(game.Wordle, "2025-03-14", "Christine", game.Record{Attempts: 3})

	assert.Equal(t, "No stats found for **Christina**.", c.Stats("Christina"))
	assert.Equal(t, "No stats found for **Christina**.", c.OwnStats("Christina"))
	assert.Equal(t, "No stats found for **Christina**.", c.runTextCommand(textCommand{name: "stats"}, "Christina"))
	assert.Equal(t, "📊 **Stats for Christine**\n2025-03-14 — Wordle: 3", c.Stats("christine"))
}
