package leaderboard

import (
	"cmp"
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/scores"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

// Celebrations are the markers put next to the winner of each game.
var Celebrations = []string{"👑", "🏆", "🥇", "🎉", "🔥", "✨", "🧩", "🧠", "🎊"}

type Entry struct {
	Player string
	Record game.Record
}

type Section struct {
	Kind    game.Kind
	Entries []Entry
}

// Rank orders one day's records best first. Equal records are ordered by
// player name.
func Rank(kind game.Kind, day scores.Day) []Entry {
	entries := make([]Entry, 0, len(day))
	for player, rec := range day {
		entries = append(entries, Entry{Player: player, Record: rec})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(compareRecords(kind, a.Record, b.Record), cmp.Compare(a.Player, b.Player))
	})
	return entries
}

func compareRecords(kind game.Kind, a, b game.Record) int {
	switch kind {
	case game.Wordle:
		return cmp.Compare(a.Attempts, b.Attempts)
	case game.Connections:
		return cmp.Or(cmp.Compare(a.Mistakes, b.Mistakes), cmp.Compare(b.Points, a.Points))
	case game.Strands:
		return cmp.Compare(b.Score, a.Score)
	case game.Globle:
		return cmp.Compare(a.Guesses, b.Guesses)
	}
	return 0
}

// Sections ranks every game for the date, in display order.
func Sections(store *scores.Store, date string) []Section {
	sections := make([]Section, 0, len(game.Kinds))
	for _, kind := range game.Kinds {
		sections = append(sections, Section{Kind: kind, Entries: Rank(kind, store.Day(kind, date))})
	}
	return sections
}

// Summary is the text shown after a player's name on the leaderboard.
func Summary(kind game.Kind, rec game.Record) string {
	switch kind {
	case game.Wordle:
		encouragement := ""
		if rec.Attempts <= 2 {
			encouragement = ", AMAZING!"
		} else if rec.Attempts <= 3 {
			encouragement = ", nice job!"
		}
		return fmt.Sprintf("%d/6%s", rec.Attempts, encouragement)
	case game.Strands:
		return fmt.Sprintf("%s (+%d pts)", rec.Summary, rec.Score)
	}
	return rec.Summary
}

func NewBuilder(title string, rnd *rand.Rand) *Builder {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Builder{title: title, rnd: rnd}
}

type Builder struct {
	title string

	rndLock sync.Mutex
	rnd     *rand.Rand
}

func (b *Builder) celebration() string {
	b.rndLock.Lock()
	defer b.rndLock.Unlock()
	return Celebrations[b.rnd.IntN(len(Celebrations))]
}

func (b *Builder) Title(date string) string {
	return fmt.Sprintf("%s Daily Leaderboard (%s)", b.title, date)
}

// Build renders the leaderboard for the date as chat markdown.
func (b *Builder) Build(store *scores.Store, date string) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "🏆 **%s**\n", b.Title(date))

	for _, section := range Sections(store, date) {
		if len(section.Entries) == 0 {
			fmt.Fprintf(sb, "\nNo %s scores today.\n", section.Kind.Title())
			continue
		}
		fmt.Fprintf(sb, "\n**%s**\n", section.Kind.Title())
		for k, v := range section.Entries {
			prefix := ""
			if k == 0 {
				prefix = b.celebration() + " "
			}
			fmt.Fprintf(sb, "%d. %s**%s** : %s\n", k+1, prefix, v.Player, Summary(section.Kind, v.Record))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
