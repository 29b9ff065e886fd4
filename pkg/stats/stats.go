package stats

import (
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/scores"
	"github.com/warmans/puzzleboard/pkg/util"
	"strings"
)

// Window is how many of a player's most recent results are reported.
const Window = 7

type Entry struct {
	Date   string
	Kind   game.Kind
	Record game.Record
}

// History lists every result for the player, oldest date first and in game
// display order within a date.
func History(store *scores.Store, player string) []Entry {
	var entries []Entry
	for _, date := range store.Dates() {
		for _, kind := range game.Kinds {
			if rec, ok := store.Get(kind, date, player); ok {
				entries = append(entries, Entry{Date: date, Kind: kind, Record: rec})
			}
		}
	}
	return entries
}

// Report renders the player's most recent results.
func Report(store *scores.Store, player string) string {
	entries := History(store, player)
	if len(entries) == 0 {
		return fmt.Sprintf("No stats found for **%s**.", player)
	}
	if len(entries) > Window {
		entries = entries[len(entries)-Window:]
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "📊 **Stats for %s**", player)
	for _, e := range entries {
		fmt.Fprintf(sb, "\n%s — %s: %s", e.Date, e.Kind.Title(), e.Record.Fields(e.Kind))
	}
	return sb.String()
}

// Resolve finds the known player a requested name refers to, ignoring case
// and a leading mention marker. The query is returned unchanged when nobody
// has that name.
func Resolve(store *scores.Store, query string) string {
	known := store.Players()
	for _, p := range known {
		if p == query {
			return p
		}
	}
	for _, p := range known {
		if util.SimplifyName(p) == util.SimplifyName(query) {
			return p
		}
	}
	return query
}

// Suggest returns the known player whose name is closest to the query, for
// "did you mean" hints. It never matches the query itself.
func Suggest(store *scores.Store, query string) (string, bool) {
	best, bestScore := "", 0.0
	for _, p := range store.Players() {
		if p == query || !util.NamesRoughlyMatch(p, query) {
			continue
		}
		if score := util.NameSimilarity(p, query); score > bestScore {
			best, bestScore = p, score
		}
	}
	return best, best != ""
}
