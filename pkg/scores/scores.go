package scores

import (
	"github.com/warmans/puzzleboard/pkg/game"
	"maps"
	"slices"
	"sync"
)

// Day is every player's record for one game on one date.
type Day map[string]game.Record

func NewStore() *Store {
	s := &Store{games: make(map[game.Kind]map[string]Day)}
	for _, k := range game.Kinds {
		s.games[k] = make(map[string]Day)
	}
	return s
}

// Store holds game -> date -> player -> record. Records are only ever
// replaced whole so readers always see a complete record.
type Store struct {
	lock  sync.RWMutex
	games map[game.Kind]map[string]Day
}

// Put sets the player's record for the day, replacing any earlier one.
func (s *Store) Put(kind game.Kind, date string, player string, rec game.Record) {
	s.lock.Lock()
	defer s.lock.Unlock()

	days, ok := s.games[kind]
	if !ok {
		days = make(map[string]Day)
		s.games[kind] = days
	}
	if _, ok := days[date]; !ok {
		days[date] = make(Day)
	}
	days[date][player] = rec
}

func (s *Store) Get(kind game.Kind, date string, player string) (game.Record, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	rec, ok := s.games[kind][date][player]
	return rec, ok
}

// Day returns a copy of the records for one game and date.
func (s *Store) Day(kind game.Kind, date string) Day {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return maps.Clone(s.games[kind][date])
}

// Dates returns every date with at least one record for any game, ascending.
func (s *Store) Dates() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	seen := map[string]struct{}{}
	for _, days := range s.games {
		for date, day := range days {
			if len(day) > 0 {
				seen[date] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Players returns every player with at least one record, sorted.
func (s *Store) Players() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	seen := map[string]struct{}{}
	for _, days := range s.games {
		for _, day := range days {
			for player := range day {
				seen[player] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Len is the total number of records held.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	total := 0
	for _, days := range s.games {
		for _, day := range days {
			total += len(day)
		}
	}
	return total
}

func (s *Store) snapshot() map[game.Kind]map[string]Day {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make(map[game.Kind]map[string]Day, len(s.games))
	for kind, days := range s.games {
		out[kind] = make(map[string]Day, len(days))
		for date, day := range days {
			out[kind][date] = maps.Clone(day)
		}
	}
	return out
}
