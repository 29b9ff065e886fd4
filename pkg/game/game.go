package game

import (
	"fmt"
	"slices"
)

// DateFormat is the layout used for the calendar day keys of the score store.
const DateFormat = "2006-01-02"

type Kind string

const (
	Wordle      Kind = "wordle"
	Connections Kind = "connections"
	Strands     Kind = "strands"
	Globle      Kind = "globle"
)

// Kinds is the fixed display order.
var Kinds = []Kind{Wordle, Connections, Strands, Globle}

func (k Kind) Title() string {
	switch k {
	case Wordle:
		return "Wordle"
	case Connections:
		return "Connections"
	case Strands:
		return "Strands"
	case Globle:
		return "Globle"
	}
	return string(k)
}

func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Record is the outcome of one player's puzzle on one day. Only the fields
// belonging to the record's Kind are populated.
type Record struct {
	Attempts int
	Mistakes int
	Points   int
	Score    int
	Guesses  int
	Summary  string
}

// Fields renders the record's raw values for the given kind.
func (r Record) Fields(k Kind) string {
	switch k {
	case Wordle:
		return fmt.Sprintf("%d", r.Attempts)
	case Connections:
		return fmt.Sprintf("{mistakes: %d, points: %d, summary: %s}", r.Mistakes, r.Points, r.Summary)
	case Strands:
		return fmt.Sprintf("{score: %d, summary: %s}", r.Score, r.Summary)
	case Globle:
		return fmt.Sprintf("{guesses: %d, summary: %s}", r.Guesses, r.Summary)
	}
	return fmt.Sprintf("%+v", r)
}
