package decoder

import (
	"github.com/warmans/puzzleboard/pkg/game"
	"strings"
)

type Status int

const (
	// NotApplicable means the text is not a result for the decoder's game.
	NotApplicable Status = iota
	// Malformed means the text looked like a result but could not be scored.
	Malformed
	Decoded
)

func (s Status) String() string {
	switch s {
	case NotApplicable:
		return "not_applicable"
	case Malformed:
		return "malformed"
	case Decoded:
		return "decoded"
	}
	return "unknown"
}

type Outcome struct {
	Kind   game.Kind
	Status Status
	Record game.Record
	// Reason is set for Malformed outcomes.
	Reason string
}

func (o Outcome) Ok() bool {
	return o.Status == Decoded
}

type Func func(text string) Outcome

// All returns the decoders in the order they are tried. The applicability
// checks do not overlap so the first match is the only match.
func All() []Func {
	return []Func{Wordle, Connections, Strands, Globle}
}

func notApplicable(kind game.Kind) Outcome {
	return Outcome{Kind: kind, Status: NotApplicable}
}

func malformed(kind game.Kind, reason string) Outcome {
	return Outcome{Kind: kind, Status: Malformed, Reason: reason}
}

func decoded(kind game.Kind, rec game.Record) Outcome {
	return Outcome{Kind: kind, Status: Decoded, Record: rec}
}

// gridLines returns the trimmed lines consisting only of runes in palette.
func gridLines(text string, palette string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.IndexFunc(line, func(r rune) bool { return !strings.ContainsRune(palette, r) }) == -1 {
			lines = append(lines, line)
		}
	}
	return lines
}

func hasPrefixFold(text string, prefix string) bool {
	return len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
