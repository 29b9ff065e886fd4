package decoder

import (
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"strings"
)

const strandsLabel = "strands"

const (
	theme    = '🔵'
	hint     = '💡'
	spangram = '🟡'
)

const strandsPalette = string(theme) + string(hint) + string(spangram)

type spangramTiming int

const (
	spangramNone spangramTiming = iota
	spangramEarly
	spangramMid
	spangramLate
)

// Strands decodes a pasted Strands result. Rows are read as one continuous
// sequence of finds so the spangram's position reflects when it was found.
func Strands(text string) Outcome {
	text = strings.TrimSpace(text)
	if !hasPrefixFold(text, strandsLabel) {
		return notApplicable(game.Strands)
	}
	lines := gridLines(text, strandsPalette)
	if len(lines) == 0 {
		return malformed(game.Strands, "No recognizable Strands result.")
	}

	sequence := []rune(strings.Join(lines, ""))

	correct, hints, firstSpangram, spangrams := 0, 0, -1, 0
	for i, r := range sequence {
		switch r {
		case theme:
			correct++
		case hint:
			hints++
		case spangram:
			spangrams++
			if firstSpangram == -1 {
				firstSpangram = i
			}
		}
	}

	timing := spangramTimingAt(firstSpangram, len(sequence))

	score := correct + spangrams*5 - hints*2
	switch timing {
	case spangramEarly:
		score += 3
	case spangramMid:
		score += 1
	}

	summary := fmt.Sprintf("%d correct, %d %s", correct, hints, plural(hints, "hint"))
	switch timing {
	case spangramEarly:
		summary += ", spangram early 🟡"
	case spangramMid:
		summary += ", spangram mid 🟡"
	case spangramLate:
		summary += ", spangram late 🟡"
	}

	return decoded(game.Strands, game.Record{Score: score, Summary: summary})
}

// spangramTimingAt bands a position into thirds of the sequence length.
func spangramTimingAt(pos int, length int) spangramTiming {
	if pos < 0 {
		return spangramNone
	}
	switch {
	case pos*3 < length:
		return spangramEarly
	case pos*3 < length*2:
		return spangramMid
	}
	return spangramLate
}
