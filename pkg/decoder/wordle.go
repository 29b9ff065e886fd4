package decoder

import (
	"github.com/warmans/puzzleboard/pkg/game"
	"strconv"
	"strings"
)

const wordleLabel = "Wordle"

// Wordle decodes a share line such as "Wordle 1,234 3/6".
func Wordle(text string) Outcome {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, wordleLabel) {
		return notApplicable(game.Wordle)
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	parts := strings.Fields(firstLine)
	if len(parts) < 3 || !strings.Contains(parts[2], "/") {
		return malformed(game.Wordle, "missing score")
	}
	attemptsStr, _, _ := strings.Cut(parts[2], "/")
	attempts, err := strconv.Atoi(attemptsStr)
	if err != nil {
		return malformed(game.Wordle, "score is not a number")
	}
	if attempts < 1 || attempts > 6 {
		return malformed(game.Wordle, "score out of range")
	}
	return decoded(game.Wordle, game.Record{Attempts: attempts})
}
