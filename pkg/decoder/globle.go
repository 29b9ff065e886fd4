package decoder

import (
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"regexp"
	"strconv"
	"strings"
)

var globleGuessesRegex = regexp.MustCompile(`🟩\s*=\s*([0-9]+)`)

// Globle decodes a Globle share. The line ending in the green square holds
// the total number of guesses e.g. "🟧🟨🟩 = 4".
func Globle(text string) Outcome {
	if !strings.ContainsAny(text, "🌎🌍🌏") {
		return notApplicable(game.Globle)
	}
	var guessLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsRune(line, green) {
			guessLine = line
			break
		}
	}
	if guessLine == "" {
		return malformed(game.Globle, "No recognizable Globle result.")
	}
	matches := globleGuessesRegex.FindStringSubmatch(guessLine)
	if matches == nil {
		return malformed(game.Globle, "Could not find number of guesses.")
	}
	guesses, err := strconv.Atoi(matches[1])
	if err != nil || guesses < 1 {
		return malformed(game.Globle, "Could not find number of guesses.")
	}
	return decoded(game.Globle, game.Record{Guesses: guesses, Summary: globleSummary(guesses)})
}

func globleSummary(guesses int) string {
	switch {
	case guesses <= 2:
		return fmt.Sprintf("%d guesses, AMAZING 🌍", guesses)
	case guesses <= 4:
		return fmt.Sprintf("%d guesses, great job! 🌎", guesses)
	case guesses <= 6:
		return fmt.Sprintf("%d guesses, nice! 🌏", guesses)
	}
	return fmt.Sprintf("%d guesses", guesses)
}
