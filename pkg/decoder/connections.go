package decoder

import (
	"fmt"
	"github.com/warmans/puzzleboard/pkg/game"
	"strings"
)

const connectionsLabel = "connections"

const (
	yellow = '🟨'
	green  = '🟩'
	blue   = '🟦'
	purple = '🟪'
)

const connectionsPalette = string(yellow) + string(green) + string(blue) + string(purple)

// pointsBySolvePosition awards more for the harder groups and more again for
// finding them early. Index is the 0-based position the group was solved in.
var pointsBySolvePosition = map[rune][]int{
	purple: {5, 3, 2, 1},
	blue:   {3, 2, 1, 0},
	green:  {2, 1, 0, 0},
	yellow: {0, 0, 0, 0},
}

// Connections decodes a pasted Connections grid. Each row is one guess, so a
// perfect game is four rows and every further row was a mistake.
func Connections(text string) Outcome {
	text = strings.TrimSpace(text)
	if !hasPrefixFold(text, connectionsLabel) {
		return notApplicable(game.Connections)
	}
	lines := gridLines(text, connectionsPalette)
	if len(lines) == 0 {
		return malformed(game.Connections, "no grid found")
	}

	mistakes := max(0, len(lines)-4)
	order := colorOrder(lines)

	return decoded(game.Connections, game.Record{
		Mistakes: mistakes,
		Points:   connectionsPoints(order),
		Summary:  connectionsSummary(mistakes, order),
	})
}

// colorOrder is the first colour of each row, in row order, without repeats.
func colorOrder(lines []string) []rune {
	var order []rune
	seen := map[rune]bool{}
	for _, line := range lines {
		first := []rune(line)[0]
		if !seen[first] {
			seen[first] = true
			order = append(order, first)
		}
	}
	return order
}

func connectionsPoints(order []rune) int {
	points := 0
	for pos, color := range order {
		table := pointsBySolvePosition[color]
		if pos < len(table) {
			points += table[pos]
		}
	}
	return points
}

func connectionsSummary(mistakes int, order []rune) string {
	if mistakes > 0 {
		return fmt.Sprintf("%d %s", mistakes, plural(mistakes, "mistake"))
	}
	switch order[0] {
	case purple:
		return "No mistakes! Solved purple first 💜"
	case blue:
		return "No mistakes! Solved blue first 💙"
	}
	return "No mistakes!"
}
