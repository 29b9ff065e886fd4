package command

import (
	"regexp"
	"strings"
)

var textCommandRegex = regexp.MustCompile(`^!(hello|leaderboard|stats)(?:\s+(.+))?$`)

type textCommand struct {
	name string
	arg  string
}

// parseTextCommand reads the "!name [arg]" commands typed into a channel.
func parseTextCommand(content string) (textCommand, bool) {
	matches := textCommandRegex.FindStringSubmatch(strings.TrimSpace(content))
	if matches == nil {
		return textCommand{}, false
	}
	return textCommand{name: matches[1], arg: strings.TrimSpace(matches[2])}, true
}
