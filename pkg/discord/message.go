package discord

import (
	"github.com/bwmarrin/discordgo"
	"strings"
)

// MaxMessageLength is the most characters Discord accepts in one message.
const MaxMessageLength = 2000

// SplitMessage breaks text into chunks of at most limit characters, on line
// boundaries where possible.
func SplitMessage(text string, limit int) []string {
	var parts []string
	var lines []string
	size := 0

	flush := func() {
		if len(lines) > 0 {
			parts = append(parts, strings.Join(lines, "\n"))
			lines = nil
			size = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}
		need := len(runes)
		if len(lines) > 0 {
			need++
		}
		if size+need > limit {
			flush()
			need = len(runes)
		}
		lines = append(lines, string(runes))
		size += need
	}
	flush()
	return parts
}

// DisplayName is the name a person is shown as in the server.
func DisplayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil && member != nil {
		user = member.User
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
