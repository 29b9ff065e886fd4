package command

import (
	"github.com/warmans/puzzleboard/pkg/metrics"
	"log/slog"
)

// Sender delivers text to a channel.
type Sender interface {
	Send(channelID string, text string) error
}

// PostLeaderboard sends the leaderboard for date to the broadcast channel.
// A missing channel or failed send is logged and the post is dropped until
// the next day.
func (c *Puzzles) PostLeaderboard(sender Sender, channelID string, date string) bool {
	if channelID == "" {
		metrics.LeaderboardPosts.WithLabelValues("skipped").Inc()
		c.logger.Warn("Skipping daily leaderboard: no channel configured", slog.String("date", date))
		return false
	}
	if err := sender.Send(channelID, c.Leaderboard(date)); err != nil {
		metrics.LeaderboardPosts.WithLabelValues("failed").Inc()
		c.logger.Error("Failed to post daily leaderboard", slog.String("channel", channelID), slog.String("err", err.Error()))
		return false
	}
	metrics.LeaderboardPosts.WithLabelValues("sent").Inc()
	return true
}
