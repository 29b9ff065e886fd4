package cmd

import (
	"github.com/spf13/cobra"
	"github.com/warmans/puzzleboard/cmd/cmd/bot"
	"github.com/warmans/puzzleboard/cmd/cmd/report"
	"log/slog"
)

var (
	rootCmd = &cobra.Command{
		Use:   "puzzleboard",
		Short: "Daily puzzle leaderboard bot",
	}
)

// Execute executes the root command.
func Execute(logger *slog.Logger) error {
	rootCmd.AddCommand(bot.NewBotCommand(logger))
	rootCmd.AddCommand(report.NewLeaderboardCommand(logger))
	rootCmd.AddCommand(report.NewStatsCommand(logger))
	return rootCmd.Execute()
}
