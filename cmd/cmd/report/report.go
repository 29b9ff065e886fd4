package report

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/warmans/puzzleboard/pkg/flag"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/leaderboard"
	"github.com/warmans/puzzleboard/pkg/scores"
	"github.com/warmans/puzzleboard/pkg/stats"
	"log/slog"
	"os"
	"time"
)

const envPrefix = "puzzleboard"

func NewLeaderboardCommand(logger *slog.Logger) *cobra.Command {

	var scoresPath string
	var date string
	var timezone string
	var title string
	var imagePath string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "print the leaderboard for a day from the scores file",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %s: %w", timezone, err)
			}
			if date == "" {
				date = time.Now().In(loc).Format(game.DateFormat)
			}
			if _, err := time.Parse(game.DateFormat, date); err != nil {
				return fmt.Errorf("invalid date %s: %w", date, err)
			}

			store := scores.NewFileStore(logger, scoresPath).Load()
			builder := leaderboard.NewBuilder(title, nil)

			fmt.Fprintln(cmd.OutOrStdout(), builder.Build(store, date))

			if imagePath != "" {
				buff, err := builder.RenderPNG(store, date)
				if err != nil {
					return fmt.Errorf("failed to render image: %w", err)
				}
				if err := os.WriteFile(imagePath, buff.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write image: %w", err)
				}
			}
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &scoresPath, envPrefix, "scores-path", "./var/scores.json", "Path to the scores file")
	flag.StringVarEnv(cmd.Flags(), &date, envPrefix, "date", "", "Day to show as YYYY-MM-DD (default today)")
	flag.StringVarEnv(cmd.Flags(), &timezone, envPrefix, "timezone", "Local", "Timezone that decides which day is today")
	flag.StringVarEnv(cmd.Flags(), &title, envPrefix, "title", "Framily", "Name shown in the leaderboard title")
	flag.StringVarEnv(cmd.Flags(), &imagePath, envPrefix, "image", "", "Also write the leaderboard as a PNG to this path")

	flag.Parse()

	return cmd
}

func NewStatsCommand(logger *slog.Logger) *cobra.Command {

	var scoresPath string
	var player string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print a player's recent results from the scores file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if player == "" {
				return fmt.Errorf("player is required")
			}
			store := scores.NewFileStore(logger, scoresPath).Load()
			name := stats.Resolve(store, player)
			fmt.Fprintln(cmd.OutOrStdout(), stats.Report(store, name))
			if len(stats.History(store, name)) == 0 {
				if suggestion, ok := stats.Suggest(store, player); ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "did you mean %s?\n", suggestion)
				}
			}
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &scoresPath, envPrefix, "scores-path", "./var/scores.json", "Path to the scores file")
	flag.StringVarEnv(cmd.Flags(), &player, envPrefix, "player", "", "Display name of the player")

	flag.Parse()

	return cmd
}
