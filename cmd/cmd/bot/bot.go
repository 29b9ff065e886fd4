package bot

import (
	"context"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"github.com/warmans/puzzleboard/pkg/classifier"
	"github.com/warmans/puzzleboard/pkg/discord"
	"github.com/warmans/puzzleboard/pkg/discord/command"
	"github.com/warmans/puzzleboard/pkg/flag"
	"github.com/warmans/puzzleboard/pkg/game"
	"github.com/warmans/puzzleboard/pkg/leaderboard"
	"github.com/warmans/puzzleboard/pkg/metrics"
	"github.com/warmans/puzzleboard/pkg/schedule"
	"github.com/warmans/puzzleboard/pkg/scores"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

const envPrefix = "puzzleboard"

func NewBotCommand(logger *slog.Logger) *cobra.Command {

	var discordToken string
	var botName string
	var scoresPath string
	var channelID string
	var postAt string
	var timezone string
	var title string
	var metricsAddr string
	var leaderboardImage bool

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "start the discord bot",
		RunE: func(cmd *cobra.Command, args []string) error {

			if discordToken == "" {
				return fmt.Errorf("discord token is required")
			}
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %s: %w", timezone, err)
			}
			postTime, err := schedule.ParseTimeOfDay(postAt, loc)
			if err != nil {
				return err
			}

			logger.Info("Creating discord session...")
			session, err := discordgo.New("Bot " + discordToken)
			if err != nil {
				return fmt.Errorf("failed to create discord session: %w", err)
			}
			session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

			fileStore := scores.NewFileStore(logger, scoresPath)
			store := fileStore.Load()
			logger.Info("Loaded scores", slog.String("path", fileStore.Path()), slog.Int("records", store.Len()))

			puzzles := command.NewPuzzlesCommand(
				logger,
				store,
				classifier.New(logger, store, fileStore, loc),
				leaderboard.NewBuilder(title, nil),
				leaderboardImage,
			)

			logger.Info("Starting bot...")
			bot, err := discord.NewBot(botName, logger, session, puzzles)
			if err != nil {
				return fmt.Errorf("failed to create bot: %w", err)
			}
			if err = bot.Start(); err != nil {
				return fmt.Errorf("failed to start bot: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			if metricsAddr != "" {
				go metrics.Serve(ctx, logger, metricsAddr)
			}

			daily := schedule.NewDaily(logger, postTime, func(ctx context.Context, at time.Time) {
				puzzles.PostLeaderboard(bot, channelID, at.In(loc).Format(game.DateFormat))
			})
			if channelID == "" {
				logger.Warn("No channel configured; daily leaderboard will not be posted")
			} else {
				logger.Info("Daily leaderboard scheduled", slog.String("at", postTime.String()), slog.String("channel", channelID))
			}
			go daily.Run(ctx)

			<-ctx.Done()

			logger.Info("Gracefully shutting down")
			if err = bot.Close(); err != nil {
				return fmt.Errorf("failed to gracefully shutdown bot: %w", err)
			}
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &discordToken, envPrefix, "discord-token", "", "discord auth token")
	flag.StringVarEnv(cmd.Flags(), &botName, envPrefix, "bot-name", "puzzleboard", "root command of the bot")
	flag.StringVarEnv(cmd.Flags(), &scoresPath, envPrefix, "scores-path", "./var/scores.json", "Path to the scores file")
	flag.StringVarEnv(cmd.Flags(), &channelID, envPrefix, "channel-id", "", "Channel the daily leaderboard is posted to")
	flag.StringVarEnv(cmd.Flags(), &postAt, envPrefix, "post-at", "5:00am", "Time of day the leaderboard is posted")
	flag.StringVarEnv(cmd.Flags(), &timezone, envPrefix, "timezone", "Local", "Timezone that decides which day a result belongs to")
	flag.StringVarEnv(cmd.Flags(), &title, envPrefix, "title", "Framily", "Name shown in the leaderboard title")
	flag.StringVarEnv(cmd.Flags(), &metricsAddr, envPrefix, "metrics-addr", "", "Serve prometheus metrics on this address e.g. :9090")
	flag.BoolVarEnv(cmd.Flags(), &leaderboardImage, envPrefix, "leaderboard-image", false, "Attach a rendered image to leaderboard replies")

	flag.Parse()

	return cmd
}
