package command

import (
	"fmt"
	"github.com/bwmarrin/discordgo"
	"github.com/warmans/puzzleboard/pkg/classifier"
	"github.com/warmans/puzzleboard/pkg/discord"
	"github.com/warmans/puzzleboard/pkg/leaderboard"
	"github.com/warmans/puzzleboard/pkg/scores"
	"github.com/warmans/puzzleboard/pkg/stats"
	"log/slog"
	"time"
)

const (
	puzzlesCommand = "puzzles"
)

const (
	puzzlesCmdHello       string = "hello"
	puzzlesCmdLeaderboard string = "leaderboard"
	puzzlesCmdStats       string = "stats"
)

func NewPuzzlesCommand(
	logger *slog.Logger,
	store *scores.Store,
	cl *classifier.Classifier,
	builder *leaderboard.Builder,
	attachImage bool,
) *Puzzles {
	return &Puzzles{
		logger:      logger,
		store:       store,
		classifier:  cl,
		builder:     builder,
		attachImage: attachImage,
		now:         time.Now,
	}
}

// Puzzles collects pasted daily puzzle results and reports on them.
type Puzzles struct {
	logger      *slog.Logger
	store       *scores.Store
	classifier  *classifier.Classifier
	builder     *leaderboard.Builder
	attachImage bool
	now         func() time.Time
}

func (c *Puzzles) RootCommand() string {
	return puzzlesCommand
}

func (c *Puzzles) Description() string {
	return "Daily puzzle leaderboard"
}

func (c *Puzzles) CommandHandlers() discord.InteractionHandlers {
	return discord.InteractionHandlers{
		puzzlesCmdHello:       c.hello,
		puzzlesCmdLeaderboard: c.leaderboard,
		puzzlesCmdStats:       c.stats,
	}
}

func (c *Puzzles) SubCommands() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Name:        puzzlesCmdHello,
			Description: "Check the bot is listening",
			Type:        discordgo.ApplicationCommandOptionSubCommand,
		}, {
			Name:        puzzlesCmdLeaderboard,
			Description: "Show today's leaderboard",
			Type:        discordgo.ApplicationCommandOptionSubCommand,
		}, {
			Name:        puzzlesCmdStats,
			Description: "Show recent results for a player",
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "player",
					Description: "Display name (defaults to you)",
					Required:    false,
				},
			},
		},
	}
}

func (c *Puzzles) MessageHandlers() discord.MessageHandlers {
	return discord.MessageHandlers{
		func(s *discordgo.Session, m *discordgo.MessageCreate) {
			player := discord.DisplayName(m.Member, m.Author)
			if cmd, ok := parseTextCommand(m.Content); ok {
				if cmd.name == puzzlesCmdStats && len(m.Mentions) > 0 {
					cmd.arg = c.mentionedName(s, m.GuildID, m.Mentions[0])
				}
				c.sendText(s, m.ChannelID, c.runTextCommand(cmd, player))
				return
			}
			receivedAt := m.Timestamp
			if receivedAt.IsZero() {
				receivedAt = c.now()
			}
			c.classifier.Classify(player, m.Content, receivedAt)
		},
	}
}

// Greeting is the reply to hello.
func (c *Puzzles) Greeting(player string) string {
	return fmt.Sprintf("👋 Hello %s! The bot is working!", player)
}

// Today is the leaderboard date for the current time.
func (c *Puzzles) Today() string {
	return c.classifier.Today(c.now())
}

// Leaderboard renders the standings for a date.
func (c *Puzzles) Leaderboard(date string) string {
	return c.builder.Build(c.store, date)
}

// Stats renders recent results for a requested player name.
func (c *Puzzles) Stats(name string) string {
	return stats.Report(c.store, stats.Resolve(c.store, name))
}

// OwnStats renders recent results recorded under exactly the caller's name.
func (c *Puzzles) OwnStats(caller string) string {
	return stats.Report(c.store, caller)
}

func (c *Puzzles) runTextCommand(cmd textCommand, caller string) string {
	switch cmd.name {
	case puzzlesCmdHello:
		return c.Greeting(caller)
	case puzzlesCmdLeaderboard:
		return c.Leaderboard(c.Today())
	case puzzlesCmdStats:
		if cmd.arg == "" {
			return c.OwnStats(caller)
		}
		return c.Stats(cmd.arg)
	}
	return ""
}

func (c *Puzzles) mentionedName(s *discordgo.Session, guildID string, user *discordgo.User) string {
	if s.State != nil && guildID != "" {
		if member, err := s.State.Member(guildID, user.ID); err == nil {
			return discord.DisplayName(member, user)
		}
	}
	return discord.DisplayName(nil, user)
}

func (c *Puzzles) sendText(s *discordgo.Session, channelID string, text string) {
	for _, part := range discord.SplitMessage(text, discord.MaxMessageLength) {
		if _, err := s.ChannelMessageSend(channelID, part); err != nil {
			c.logger.Error("failed to send message", slog.String("channel", channelID), slog.String("err", err.Error()))
			return
		}
	}
}

func (c *Puzzles) hello(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.respond(s, i, c.Greeting(discord.DisplayName(i.Member, i.User)), nil)
}

func (c *Puzzles) leaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	date := c.Today()
	var files []*discordgo.File
	if c.attachImage {
		buff, err := c.builder.RenderPNG(c.store, date)
		if err != nil {
			c.logger.Error("failed to render leaderboard image", slog.String("err", err.Error()))
		} else {
			files = append(files, &discordgo.File{
				Name:        "leaderboard.png",
				ContentType: "image/png",
				Reader:      buff,
			})
		}
	}
	return c.respond(s, i, c.Leaderboard(date), files)
}

func (c *Puzzles) stats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	for _, opt := range i.ApplicationCommandData().Options[0].Options[0].Options {
		if opt.Name == "player" && opt.StringValue() != "" {
			return c.respond(s, i, c.Stats(opt.StringValue()), nil)
		}
	}
	return c.respond(s, i, c.OwnStats(discord.DisplayName(i.Member, i.User)), nil)
}

// respond replies with the first chunk of text and follows up with the rest.
func (c *Puzzles) respond(s *discordgo.Session, i *discordgo.InteractionCreate, text string, files []*discordgo.File) error {
	parts := discord.SplitMessage(text, discord.MaxMessageLength)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: parts[0],
			Files:   files,
		},
	})
	if err != nil {
		return err
	}
	for _, part := range parts[1:] {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{Content: part}); err != nil {
			return err
		}
	}
	return nil
}
