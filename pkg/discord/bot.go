package discord

import (
	"errors"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"log/slog"
)

type InteractionHandler func(s *discordgo.Session, i *discordgo.InteractionCreate) error

type InteractionHandlers map[string]InteractionHandler

type MessageHandler func(s *discordgo.Session, m *discordgo.MessageCreate)

type MessageHandlers []MessageHandler

// Command is a group of slash sub-commands under the bot's root command,
// plus any handlers for plain channel messages.
type Command interface {
	RootCommand() string
	Description() string
	CommandHandlers() InteractionHandlers
	SubCommands() []*discordgo.ApplicationCommandOption
	MessageHandlers() MessageHandlers
}

func NewBot(
	botName string,
	logger *slog.Logger,
	session *discordgo.Session,
	commands ...Command,
) (*Bot, error) {
	if botName == "" {
		return nil, errors.New("bot name is required")
	}
	bot := &Bot{
		logger:          logger,
		session:         session,
		commandHandlers: make(map[string]InteractionHandlers),
		rootCommand: &discordgo.ApplicationCommand{
			Name:        botName,
			Description: "Daily puzzle scores",
			Type:        discordgo.ChatApplicationCommand,
		},
	}
	for _, cmd := range commands {
		if _, exists := bot.commandHandlers[cmd.RootCommand()]; exists {
			return nil, fmt.Errorf("duplicate command: %s", cmd.RootCommand())
		}
		bot.rootCommand.Options = append(bot.rootCommand.Options, &discordgo.ApplicationCommandOption{
			Name:        cmd.RootCommand(),
			Description: cmd.Description(),
			Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
			Options:     cmd.SubCommands(),
		})
		bot.commandHandlers[cmd.RootCommand()] = cmd.CommandHandlers()
		bot.messageHandlers = append(bot.messageHandlers, cmd.MessageHandlers()...)
	}
	return bot, nil
}

type Bot struct {
	logger          *slog.Logger
	session         *discordgo.Session
	rootCommand     *discordgo.ApplicationCommand
	commandHandlers map[string]InteractionHandlers
	messageHandlers MessageHandlers
	createdCommands []*discordgo.ApplicationCommand
}

func (b *Bot) Start() error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info("Logged in", slog.String("user", s.State.User.Username))
	})
	b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		data := i.ApplicationCommandData()
		if data.Name != b.rootCommand.Name || len(data.Options) == 0 || len(data.Options[0].Options) == 0 {
			b.respondError(s, i, fmt.Errorf("unknown command"))
			return
		}
		group, sub := data.Options[0].Name, data.Options[0].Options[0].Name
		handler, ok := b.commandHandlers[group][sub]
		if !ok {
			b.respondError(s, i, fmt.Errorf("unknown command: %s %s", group, sub))
			return
		}
		if err := handler(s, i); err != nil {
			b.respondError(s, i, err, slog.String("command", group+" "+sub))
		}
	})
	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || (s.State.User != nil && m.Author.ID == s.State.User.ID) {
			return
		}
		for _, h := range b.messageHandlers {
			h(s, m)
		}
	})
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	var err error
	b.createdCommands, err = b.session.ApplicationCommandBulkOverwrite(
		b.session.State.User.ID,
		"",
		[]*discordgo.ApplicationCommand{b.rootCommand},
	)
	if err != nil {
		return fmt.Errorf("cannot register commands: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	// cleanup commands
	for _, cmd := range b.createdCommands {
		err := b.session.ApplicationCommandDelete(b.session.State.User.ID, "", cmd.ID)
		if err != nil {
			return fmt.Errorf("cannot delete %s command: %w", cmd.Name, err)
		}
	}
	return b.session.Close()
}

// Send posts text to a channel, split into as many messages as needed.
func (b *Bot) Send(channelID string, text string) error {
	if channelID == "" {
		return errors.New("no channel configured")
	}
	for _, part := range SplitMessage(text, MaxMessageLength) {
		if _, err := b.session.ChannelMessageSend(channelID, part); err != nil {
			return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
		}
	}
	return nil
}

func (b *Bot) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, logCtx ...any) {
	b.logger.Error("Error response was sent: "+err.Error(), logCtx...)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Sorry, that didn't work.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond", slog.String("err", err.Error()))
		return
	}
}
