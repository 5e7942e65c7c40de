// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bot is the Discord session glue around the comic pipeline.

It owns the gateway connection, slash command registration and the two entry
points (prefix messages and slash interactions). Both are thin callers of
[Commands], which in turn calls the shared resolve/render pair.

Event Model:

  - discordgo dispatches every event on its own goroutine, so a slow archive
    fetch never blocks the gateway reader.
  - Each invocation gets a UUIDv7 request id and a child logger in its context.
  - Nothing is shared between invocations beyond the stateless resolver.
*/
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/ctxutil"
	"github.com/taibuivan/xkcdbot/pkg/pointer"
	"github.com/taibuivan/xkcdbot/pkg/uuidv7"
)

// # Session Collaborators

// messageSender is the part of [*discordgo.Session] used by the prefix entry point.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// interactionResponder is the part of [*discordgo.Session] used by the slash entry point.
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// # Bot Definition

// Options configures a [Bot].
type Options struct {
	Token            string
	GuildID          string
	RegisterCommands bool
}

// Bot wraps a discordgo session and routes its events to [Commands].
type Bot struct {
	session  *discordgo.Session
	commands *Commands
	options  Options
	logger   *slog.Logger

	// baseCtx is the parent of every invocation context; cancelled on shutdown.
	baseCtx context.Context
	cancel  context.CancelFunc
}

// New validates the token and prepares (but does not open) a session.
func New(options Options, commands *Commands, logger *slog.Logger) (*Bot, error) {
	token, err := ValidateToken(options.Token)
	if err != nil {
		return nil, err
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("bot: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	baseCtx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		session:  session,
		commands: commands,
		options:  options,
		logger:   logger,
		baseCtx:  baseCtx,
		cancel:   cancel,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// # Lifecycle

// Open connects to the gateway and, when enabled, registers slash commands.
func (bot *Bot) Open() error {
	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("bot: open gateway: %w", err)
	}

	if !bot.options.RegisterCommands {
		return nil
	}

	appID := bot.session.State.User.ID
	registered, err := bot.session.ApplicationCommandBulkOverwrite(appID, bot.options.GuildID, SlashCommands())
	if err != nil {
		return fmt.Errorf("bot: register slash commands: %w", err)
	}

	bot.logger.Info("slash_commands_registered",
		slog.Int("count", len(registered)),
		slog.String("guild_id", bot.options.GuildID),
	)
	return nil
}

// Close cancels in-flight invocations and closes the gateway connection.
func (bot *Bot) Close() error {
	bot.cancel()
	return bot.session.Close()
}

// Ready reports whether the gateway session is connected.
func (bot *Bot) Ready() error {
	bot.session.RLock()
	defer bot.session.RUnlock()

	if !bot.session.DataReady {
		return errors.New("discord session not ready")
	}
	return nil
}

// # Event Handlers

func (bot *Bot) onReady(_ *discordgo.Session, ready *discordgo.Ready) {
	bot.logger.Info("discord_session_ready",
		slog.String("user", ready.User.String()),
		slog.Int("guilds", len(ready.Guilds)),
	)
}

func (bot *Bot) onMessageCreate(session *discordgo.Session, event *discordgo.MessageCreate) {
	selfID := ""
	if session.State != nil && session.State.User != nil {
		selfID = session.State.User.ID
	}
	bot.handleMessage(session, selfID, event.Message)
}

func (bot *Bot) onInteractionCreate(session *discordgo.Session, event *discordgo.InteractionCreate) {
	bot.handleInteraction(session, event.Interaction)
}

// handleMessage is the prefix entry point.
func (bot *Bot) handleMessage(sender messageSender, selfID string, message *discordgo.Message) {
	if message == nil || message.Author == nil || message.Author.Bot || message.Author.ID == selfID {
		return
	}
	if _, _, ok := bot.commands.ParseMessage(message.Content); !ok {
		return
	}

	ctx, logger := bot.invocation("prefix", message.Author.ID)

	payload, handled := bot.commands.HandleMessage(ctx, message.Content)
	if !handled {
		return
	}

	reference := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChannelID,
		GuildID:   message.GuildID,
	}
	if _, err := sender.ChannelMessageSendComplex(message.ChannelID, messageSend(payload, reference)); err != nil {
		logger.ErrorContext(ctx, "reply_send_failed", slog.Any("error", err))
		return
	}

	logger.InfoContext(ctx, "command_replied", slog.Bool("embed", !payload.IsText()))
}

// handleInteraction is the slash entry point.
func (bot *Bot) handleInteraction(responder interactionResponder, interaction *discordgo.Interaction) {
	if interaction == nil || interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := interaction.ApplicationCommandData()
	ctx, logger := bot.invocation("slash", interactionUserID(interaction))

	var number *int64
	for _, option := range data.Options {
		if option.Name == constants.OptionNumber && option.Type == discordgo.ApplicationCommandOptionInteger {
			number = pointer.To(option.IntValue())
		}
	}
	logger = logger.With(slog.String("command", data.Name), slog.Int64("number", pointer.Val(number)))

	// Acknowledge first; resolution can outlast the 3s interaction window.
	deferred := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if err := responder.InteractionRespond(interaction, deferred); err != nil {
		logger.ErrorContext(ctx, "interaction_ack_failed", slog.Any("error", err))
		return
	}

	payload, handled := bot.commands.HandleSlash(ctx, data.Name, number)
	if !handled {
		payload = comic.Payload{Content: "Unknown command."}
	}

	if _, err := responder.InteractionResponseEdit(interaction, webhookEdit(payload)); err != nil {
		logger.ErrorContext(ctx, "interaction_edit_failed", slog.Any("error", err))
		return
	}

	logger.InfoContext(ctx, "command_replied", slog.Bool("embed", !payload.IsText()))
}

// invocation derives the context and logger for one command.
func (bot *Bot) invocation(entry, userID string) (context.Context, *slog.Logger) {
	requestID := uuidv7.New()
	logger := bot.logger.With(
		slog.String("request_id", requestID),
		slog.String("entry", entry),
		slog.String("user_id", userID),
	)

	ctx := ctxutil.WithRequestID(bot.baseCtx, requestID)
	ctx = ctxutil.WithLogger(ctx, logger)
	return ctx, logger
}

// interactionUserID returns the invoking user for guild and DM interactions.
func interactionUserID(interaction *discordgo.Interaction) string {
	switch {
	case interaction.Member != nil && interaction.Member.User != nil:
		return interaction.Member.User.ID
	case interaction.User != nil:
		return interaction.User.ID
	default:
		return ""
	}
}
