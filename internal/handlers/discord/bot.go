// Package discord connects Discord interactions and voice events to the music services.
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// VoiceForwarder receives the bot's own voice updates for the audio node
type VoiceForwarder interface {
	OnVoiceStateUpdate(guildID, channelID, sessionID string)
	OnVoiceServerUpdate(guildID, token, endpoint string)
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	dispatcher dispatcher.Service
	messaging  messaging.Service
	playback   playback.Service
	voice      VoiceForwarder
	config     *Config
	logger     zerolog.Logger
	startedAt  time.Time
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an open Discord session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Dispatcher dispatcher.Service
	Messaging  messaging.Service
	Playback   playback.Service

	// Voice forwards voice updates to the audio node
	Voice VoiceForwarder

	InviteURL  string
	SupportURL string

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.Dispatcher == nil {
		return nil, errors.New("dispatcher cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Playback == nil {
		return nil, errors.New("playback service cannot be nil")
	}
	if cfg.Voice == nil {
		return nil, errors.New("voice forwarder cannot be nil")
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		dispatcher: cfg.Dispatcher,
		messaging:  cfg.Messaging,
		playback:   cfg.Playback,
		voice:      cfg.Voice,
		config:     cfg,
		logger:     cfg.Logger,
		startedAt:  time.Now(),
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleVoiceStateUpdate)
	cfg.Session.AddHandler(bot.handleVoiceServerUpdate)

	return bot, nil
}

// Start registers the commands and sets the presence
func (b *Bot) Start() error {
	for _, cmd := range NewMusicCommands(b.dispatcher, b.messaging) {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}
	for _, cmd := range NewInfoCommands(b.config, b.startedAt, b.handlers) {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	if err := b.session.UpdateListeningStatus("/help"); err != nil {
		b.logger.Warn().Err(err).Msg("failed to set presence")
	}

	b.logger.Info().Int("commands", len(b.commands)).Msg("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Registered for one guild when GuildID is set, globally otherwise
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Debug().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

func (b *Bot) handlers() []CommandHandler {
	handlers := make([]CommandHandler, 0, len(b.commands))
	for _, h := range b.commands {
		handlers = append(handlers, h)
	}
	return handlers
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		if i.Type == discordgo.InteractionApplicationCommand || i.Type == discordgo.InteractionMessageComponent {
			_ = RespondWithEphemeralMessage(s, i, "Music commands only work in servers.")
		}
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles the buttons and filter menu on control messages
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	base, generation := parseControlID(data.CustomID)

	action, ok := componentActions[base]
	if !ok {
		return RespondWithEphemeralMessage(s, i, "This button is no longer supported.")
	}

	userID, userName := interactionUser(i)
	req := &dispatcher.Request{
		Action:        action,
		Source:        dispatcher.SourceComponent,
		GuildID:       i.GuildID,
		TextChannelID: i.ChannelID,
		UserID:        userID,
		UserName:      userName,
		Generation:    generation,
	}
	if base == SelectFilter && len(data.Values) > 0 {
		req.Filter = data.Values[0]
	}

	if err := DeferResponse(s, i, true); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	embed, err := dispatchEmbed(ctx, b.dispatcher, b.messaging, req)
	if err != nil {
		return err
	}
	return EditDeferredEmbed(s, i, embed)
}

func (b *Bot) isSelf(s *discordgo.Session, userID string) bool {
	return s.State != nil && s.State.User != nil && s.State.User.ID == userID
}

// handleVoiceStateUpdate forwards the bot's voice session and notices when it leaves voice
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.VoiceState == nil || !b.isSelf(s, v.UserID) {
		return
	}

	b.voice.OnVoiceStateUpdate(v.GuildID, v.ChannelID, v.SessionID)
	if v.ChannelID != "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// A leave from an older session must not tear down one that moved elsewhere
	if v.BeforeUpdate != nil {
		out, err := b.playback.GetSnapshot(ctx, &playback.GetSnapshotInput{GuildID: v.GuildID})
		if err != nil || out.Snapshot.VoiceChannelID != v.BeforeUpdate.ChannelID {
			return
		}
	}

	_, err := b.playback.HandleVoiceDisconnect(ctx, &playback.HandleVoiceDisconnectInput{GuildID: v.GuildID})
	if err != nil && !errors.Is(err, playback.ErrSessionNotFound) {
		b.logger.Error().Err(err).Str("guild_id", v.GuildID).Msg("failed to handle voice disconnect")
	}
}

// handleVoiceServerUpdate forwards voice server credentials to the audio node
func (b *Bot) handleVoiceServerUpdate(s *discordgo.Session, v *discordgo.VoiceServerUpdate) {
	b.voice.OnVoiceServerUpdate(v.GuildID, v.Token, v.Endpoint)
}
