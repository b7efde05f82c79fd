package discord

import (
	"context"
	"errors"

	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/biltubhaiff-blip/Discord-music/internal/handlers/discord Messenger

// Messenger posts and edits channel messages
type Messenger interface {
	SendMessage(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	EditMessage(edit *discordgo.MessageEdit) (*discordgo.Message, error)
}

// SurfaceConfig holds configuration for the control surface
type SurfaceConfig struct {
	Messenger Messenger
	Messaging messaging.Service
	Logger    zerolog.Logger
}

// Surface renders session notifications as now playing messages with controls
type Surface struct {
	messenger Messenger
	messaging messaging.Service
	logger    zerolog.Logger
}

// NewSurface creates a new control surface
func NewSurface(cfg *SurfaceConfig) (*Surface, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Surface{
		messenger: cfg.Messenger,
		messaging: cfg.Messaging,
		logger:    cfg.Logger,
	}, nil
}

// DisableControls greys out every control on a message
func (s *Surface) DisableControls(ctx context.Context, ref models.MessageRef) error {
	if ref.IsZero() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	components := controlComponents(nil, true)
	_, err := s.messenger.EditMessage(&discordgo.MessageEdit{
		Channel:    ref.ChannelID,
		ID:         ref.MessageID,
		Components: &components,
	})
	return err
}

// Run renders notifications until ctx is cancelled
func (s *Surface) Run(ctx context.Context, sessions playback.Service) error {
	notifications := sessions.Notifications()
	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-notifications:
			if !ok {
				return nil
			}
			s.render(ctx, sessions, n)
		}
	}
}

func (s *Surface) render(ctx context.Context, sessions playback.Service, n *playback.Notification) {
	text, err := s.messaging.GetNotificationMessage(ctx, &messaging.GetNotificationMessageInput{Notification: n})
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(n.Kind)).Msg("failed to build notification text")
		return
	}

	switch n.Kind {
	case playback.NotificationTrackStarted:
		s.postControls(ctx, sessions, n, text)
	case playback.NotificationStateChanged:
		s.refreshControls(ctx, sessions, n, text)
	default:
		isError := n.Kind == playback.NotificationPlaybackFailed || n.Kind == playback.NotificationNodeDisconnected
		_, err := s.messenger.SendMessage(n.TextChannelID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{noticeEmbed(text.Title, text.Message, isError)},
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("guild_id", n.GuildID).Str("kind", string(n.Kind)).Msg("failed to post notice")
		}
	}
}

// postControls sends a fresh now playing message and records it on the session
func (s *Surface) postControls(ctx context.Context, sessions playback.Service, n *playback.Notification, text *messaging.GetNotificationMessageOutput) {
	if n.Snapshot == nil {
		return
	}

	msg, err := s.messenger.SendMessage(n.TextChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{nowPlayingEmbed(n.Snapshot, text.Title, text.Message)},
		Components: controlComponents(n.Snapshot, false),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("guild_id", n.GuildID).Msg("failed to post now playing message")
		return
	}

	ref := models.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}
	out, err := sessions.AttachControlMessage(ctx, &playback.AttachControlMessageInput{
		GuildID:    n.GuildID,
		Generation: n.Snapshot.Generation,
		Ref:        ref,
	})
	if err != nil {
		// The track already changed or the session is gone
		s.logger.Debug().Err(err).Str("guild_id", n.GuildID).Msg("control message is stale")
		s.disable(ctx, ref)
		return
	}

	s.disable(ctx, out.Previous)
}

// refreshControls updates labels on the current control message. A notification that
// queued behind a skip must not re-enable buttons the skip already disabled.
func (s *Surface) refreshControls(ctx context.Context, sessions playback.Service, n *playback.Notification, text *messaging.GetNotificationMessageOutput) {
	if n.Snapshot == nil || n.Snapshot.ControlMessage.IsZero() || !n.Snapshot.State.IsActive() {
		return
	}

	out, err := sessions.GetSnapshot(ctx, &playback.GetSnapshotInput{GuildID: n.GuildID})
	if err != nil {
		s.logger.Debug().Err(err).Str("guild_id", n.GuildID).Msg("session gone before refresh")
		return
	}
	snapshot := out.Snapshot
	if snapshot.ControlMessage != n.Snapshot.ControlMessage || snapshot.Generation != n.Snapshot.Generation || !snapshot.State.IsActive() {
		s.logger.Debug().Str("guild_id", n.GuildID).Msg("skipping refresh of stale control message")
		return
	}

	embeds := []*discordgo.MessageEmbed{nowPlayingEmbed(snapshot, text.Title, text.Message)}
	components := controlComponents(snapshot, false)
	_, err = s.messenger.EditMessage(&discordgo.MessageEdit{
		Channel:    snapshot.ControlMessage.ChannelID,
		ID:         snapshot.ControlMessage.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("guild_id", n.GuildID).Msg("failed to refresh control message")
	}
}

func (s *Surface) disable(ctx context.Context, ref models.MessageRef) {
	if err := s.DisableControls(ctx, ref); err != nil {
		s.logger.Warn().Err(err).Str("message_id", ref.MessageID).Msg("failed to disable controls")
	}
}

// sessionMessenger adapts a discordgo session to Messenger
type sessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger wraps a discordgo session
func NewSessionMessenger(session *discordgo.Session) *sessionMessenger {
	return &sessionMessenger{session: session}
}

func (m *sessionMessenger) SendMessage(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return m.session.ChannelMessageSendComplex(channelID, data)
}

func (m *sessionMessenger) EditMessage(edit *discordgo.MessageEdit) (*discordgo.Message, error) {
	return m.session.ChannelMessageEditComplex(edit)
}
