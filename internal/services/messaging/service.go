// Package messaging turns results and errors into the text users see.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/search"
)

// service implements the Service interface
type service struct {
	rand random.Source
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &service{
		rand: cfg.Random,
	}, nil
}

// errorText is one user facing message per error
type errorText struct {
	err     error
	title   string
	message string
}

// Checked in order, so wrapping errors come before what they wrap
var errorTexts = []errorText{
	{dispatcher.ErrNotInVoiceChannel, "", "You need to join my voice channel to use this!"},
	{dispatcher.ErrNotAuthorized, "", "Only the person who requested this song can use these buttons!"},
	{dispatcher.ErrRateLimited, "", "Slow down! Too many requests, try again in a moment."},
	{dispatcher.ErrUnknownAction, "", "I don't know that one. Try /help."},
	{search.ErrEmptyQuery, "", "Tell me what to play: a song name or a URL."},
	{search.ErrSearchEmpty, "❌ No Results Found", "No tracks found for your search query. Please try:\n• Different keywords\n• Artist name + song title\n• A direct URL"},
	{search.ErrSearchFailed, "⚠️ Search Error", "An error occurred while searching. Please try again or use a different search term."},
	{playback.ErrNodeTimeout, "", "The audio server took too long to respond. Please try again."},
	{playback.ErrNodeDisconnected, "", "The audio server is unavailable right now. Please try again shortly."},
	{playback.ErrPlaybackFailed, "❌ Playback Error", "Failed to start playback. Please try again or check if the bot has proper permissions."},
	{playback.ErrSessionNotFound, "", "Not playing anything!"},
	{playback.ErrNothingPlaying, "", "No track is currently playing!"},
	{playback.ErrStaleControl, "", "Those buttons belong to a song that already ended."},
	{playback.ErrOutOfRange, "", "That number is out of range. Queue positions start at 1 and volume goes from 0 to 100."},
	{playback.ErrUnknownFilter, "", "Unknown filter. Pick one from the menu under the now playing message."},
	{playback.ErrInvalidLoopMode, "", "Loop mode must be off, track or queue."},
	{playback.ErrNoTracks, "", "There was nothing to add."},
}

const genericErrorMessage = "Something went wrong. Please try again."

// GetErrorMessage returns the user facing message for an error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	for _, t := range errorTexts {
		if errors.Is(input.Err, t.err) {
			return &GetErrorMessageOutput{Title: t.title, Message: t.message}, nil
		}
	}

	return &GetErrorMessageOutput{Message: genericErrorMessage}, nil
}

// GetReplyMessage returns the text for a successful command reply
func (s *service) GetReplyMessage(ctx context.Context, input *GetReplyMessageInput) (*GetReplyMessageOutput, error) {
	if input == nil || input.Reply == nil {
		return nil, ErrNilInput
	}
	r := input.Reply

	switch r.Kind {
	case dispatcher.ReplyError:
		out, err := s.GetErrorMessage(ctx, &GetErrorMessageInput{Err: r.Err})
		if err != nil {
			return nil, err
		}
		return &GetReplyMessageOutput{Title: out.Title, Message: out.Message}, nil
	case dispatcher.ReplyTrackAdded:
		return &GetReplyMessageOutput{Title: "✅ Track Added", Message: TrackLink(r.Track)}, nil
	case dispatcher.ReplyPlaylistAdded:
		name := r.PlaylistName
		if name == "" {
			name = "playlist"
		}
		return &GetReplyMessageOutput{
			Title:   "📋 Playlist Added",
			Message: fmt.Sprintf("Added **%d** tracks from %s", len(r.Tracks), name),
		}, nil
	case dispatcher.ReplyNowPlaying:
		return &GetReplyMessageOutput{Title: "🎵 Now Playing", Message: TrackLink(r.Track)}, nil
	case dispatcher.ReplyQueue:
		return &GetReplyMessageOutput{Title: "Queue", Message: QueueDescription(r.Snapshot)}, nil
	}

	return &GetReplyMessageOutput{Message: s.actionText(r)}, nil
}

func (s *service) actionText(r *dispatcher.Reply) string {
	switch r.Action {
	case dispatcher.ActionPause, dispatcher.ActionResume, dispatcher.ActionTogglePause:
		switch {
		case r.Paused && r.AlreadyInState:
			return "Already paused"
		case r.Paused:
			return "⏸️ Paused"
		case r.AlreadyInState:
			return "Already playing"
		}
		return "▶️ Resumed"
	case dispatcher.ActionSkip:
		switch {
		case r.AlreadyInState:
			return "That track was already skipped"
		case r.QueueEnded:
			return "⏭️ Skipped. Queue has ended!"
		}
		return "⏭️ Skipped"
	case dispatcher.ActionStop:
		return s.pick(
			"⏹️ Stopped",
			"⏹️ Stopped. See you next time!",
			"⏹️ Stopped and left the voice channel",
		)
	case dispatcher.ActionShuffle:
		return fmt.Sprintf("🔀 Shuffled %d tracks", r.Count)
	case dispatcher.ActionLoop, dispatcher.ActionToggleLoop:
		switch r.LoopMode {
		case models.LoopModeTrack:
			return "🔂 Loop: Track"
		case models.LoopModeQueue:
			return "🔁 Loop: Queue"
		}
		return "Loop: Disabled"
	case dispatcher.ActionRemove:
		return fmt.Sprintf("🗑️ Removed %s from position %d", TrackLink(r.Track), r.Position)
	case dispatcher.ActionMove:
		return fmt.Sprintf("↕️ Moved %s to position %d", TrackLink(r.Track), r.Position)
	case dispatcher.ActionClearQueue:
		return fmt.Sprintf("🧹 Cleared %d tracks from the queue", r.Count)
	case dispatcher.ActionVolume:
		return fmt.Sprintf("🔊 Volume set to %d", r.Level)
	case dispatcher.ActionFilter:
		if r.Filter == "" {
			return "🎵 Filters cleared"
		}
		return fmt.Sprintf("🎵 Applied filter: %s", r.Filter)
	case dispatcher.ActionStayConnected:
		if r.StayConnected {
			return s.pick(
				"🌙 24/7 mode enabled. I'll stay in the voice channel.",
				"🌙 24/7 mode enabled. Not going anywhere.",
			)
		}
		return "☀️ 24/7 mode disabled. I'll leave when the queue ends."
	}
	return "Done"
}

// GetNotificationMessage returns the text for a session notification
func (s *service) GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error) {
	if input == nil || input.Notification == nil {
		return nil, ErrNilInput
	}
	n := input.Notification

	switch n.Kind {
	case playback.NotificationTrackStarted, playback.NotificationStateChanged:
		track := n.Track
		if track == nil && n.Snapshot != nil {
			track = n.Snapshot.Current
		}
		return &GetNotificationMessageOutput{Title: "🎵 Now Playing", Message: TrackLink(track)}, nil
	case playback.NotificationQueueEnded:
		return &GetNotificationMessageOutput{Message: "Queue has ended!"}, nil
	case playback.NotificationStopped:
		return &GetNotificationMessageOutput{Message: "Music stopped. I left the voice channel."}, nil
	case playback.NotificationNodeDisconnected:
		return &GetNotificationMessageOutput{Message: "Lost connection to the audio server. Playback stopped."}, nil
	case playback.NotificationPlaybackFailed:
		out, err := s.GetErrorMessage(ctx, &GetErrorMessageInput{Err: n.Err})
		if err != nil {
			return nil, err
		}
		return &GetNotificationMessageOutput{Title: out.Title, Message: out.Message}, nil
	}

	return &GetNotificationMessageOutput{}, nil
}

func (s *service) pick(messages ...string) string {
	return messages[s.rand.Intn(len(messages))]
}

// TrackLink renders a track title as a markdown link when it has a web URI
func TrackLink(t *models.Track) string {
	if t == nil {
		return "Unknown track"
	}
	title := t.Title
	if title == "" {
		title = "Unknown title"
	}
	if strings.HasPrefix(t.URI, "http") {
		return fmt.Sprintf("[%s](%s)", title, t.URI)
	}
	return title
}

// QueueDescription lists the current track and the first pending tracks
func QueueDescription(snapshot *models.SessionSnapshot) string {
	if snapshot == nil {
		return "No songs in queue"
	}

	var b strings.Builder
	if snapshot.Current != nil {
		fmt.Fprintf(&b, "**Now Playing:**\n%s\n\n**Queue:**\n", TrackLink(snapshot.Current))
	}

	if len(snapshot.Queue) == 0 {
		b.WriteString("No songs in queue")
		return b.String()
	}

	for i, t := range snapshot.Queue {
		if i == QueuePreviewSize {
			fmt.Fprintf(&b, "\n...and %d more", len(snapshot.Queue)-QueuePreviewSize)
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, TrackLink(t))
	}

	return b.String()
}
