package models

import (
	"time"
)

// PlaybackState represents what a guild session is currently doing
type PlaybackState string

const (
	// PlaybackStateIdle means nothing is playing
	PlaybackStateIdle PlaybackState = "idle"

	// PlaybackStatePlaying means the current track is audible
	PlaybackStatePlaying PlaybackState = "playing"

	// PlaybackStatePaused means the current track is held
	PlaybackStatePaused PlaybackState = "paused"

	// PlaybackStateStopped is the final state of a session removed by stop
	PlaybackStateStopped PlaybackState = "stopped"
)

// IsActive returns true if a track is loaded on the audio node
func (s PlaybackState) IsActive() bool {
	return s == PlaybackStatePlaying || s == PlaybackStatePaused
}

// LoopMode controls what advancing the queue does with the finished track
type LoopMode string

const (
	// LoopModeOff discards the finished track
	LoopModeOff LoopMode = "off"

	// LoopModeTrack replays the finished track
	LoopModeTrack LoopMode = "track"

	// LoopModeQueue moves the finished track to the end of the queue
	LoopModeQueue LoopMode = "queue"
)

// ParseLoopMode converts a user supplied value into a LoopMode.
func ParseLoopMode(value string) (LoopMode, bool) {
	switch LoopMode(value) {
	case LoopModeOff, LoopModeTrack, LoopModeQueue:
		return LoopMode(value), true
	case "none":
		return LoopModeOff, true
	}
	return "", false
}

// MessageRef points at a Discord message. The message is owned by Discord, so a ref may be stale.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// IsZero reports whether the ref points nowhere
func (r MessageRef) IsZero() bool {
	return r.MessageID == ""
}

// SessionSnapshot is a read-only copy of a guild session used for rendering
type SessionSnapshot struct {
	// GuildID is the Discord guild the session belongs to
	GuildID string

	// VoiceChannelID is the voice channel the bot is connected to
	VoiceChannelID string

	// TextChannelID is where notifications are posted
	TextChannelID string

	// Current is the track being played, nil when idle
	Current *Track

	// Queue holds the pending tracks in play order
	Queue []*Track

	// State is the playback state
	State PlaybackState

	// LoopMode is the active loop policy
	LoopMode LoopMode

	// Volume is 0-100
	Volume int

	// Filter is the active audio filter, empty when none
	Filter string

	// StayConnected is the 24/7 flag
	StayConnected bool

	// Generation changes every time the current track changes
	Generation uint64

	// ControlMessage is the now playing message with the control buttons, if any
	ControlMessage MessageRef

	// CreatedAt is when the session was created
	CreatedAt time.Time
}
