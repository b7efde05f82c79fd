package playback

import (
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/clock"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/rs/zerolog"
)

const (
	// DefaultVolume is the volume of a new session
	DefaultVolume = 100

	// MaxVolume is the highest accepted volume
	MaxVolume = 100

	defaultNodeTimeout        = 5 * time.Second
	defaultSurfaceTimeout     = 5 * time.Second
	defaultNotificationBuffer = 256
)

// Config holds configuration for the playback service
type Config struct {
	// AudioNode plays the audio
	AudioNode audionode.Client

	// Surface disables stale control messages
	Surface ControlSurface

	// Random drives shuffle
	Random random.Source

	Clock clock.Clock

	Logger zerolog.Logger

	// Upper bound for a single audio node call
	NodeTimeout time.Duration

	// Upper bound for a single control surface call
	SurfaceTimeout time.Duration

	// Size of the notification channel
	NotificationBuffer int
}

// NotificationKind identifies what the control surface should render
type NotificationKind string

const (
	// NotificationStateChanged means settings or pause state changed
	NotificationStateChanged NotificationKind = "state_changed"

	// NotificationTrackStarted means the node started the current track
	NotificationTrackStarted NotificationKind = "track_started"

	// NotificationQueueEnded means the last track finished and nothing is queued
	NotificationQueueEnded NotificationKind = "queue_ended"

	// NotificationStopped means the session was removed by stop or voice disconnect
	NotificationStopped NotificationKind = "stopped"

	// NotificationNodeDisconnected means the session was lost with the audio node
	NotificationNodeDisconnected NotificationKind = "node_disconnected"

	// NotificationPlaybackFailed means the node refused to play the next track
	NotificationPlaybackFailed NotificationKind = "playback_failed"
)

// Notification is one event for the control surface
type Notification struct {
	Kind NotificationKind

	GuildID string

	// TextChannelID is where the session posts
	TextChannelID string

	// Snapshot is the session as of the notification
	Snapshot *models.SessionSnapshot

	// Track is the track the notification is about, if any
	Track *models.Track

	// Err is set for NotificationPlaybackFailed
	Err error
}

// EnqueueInput contains parameters for adding tracks
type EnqueueInput struct {
	GuildID string

	// VoiceChannelID is the requester's voice channel; the session relocates to it
	VoiceChannelID string

	// TextChannelID is where notifications will be posted
	TextChannelID string

	// Tracks in play order
	Tracks []*models.Track
}

// EnqueueOutput contains the result of adding tracks
type EnqueueOutput struct {
	// Position is the 1-based queue position of the first added track, 0 if it started playing
	Position int

	// Count is how many tracks were added
	Count int

	// Started is true when the session was idle and playback started
	Started bool

	// Created is true when this call created the session
	Created bool

	// Relocated is true when the session moved to a different voice channel
	Relocated bool

	Snapshot *models.SessionSnapshot
}

// PlayInput contains parameters for restarting playback
type PlayInput struct {
	GuildID string
}

// PlayOutput contains the result of restarting playback
type PlayOutput struct {
	Track *models.Track

	// AlreadyInState is true when something was already playing
	AlreadyInState bool
}

// PauseInput contains parameters for pausing
type PauseInput struct {
	GuildID string
}

// PauseOutput contains the result of pausing
type PauseOutput struct {
	AlreadyInState bool
}

// ResumeInput contains parameters for resuming
type ResumeInput struct {
	GuildID string
}

// ResumeOutput contains the result of resuming
type ResumeOutput struct {
	AlreadyInState bool
}

// SkipInput contains parameters for skipping
type SkipInput struct {
	GuildID string

	// Generation of the track the request was made against, 0 for whatever is current
	Generation uint64
}

// SkipOutput contains the result of skipping
type SkipOutput struct {
	// Skipped is the track that was ended
	Skipped *models.Track

	// Next is the track now playing, nil when the queue ended
	Next *models.Track

	QueueEnded bool

	// AlreadySkipped is true when another request ended the track first
	AlreadySkipped bool
}

// StopInput contains parameters for stopping
type StopInput struct {
	GuildID string
}

// StopOutput contains the result of stopping
type StopOutput struct {
	// Cleared is the number of pending tracks dropped
	Cleared int
}

// SetLoopInput contains parameters for changing the loop mode
type SetLoopInput struct {
	GuildID string
	Mode    models.LoopMode
}

// SetLoopOutput contains the result of changing the loop mode
type SetLoopOutput struct {
	Mode     models.LoopMode
	Previous models.LoopMode
}

// SetVolumeInput contains parameters for changing the volume
type SetVolumeInput struct {
	GuildID string
	Level   int
}

// SetVolumeOutput contains the result of changing the volume
type SetVolumeOutput struct {
	Level    int
	Previous int
}

// SetFilterInput contains parameters for applying a filter
type SetFilterInput struct {
	GuildID string
	Filter  string
}

// SetFilterOutput contains the result of applying a filter
type SetFilterOutput struct {
	// Filter is empty when filters were cleared
	Filter string
}

// RemoveInput contains parameters for removing a pending track
type RemoveInput struct {
	GuildID  string
	Position int
}

// RemoveOutput contains the removed track
type RemoveOutput struct {
	Track *models.Track
}

// MoveInput contains parameters for moving a pending track
type MoveInput struct {
	GuildID string
	From    int
	To      int
}

// MoveOutput contains the moved track
type MoveOutput struct {
	Track *models.Track
}

// ClearQueueInput contains parameters for clearing the queue
type ClearQueueInput struct {
	GuildID string
}

// ClearQueueOutput contains the result of clearing the queue
type ClearQueueOutput struct {
	Removed int
}

// ShuffleInput contains parameters for shuffling
type ShuffleInput struct {
	GuildID string
}

// ShuffleOutput contains the result of shuffling
type ShuffleOutput struct {
	Count int
}

// SetStayConnectedInput contains parameters for toggling 24/7 mode
type SetStayConnectedInput struct {
	GuildID string
	Enabled bool
}

// SetStayConnectedOutput contains the result of toggling 24/7 mode
type SetStayConnectedOutput struct {
	Enabled bool

	// Destroyed is true when turning 24/7 off removed an idle session
	Destroyed bool
}

// GetSnapshotInput contains parameters for reading a session
type GetSnapshotInput struct {
	GuildID string
}

// GetSnapshotOutput contains the session copy
type GetSnapshotOutput struct {
	Snapshot *models.SessionSnapshot
}

// AttachControlMessageInput contains parameters for recording a control message
type AttachControlMessageInput struct {
	GuildID string

	// Generation the message was rendered for
	Generation uint64

	Ref models.MessageRef
}

// AttachControlMessageOutput contains the result of recording a control message
type AttachControlMessageOutput struct {
	// Previous is the message this one replaced; its controls should be disabled
	Previous models.MessageRef
}

// HandleVoiceDisconnectInput contains parameters for a lost voice connection
type HandleVoiceDisconnectInput struct {
	GuildID string
}

// HandleVoiceDisconnectOutput contains the result of a lost voice connection
type HandleVoiceDisconnectOutput struct {
	Destroyed bool
}
