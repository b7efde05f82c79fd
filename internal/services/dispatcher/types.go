package dispatcher

import (
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/search"
	"github.com/rs/zerolog"
)

// Action is a control action a user can request
type Action string

const (
	ActionPlay          Action = "play"
	ActionPause         Action = "pause"
	ActionResume        Action = "resume"
	ActionTogglePause   Action = "toggle_pause"
	ActionSkip          Action = "skip"
	ActionStop          Action = "stop"
	ActionQueue         Action = "queue"
	ActionNowPlaying    Action = "nowplaying"
	ActionShuffle       Action = "shuffle"
	ActionLoop          Action = "loop"
	ActionToggleLoop    Action = "toggle_loop"
	ActionRemove        Action = "remove"
	ActionMove          Action = "move"
	ActionClearQueue    Action = "clearqueue"
	ActionVolume        Action = "volume"
	ActionFilter        Action = "filter"
	ActionStayConnected Action = "247"
)

// IsReadOnly returns true for actions that only look at the session
func (a Action) IsReadOnly() bool {
	return a == ActionQueue || a == ActionNowPlaying
}

// Source is where a request came from
type Source string

const (
	// SourceCommand is a slash command
	SourceCommand Source = "command"

	// SourceComponent is a button or select menu on a control message
	SourceComponent Source = "component"
)

// Request is a control request normalized from a Discord interaction
type Request struct {
	Action Action
	Source Source

	GuildID       string
	TextChannelID string
	UserID        string
	UserName      string

	// Query for play
	Query string

	// Position for remove
	Position int

	// From and To for move
	From int
	To   int

	// Level for volume
	Level int

	// Mode for loop
	Mode string

	// Filter for filter
	Filter string

	// Generation of the control message a component request came from
	Generation uint64
}

// ReplyKind tells the renderer which layout to use
type ReplyKind string

const (
	ReplyText          ReplyKind = "text"
	ReplyTrackAdded    ReplyKind = "track_added"
	ReplyPlaylistAdded ReplyKind = "playlist_added"
	ReplyQueue         ReplyKind = "queue"
	ReplyNowPlaying    ReplyKind = "now_playing"
	ReplyError         ReplyKind = "error"
)

// Reply is the single user visible answer to a request
type Reply struct {
	Kind   ReplyKind
	Action Action

	// Err is set for ReplyError
	Err error

	// Ephemeral replies are only shown to the requester
	Ephemeral bool

	// Track is the added, removed, moved or skipped track
	Track *models.Track

	// Tracks holds every track of an added playlist
	Tracks []*models.Track

	PlaylistName string

	// Position is the queue position of an added track, 0 when it started playing
	Position int

	// Count is how many tracks were added, cleared or shuffled
	Count int

	// Snapshot is the session after the action, when one exists
	Snapshot *models.SessionSnapshot

	// Result details for text replies
	Paused         bool
	AlreadyInState bool
	QueueEnded     bool
	LoopMode       models.LoopMode
	Level          int
	Filter         string
	StayConnected  bool
}

// Config holds configuration for the dispatcher
type Config struct {
	Playback playback.Service

	Search search.Service

	VoiceStates VoiceStates

	Logger zerolog.Logger

	// CommandRate is requests per second allowed per guild, 0 disables limiting
	CommandRate float64

	// CommandBurst is the per guild burst size
	CommandBurst int
}
