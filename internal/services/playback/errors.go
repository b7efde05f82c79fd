package playback

import "github.com/biltubhaiff-blip/Discord-music/internal/queue"

// PlaybackError is a custom error type for playback errors
type PlaybackError string

// Error implements the error interface
func (e PlaybackError) Error() string {
	return string(e)
}

// ErrOutOfRange is shared with the queue so callers match a single value
const ErrOutOfRange = queue.ErrOutOfRange

const (
	ErrSessionNotFound  PlaybackError = "no playback session for this guild"
	ErrNothingPlaying   PlaybackError = "nothing is playing"
	ErrPlaybackFailed   PlaybackError = "playback failed"
	ErrNodeDisconnected PlaybackError = "audio node disconnected"
	ErrNodeTimeout      PlaybackError = "audio node did not respond in time"
	ErrUnknownFilter    PlaybackError = "unknown filter"
	ErrStaleControl     PlaybackError = "control message belongs to a previous track"
	ErrNoTracks         PlaybackError = "no tracks to enqueue"
	ErrInvalidLoopMode  PlaybackError = "invalid loop mode"
	ErrNilConfig        PlaybackError = "config cannot be nil"
	ErrNilAudioNode     PlaybackError = "audio node client cannot be nil"
	ErrNilSurface       PlaybackError = "control surface cannot be nil"
	ErrNilRandom        PlaybackError = "random source cannot be nil"
	ErrNilClock         PlaybackError = "clock cannot be nil"
)
