package dispatcher

// DispatchError is a custom error type for request dispatch errors
type DispatchError string

// Error implements the error interface
func (e DispatchError) Error() string {
	return string(e)
}

const (
	ErrNotInVoiceChannel DispatchError = "user is not in the session's voice channel"
	ErrNotAuthorized     DispatchError = "user did not request the current track"
	ErrRateLimited       DispatchError = "too many requests for this guild"
	ErrUnknownAction     DispatchError = "unknown action"
	ErrNilRequest        DispatchError = "request cannot be nil"
	ErrNilConfig         DispatchError = "config cannot be nil"
	ErrNilPlayback       DispatchError = "playback service cannot be nil"
	ErrNilSearch         DispatchError = "search service cannot be nil"
	ErrNilVoiceStates    DispatchError = "voice state lookup cannot be nil"
)
