package audionode

// NodeError is a custom error type for audio node errors
type NodeError string

// Error implements the error interface
func (e NodeError) Error() string {
	return string(e)
}

const (
	ErrNodeNotReady    NodeError = "audio node session is not ready"
	ErrRequestFailed   NodeError = "audio node request failed"
	ErrUnknownFilter   NodeError = "unknown filter"
	ErrNilConfig       NodeError = "config cannot be nil"
	ErrNilGateway      NodeError = "voice gateway cannot be nil"
	ErrEmptyHost       NodeError = "host cannot be empty"
	ErrEmptyUserID     NodeError = "user ID cannot be empty"
	ErrVoiceJoinFailed NodeError = "failed to join voice channel"
)
