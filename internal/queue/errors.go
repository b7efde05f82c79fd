package queue

// QueueError is a custom error type for queue errors
type QueueError string

// Error implements the error interface
func (e QueueError) Error() string {
	return string(e)
}

const (
	ErrOutOfRange QueueError = "position out of range"
)
