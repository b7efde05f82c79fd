package messaging

import (
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
)

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilInput  MessagingError = "input cannot be nil"
	ErrNilConfig MessagingError = "config cannot be nil"
	ErrNilRandom MessagingError = "random source cannot be nil"
)

// QueuePreviewSize is how many pending tracks a queue message lists
const QueuePreviewSize = 10

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of describing an error
type GetErrorMessageOutput struct {
	// Title is the embed title
	Title string

	// Message is the body of the message
	Message string
}

// GetReplyMessageInput contains the reply to describe
type GetReplyMessageInput struct {
	Reply *dispatcher.Reply
}

// GetReplyMessageOutput contains the text of a reply
type GetReplyMessageOutput struct {
	Title   string
	Message string
}

// GetNotificationMessageInput contains the notification to describe
type GetNotificationMessageInput struct {
	Notification *playback.Notification
}

// GetNotificationMessageOutput contains the text of a notification
type GetNotificationMessageOutput struct {
	Title   string
	Message string
}

// Config contains configuration for the messaging service
type Config struct {
	// Random picks between message variants
	Random random.Source
}
