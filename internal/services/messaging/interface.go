package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/biltubhaiff-blip/Discord-music/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns the user facing message for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetReplyMessage returns the text for a successful command reply
	GetReplyMessage(ctx context.Context, input *GetReplyMessageInput) (*GetReplyMessageOutput, error)

	// GetNotificationMessage returns the text for a session notification
	GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error)
}
