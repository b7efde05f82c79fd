package dispatcher

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher Service
//go:generate mockgen -package=voicemocks -destination=voicemocks/mock_voice_states.go github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher VoiceStates

// Service turns normalized control requests into exactly one reply
type Service interface {
	// Dispatch authorizes and applies a request. User facing failures are carried in Reply.Err.
	Dispatch(ctx context.Context, req *Request) (*Reply, error)
}

// VoiceStates looks up where users are connected
type VoiceStates interface {
	// UserVoiceChannel returns the voice channel the user is in, or "" when not connected
	UserVoiceChannel(guildID, userID string) (string, error)
}
