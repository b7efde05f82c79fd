package audionode

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/biltubhaiff-blip/Discord-music/internal/audionode Client

import "context"

// Client controls playback on the external audio node. Every call may hit the network,
// so callers pass a context carrying a deadline.
type Client interface {
	// Connect joins the voice channel and waits until the node has the voice credentials
	Connect(ctx context.Context, guildID, voiceChannelID string) error

	// Play starts the track at uri, replacing whatever is loaded and clearing pause
	Play(ctx context.Context, guildID, trackURI string) error

	// Stop unloads the current track without leaving the voice channel
	Stop(ctx context.Context, guildID string) error

	// Pause holds or releases playback
	Pause(ctx context.Context, guildID string, paused bool) error

	// SetVolume sets the volume in percent (0-100)
	SetVolume(ctx context.Context, guildID string, level int) error

	// SetFilter applies one of the named filter presets
	SetFilter(ctx context.Context, guildID, filter string) error

	// Disconnect destroys the node player and leaves the voice channel
	Disconnect(ctx context.Context, guildID string) error

	// LoadTracks resolves an identifier (URL or prefixed search) into tracks
	LoadTracks(ctx context.Context, identifier string) (*LoadResult, error)

	// Events returns the inbound event stream
	Events() <-chan Event
}
