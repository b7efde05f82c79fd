package track_cache

import (
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/models"
)

// Entry is a resolved search stored without requester details
type Entry struct {
	// Kind is the load type, track or playlist
	Kind string `json:"kind"`

	PlaylistName string `json:"playlist_name,omitempty"`

	Tracks []*models.Track `json:"tracks"`
}

// GetEntryInput contains parameters for reading a cached result
type GetEntryInput struct {
	Identifier string
}

// SaveEntryInput contains parameters for caching a result
type SaveEntryInput struct {
	Identifier string
	Entry      *Entry

	// TTL overrides the repository default when set
	TTL time.Duration
}

// DeleteEntryInput contains parameters for dropping a cached result
type DeleteEntryInput struct {
	Identifier string
}
