package search

import (
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/clock"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/uuid"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/repositories/track_cache"
	"github.com/rs/zerolog"
)

// DefaultEngine is the search prefix used for bare phrases
const DefaultEngine = "ytmsearch"

// ResultKind is what a query resolved to
type ResultKind string

const (
	// ResultKindTrack is a single track, either a direct link or the best search match
	ResultKindTrack ResultKind = "track"

	// ResultKindPlaylist is every track of a playlist
	ResultKindPlaylist ResultKind = "playlist"
)

// Config holds configuration for the search service
type Config struct {
	AudioNode audionode.Client

	// Optional cache; nil disables caching
	Cache track_cache.Repository

	// Engine is the prefix for bare phrases
	Engine string

	// Upper bound for one resolve against the node
	ResolveTimeout time.Duration

	// TTL for cached results, 0 uses the cache default
	CacheTTL time.Duration

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	Logger zerolog.Logger
}

// ResolveInput contains parameters for resolving a query
type ResolveInput struct {
	Query string

	// RequesterID is the Discord user ID stamped on every track
	RequesterID string

	RequesterName string
}

// ResolveOutput contains the resolved tracks
type ResolveOutput struct {
	Kind ResultKind

	// Tracks in play order; a single element for ResultKindTrack
	Tracks []*models.Track

	// PlaylistName is set for ResultKindPlaylist
	PlaylistName string

	// Cached is true when the result came from the cache
	Cached bool
}
