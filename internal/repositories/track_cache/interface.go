package track_cache

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/biltubhaiff-blip/Discord-music/internal/repositories/track_cache Repository

// Repository defines the interface for cached search results
type Repository interface {
	// GetEntry retrieves the cached result for an identifier
	GetEntry(ctx context.Context, input *GetEntryInput) (*Entry, error)

	// SaveEntry caches the result for an identifier
	SaveEntry(ctx context.Context, input *SaveEntryInput) error

	// DeleteEntry drops the cached result for an identifier
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) error
}
