package search

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/biltubhaiff-blip/Discord-music/internal/services/search Service

// Service resolves user queries into playable tracks
type Service interface {
	// Resolve turns a URL, prefixed identifier or bare phrase into tracks
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
