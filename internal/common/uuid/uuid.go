// Package uuid generates the opaque IDs given to resolved tracks.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/biltubhaiff-blip/Discord-music/internal/common/uuid UUID

// UUID hands out unique track IDs
type UUID interface {
	NewUUID() string
}

// Random issues version 4 UUIDs
type Random struct{}

// New returns a version 4 generator
func New() UUID {
	return Random{}
}

// NewUUID returns a random UUID string
func (Random) NewUUID() string {
	return uuid.NewString()
}
