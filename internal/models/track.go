package models

import (
	"fmt"
	"time"
)

// Track is the metadata for one playable item. Tracks are never mutated once created.
type Track struct {
	// ID is an opaque identifier assigned when the track was resolved
	ID string

	// Title is the display title of the track
	Title string

	// Author is the artist or uploader
	Author string

	// URI is what the audio node is asked to play
	URI string

	// DurationMs is the length of the track, 0 when unknown or live
	DurationMs int64

	// ArtworkURI is an optional thumbnail
	ArtworkURI string

	// SourceName is the audio node source (youtube, soundcloud, ...)
	SourceName string

	// IsStream marks live streams
	IsStream bool

	// RequesterID is the Discord user ID of whoever queued the track
	RequesterID string

	// RequesterName is the display name of the requester
	RequesterName string

	// RequestedAt is when the track was queued
	RequestedAt time.Time
}

// FormatDuration renders a duration in milliseconds as m:ss, or "Unknown" for 0.
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "Unknown"
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// TotalDuration sums the durations of the given tracks.
func TotalDuration(tracks []*Track) int64 {
	var total int64
	for _, t := range tracks {
		total += t.DurationMs
	}
	return total
}
