// Package queue holds the ordered pending tracks of a guild and the track currently playing.
package queue

import (
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
)

// Queue is an ordered list of pending tracks plus the current one.
// The current track is never also pending. Queue is not safe for concurrent use;
// the owning session serializes access.
type Queue struct {
	pending []*models.Track
	current *models.Track
}

// New creates an empty queue
func New() *Queue {
	return &Queue{
		pending: make([]*models.Track, 0),
	}
}

// Add appends a track and returns its 1-based position
func (q *Queue) Add(track *models.Track) int {
	q.pending = append(q.pending, track)
	return len(q.pending)
}

// AddAll appends tracks in order and returns the position of the first one.
// Returns 0 if tracks is empty.
func (q *Queue) AddAll(tracks []*models.Track) int {
	if len(tracks) == 0 {
		return 0
	}
	first := len(q.pending) + 1
	q.pending = append(q.pending, tracks...)
	return first
}

// RemoveAt removes the track at a 1-based position
func (q *Queue) RemoveAt(position int) (*models.Track, error) {
	if !q.inRange(position) {
		return nil, ErrOutOfRange
	}
	idx := position - 1
	removed := q.pending[idx]
	q.pending = append(q.pending[:idx], q.pending[idx+1:]...)
	return removed, nil
}

// Move relocates the track at from to position to, shifting the tracks in between
func (q *Queue) Move(from, to int) (*models.Track, error) {
	if !q.inRange(from) || !q.inRange(to) {
		return nil, ErrOutOfRange
	}
	moved := q.pending[from-1]
	if from == to {
		return moved, nil
	}

	rest := append(q.pending[:from-1:from-1], q.pending[from:]...)
	reordered := make([]*models.Track, 0, len(q.pending))
	reordered = append(reordered, rest[:to-1]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[to-1:]...)
	q.pending = reordered
	return moved, nil
}

// Shuffle permutes the pending tracks (Fisher-Yates). The current track is not touched.
func (q *Queue) Shuffle(src random.Source) {
	for i := len(q.pending) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		q.pending[i], q.pending[j] = q.pending[j], q.pending[i]
	}
}

// Clear removes every pending track and returns how many were removed
func (q *Queue) Clear() int {
	n := len(q.pending)
	q.pending = make([]*models.Track, 0)
	return n
}

// Advance moves the queue forward according to the loop mode and returns the new current track.
//
// Off drops the finished track, Track keeps it current, and Queue appends it to the end of
// the pending list before taking the next one. With Track and no current track the next
// pending track is taken, so a track loop can start from an idle queue.
func (q *Queue) Advance(mode models.LoopMode) (*models.Track, bool) {
	if mode == models.LoopModeTrack && q.current != nil {
		return q.current, true
	}

	if mode == models.LoopModeQueue && q.current != nil {
		q.pending = append(q.pending, q.current)
	}

	if len(q.pending) == 0 {
		q.current = nil
		return nil, false
	}

	q.current = q.pending[0]
	q.pending = q.pending[1:]
	return q.current, true
}

// Current returns the track being played, if any
func (q *Queue) Current() (*models.Track, bool) {
	return q.current, q.current != nil
}

// ResetCurrent drops the current track without touching pending
func (q *Queue) ResetCurrent() {
	q.current = nil
}

// Len returns the number of pending tracks
func (q *Queue) Len() int {
	return len(q.pending)
}

// Tracks returns a copy of the pending tracks in play order
func (q *Queue) Tracks() []*models.Track {
	out := make([]*models.Track, len(q.pending))
	copy(out, q.pending)
	return out
}

func (q *Queue) inRange(position int) bool {
	return position >= 1 && position <= len(q.pending)
}
