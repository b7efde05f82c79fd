package playback

import (
	"sync"

	"github.com/biltubhaiff-blip/Discord-music/internal/common/clock"
	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
)

// registry owns every live session, at most one per guild
type registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	clock    clock.Clock
}

func newRegistry(c clock.Clock) *registry {
	return &registry{
		sessions: make(map[string]*session),
		clock:    c,
	}
}

// getOrCreate returns the guild's session, creating it when none exists
func (r *registry) getOrCreate(guildID, voiceChannelID, textChannelID string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[guildID]; ok {
		return sess, false
	}

	sess := newSession(guildID, voiceChannelID, textChannelID, r.clock.Now())
	r.sessions[guildID] = sess
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return sess, true
}

func (r *registry) get(guildID string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[guildID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// remove drops sess from the registry if it is still the guild's session
func (r *registry) remove(sess *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[sess.guildID]; ok && current == sess {
		delete(r.sessions, sess.guildID)
		metrics.ActiveSessions.Set(float64(len(r.sessions)))
	}
}

// destroy removes the guild's session and returns it
func (r *registry) destroy(guildID string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[guildID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(r.sessions, guildID)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return sess, nil
}

func (r *registry) all() []*session {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		out = append(out, sess)
	}
	return out
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
