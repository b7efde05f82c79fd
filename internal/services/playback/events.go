package playback

import (
	"context"
	"errors"
	"sync"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
)

// guildEventBuffer bounds the events waiting on one guild's worker
const guildEventBuffer = 64

// Run applies audio node events until ctx is cancelled.
// Each guild has its own worker, and events for one guild apply in arrival order.
func (s *service) Run(ctx context.Context) error {
	events := s.node.Events()
	workers := make(map[string]chan audionode.Event)

	var wg sync.WaitGroup
	defer func() {
		for _, ch := range workers {
			close(ch)
		}
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			metrics.NodeEventsTotal.WithLabelValues(string(ev.Type)).Inc()

			if ev.GuildID == "" || ev.Type == audionode.EventNodeDisconnected {
				s.handleEvent(ctx, ev)
				continue
			}

			ch, ok := workers[ev.GuildID]
			if !ok {
				ch = make(chan audionode.Event, guildEventBuffer)
				workers[ev.GuildID] = ch
				wg.Add(1)
				go func() {
					defer wg.Done()
					for ev := range ch {
						s.handleEvent(ctx, ev)
					}
				}()
			}

			select {
			case ch <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *service) handleEvent(ctx context.Context, ev audionode.Event) {
	switch ev.Type {
	case audionode.EventTrackStarted:
		s.trackStarted(ev)
	case audionode.EventTrackEnded:
		s.trackEnded(ctx, ev)
	case audionode.EventNodeDisconnected:
		s.nodeDisconnected(ctx)
	default:
		s.logger.Debug().Str("type", string(ev.Type)).Msg("ignoring audio node event")
	}
}

// currentMatches reports whether ev is about the track the session is playing. Caller holds mu.
func currentMatches(sess *session, ev audionode.Event) (*models.Track, bool) {
	current, ok := sess.queue.Current()
	if !ok || !sess.state.IsActive() || current.URI != ev.TrackURI {
		return nil, false
	}
	return current, true
}

func (s *service) trackStarted(ev audionode.Event) {
	sess, err := s.lockSession(ev.GuildID)
	if err != nil {
		return
	}
	defer sess.mu.Unlock()

	current, ok := currentMatches(sess, ev)
	if !ok {
		return
	}

	snapshot := sess.snapshot()
	s.notify(&Notification{
		Kind:          NotificationTrackStarted,
		GuildID:       sess.guildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
		Track:         current,
	})
}

// trackEnded drains the queue when the current track finished or failed
func (s *service) trackEnded(ctx context.Context, ev audionode.Event) {
	if !ev.Reason.ShouldAdvance() {
		return
	}

	sess, err := s.lockSession(ev.GuildID)
	if err != nil {
		return
	}
	if _, ok := currentMatches(sess, ev); !ok {
		sess.mu.Unlock()
		return
	}

	mode := sess.loop
	if ev.Reason == audionode.EndReasonError && mode == models.LoopModeTrack {
		mode = models.LoopModeOff
	}
	t := sess.advance(mode)
	if t.destroy {
		s.sessions.remove(sess)
	}
	sess.mu.Unlock()

	err = s.complete(ctx, sess, t)
	if err == nil || errors.Is(err, ErrSessionNotFound) {
		return
	}

	sess.mu.Lock()
	snapshot := sess.snapshot()
	sess.mu.Unlock()

	s.notify(&Notification{
		Kind:          NotificationPlaybackFailed,
		GuildID:       sess.guildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
		Track:         t.next,
		Err:           err,
	})
}

// nodeDisconnected tears down every session; the node has lost all players
func (s *service) nodeDisconnected(ctx context.Context) {
	sessions := s.sessions.all()
	s.logger.Error().Int("sessions", len(sessions)).Msg("audio node disconnected, removing all sessions")

	for _, sess := range sessions {
		sess.mu.Lock()
		if sess.destroyed {
			sess.mu.Unlock()
			continue
		}
		sess.destroyed = true
		ref := sess.takeControl()
		sess.generation++
		s.sessions.remove(sess)
		snapshot := sess.snapshot()
		sess.mu.Unlock()

		s.disableControls(ctx, sess.guildID, ref)
		s.disconnect(ctx, sess.guildID)

		s.notify(&Notification{
			Kind:          NotificationNodeDisconnected,
			GuildID:       sess.guildID,
			TextChannelID: snapshot.TextChannelID,
			Snapshot:      snapshot,
			Err:           ErrNodeDisconnected,
		})
	}
}
