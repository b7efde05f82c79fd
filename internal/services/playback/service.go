// Package playback manages one playback session per guild and keeps the audio node in step with it.
//
// Every operation follows the same shape: decide under the session lock, release it for the
// network call, then re-acquire and re-check before applying the result. A session destroyed in
// the meantime rejects the result with ErrSessionNotFound; a changed generation means another
// transition won and the result is dropped.
package playback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/rs/zerolog"
)

type service struct {
	node          audionode.Client
	surface       ControlSurface
	random        random.Source
	logger        zerolog.Logger
	sessions      *registry
	notifications chan *Notification

	nodeTimeout    time.Duration
	surfaceTimeout time.Duration
}

// New creates a new playback service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AudioNode == nil {
		return nil, ErrNilAudioNode
	}
	if cfg.Surface == nil {
		return nil, ErrNilSurface
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	nodeTimeout := cfg.NodeTimeout
	if nodeTimeout <= 0 {
		nodeTimeout = defaultNodeTimeout
	}
	surfaceTimeout := cfg.SurfaceTimeout
	if surfaceTimeout <= 0 {
		surfaceTimeout = defaultSurfaceTimeout
	}
	buffer := cfg.NotificationBuffer
	if buffer <= 0 {
		buffer = defaultNotificationBuffer
	}

	return &service{
		node:           cfg.AudioNode,
		surface:        cfg.Surface,
		random:         cfg.Random,
		logger:         cfg.Logger,
		sessions:       newRegistry(cfg.Clock),
		notifications:  make(chan *Notification, buffer),
		nodeTimeout:    nodeTimeout,
		surfaceTimeout: surfaceTimeout,
	}, nil
}

// lockSession returns the guild's live session with its lock held
func (s *service) lockSession(guildID string) (*session, error) {
	sess, err := s.sessions.get(guildID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	if sess.destroyed {
		sess.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// relock re-acquires the lock after a network call. The lock is held only when it returns nil.
func relock(sess *session) error {
	sess.mu.Lock()
	if sess.destroyed {
		sess.mu.Unlock()
		return ErrSessionNotFound
	}
	return nil
}

// nodeError maps audio node failures onto the playback taxonomy
func nodeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrNodeTimeout, err)
	case errors.Is(err, audionode.ErrNodeNotReady):
		return fmt.Errorf("%w: %w", ErrNodeDisconnected, err)
	case errors.Is(err, audionode.ErrUnknownFilter):
		return fmt.Errorf("%w: %w", ErrUnknownFilter, err)
	default:
		return fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}
}

func (s *service) callNode(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.nodeTimeout)
	defer cancel()
	return nodeError(fn(ctx))
}

func (s *service) disableControls(ctx context.Context, guildID string, ref models.MessageRef) {
	if ref.IsZero() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.surfaceTimeout)
	defer cancel()

	if err := s.surface.DisableControls(ctx, ref); err != nil {
		s.logger.Warn().Err(err).
			Str("guild_id", guildID).
			Str("message_id", ref.MessageID).
			Msg("failed to disable controls")
	}
}

func (s *service) disconnect(ctx context.Context, guildID string) {
	err := s.callNode(ctx, func(ctx context.Context) error {
		return s.node.Disconnect(ctx, guildID)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("guild_id", guildID).Msg("failed to disconnect from voice")
	}
}

// startTrack connects if needed and plays track. Runs without the lock.
// A newer generation supersedes the call, which then returns without playing.
func (s *service) startTrack(ctx context.Context, sess *session, track *models.Track, generation uint64, voiceChannelID string, connect bool) error {
	if connect {
		err := s.callNode(ctx, func(ctx context.Context) error {
			return s.node.Connect(ctx, sess.guildID, voiceChannelID)
		})
		if err != nil {
			return s.playbackFailed(sess, generation, err)
		}

		if err := relock(sess); err != nil {
			s.logger.Debug().Str("guild_id", sess.guildID).Msg("session removed while joining voice")
			return err
		}
		if sess.voiceChannelID == voiceChannelID {
			sess.connected = true
		}
		sess.mu.Unlock()
	}

	sess.play.Lock()
	defer sess.play.Unlock()

	if err := relock(sess); err != nil {
		s.logger.Debug().Str("guild_id", sess.guildID).Str("uri", track.URI).Msg("discarding play for removed session")
		return err
	}
	if sess.generation != generation {
		sess.mu.Unlock()
		s.logger.Debug().Str("guild_id", sess.guildID).Str("uri", track.URI).Msg("discarding play for superseded track")
		return nil
	}
	sess.mu.Unlock()

	err := s.callNode(ctx, func(ctx context.Context) error {
		return s.node.Play(ctx, sess.guildID, track.URI)
	})
	if err != nil {
		return s.playbackFailed(sess, generation, err)
	}

	if err := relock(sess); err != nil {
		s.logger.Debug().Str("guild_id", sess.guildID).Str("uri", track.URI).Msg("session removed during play")
		return err
	}
	sess.mu.Unlock()

	s.logger.Info().
		Str("guild_id", sess.guildID).
		Str("title", track.Title).
		Uint64("generation", generation).
		Msg("playing track")
	return nil
}

// playbackFailed returns an idle session to a retryable state. The queue and current track are kept.
func (s *service) playbackFailed(sess *session, generation uint64, err error) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.destroyed {
		return ErrSessionNotFound
	}
	if sess.generation != generation {
		return err
	}

	sess.state = models.PlaybackStateIdle
	sess.connected = false

	s.logger.Warn().Err(err).Str("guild_id", sess.guildID).Msg("playback failed")
	return err
}

// complete carries out a transition planned by session.advance
func (s *service) complete(ctx context.Context, sess *session, t *transition) error {
	s.disableControls(ctx, sess.guildID, t.stale)

	if t.next != nil {
		sess.mu.Lock()
		connect := !sess.connected
		voiceChannelID := sess.voiceChannelID
		sess.mu.Unlock()

		return s.startTrack(ctx, sess, t.next, t.generation, voiceChannelID, connect)
	}

	s.queueEnded(t.snapshot)

	if t.destroy {
		s.disconnect(ctx, sess.guildID)
		return nil
	}

	err := s.callNode(ctx, func(ctx context.Context) error {
		return s.node.Stop(ctx, sess.guildID)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("guild_id", sess.guildID).Msg("failed to stop node player")
	}
	return nil
}

// Enqueue adds tracks and starts playback when the session is idle.
// An active session joins the requester's channel before anything is queued, so a failed
// join leaves the session where it was.
func (s *service) Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error) {
	if input == nil || len(input.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	var sess *session
	var created, relocated bool
	for {
		sess, created = s.sessions.getOrCreate(input.GuildID, input.VoiceChannelID, input.TextChannelID)
		sess.mu.Lock()
		if sess.destroyed {
			sess.mu.Unlock()
			continue
		}
		if input.VoiceChannelID == "" || sess.voiceChannelID == input.VoiceChannelID || !sess.state.IsActive() {
			break
		}
		sess.mu.Unlock()

		err := s.callNode(ctx, func(ctx context.Context) error {
			return s.node.Connect(ctx, input.GuildID, input.VoiceChannelID)
		})
		if err != nil {
			s.logger.Warn().Err(err).
				Str("guild_id", input.GuildID).
				Str("voice_channel_id", input.VoiceChannelID).
				Msg("failed to relocate session")
			return nil, err
		}

		sess.mu.Lock()
		if sess.destroyed {
			sess.mu.Unlock()
			continue
		}
		sess.voiceChannelID = input.VoiceChannelID
		sess.connected = true
		relocated = true
		s.logger.Info().Str("guild_id", input.GuildID).Str("voice_channel_id", input.VoiceChannelID).Msg("session relocated")
		break
	}

	output := &EnqueueOutput{
		Created:   created,
		Count:     len(input.Tracks),
		Relocated: relocated,
	}

	// An idle session joins the new channel when playback starts
	if input.VoiceChannelID != "" && sess.voiceChannelID != input.VoiceChannelID {
		output.Relocated = true
		sess.voiceChannelID = input.VoiceChannelID
		sess.connected = false
	}
	if input.TextChannelID != "" {
		sess.textChannelID = input.TextChannelID
	}

	first := sess.queue.AddAll(input.Tracks)

	if sess.state.IsActive() {
		output.Position = first
		output.Snapshot = sess.snapshot()
		sess.mu.Unlock()
		return output, nil
	}

	_, hadCurrent := sess.queue.Current()
	track, generation, _ := sess.start()
	switch {
	case track == input.Tracks[0]:
		output.Position = 0
	case hadCurrent:
		output.Position = first
	default:
		output.Position = first - 1
	}
	output.Started = true

	connect := !sess.connected
	voiceChannelID := sess.voiceChannelID
	sess.mu.Unlock()

	if created {
		s.logger.Info().
			Str("guild_id", input.GuildID).
			Str("voice_channel_id", voiceChannelID).
			Msg("created playback session")
	}

	if err := s.startTrack(ctx, sess, track, generation, voiceChannelID, connect); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	output.Snapshot = sess.snapshot()
	sess.mu.Unlock()

	return output, nil
}

// Play restarts an idle session from its current or next track
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}

	if sess.state.IsActive() {
		current, _ := sess.queue.Current()
		sess.mu.Unlock()
		return &PlayOutput{Track: current, AlreadyInState: true}, nil
	}

	track, generation, ok := sess.start()
	if !ok {
		sess.mu.Unlock()
		return nil, ErrNothingPlaying
	}
	connect := !sess.connected
	voiceChannelID := sess.voiceChannelID
	sess.mu.Unlock()

	if err := s.startTrack(ctx, sess, track, generation, voiceChannelID, connect); err != nil {
		return nil, err
	}

	return &PlayOutput{Track: track}, nil
}

// Pause holds the current track
func (s *service) Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error) {
	already, err := s.setPaused(ctx, input.GuildID, true)
	if err != nil {
		return nil, err
	}
	return &PauseOutput{AlreadyInState: already}, nil
}

// Resume releases the current track
func (s *service) Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error) {
	already, err := s.setPaused(ctx, input.GuildID, false)
	if err != nil {
		return nil, err
	}
	return &ResumeOutput{AlreadyInState: already}, nil
}

func (s *service) setPaused(ctx context.Context, guildID string, paused bool) (bool, error) {
	sess, err := s.lockSession(guildID)
	if err != nil {
		return false, err
	}

	if !sess.state.IsActive() {
		sess.mu.Unlock()
		return false, ErrNothingPlaying
	}

	target := models.PlaybackStatePlaying
	if paused {
		target = models.PlaybackStatePaused
	}
	if sess.state == target {
		sess.mu.Unlock()
		return true, nil
	}
	generation := sess.generation
	sess.mu.Unlock()

	err = s.callNode(ctx, func(ctx context.Context) error {
		return s.node.Pause(ctx, guildID, paused)
	})
	if err != nil {
		return false, err
	}

	if err := relock(sess); err != nil {
		return false, err
	}
	defer sess.mu.Unlock()

	if sess.generation == generation && sess.state.IsActive() {
		sess.state = target
		s.stateChanged(sess)
	}
	return false, nil
}

// Skip ends the current track. Concurrent skips of the same track perform one transition.
func (s *service) Skip(ctx context.Context, input *SkipInput) (*SkipOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}

	if !sess.state.IsActive() {
		sess.mu.Unlock()
		return nil, ErrNothingPlaying
	}
	if input.Generation != 0 && input.Generation != sess.generation {
		sess.mu.Unlock()
		return &SkipOutput{AlreadySkipped: true}, nil
	}
	generation := sess.generation
	ref := sess.control
	sess.mu.Unlock()

	s.disableControls(ctx, input.GuildID, ref)

	// A terminal transition that won the race counts as the skip
	sess.mu.Lock()
	if sess.destroyed || sess.generation != generation || !sess.state.IsActive() {
		sess.mu.Unlock()
		return &SkipOutput{AlreadySkipped: true}, nil
	}
	if sess.control == ref {
		sess.control = models.MessageRef{}
	}

	skipped, _ := sess.queue.Current()
	mode := sess.loop
	if mode == models.LoopModeTrack {
		mode = models.LoopModeOff
	}
	t := sess.advance(mode)
	if t.destroy {
		s.sessions.remove(sess)
	}
	sess.mu.Unlock()

	output := &SkipOutput{
		Skipped:    skipped,
		Next:       t.next,
		QueueEnded: t.queueEnded,
	}
	if err := s.complete(ctx, sess, t); err != nil {
		return nil, err
	}
	return output, nil
}

// Stop clears the queue, leaves voice and removes the session
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}

	if !sess.state.IsActive() {
		sess.mu.Unlock()
		return nil, ErrNothingPlaying
	}

	sess.manualStop = true
	ref := sess.takeControl()
	cleared := sess.queue.Clear()
	sess.queue.ResetCurrent()
	sess.state = models.PlaybackStateStopped
	sess.generation++
	sess.destroyed = true
	s.sessions.remove(sess)
	snapshot := sess.snapshot()
	sess.mu.Unlock()

	s.disableControls(ctx, input.GuildID, ref)
	s.disconnect(ctx, input.GuildID)

	s.logger.Info().Str("guild_id", input.GuildID).Int("cleared", cleared).Msg("playback stopped")
	s.notify(&Notification{
		Kind:          NotificationStopped,
		GuildID:       input.GuildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
	})

	return &StopOutput{Cleared: cleared}, nil
}

// SetLoop changes the loop mode without touching playback
func (s *service) SetLoop(ctx context.Context, input *SetLoopInput) (*SetLoopOutput, error) {
	mode, ok := models.ParseLoopMode(string(input.Mode))
	if !ok {
		return nil, ErrInvalidLoopMode
	}

	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	previous := sess.loop
	sess.loop = mode
	s.stateChanged(sess)

	return &SetLoopOutput{Mode: mode, Previous: previous}, nil
}

// SetVolume changes the volume. The session keeps its old value unless the node accepts the new one.
func (s *service) SetVolume(ctx context.Context, input *SetVolumeInput) (*SetVolumeOutput, error) {
	if input.Level < 0 || input.Level > MaxVolume {
		return nil, ErrOutOfRange
	}

	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	previous := sess.volume
	sess.mu.Unlock()

	err = s.callNode(ctx, func(ctx context.Context) error {
		return s.node.SetVolume(ctx, input.GuildID, input.Level)
	})
	if err != nil {
		return nil, err
	}

	if err := relock(sess); err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.volume = input.Level
	s.stateChanged(sess)

	return &SetVolumeOutput{Level: input.Level, Previous: previous}, nil
}

// SetFilter applies a filter preset; "off" clears filters
func (s *service) SetFilter(ctx context.Context, input *SetFilterInput) (*SetFilterOutput, error) {
	name := strings.ToLower(strings.TrimSpace(input.Filter))
	if !audionode.IsKnownFilter(name) {
		return nil, ErrUnknownFilter
	}

	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	sess.mu.Unlock()

	err = s.callNode(ctx, func(ctx context.Context) error {
		return s.node.SetFilter(ctx, input.GuildID, name)
	})
	if err != nil {
		return nil, err
	}

	if err := relock(sess); err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if name == audionode.FilterOff {
		name = ""
	}
	sess.filter = name
	s.stateChanged(sess)

	return &SetFilterOutput{Filter: name}, nil
}

// Remove deletes a pending track by 1-based position
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	track, err := sess.queue.RemoveAt(input.Position)
	if err != nil {
		return nil, err
	}
	s.stateChanged(sess)

	return &RemoveOutput{Track: track}, nil
}

// Move relocates a pending track
func (s *service) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	track, err := sess.queue.Move(input.From, input.To)
	if err != nil {
		return nil, err
	}
	s.stateChanged(sess)

	return &MoveOutput{Track: track}, nil
}

// ClearQueue removes every pending track; the current track keeps playing
func (s *service) ClearQueue(ctx context.Context, input *ClearQueueInput) (*ClearQueueOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	removed := sess.queue.Clear()
	s.stateChanged(sess)

	return &ClearQueueOutput{Removed: removed}, nil
}

// Shuffle permutes the pending tracks
func (s *service) Shuffle(ctx context.Context, input *ShuffleInput) (*ShuffleOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.queue.Shuffle(s.random)
	s.stateChanged(sess)

	return &ShuffleOutput{Count: sess.queue.Len()}, nil
}

// SetStayConnected toggles 24/7 mode. Turning it off while idle removes the session.
func (s *service) SetStayConnected(ctx context.Context, input *SetStayConnectedInput) (*SetStayConnectedOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}

	sess.stayConnected = input.Enabled
	if input.Enabled || sess.state != models.PlaybackStateIdle {
		s.stateChanged(sess)
		sess.mu.Unlock()
		return &SetStayConnectedOutput{Enabled: input.Enabled}, nil
	}

	ref := sess.takeControl()
	sess.destroyed = true
	s.sessions.remove(sess)
	sess.mu.Unlock()

	s.disableControls(ctx, input.GuildID, ref)
	s.disconnect(ctx, input.GuildID)

	s.logger.Info().Str("guild_id", input.GuildID).Msg("left voice after 24/7 was disabled")
	return &SetStayConnectedOutput{Enabled: false, Destroyed: true}, nil
}

// GetSnapshot returns a read-only copy of the session
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &GetSnapshotOutput{Snapshot: sess.snapshot()}, nil
}

// AttachControlMessage records the control message rendered for a generation
func (s *service) AttachControlMessage(ctx context.Context, input *AttachControlMessageInput) (*AttachControlMessageOutput, error) {
	sess, err := s.lockSession(input.GuildID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if input.Generation != sess.generation || !sess.state.IsActive() {
		return nil, ErrStaleControl
	}

	previous := sess.control
	if previous == input.Ref {
		previous = models.MessageRef{}
	}
	sess.control = input.Ref

	return &AttachControlMessageOutput{Previous: previous}, nil
}

// HandleVoiceDisconnect removes the session after the bot lost its voice connection
func (s *service) HandleVoiceDisconnect(ctx context.Context, input *HandleVoiceDisconnectInput) (*HandleVoiceDisconnectOutput, error) {
	sess, err := s.sessions.destroy(input.GuildID)
	if errors.Is(err, ErrSessionNotFound) {
		return &HandleVoiceDisconnectOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.destroyed {
		sess.mu.Unlock()
		return &HandleVoiceDisconnectOutput{}, nil
	}
	sess.destroyed = true
	ref := sess.takeControl()
	sess.queue.Clear()
	sess.queue.ResetCurrent()
	sess.state = models.PlaybackStateStopped
	sess.generation++
	snapshot := sess.snapshot()
	sess.mu.Unlock()

	s.disableControls(ctx, input.GuildID, ref)
	s.disconnect(ctx, input.GuildID)

	s.logger.Info().Str("guild_id", input.GuildID).Msg("session removed after voice disconnect")
	s.notify(&Notification{
		Kind:          NotificationStopped,
		GuildID:       input.GuildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
	})

	return &HandleVoiceDisconnectOutput{Destroyed: true}, nil
}
