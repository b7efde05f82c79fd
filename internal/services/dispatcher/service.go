// Package dispatcher authorizes control requests and applies them to the playback service.
package dispatcher

import (
	"context"
	"errors"

	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/search"
	"github.com/rs/zerolog"
)

type service struct {
	playback playback.Service
	search   search.Service
	voice    VoiceStates
	limiter  *guildLimiter
	logger   zerolog.Logger
}

// New creates a new dispatcher
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Playback == nil {
		return nil, ErrNilPlayback
	}
	if cfg.Search == nil {
		return nil, ErrNilSearch
	}
	if cfg.VoiceStates == nil {
		return nil, ErrNilVoiceStates
	}

	return &service{
		playback: cfg.Playback,
		search:   cfg.Search,
		voice:    cfg.VoiceStates,
		limiter:  newGuildLimiter(cfg.CommandRate, cfg.CommandBurst),
		logger:   cfg.Logger,
	}, nil
}

// Dispatch authorizes and applies a request
func (s *service) Dispatch(ctx context.Context, req *Request) (*Reply, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	reply := s.dispatch(ctx, req)
	reply.Action = req.Action
	if req.Source == SourceComponent {
		reply.Ephemeral = true
	}

	metrics.IncCommand(string(req.Action), resultLabel(reply.Err))
	if reply.Err != nil {
		s.logger.Debug().
			Err(reply.Err).
			Str("action", string(req.Action)).
			Str("guild_id", req.GuildID).
			Str("user_id", req.UserID).
			Msg("request rejected")
	}

	return reply, nil
}

func (s *service) dispatch(ctx context.Context, req *Request) *Reply {
	if !s.limiter.allow(req.GuildID) {
		return errorReply(ErrRateLimited)
	}

	switch {
	case req.Action == ActionPlay && req.Query != "":
		return s.play(ctx, req)
	case req.Action.IsReadOnly() && req.Source == SourceCommand:
		return s.view(ctx, req)
	}

	snapshot, err := s.authorize(ctx, req)
	if errors.Is(err, playback.ErrStaleControl) && req.Action == ActionSkip {
		return &Reply{Kind: ReplyText, AlreadyInState: true}
	}
	if err != nil {
		return errorReply(err)
	}

	switch req.Action {
	case ActionQueue, ActionNowPlaying:
		return s.view(ctx, req)
	case ActionPlay:
		return s.restart(ctx, req)
	case ActionPause:
		return s.pause(ctx, req)
	case ActionResume:
		return s.resume(ctx, req)
	case ActionTogglePause:
		if snapshot.State == models.PlaybackStatePaused {
			return s.resume(ctx, req)
		}
		return s.pause(ctx, req)
	case ActionSkip:
		return s.skip(ctx, req)
	case ActionStop:
		return s.stop(ctx, req)
	case ActionShuffle:
		return s.shuffle(ctx, req)
	case ActionLoop:
		return s.setLoop(ctx, req, models.LoopMode(req.Mode))
	case ActionToggleLoop:
		mode := models.LoopModeTrack
		if snapshot.LoopMode != models.LoopModeOff {
			mode = models.LoopModeOff
		}
		return s.setLoop(ctx, req, mode)
	case ActionRemove:
		return s.remove(ctx, req)
	case ActionMove:
		return s.move(ctx, req)
	case ActionClearQueue:
		return s.clearQueue(ctx, req)
	case ActionVolume:
		return s.setVolume(ctx, req)
	case ActionFilter:
		return s.setFilter(ctx, req)
	case ActionStayConnected:
		return s.toggleStayConnected(ctx, req, snapshot)
	}

	return errorReply(ErrUnknownAction)
}

// authorize applies the voice channel rule, and for components the requester rule
func (s *service) authorize(ctx context.Context, req *Request) (*models.SessionSnapshot, error) {
	channelID, err := s.userChannel(req)
	if err != nil {
		return nil, err
	}

	out, err := s.playback.GetSnapshot(ctx, &playback.GetSnapshotInput{GuildID: req.GuildID})
	if err != nil {
		return nil, err
	}
	snapshot := out.Snapshot

	if channelID != snapshot.VoiceChannelID {
		return nil, ErrNotInVoiceChannel
	}

	if req.Source == SourceComponent {
		if snapshot.Current == nil {
			return nil, playback.ErrNothingPlaying
		}
		// Buttons from a message rendered for an earlier track
		if req.Generation != 0 && req.Generation != snapshot.Generation {
			return nil, playback.ErrStaleControl
		}
		if snapshot.Current.RequesterID != req.UserID {
			return nil, ErrNotAuthorized
		}
	}

	return snapshot, nil
}

func (s *service) userChannel(req *Request) (string, error) {
	channelID, err := s.voice.UserVoiceChannel(req.GuildID, req.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("guild_id", req.GuildID).Str("user_id", req.UserID).Msg("voice state lookup failed")
		return "", ErrNotInVoiceChannel
	}
	if channelID == "" {
		return "", ErrNotInVoiceChannel
	}
	return channelID, nil
}

func (s *service) play(ctx context.Context, req *Request) *Reply {
	channelID, err := s.userChannel(req)
	if err != nil {
		return errorReply(err)
	}

	resolved, err := s.search.Resolve(ctx, &search.ResolveInput{
		Query:         req.Query,
		RequesterID:   req.UserID,
		RequesterName: req.UserName,
	})
	if err != nil {
		return errorReply(err)
	}

	out, err := s.playback.Enqueue(ctx, &playback.EnqueueInput{
		GuildID:        req.GuildID,
		VoiceChannelID: channelID,
		TextChannelID:  req.TextChannelID,
		Tracks:         resolved.Tracks,
	})
	if err != nil {
		return errorReply(err)
	}

	reply := &Reply{
		Kind:     ReplyTrackAdded,
		Track:    resolved.Tracks[0],
		Position: out.Position,
		Count:    out.Count,
		Snapshot: out.Snapshot,
	}
	if resolved.Kind == search.ResultKindPlaylist {
		reply.Kind = ReplyPlaylistAdded
		reply.Tracks = resolved.Tracks
		reply.PlaylistName = resolved.PlaylistName
	}
	return reply
}

func (s *service) view(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.GetSnapshot(ctx, &playback.GetSnapshotInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}

	if req.Action == ActionNowPlaying {
		if out.Snapshot.Current == nil {
			return errorReply(playback.ErrNothingPlaying)
		}
		return &Reply{Kind: ReplyNowPlaying, Track: out.Snapshot.Current, Snapshot: out.Snapshot}
	}

	return &Reply{Kind: ReplyQueue, Count: len(out.Snapshot.Queue), Snapshot: out.Snapshot}
}

func (s *service) restart(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Play(ctx, &playback.PlayInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyNowPlaying, Track: out.Track, AlreadyInState: out.AlreadyInState}
}

func (s *service) pause(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Pause(ctx, &playback.PauseInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Paused: true, AlreadyInState: out.AlreadyInState}
}

func (s *service) resume(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Resume(ctx, &playback.ResumeInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, AlreadyInState: out.AlreadyInState}
}

func (s *service) skip(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Skip(ctx, &playback.SkipInput{
		GuildID:    req.GuildID,
		Generation: req.Generation,
	})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{
		Kind:           ReplyText,
		Track:          out.Skipped,
		QueueEnded:     out.QueueEnded,
		AlreadyInState: out.AlreadySkipped,
	}
}

func (s *service) stop(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Stop(ctx, &playback.StopInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Count: out.Cleared}
}

func (s *service) shuffle(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Shuffle(ctx, &playback.ShuffleInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Count: out.Count}
}

func (s *service) setLoop(ctx context.Context, req *Request, mode models.LoopMode) *Reply {
	out, err := s.playback.SetLoop(ctx, &playback.SetLoopInput{GuildID: req.GuildID, Mode: mode})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, LoopMode: out.Mode}
}

func (s *service) remove(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Remove(ctx, &playback.RemoveInput{GuildID: req.GuildID, Position: req.Position})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Track: out.Track, Position: req.Position}
}

func (s *service) move(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.Move(ctx, &playback.MoveInput{GuildID: req.GuildID, From: req.From, To: req.To})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Track: out.Track, Position: req.To}
}

func (s *service) clearQueue(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.ClearQueue(ctx, &playback.ClearQueueInput{GuildID: req.GuildID})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Count: out.Removed}
}

func (s *service) setVolume(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.SetVolume(ctx, &playback.SetVolumeInput{GuildID: req.GuildID, Level: req.Level})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Level: out.Level}
}

func (s *service) setFilter(ctx context.Context, req *Request) *Reply {
	out, err := s.playback.SetFilter(ctx, &playback.SetFilterInput{GuildID: req.GuildID, Filter: req.Filter})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, Filter: out.Filter}
}

func (s *service) toggleStayConnected(ctx context.Context, req *Request, snapshot *models.SessionSnapshot) *Reply {
	out, err := s.playback.SetStayConnected(ctx, &playback.SetStayConnectedInput{
		GuildID: req.GuildID,
		Enabled: !snapshot.StayConnected,
	})
	if err != nil {
		return errorReply(err)
	}
	return &Reply{Kind: ReplyText, StayConnected: out.Enabled}
}

func errorReply(err error) *Reply {
	return &Reply{Kind: ReplyError, Err: err, Ephemeral: true}
}

// resultLabel keeps the command metric's result label set small
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrNotInVoiceChannel), errors.Is(err, ErrNotAuthorized):
		return "denied"
	default:
		return "error"
	}
}
