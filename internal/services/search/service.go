// Package search resolves user queries into tracks through the audio node, with a Redis cache in front.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/clock"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/uuid"
	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/repositories/track_cache"
	"github.com/rs/zerolog"
)

const defaultResolveTimeout = 10 * time.Second

type service struct {
	node           audionode.Client
	cache          track_cache.Repository
	engine         string
	resolveTimeout time.Duration
	cacheTTL       time.Duration
	clock          clock.Clock
	uuid           uuid.UUID
	logger         zerolog.Logger
}

// New creates a new search service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AudioNode == nil {
		return nil, ErrNilAudioNode
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	engine := cfg.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	timeout := cfg.ResolveTimeout
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}

	return &service{
		node:           cfg.AudioNode,
		cache:          cfg.Cache,
		engine:         engine,
		resolveTimeout: timeout,
		cacheTTL:       cfg.CacheTTL,
		clock:          cfg.Clock,
		uuid:           cfg.UUIDGenerator,
		logger:         cfg.Logger,
	}, nil
}

// Identifier returns what the node is asked to load for a query.
// Bare phrases get the engine prefix; URLs and prefixed identifiers pass through.
func Identifier(engine, query string) string {
	if !strings.HasPrefix(query, "http") && !strings.Contains(query, ":") {
		return engine + ":" + query
	}
	return query
}

// Resolve turns a query into tracks stamped with the requester
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, ErrEmptyQuery
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	identifier := Identifier(s.engine, query)

	entry, cached := s.fromCache(ctx, identifier)
	if !cached {
		var err error
		entry, err = s.load(ctx, identifier)
		if err != nil {
			return nil, err
		}
		s.toCache(ctx, identifier, entry)
	}

	now := s.clock.Now()
	tracks := make([]*models.Track, 0, len(entry.Tracks))
	for _, t := range entry.Tracks {
		stamped := *t
		stamped.ID = s.uuid.NewUUID()
		stamped.RequesterID = input.RequesterID
		stamped.RequesterName = input.RequesterName
		stamped.RequestedAt = now
		tracks = append(tracks, &stamped)
	}

	return &ResolveOutput{
		Kind:         ResultKind(entry.Kind),
		Tracks:       tracks,
		PlaylistName: entry.PlaylistName,
		Cached:       cached,
	}, nil
}

// load asks the node and reduces the result to what will be enqueued
func (s *service) load(ctx context.Context, identifier string) (*track_cache.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	result, err := s.node.LoadTracks(ctx, identifier)
	if err != nil {
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("track load failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	switch result.Type {
	case audionode.LoadTypeEmpty:
		return nil, ErrSearchEmpty
	case audionode.LoadTypeError:
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, result.Error)
	}

	if len(result.Tracks) == 0 {
		return nil, ErrSearchEmpty
	}

	entry := &track_cache.Entry{Kind: string(ResultKindTrack)}
	switch result.Type {
	case audionode.LoadTypePlaylist:
		entry.Kind = string(ResultKindPlaylist)
		entry.PlaylistName = result.PlaylistName
		for _, info := range result.Tracks {
			entry.Tracks = append(entry.Tracks, toTrack(info))
		}
	default:
		entry.Tracks = []*models.Track{toTrack(result.Tracks[0])}
	}

	return entry, nil
}

func (s *service) fromCache(ctx context.Context, identifier string) (*track_cache.Entry, bool) {
	if s.cache == nil {
		return nil, false
	}

	entry, err := s.cache.GetEntry(ctx, &track_cache.GetEntryInput{Identifier: identifier})
	switch {
	case err == nil && len(entry.Tracks) > 0:
		metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
		return entry, true
	case err == nil, errors.Is(err, track_cache.ErrCacheMiss):
		metrics.SearchCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.SearchCacheTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("search cache read failed")
	}
	return nil, false
}

func (s *service) toCache(ctx context.Context, identifier string, entry *track_cache.Entry) {
	if s.cache == nil {
		return
	}

	err := s.cache.SaveEntry(ctx, &track_cache.SaveEntryInput{
		Identifier: identifier,
		Entry:      entry,
		TTL:        s.cacheTTL,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("search cache write failed")
	}
}

func toTrack(info *audionode.TrackInfo) *models.Track {
	uri := info.URI
	if uri == "" {
		uri = info.Identifier
	}
	// Streams report a sentinel length
	duration := info.LengthMs
	if info.IsStream {
		duration = 0
	}
	return &models.Track{
		Title:      info.Title,
		Author:     info.Author,
		URI:        uri,
		DurationMs: duration,
		ArtworkURI: info.ArtworkURL,
		SourceName: info.SourceName,
		IsStream:   info.IsStream,
	}
}
