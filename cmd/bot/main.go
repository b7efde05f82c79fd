package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/clock"
	"github.com/biltubhaiff-blip/Discord-music/internal/common/uuid"
	"github.com/biltubhaiff-blip/Discord-music/internal/config"
	"github.com/biltubhaiff-blip/Discord-music/internal/handlers/discord"
	"github.com/biltubhaiff-blip/Discord-music/internal/health"
	"github.com/biltubhaiff-blip/Discord-music/internal/log"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/biltubhaiff-blip/Discord-music/internal/repositories/track_cache"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/search"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := log.WithComponent("main")
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	cache, err := newSearchCache(ctx, redisClient, cfg.SearchCacheTTL)
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, search cache disabled")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	if err := session.Open(); err != nil {
		logger.Fatal().Err(err).Msg("failed to open Discord session")
	}

	node, err := audionode.NewLavalink(&audionode.Config{
		Name:     cfg.LavalinkName,
		Host:     cfg.LavalinkHost,
		Port:     cfg.LavalinkPort,
		Password: cfg.LavalinkPassword,
		Secure:   cfg.LavalinkSecure,
		UserID:   session.State.User.ID,
		Gateway:  session,
		Logger:   log.WithComponent("lavalink"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create audio node client")
	}

	searchSvc, err := search.New(&search.Config{
		AudioNode:      node,
		Cache:          cache,
		Engine:         cfg.SearchEngine,
		ResolveTimeout: cfg.ResolveTimeout,
		CacheTTL:       cfg.SearchCacheTTL,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         log.WithComponent("search"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create search service")
	}

	roller := random.New(nil)

	messagingSvc, err := messaging.New(&messaging.Config{Random: roller})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	surface, err := discord.NewSurface(&discord.SurfaceConfig{
		Messenger: discord.NewSessionMessenger(session),
		Messaging: messagingSvc,
		Logger:    log.WithComponent("surface"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create control surface")
	}

	playbackSvc, err := playback.New(&playback.Config{
		AudioNode:          node,
		Surface:            surface,
		Random:             roller,
		Clock:              clock.New(),
		Logger:             log.WithComponent("playback"),
		NodeTimeout:        cfg.NodeTimeout,
		NotificationBuffer: cfg.NotificationBuffer,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create playback service")
	}

	dispatcherSvc, err := dispatcher.New(&dispatcher.Config{
		Playback:     playbackSvc,
		Search:       searchSvc,
		VoiceStates:  discord.NewVoiceStates(session),
		Logger:       log.WithComponent("dispatcher"),
		CommandRate:  cfg.CommandRate,
		CommandBurst: cfg.CommandBurst,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create dispatcher")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Dispatcher:    dispatcherSvc,
		Messaging:     messagingSvc,
		Playback:      playbackSvc,
		Voice:         node,
		InviteURL:     cfg.InviteURL,
		SupportURL:    cfg.SupportURL,
		Logger:        log.WithComponent("discord"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	healthServer, err := health.New(&health.Config{
		Addr:   cfg.HealthAddr,
		Logger: log.WithComponent("health"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create health server")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return node.Run(gctx) })
	g.Go(func() error { return playbackSvc.Run(gctx) })
	g.Go(func() error { return surface.Run(gctx, playbackSvc) })
	g.Go(func() error { return healthServer.Run(gctx) })

	logger.Info().Str("user", session.State.User.Username).Msg("bot is running, press CTRL-C to exit")

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("background task failed")
	}

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}

// newSearchCache returns the Redis track cache, or a nil Repository when Redis does not answer
func newSearchCache(ctx context.Context, client *redis.Client, ttl time.Duration) (track_cache.Repository, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	repo, err := track_cache.NewRedis(&track_cache.Config{
		RedisClient: client,
		TTL:         ttl,
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}
