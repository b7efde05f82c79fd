// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from its environment
type Config struct {
	// Discord bot token
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// Application ID for the bot, falls back to the session user when empty
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	// Audio node connection
	LavalinkName     string `env:"LAVALINK_NAME" envDefault:"main"`
	LavalinkHost     string `env:"LAVALINK_HOST" envDefault:"localhost"`
	LavalinkPort     int    `env:"LAVALINK_PORT" envDefault:"2333"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD" envDefault:"youshallnotpass"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`

	// Search prefix used for bare search phrases
	SearchEngine string `env:"SEARCH_ENGINE" envDefault:"ytmsearch"`

	// Redis backs the search result cache
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"30m"`

	// Bounds on outbound calls
	NodeTimeout    time.Duration `env:"NODE_TIMEOUT" envDefault:"5s"`
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT" envDefault:"10s"`

	// Liveness and metrics listener
	HealthAddr string `env:"HEALTH_ADDR" envDefault:":3000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Per-guild command rate limit
	CommandRate  float64 `env:"COMMAND_RATE" envDefault:"4"`
	CommandBurst int     `env:"COMMAND_BURST" envDefault:"10"`

	// Size of the control surface notification buffer
	NotificationBuffer int `env:"NOTIFICATION_BUFFER" envDefault:"256"`

	InviteURL  string `env:"INVITE_URL"`
	SupportURL string `env:"SUPPORT_URL"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load(files ...string) (*Config, error) {
	// A missing .env file is normal in containers
	_ = godotenv.Load(files...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if c.LavalinkPort <= 0 || c.LavalinkPort > 65535 {
		return fmt.Errorf("invalid LAVALINK_PORT %d", c.LavalinkPort)
	}
	if c.NodeTimeout <= 0 || c.ResolveTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.CommandRate <= 0 || c.CommandBurst < 1 {
		return errors.New("command rate and burst must be positive")
	}
	if c.NotificationBuffer < 1 {
		return errors.New("notification buffer must be positive")
	}
	return nil
}
