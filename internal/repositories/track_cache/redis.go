package track_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	entryKeyPrefix = "search:"

	defaultTTL = 30 * time.Minute
)

// Config holds configuration for the Redis search cache
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL for entries saved without one
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed search cache
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func entryKey(identifier string) string {
	return fmt.Sprintf("%s%s", entryKeyPrefix, identifier)
}

// GetEntry retrieves a cached result and refreshes its expiry
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*Entry, error) {
	if input == nil || input.Identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	key := entryKey(input.Identifier)

	pipe := r.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get search entry: %w", err)
	}

	entryJSON, err := getCmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get search entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search entry: %w", err)
	}

	return &entry, nil
}

// SaveEntry caches a result
func (r *redisRepository) SaveEntry(ctx context.Context, input *SaveEntryInput) error {
	if input == nil || input.Identifier == "" {
		return ErrEmptyIdentifier
	}
	if input.Entry == nil {
		return ErrNilEntry
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal search entry: %w", err)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, entryKey(input.Identifier), entryJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save search entry: %w", err)
	}

	return nil
}

// DeleteEntry drops a cached result
func (r *redisRepository) DeleteEntry(ctx context.Context, input *DeleteEntryInput) error {
	if input == nil || input.Identifier == "" {
		return ErrEmptyIdentifier
	}

	if err := r.client.Del(ctx, entryKey(input.Identifier)).Err(); err != nil {
		return fmt.Errorf("failed to delete search entry: %w", err)
	}

	return nil
}
