package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/jwebster45206/hangman/pkg/story"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hangman:save:"

// RedisStorage keeps the save document of one profile under a single Redis key.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	key    string
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance for profile
func NewRedisStorage(redisURL string, profile string, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if profile == "" {
		profile = "default"
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		key:    keyPrefix + profile,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context, attempts int, delay time.Duration) error {
	for i := 0; i < attempts; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(delay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", attempts)
}

func (r *RedisStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	gs.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	data, err := json.Marshal(gs)
	if err != nil {
		r.logger.Error("Failed to marshal gamestate", "key", r.key, "error", err)
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}

	// SET replaces the value in one step
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save gamestate", "key", r.key, "error", err)
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("Failed to load gamestate", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to load gamestate: %w", err)
	}

	gs, err := state.Decode(data, story.Count())
	if err != nil {
		r.logger.Warn("Failed to unmarshal gamestate", "key", r.key, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	return gs, nil
}

func (r *RedisStorage) DeleteGameState(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Error("Failed to delete gamestate", "key", r.key, "error", err)
		return fmt.Errorf("failed to delete gamestate: %w", err)
	}
	return nil
}
