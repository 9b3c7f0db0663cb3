package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/hangman/internal/config"
	"github.com/jwebster45206/hangman/pkg/storage"
)

// Open builds the save backend selected by cfg.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.SaveBackend {
	case config.BackendRedis:
		rs, err := NewRedisStorage(cfg.RedisURL, cfg.Profile, logger)
		if err != nil {
			return nil, err
		}
		if err := rs.WaitForConnection(ctx, 3, 500*time.Millisecond); err != nil {
			_ = rs.Close()
			return nil, err
		}
		return rs, nil
	case config.BackendFile, "":
		return NewFileStorage(cfg.SaveFile, logger), nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}
