package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"warn"`
	LogLevel    slog.Level

	WordsFile   string `env:"HANGMAN_WORDS_FILE" envDefault:"words.txt"`
	SaveFile    string `env:"HANGMAN_SAVE_FILE" envDefault:"hangman.save.json"`
	SaveBackend string `env:"HANGMAN_SAVE_BACKEND" envDefault:"file"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	Profile     string `env:"HANGMAN_PROFILE" envDefault:"default"`
	Seed        int64  `env:"HANGMAN_SEED" envDefault:"0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)

	cfg.SaveBackend = strings.ToLower(strings.TrimSpace(cfg.SaveBackend))
	switch cfg.SaveBackend {
	case BackendFile, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown save backend %q (want %q or %q)", cfg.SaveBackend, BackendFile, BackendRedis)
	}
	return &cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
