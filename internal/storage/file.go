package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/jwebster45206/hangman/pkg/story"
)

// FileStorage keeps the save document in a single JSON file.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ storage.Storage = (*FileStorage)(nil)

// NewFileStorage creates a file-backed storage at path
func NewFileStorage(path string, logger *slog.Logger) *FileStorage {
	if path == "" {
		path = "hangman.save.json"
	}
	return &FileStorage{
		path:   path,
		logger: logger,
	}
}

func (f *FileStorage) Path() string {
	return f.path
}

// Health and lifecycle methods

func (f *FileStorage) Ping(ctx context.Context) error {
	dir := filepath.Dir(f.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save directory %s is not a directory", dir)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

// SaveGameState writes to a temp file in the same directory and renames it
// over the save, so readers see either the old or the new document.
func (f *FileStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	gs.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal gamestate", "path", f.path, "error", err)
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		f.logger.Error("Failed to create temp save file", "dir", dir, "error", err)
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		f.logger.Error("Failed to replace save file", "path", f.path, "error", err)
		return fmt.Errorf("failed to replace save file: %w", err)
	}

	f.logger.Debug("Saved gamestate", "path", f.path, "level", gs.Level, "points", gs.Points)
	return nil
}

func (f *FileStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	gs, err := state.Decode(data, story.Count())
	if err != nil {
		f.logger.Warn("Failed to unmarshal save file", "path", f.path, "error", err)
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	return gs, nil
}

func (f *FileStorage) DeleteGameState(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		f.logger.Error("Failed to delete save file", "path", f.path, "error", err)
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}
