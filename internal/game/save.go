// Package game drives the three play modes on top of the round engine.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/jwebster45206/hangman/pkg/story"
)

// LoadSave returns the stored story progression. A missing, unreadable or
// invalid save yields a fresh one; resumed reports whether a save was used.
func LoadSave(ctx context.Context, store storage.Storage, logger *slog.Logger) (gs *state.GameState, resumed bool) {
	loaded, err := store.LoadGameState(ctx)
	switch {
	case err != nil:
		logger.Warn("Ignoring unreadable save", "error", err)
	case loaded == nil:
		logger.Debug("No save found, starting fresh")
	default:
		if verr := loaded.Validate(story.Count()); verr != nil {
			logger.Warn("Ignoring invalid save", "error", verr)
			break
		}
		return loaded, true
	}
	return state.NewGameState(), false
}

// Reset deletes the stored progression and returns the defaults.
func Reset(ctx context.Context, store storage.Storage) (*state.GameState, error) {
	if err := store.DeleteGameState(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset save: %w", err)
	}
	return state.NewGameState(), nil
}
