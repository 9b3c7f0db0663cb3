package storage

import (
	"context"
	"errors"

	"github.com/jwebster45206/hangman/pkg/state"
)

// ErrCorrupt marks a save document that exists but cannot be decoded.
var ErrCorrupt = errors.New("save data is corrupt")

// Storage persists the single story mode save document.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveGameState overwrites the save. A concurrent LoadGameState never
	// observes a partial write.
	SaveGameState(ctx context.Context, gs *state.GameState) error

	// LoadGameState returns nil, nil when no save exists and an error
	// wrapping ErrCorrupt when the stored document cannot be decoded.
	LoadGameState(ctx context.Context) (*state.GameState, error)

	// DeleteGameState removes the save. Deleting a missing save is not an error.
	DeleteGameState(ctx context.Context) error
}
