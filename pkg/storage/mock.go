package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jwebster45206/hangman/pkg/state"
)

// MockStorage is an in-memory Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	gamestate *state.GameState
	corrupt   bool
	pingError error
	saveError error

	SaveCalls   int
	DeleteCalls int
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail every save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SetCorrupt makes the next loads report ErrCorrupt until a save succeeds
func (m *MockStorage) SetCorrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrupt = true
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveGameState stores a copy of gs
func (m *MockStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	if gs == nil {
		return errors.New("gamestate cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.saveError != nil {
		return m.saveError
	}
	m.gamestate = gs.Clone()
	m.corrupt = false
	return nil
}

// LoadGameState returns a copy of the stored save
func (m *MockStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.corrupt {
		return nil, ErrCorrupt
	}
	if m.gamestate == nil {
		return nil, nil
	}
	return m.gamestate.Clone(), nil
}

// DeleteGameState drops the stored save
func (m *MockStorage) DeleteGameState(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	m.gamestate = nil
	m.corrupt = false
	return nil
}
