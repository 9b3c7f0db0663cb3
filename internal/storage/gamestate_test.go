package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jwebster45206/hangman/internal/config"
	"github.com/jwebster45206/hangman/pkg/item"
	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleGameState() *state.GameState {
	gs := state.NewGameState()
	gs.Level = 9
	gs.Lives = 4
	gs.Points = 123
	gs.Inventory[item.Hint] = 2
	gs.Inventory[item.Skip] = 1
	gs.Hotbar = [state.HotbarSlots]item.Kind{item.Skip, item.None, item.Hint, item.None}
	return gs
}

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	rs, err := NewRedisStorage("redis://"+mr.Addr(), "tester", testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}
	return rs, mr
}

// every backend must satisfy the same contract
func backends(t *testing.T) map[string]storage.Storage {
	t.Helper()

	rs, mr := setupTestRedis(t)
	t.Cleanup(func() {
		_ = rs.Close()
		mr.Close()
	})

	return map[string]storage.Storage{
		"file":  NewFileStorage(filepath.Join(t.TempDir(), "save.json"), testLogger()),
		"redis": rs,
		"mock":  storage.NewMockStorage(),
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gs := sampleGameState()

			require.NoError(t, s.SaveGameState(ctx, gs))

			loaded, err := s.LoadGameState(ctx)
			require.NoError(t, err)
			require.NotNil(t, loaded)

			if name != "mock" {
				assert.Equal(t, gs.UpdatedAt, loaded.UpdatedAt)
			}
			loaded.UpdatedAt = gs.UpdatedAt
			assert.Equal(t, gs, loaded)
		})
	}
}

func TestStorage_LoadMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			loaded, err := s.LoadGameState(context.Background())
			assert.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestStorage_Delete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.SaveGameState(ctx, sampleGameState()))
			require.NoError(t, s.DeleteGameState(ctx))

			loaded, err := s.LoadGameState(ctx)
			assert.NoError(t, err)
			assert.Nil(t, loaded)

			// deleting twice is fine
			assert.NoError(t, s.DeleteGameState(ctx))
		})
	}
}

func TestStorage_Overwrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gs := sampleGameState()
			require.NoError(t, s.SaveGameState(ctx, gs))

			gs.Points = 7
			gs.Level = 10
			require.NoError(t, s.SaveGameState(ctx, gs))

			loaded, err := s.LoadGameState(ctx)
			require.NoError(t, err)
			assert.Equal(t, 7, loaded.Points)
			assert.Equal(t, 10, loaded.Level)
		})
	}
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	fs := NewFileStorage(path, testLogger())
	loaded, err := fs.LoadGameState(context.Background())
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.Nil(t, loaded)
}

func TestFileStorage_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(filepath.Join(dir, "save.json"), testLogger())

	for i := 0; i < 3; i++ {
		require.NoError(t, fs.SaveGameState(context.Background(), sampleGameState()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "save.json", entries[0].Name())
}

func TestFileStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "save.json")
	fs := NewFileStorage(path, testLogger())

	require.NoError(t, fs.SaveGameState(context.Background(), sampleGameState()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStorage_ReadsFirstFormatSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	legacy := `{"level_idx": 2, "lives": 2, "points": 40,
		"inventory": {"indice": 1, "voyelles": 0, "vie+": 2, "skip": 0},
		"hotbar": ["indice", "", "vie+", ""]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	loaded, err := NewFileStorage(path, testLogger()).LoadGameState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Level)
	assert.Equal(t, 1, loaded.Inventory[item.Hint])
	assert.Equal(t, 2, loaded.Inventory[item.ExtraLife])
	assert.Equal(t, item.ExtraLife, loaded.Hotbar[2])
	assert.NoError(t, loaded.Validate(35))
}

func TestRedisStorage_CorruptValue(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer rs.Close()

	require.NoError(t, mr.Set(keyPrefix+"tester", "garbage"))

	_, err := rs.LoadGameState(context.Background())
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestRedisStorage_ProfilesAreIsolated(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	alice, err := NewRedisStorage("redis://"+mr.Addr(), "alice", testLogger())
	require.NoError(t, err)
	defer alice.Close()
	bob, err := NewRedisStorage("redis://"+mr.Addr(), "bob", testLogger())
	require.NoError(t, err)
	defer bob.Close()

	ctx := context.Background()
	require.NoError(t, alice.SaveGameState(ctx, sampleGameState()))

	loaded, err := bob.LoadGameState(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.True(t, mr.Exists(keyPrefix+"alice"))
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage("://nope", "p", testLogger())
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, &config.Config{SaveBackend: config.BackendFile, SaveFile: filepath.Join(t.TempDir(), "s.json")}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s, err = Open(ctx, &config.Config{SaveBackend: config.BackendRedis, RedisURL: "redis://" + mr.Addr(), Profile: "x"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &RedisStorage{}, s)
	assert.NoError(t, s.Close())

	_, err = Open(ctx, &config.Config{SaveBackend: "tape"}, testLogger())
	assert.Error(t, err)
}
