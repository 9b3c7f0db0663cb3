package word

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Chien", "chien"},
		{"éléphant", "elephant"},
		{"Hôpital", "hopital"},
		{"pois chiche", "poischiche"},
		{"œuf", "oeuf"},
		{"vie+", "vie"},
		{"  Ça-va? 42 ", "cava"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestLetter(t *testing.T) {
	r, ok := Letter("  É! ")
	require.True(t, ok)
	assert.Equal(t, 'e', r)

	_, ok = Letter("123")
	assert.False(t, ok)
}

func TestBuiltin_OnlyLowercaseLetters(t *testing.T) {
	words := Builtin()
	require.NotEmpty(t, words)
	for _, w := range words {
		if len(w) < MinLength {
			t.Errorf("word %q shorter than %d", w, MinLength)
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				t.Errorf("word %q contains %q", w, r)
				break
			}
		}
	}
}

func TestNewSource_PrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Château\n\nab\nFORÊT\nchâteau\n"), 0644))

	src := NewSource(path, testLogger())
	assert.Equal(t, OriginFile, src.Origin())
	assert.Equal(t, []string{"chateau", "foret"}, src.Words())
}

func TestNewSource_MissingFileFallsBack(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "nope.txt"), testLogger())
	assert.Equal(t, OriginBuiltin, src.Origin())
	assert.NotEmpty(t, src.Words())
}

func TestNewSource_EmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n12\n"), 0644))

	src := NewSource(path, testLogger())
	assert.Equal(t, OriginBuiltin, src.Origin())
}

func TestSource_NextBetween(t *testing.T) {
	src := FromWords([]string{"cat", "horse", "elephant"})
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 20; i++ {
		w := src.NextBetween(rng, 4, 6)
		assert.Equal(t, "horse", w)
	}
	for i := 0; i < 20; i++ {
		w := src.NextBetween(rng, 8, 0)
		assert.Equal(t, "elephant", w)
	}

	// nothing fits: any word
	w := src.NextBetween(rng, 20, 30)
	assert.Contains(t, src.Words(), w)
}

func TestFromWords_EmptyFallsBack(t *testing.T) {
	src := FromWords([]string{"", "!!", "ab"})
	assert.Equal(t, OriginBuiltin, src.Origin())
}
