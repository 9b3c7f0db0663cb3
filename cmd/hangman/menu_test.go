package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/internal/game"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/jwebster45206/hangman/pkg/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  choice
		ok    bool
	}{
		{"1", choiceClassic, true},
		{" 2 ", choiceTwoPlayer, true},
		{"3", choiceStory, true},
		{"Q", choiceQuit, true},
		{"quit", choiceQuit, true},
		{"5", choiceNone, false},
		{"", choiceNone, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestMenuModel_Navigation(t *testing.T) {
	var m tea.Model = menuModel{}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.(menuModel).cursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.(menuModel).cursor)
	assert.Contains(t, m.View(), "▶ 3) Story mode")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, choiceStory, m.(menuModel).selected)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestMenuModel_Shortcuts(t *testing.T) {
	m, cmd := menuModel{}.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	assert.Equal(t, choiceTwoPlayer, m.(menuModel).selected)
	assert.NotNil(t, cmd)

	m, _ = menuModel{}.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, choiceNone, m.(menuModel).selected)

	m, _ = menuModel{}.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, choiceQuit, m.(menuModel).selected)
}

func newTestApp(lines ...string) (*app, *bytes.Buffer) {
	script := console.NewScript(lines...)
	var out bytes.Buffer
	c := console.New(script, &out)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	words := word.FromWords([]string{"chat"})
	rng := rand.New(rand.NewPCG(1, 2))
	return &app{
		console: c,
		choose:  lineChooser(c),
		classic: game.NewClassic(c, words, rng, logger),
		story:   game.NewStory(c, storage.NewMockStorage(), words, rng, logger),
	}, &out
}

func TestApp_PlaysUntilQuit(t *testing.T) {
	a, out := newTestApp(
		"9", "1", "c", "h", "a", "t", "n", "y",
		"3", "quit", "y",
		"q",
	)

	require.NoError(t, a.run(context.Background()))

	assert.Contains(t, out.String(), "Answer 1, 2 or 3.")
	assert.Contains(t, out.String(), "Score: 1/1 wins")
	assert.Contains(t, out.String(), "STORY MODE")
	assert.Equal(t, 1, a.classic.Score().Wins)
}

func TestApp_DeclineMenuEnds(t *testing.T) {
	a, _ := newTestApp("1", "b", "d", "e", "f", "g", "i", "n", "n")

	require.NoError(t, a.run(context.Background()))
	assert.Equal(t, game.Score{Wins: 0, Games: 1}, a.classic.Score())
}

func TestApp_EOF(t *testing.T) {
	a, _ := newTestApp("2")

	assert.ErrorIs(t, a.run(context.Background()), io.EOF)
}
