package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/internal/share"
	"github.com/jwebster45206/hangman/pkg/round"
	"github.com/jwebster45206/hangman/pkg/word"
)

// ClassicLives is the error budget of classic and two-player rounds.
const ClassicLives = 6

type Mode int

const (
	ModeClassic Mode = iota
	ModeTwoPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeTwoPlayer:
		return "two-player"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Score is the session tally of classic and two-player rounds.
type Score struct {
	Wins  int
	Games int
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d wins", s.Wins, s.Games)
}

// Classic plays untimed single rounds, either on a random word or on a word
// typed by a second player.
type Classic struct {
	console *console.Console
	words   *word.Source
	rng     *rand.Rand
	logger  *slog.Logger
	score   Score
}

func NewClassic(c *console.Console, words *word.Source, rng *rand.Rand, logger *slog.Logger) *Classic {
	return &Classic{
		console: c,
		words:   words,
		rng:     rng,
		logger:  logger,
	}
}

func (g *Classic) Score() Score {
	return g.score
}

// PlayComputer plays one round on a random word.
func (g *Classic) PlayComputer() error {
	return g.play(ModeClassic, g.words.Next(g.rng))
}

// PlayTwoPlayer asks player one for a hidden word, then lets player two guess it.
func (g *Classic) PlayTwoPlayer() error {
	secret, err := g.askSecret()
	if err != nil {
		return err
	}
	// push the typed word out of sight on terminals that echoed the prompt line
	g.console.Print("\n\n")
	return g.play(ModeTwoPlayer, secret)
}

func (g *Classic) askSecret() (string, error) {
	for {
		raw, err := g.console.AskSecret("Player 1, enter the secret word (hidden): ")
		if err != nil {
			return "", err
		}
		if secret := word.Normalize(raw); len(secret) >= word.MinLength {
			return secret, nil
		}
		g.console.Warn(fmt.Sprintf("Invalid word: %d letters minimum, a-z only.", word.MinLength))
	}
}

func (g *Classic) play(mode Mode, secret string) error {
	r, err := round.New(secret, ClassicLives)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	g.logger.Debug("Round started", "mode", mode, "length", len(secret))

	for !r.Over() {
		g.console.Println(console.RenderRound(r))
		line, err := g.console.Ask("Guess a letter: ")
		if err != nil {
			return err
		}
		letter, ok := word.Letter(line)
		if !ok {
			g.console.Warn("Enter a letter a-z.")
			continue
		}
		res, err := r.Guess(letter)
		if err != nil {
			g.console.Error(err)
			continue
		}
		reportGuess(g.console, letter, res)
	}

	g.console.Println(console.RenderRound(r))
	g.score.Games++
	if r.Status() == round.Won {
		g.score.Wins++
		g.console.Success(fmt.Sprintf("🎉 Well done! You guessed: %s", r.Word()))
	} else {
		g.console.Alert(fmt.Sprintf("💀 Too bad! The word was: %s", r.Word()))
	}
	g.console.Info("Score: " + g.score.String())
	g.logger.Info("Round finished", "mode", mode, "status", r.Status(), "errors", r.Errors())

	return offerShare(g.console, g.logger, mode, r)
}

// offerShare copies a spoiler-free summary when the player asks for it. When
// no clipboard is available the summary is printed instead.
func offerShare(c *console.Console, logger *slog.Logger, mode Mode, r *round.Round) error {
	ok, err := c.Confirm("Copy a summary to the clipboard?")
	if err != nil || !ok {
		return err
	}
	text := share.Text(mode.String(), r)
	if err := share.Copy(text); err != nil {
		if !errors.Is(err, share.ErrUnsupported) {
			logger.Warn("Clipboard copy failed", "error", err)
		}
		c.Println(text)
		return nil
	}
	c.Info("Summary copied.")
	return nil
}
