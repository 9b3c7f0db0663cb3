package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/jwebster45206/hangman/internal/config"
	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/internal/game"
	"github.com/jwebster45206/hangman/internal/logger"
	"github.com/jwebster45206/hangman/internal/storage"
	"github.com/jwebster45206/hangman/pkg/word"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.WithProfile(logger.Setup(cfg, os.Stderr), cfg.Profile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to open save storage", "backend", cfg.SaveBackend)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	words := word.NewSource(cfg.WordsFile, log)
	log.Debug("Word source ready", "origin", words.Origin(), "count", len(words.Words()))

	term := console.NewTerminal(os.Stdin, os.Stdout)
	c := console.New(term, os.Stdout)
	rng := newRand(cfg.Seed)

	stopSignals := handleSignals(c, func() {
		cancel()
		_ = store.Close()
	}, os.Exit)
	defer stopSignals()

	a := &app{
		console: c,
		choose:  lineChooser(c),
		classic: game.NewClassic(c, words, rng, log),
		story:   game.NewStory(c, store, words, rng, log),
	}
	if term.IsTTY() {
		a.choose = teaChooser(os.Stdin, os.Stdout)
	}

	if err := a.run(ctx); err != nil && !errors.Is(err, io.EOF) {
		logger.WithError(log, err).Error("Game stopped")
		os.Exit(1)
	}
	c.Info("Thanks for playing! 👋")
}

// newRand seeds from HANGMAN_SEED when set, for reproducible word draws.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
