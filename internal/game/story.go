package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/pkg/item"
	"github.com/jwebster45206/hangman/pkg/round"
	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/storage"
	"github.com/jwebster45206/hangman/pkg/story"
	"github.com/jwebster45206/hangman/pkg/word"
	"github.com/samber/lo"
)

// errQuit leaves story mode from the preparation phase.
var errQuit = errors.New("quit story mode")

const prepHelp = "Commands: buy <item> (or i/v/l/s), assign <slot> <item> (or <slot> <item>), " +
	"clear <slot>, shop, ? for the HUD, ok to start the level, quit to save and leave."

const roundHelp = "Type a letter, ! to buy one item, ? for the HUD, 1-4 to use a hotbar slot."

// Story runs the campaign. It owns the save for the duration of Run.
type Story struct {
	console *console.Console
	store   storage.Storage
	words   *word.Source
	rng     *rand.Rand
	now     func() time.Time
	logger  *slog.Logger
}

type StoryOption func(*Story)

// WithStoryClock replaces time.Now for round timers.
func WithStoryClock(now func() time.Time) StoryOption {
	return func(s *Story) {
		s.now = now
	}
}

func NewStory(c *console.Console, store storage.Storage, words *word.Source, rng *rand.Rand, logger *slog.Logger, opts ...StoryOption) *Story {
	s := &Story{
		console: c,
		store:   store,
		words:   words,
		rng:     rng,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays levels from the saved position until the player stops, the
// campaign is completed or the campaign lives run out. Input errors end the
// run after the save has been written.
func (s *Story) Run(ctx context.Context) error {
	gs, resumed := LoadSave(ctx, s.store, s.logger)
	if resumed {
		s.console.Title("🎮 STORY MODE: resuming your save")
	} else {
		s.console.Title("🎮 STORY MODE: a new adventure")
	}
	s.console.Printf("Level: %d/%d | Lives: %d | Points: %d\n\n", gs.Level, story.Count(), gs.Lives, gs.Points)

	for !gs.Completed && !gs.IsGameOver() {
		lvl, err := story.Get(gs.Level)
		if err != nil {
			return fmt.Errorf("failed to load level: %w", err)
		}
		s.console.Println(console.RenderLevel(lvl, story.Count(), 72))

		if err := s.prepare(ctx, gs); err != nil {
			if errors.Is(err, errQuit) {
				s.console.Info("Progress saved. See you soon!")
				return nil
			}
			return err
		}

		target := s.words.NextBetween(s.rng, lvl.MinLen, lvl.MaxLen)
		r, err := round.New(target, lvl.Lives, round.WithTimeLimit(lvl.TimeLimit), round.WithClock(s.now))
		if err != nil {
			return fmt.Errorf("failed to start round: %w", err)
		}
		s.logger.Debug("Level started", "level", lvl.Index, "length", len(target))

		if err := s.play(ctx, gs, r); err != nil {
			return err
		}
		s.finish(ctx, gs, lvl, r)

		if gs.Completed || gs.IsGameOver() {
			break
		}
		more, err := s.console.Confirm("Continue the adventure?")
		if err != nil {
			return err
		}
		if !more {
			s.console.Info("Progress saved. See you soon!")
			return nil
		}
	}

	if gs.Completed {
		s.console.Success("🏆 Well done! You uncovered the secret of the Citadel!")
	} else {
		s.console.Warn("☠️  Game over. Come back stronger!")
	}

	reset, err := s.console.Confirm("Reset the save?")
	if err != nil {
		return err
	}
	if reset {
		if _, err := Reset(ctx, s.store); err != nil {
			s.logger.Error("Failed to reset save", "error", err)
			s.console.Error(err)
			return nil
		}
		s.console.Info("Save deleted.")
	}
	return nil
}

// prepare runs the shop and hotbar phase until the player confirms.
func (s *Story) prepare(ctx context.Context, gs *state.GameState) error {
	s.console.Println(console.RenderHUD(gs))
	s.console.Wrapped(prepHelp)

	for {
		line, err := s.console.Ask("prep> ")
		if err != nil {
			s.persist(ctx, gs)
			return err
		}
		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		switch cmd := fields[0]; {
		case cmd == "ok" || cmd == "confirm" || cmd == "go":
			s.persist(ctx, gs)
			return nil
		case cmd == "quit":
			s.persist(ctx, gs)
			return errQuit
		case cmd == "?":
			s.console.Println(console.RenderHUD(gs))
		case cmd == "shop":
			s.console.Print(console.RenderShop(gs.Points))
		case cmd == "buy" && len(fields) == 2:
			s.buy(ctx, gs, fields[1])
		case cmd == "assign" && len(fields) == 3:
			s.assign(ctx, gs, fields[1], fields[2])
		case cmd == "clear" && len(fields) == 2:
			s.clear(ctx, gs, fields[1])
		case len(fields) == 2 && isDigit(cmd):
			s.assign(ctx, gs, cmd, fields[1])
		case len(fields) == 1 && isShopKey(cmd):
			s.buy(ctx, gs, cmd)
		default:
			s.console.Warn("Unknown command. " + prepHelp)
		}
	}
}

// play runs the guess loop until the round is over.
func (s *Story) play(ctx context.Context, gs *state.GameState, r *round.Round) error {
	for !r.Over() {
		if r.Expired() {
			break
		}
		s.console.Println(console.RenderRound(r))
		s.console.Println(console.RenderHUD(gs))

		line, err := s.console.Ask(roundHelp + "\n> ")
		if err != nil {
			s.persist(ctx, gs)
			return err
		}
		if r.Expired() {
			break
		}

		switch {
		case line == "!":
			s.shopOnce(ctx, gs)
		case line == "?":
			s.console.Println(console.RenderHUD(gs))
		case len(line) == 1 && line[0] >= '1' && line[0] <= '4':
			s.useSlot(ctx, gs, int(line[0]-'0'), r)
		default:
			letter, ok := word.Letter(line)
			if !ok {
				s.console.Warn("Enter a letter a-z.")
				continue
			}
			res, err := r.Guess(letter)
			if err != nil {
				s.console.Error(err)
				continue
			}
			reportGuess(s.console, letter, res)
		}
	}
	return nil
}

func (s *Story) finish(ctx context.Context, gs *state.GameState, lvl story.Level, r *round.Round) {
	s.console.Println(console.RenderRound(r))

	if r.Status() == round.Won {
		if r.Skipped() {
			s.console.Success(fmt.Sprintf("⏭️  Level skipped. The word was: %s", r.Word()))
		} else {
			s.console.Success(fmt.Sprintf("🎉 Well done! Word found: %s", r.Word()))
		}
		gained := story.Reward(lvl, r.Remaining(), r.Errors())
		gs.AddPoints(gained)
		gs.Advance(story.Count())
		s.console.Info(fmt.Sprintf("✨ +%d pts | Total: %d", gained, gs.Points))
		s.logger.Info("Level won", "level", lvl.Index, "reward", gained, "skipped", r.Skipped())
	} else {
		if r.Reason() == round.LossTimeout {
			s.console.Warn("⏰ Time's up!")
		}
		s.console.Alert(fmt.Sprintf("💀 Too bad! The word was: %s", r.Word()))
		gs.LoseLife()
		s.console.Warn(fmt.Sprintf("💔 Life lost! Lives left: %d", gs.Lives))
		s.logger.Info("Level lost", "level", lvl.Index, "reason", r.Reason(), "lives", gs.Lives)
	}
	s.persist(ctx, gs)
}

func (s *Story) buy(ctx context.Context, gs *state.GameState, name string) {
	kind, err := item.Parse(name)
	if err != nil {
		s.console.Error(err)
		return
	}
	if err := gs.Purchase(kind); err != nil {
		s.console.Error(err)
		return
	}
	s.console.Success(fmt.Sprintf("Bought %s (-%d pts). Points: %d", kind.Label(), kind.Price(), gs.Points))
	s.persist(ctx, gs)
}

func (s *Story) assign(ctx context.Context, gs *state.GameState, slotArg, name string) {
	slot, err := strconv.Atoi(slotArg)
	if err != nil {
		s.console.Error(state.ErrInvalidSlot)
		return
	}
	kind, err := item.Parse(name)
	if err != nil {
		s.console.Error(err)
		return
	}
	if err := gs.Assign(slot, kind); err != nil {
		s.console.Error(err)
		return
	}
	s.console.Info(fmt.Sprintf("Slot %d → %s", slot, kind.Label()))
	s.persist(ctx, gs)
}

func (s *Story) clear(ctx context.Context, gs *state.GameState, slotArg string) {
	slot, err := strconv.Atoi(slotArg)
	if err != nil {
		s.console.Error(state.ErrInvalidSlot)
		return
	}
	if err := gs.Clear(slot); err != nil {
		s.console.Error(err)
		return
	}
	s.console.Info(fmt.Sprintf("Slot %d cleared", slot))
	s.persist(ctx, gs)
}

// shopOnce offers a single purchase during a round.
func (s *Story) shopOnce(ctx context.Context, gs *state.GameState) {
	s.console.Print(console.RenderShop(gs.Points))
	choice, err := s.console.Ask("Buy (i/v/l/s, empty to cancel): ")
	if err != nil || choice == "" {
		return
	}
	s.buy(ctx, gs, choice)
}

func (s *Story) useSlot(ctx context.Context, gs *state.GameState, slot int, r *round.Round) {
	effect, err := gs.Use(slot, r)
	if err != nil {
		s.console.Error(err)
		return
	}
	s.persist(ctx, gs)

	switch effect.Kind {
	case item.Hint:
		if effect.Wasted {
			s.console.Warn("Nothing left to reveal.")
		} else {
			s.console.Success(fmt.Sprintf("💡 Hint: letter '%c' revealed", effect.Revealed[0]))
		}
	case item.RevealVowels:
		if effect.Wasted {
			s.console.Warn("No hidden vowel left.")
		} else {
			s.console.Success("🔤 Vowels revealed: " + string(effect.Revealed))
		}
	case item.ExtraLife:
		if effect.Wasted {
			s.console.Warn(fmt.Sprintf("Lives already at %d, extra life wasted.", state.MaxLives))
		} else {
			s.console.Success(fmt.Sprintf("❤️  +1 life (lives: %d)", gs.Lives))
		}
	case item.Skip:
		s.console.Success("⏭️  Skip used.")
	}
}

// persist writes the save. Failures are reported but never end the game.
func (s *Story) persist(ctx context.Context, gs *state.GameState) {
	if err := s.store.SaveGameState(ctx, gs); err != nil {
		s.logger.Error("Failed to save game state", "error", err)
		s.console.Warn("Could not save progress: " + err.Error())
	}
}

func reportGuess(c *console.Console, letter rune, res round.Result) {
	switch res {
	case round.Repeat:
		c.Warn(fmt.Sprintf("Letter '%c' already tried.", letter))
	case round.Hit:
		c.Info(fmt.Sprintf("✔ '%c' is in the word.", letter))
	case round.Miss:
		c.Warn(fmt.Sprintf("✘ No '%c'.", letter))
	}
}

func isDigit(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isShopKey(s string) bool {
	return lo.ContainsBy(item.Kinds, func(k item.Kind) bool { return k.ShopKey() == s })
}
