package state

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/hangman/pkg/item"
)

const (
	MaxLives     = 5
	DefaultLives = 3
	HotbarSlots  = 4
	FirstLevel   = 1
)

// GameState is the persisted story mode progression.
type GameState struct {
	ID        uuid.UUID              `json:"id"`
	Level     int                    `json:"level"`               // 1-based index of the level to play next
	Completed bool                   `json:"completed,omitempty"` // every level has been won
	Lives     int                    `json:"lives"`
	Points    int                    `json:"points"`
	Inventory map[item.Kind]int      `json:"inventory"`
	Hotbar    [HotbarSlots]item.Kind `json:"hotbar"`
	UpdatedAt time.Time              `json:"updated_at,omitzero"`
}

// NewGameState returns a fresh save at level 1.
func NewGameState() *GameState {
	return &GameState{
		ID:        uuid.New(),
		Level:     FirstLevel,
		Lives:     DefaultLives,
		Points:    0,
		Inventory: make(map[item.Kind]int),
	}
}

// Reset replaces the progression with defaults.
func (gs *GameState) Reset() {
	*gs = *NewGameState()
}

// Clone returns a deep copy.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.Inventory = maps.Clone(gs.Inventory)
	if c.Inventory == nil {
		c.Inventory = make(map[item.Kind]int)
	}
	return &c
}

// Count is the number of units of kind owned.
func (gs *GameState) Count(kind item.Kind) int {
	return gs.Inventory[kind]
}

// LoseLife removes one campaign life. Lives cannot go below 0.
func (gs *GameState) LoseLife() {
	if gs.Lives > 0 {
		gs.Lives--
	}
}

// GainLife adds one campaign life up to MaxLives. It reports whether a life was added.
func (gs *GameState) GainLife() bool {
	if gs.Lives >= MaxLives {
		return false
	}
	gs.Lives++
	return true
}

func (gs *GameState) IsGameOver() bool {
	return gs.Lives <= 0
}

// AddPoints credits a reward. Negative amounts are ignored.
func (gs *GameState) AddPoints(n int) {
	if n > 0 {
		gs.Points += n
	}
}

// Advance moves to the next level, or marks the campaign complete after the last one.
func (gs *GameState) Advance(levels int) {
	if gs.Level >= levels {
		gs.Level = levels
		gs.Completed = true
		return
	}
	gs.Level++
}

// Validate checks the document invariants against a catalog of levels.
func (gs *GameState) Validate(levels int) error {
	var errs []error
	if gs.Level < FirstLevel || gs.Level > levels {
		errs = append(errs, fmt.Errorf("level %d outside [%d,%d]", gs.Level, FirstLevel, levels))
	}
	if gs.Lives < 0 || gs.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("lives %d outside [0,%d]", gs.Lives, MaxLives))
	}
	if gs.Points < 0 {
		errs = append(errs, fmt.Errorf("points %d is negative", gs.Points))
	}
	for kind, n := range gs.Inventory {
		if !kind.Valid() {
			errs = append(errs, fmt.Errorf("inventory holds unknown item %s", kind))
		}
		if n < 0 {
			errs = append(errs, fmt.Errorf("inventory count for %s is negative", kind))
		}
	}
	for i, kind := range gs.Hotbar {
		if kind != item.None && !kind.Valid() {
			errs = append(errs, fmt.Errorf("hotbar slot %d holds unknown item %s", i+1, kind))
		}
	}
	return errors.Join(errs...)
}
