package state

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jwebster45206/hangman/pkg/item"
	"github.com/jwebster45206/hangman/pkg/round"
)

var (
	ErrInsufficientFunds = errors.New("not enough points")
	ErrLivesFull         = errors.New("lives already at maximum")
	ErrUnknownItem       = errors.New("unknown item")
	ErrInvalidSlot       = errors.New("hotbar slot must be between 1 and 4")
	ErrEmptySlot         = errors.New("hotbar slot is empty")
	ErrNoItem            = errors.New("no item left in stock")
)

// Purchase buys one unit of kind. On failure nothing changes.
func (gs *GameState) Purchase(kind item.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownItem, kind)
	}
	if kind == item.ExtraLife && gs.Lives >= MaxLives {
		return ErrLivesFull
	}
	price := kind.Price()
	if gs.Points < price {
		return fmt.Errorf("%w: %s costs %d, you have %d", ErrInsufficientFunds, kind.Label(), price, gs.Points)
	}

	if gs.Inventory == nil {
		gs.Inventory = make(map[item.Kind]int)
	}
	gs.Points -= price
	gs.Inventory[kind]++
	return nil
}

// Assign binds a hotbar slot to kind. Binding does not reserve stock.
func (gs *GameState) Assign(slot int, kind item.Kind) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownItem, kind)
	}
	gs.Hotbar[slot-1] = kind
	return nil
}

// Clear unbinds a hotbar slot.
func (gs *GameState) Clear(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	gs.Hotbar[slot-1] = item.None
	return nil
}

// Slot returns the kind bound to slot.
func (gs *GameState) Slot(slot int) (item.Kind, error) {
	if err := checkSlot(slot); err != nil {
		return item.None, err
	}
	return gs.Hotbar[slot-1], nil
}

// Use consumes the item bound to slot and applies it to the active round.
// Extra life acts on campaign lives, not on the round's error budget, and is
// consumed even when lives are full.
func (gs *GameState) Use(slot int, r *round.Round) (item.Effect, error) {
	kind, err := gs.Slot(slot)
	if err != nil {
		return item.Effect{}, err
	}
	if kind == item.None {
		return item.Effect{}, ErrEmptySlot
	}
	if gs.Inventory[kind] <= 0 {
		return item.Effect{Kind: kind}, fmt.Errorf("%w: %s", ErrNoItem, kind.Label())
	}
	if r == nil || r.Over() {
		return item.Effect{Kind: kind}, round.ErrRoundOver
	}

	gs.Inventory[kind]--
	effect := item.Effect{Kind: kind}

	switch kind {
	case item.Hint:
		if c, ok := r.RevealNext(); ok {
			effect.Revealed = []rune{c}
		} else {
			effect.Wasted = true
		}
	case item.RevealVowels:
		before := r.Found()
		if r.RevealVowels() == 0 {
			effect.Wasted = true
		}
		for _, c := range r.Found() {
			if !slices.Contains(before, c) {
				effect.Revealed = append(effect.Revealed, c)
			}
		}
	case item.ExtraLife:
		effect.Wasted = !gs.GainLife()
	case item.Skip:
		r.Skip()
		effect.Skipped = true
	}
	return effect, nil
}

func checkSlot(slot int) error {
	if slot < 1 || slot > HotbarSlots {
		return fmt.Errorf("%w: got %d", ErrInvalidSlot, slot)
	}
	return nil
}
