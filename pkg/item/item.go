// Package item defines the consumables sold in the story mode shop.
package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is a consumable. The zero value is "no item", used for empty hotbar slots.
type Kind int

const (
	None Kind = iota
	Hint
	RevealVowels
	ExtraLife
	Skip
)

// Kinds lists every purchasable kind in shop order.
var Kinds = []Kind{Hint, RevealVowels, ExtraLife, Skip}

var names = map[Kind]string{
	None:         "",
	Hint:         "hint",
	RevealVowels: "reveal_vowels",
	ExtraLife:    "extra_life",
	Skip:         "skip",
}

var prices = map[Kind]int{
	Hint:         20,
	RevealVowels: 35,
	ExtraLife:    50,
	Skip:         120,
}

// shop keys and the names older saves used
var aliases = map[string]Kind{
	"i":             Hint,
	"v":             RevealVowels,
	"l":             ExtraLife,
	"s":             Skip,
	"indice":        Hint,
	"voyelles":      RevealVowels,
	"vowels":        RevealVowels,
	"reveal-vowels": RevealVowels,
	"vie+":          ExtraLife,
	"life":          ExtraLife,
	"extra-life":    ExtraLife,
}

var titleCaser = cases.Title(language.English)

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label is the display name, e.g. "Reveal Vowels".
func (k Kind) Label() string {
	return titleCaser.String(strings.ReplaceAll(k.String(), "_", " "))
}

// ShopKey is the single letter that buys k in the shop.
func (k Kind) ShopKey() string {
	for key, kind := range aliases {
		if len(key) == 1 && kind == k {
			return key
		}
	}
	return ""
}

// Price is the cost in points. None has no price.
func (k Kind) Price() int {
	return prices[k]
}

func (k Kind) Valid() bool {
	_, ok := prices[k]
	return ok
}

// Parse accepts canonical names, shop keys and legacy save names.
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range names {
		if k != None && n == s {
			return k, nil
		}
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	return None, fmt.Errorf("unknown item %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != None && !k.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = None
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Effect records what using an item did.
type Effect struct {
	Kind     Kind
	Revealed []rune
	Wasted   bool
	Skipped  bool
}
