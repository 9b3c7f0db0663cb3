package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrices(t *testing.T) {
	assert.Equal(t, 20, Hint.Price())
	assert.Equal(t, 35, RevealVowels.Price())
	assert.Equal(t, 50, ExtraLife.Price())
	assert.Equal(t, 120, Skip.Price())
	assert.Equal(t, 0, None.Price())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Kind
	}{
		{"hint", Hint},
		{" HINT ", Hint},
		{"i", Hint},
		{"indice", Hint},
		{"reveal_vowels", RevealVowels},
		{"voyelles", RevealVowels},
		{"v", RevealVowels},
		{"extra_life", ExtraLife},
		{"vie+", ExtraLife},
		{"l", ExtraLife},
		{"skip", Skip},
		{"s", Skip},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}

	_, err := Parse("sword")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestShopKeyAndLabel(t *testing.T) {
	assert.Equal(t, "i", Hint.ShopKey())
	assert.Equal(t, "v", RevealVowels.ShopKey())
	assert.Equal(t, "l", ExtraLife.ShopKey())
	assert.Equal(t, "s", Skip.ShopKey())
	assert.Equal(t, "Reveal Vowels", RevealVowels.Label())
	assert.Equal(t, "Extra Life", ExtraLife.Label())
}

func TestJSONNames(t *testing.T) {
	type doc struct {
		Inventory map[Kind]int `json:"inventory"`
		Hotbar    [4]Kind      `json:"hotbar"`
	}
	in := doc{
		Inventory: map[Kind]int{Hint: 2, Skip: 1},
		Hotbar:    [4]Kind{Hint, None, Skip, None},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inventory":{"hint":2,"skip":1},"hotbar":["hint","","skip",""]}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	legacy := `{"inventory":{"indice":1,"vie+":3},"hotbar":["voyelles","","",""]}`
	require.NoError(t, json.Unmarshal([]byte(legacy), &out))
	assert.Equal(t, 1, out.Inventory[Hint])
	assert.Equal(t, 3, out.Inventory[ExtraLife])
	assert.Equal(t, RevealVowels, out.Hotbar[0])
}
