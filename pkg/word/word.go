// Package word supplies normalized candidate words for hangman rounds.
package word

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinLength is the shortest word accepted from any source.
const MinLength = 3

const (
	OriginFile    = "file"
	OriginBuiltin = "builtin"
)

//go:embed fallback.txt
var fallbackList []byte

var ligatures = strings.NewReplacer(
	"œ", "oe", "Œ", "oe",
	"æ", "ae", "Æ", "ae",
	"ß", "ss",
)

// Normalize lowercases s, strips accents and drops everything outside a-z.
func Normalize(s string) string {
	s = ligatures.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Letter returns the first a-z letter of the input, if any.
func Letter(s string) (rune, bool) {
	n := Normalize(s)
	if n == "" {
		return 0, false
	}
	return rune(n[0]), true
}

// Clean normalizes every entry, dropping duplicates and words shorter than MinLength.
func Clean(words []string) []string {
	normalized := lo.Map(words, func(w string, _ int) string {
		return Normalize(w)
	})
	return lo.Uniq(lo.Filter(normalized, func(w string, _ int) bool {
		return len(w) >= MinLength
	}))
}

// Parse reads one word per line.
func Parse(data []byte) []string {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			words = append(words, line)
		}
	}
	return Clean(words)
}

// LoadFile reads and normalizes a word list file.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return Parse(data), nil
}

// Builtin returns the embedded fallback dictionary, normalized.
func Builtin() []string {
	return Parse(fallbackList)
}

// Source is a non-empty pool of normalized words.
type Source struct {
	words  []string
	origin string
}

// NewSource prefers the word list at path and silently falls back to the
// builtin dictionary when the file is missing or yields no usable word.
func NewSource(path string, logger *slog.Logger) *Source {
	if path != "" {
		words, err := LoadFile(path)
		switch {
		case err != nil:
			logger.Debug("Word list unavailable, using builtin dictionary", "path", path, "error", err)
		case len(words) == 0:
			logger.Warn("Word list has no usable words, using builtin dictionary", "path", path)
		default:
			logger.Info("Loaded word list", "path", path, "count", len(words))
			return &Source{words: words, origin: OriginFile}
		}
	}
	return &Source{words: Builtin(), origin: OriginBuiltin}
}

// FromWords builds a source from an in-memory list, falling back to the
// builtin dictionary when nothing survives normalization.
func FromWords(words []string) *Source {
	if cleaned := Clean(words); len(cleaned) > 0 {
		return &Source{words: cleaned, origin: OriginFile}
	}
	return &Source{words: Builtin(), origin: OriginBuiltin}
}

func (s *Source) Words() []string {
	return s.words
}

func (s *Source) Origin() string {
	return s.origin
}

// Next picks any word from the pool.
func (s *Source) Next(rng *rand.Rand) string {
	return s.words[rng.IntN(len(s.words))]
}

// NextBetween picks a word whose length lies in [minLen, maxLen]. A maxLen of
// zero means unbounded. When no word fits, any word is returned.
func (s *Source) NextBetween(rng *rand.Rand, minLen, maxLen int) string {
	candidates := lo.Filter(s.words, func(w string, _ int) bool {
		return len(w) >= minLen && (maxLen == 0 || len(w) <= maxLen)
	})
	if len(candidates) == 0 {
		return s.Next(rng)
	}
	return candidates[rng.IntN(len(candidates))]
}
