// Package round implements the guess loop state machine of a single hangman round.
package round

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Vowels revealed by the reveal-vowels item.
const Vowels = "aeiouy"

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

type LossReason int

const (
	LossNone LossReason = iota
	LossLives
	LossTimeout
)

func (l LossReason) String() string {
	switch l {
	case LossNone:
		return "none"
	case LossLives:
		return "lives"
	case LossTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("loss(%d)", int(l))
	}
}

// Result describes what a guess did.
type Result int

const (
	Repeat Result = iota
	Hit
	Miss
)

var (
	ErrInvalidLetter = errors.New("guess must be a letter a-z")
	ErrRoundOver     = errors.New("round is over")
	ErrInvalidWord   = errors.New("word must contain only letters a-z")
)

// Round is the state of one round. It is not safe for concurrent use.
type Round struct {
	word    string
	found   map[rune]bool
	missed  map[rune]bool
	budget  int
	lives   int
	limit   time.Duration
	now     func() time.Time
	started time.Time
	status  Status
	reason  LossReason
	skipped bool
}

type Option func(*Round)

// WithTimeLimit bounds the elapsed time of the round. Zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(r *Round) {
		r.limit = d
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Round) {
		r.now = now
	}
}

// New starts a round on word with the given number of lives.
func New(word string, lives int, opts ...Option) (*Round, error) {
	if word == "" || strings.IndexFunc(word, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
		return nil, ErrInvalidWord
	}
	if lives <= 0 {
		return nil, fmt.Errorf("lives must be positive, got %d", lives)
	}

	r := &Round{
		word:   word,
		found:  make(map[rune]bool),
		missed: make(map[rune]bool),
		budget: lives,
		lives:  lives,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.started = r.now()
	return r, nil
}

// Guess applies one letter. Repeated letters cost nothing.
func (r *Round) Guess(letter rune) (Result, error) {
	if r.status != InProgress {
		return Repeat, ErrRoundOver
	}
	if letter < 'a' || letter > 'z' {
		return Repeat, ErrInvalidLetter
	}
	if r.found[letter] || r.missed[letter] {
		return Repeat, nil
	}

	if strings.ContainsRune(r.word, letter) {
		r.found[letter] = true
		r.checkSolved()
		return Hit, nil
	}

	r.missed[letter] = true
	r.lives--
	if r.lives <= 0 {
		r.lives = 0
		r.status = Lost
		r.reason = LossLives
	}
	return Miss, nil
}

// Expired ends the round as lost when the time limit has passed.
func (r *Round) Expired() bool {
	if r.status != InProgress || r.limit <= 0 {
		return false
	}
	if r.now().Sub(r.started) >= r.limit {
		r.status = Lost
		r.reason = LossTimeout
		return true
	}
	return false
}

// Remaining is the time left, floored at zero. Without a limit it is zero.
func (r *Round) Remaining() time.Duration {
	if r.limit <= 0 {
		return 0
	}
	left := r.limit - r.now().Sub(r.started)
	if left < 0 {
		return 0
	}
	return left
}

func (r *Round) HasTimeLimit() bool {
	return r.limit > 0
}

// RevealNext reveals the first unrevealed letter in word order.
func (r *Round) RevealNext() (rune, bool) {
	if r.status != InProgress {
		return 0, false
	}
	for _, c := range r.word {
		if !r.found[c] {
			r.found[c] = true
			r.checkSolved()
			return c, true
		}
	}
	return 0, false
}

// RevealVowels reveals every vowel of the word and returns how many distinct
// vowels were newly revealed.
func (r *Round) RevealVowels() int {
	if r.status != InProgress {
		return 0
	}
	revealed := 0
	for _, v := range Vowels {
		if strings.ContainsRune(r.word, v) && !r.found[v] {
			r.found[v] = true
			revealed++
		}
	}
	r.checkSolved()
	return revealed
}

// Skip ends the round as won without further guessing.
func (r *Round) Skip() {
	if r.status != InProgress {
		return
	}
	r.skipped = true
	r.status = Won
}

func (r *Round) checkSolved() {
	for _, c := range r.word {
		if !r.found[c] {
			return
		}
	}
	r.status = Won
}

// Masked renders the word with "_" for hidden letters, space separated.
func (r *Round) Masked() string {
	parts := make([]string, 0, len(r.word))
	for _, c := range r.word {
		if r.found[c] {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

func (r *Round) Word() string { return r.word }
func (r *Round) Status() Status { return r.status }
func (r *Round) Reason() LossReason { return r.reason }
func (r *Round) Lives() int { return r.lives }
func (r *Round) Budget() int { return r.budget }
func (r *Round) Errors() int { return r.budget - r.lives }
func (r *Round) Skipped() bool { return r.skipped }
func (r *Round) Over() bool { return r.status != InProgress }
func (r *Round) Elapsed() time.Duration { return r.now().Sub(r.started) }

// Found lists revealed letters in alphabetical order.
func (r *Round) Found() []rune {
	return sortedKeys(r.found)
}

// Missed lists wrong guesses in alphabetical order.
func (r *Round) Missed() []rune {
	return sortedKeys(r.missed)
}

func sortedKeys(m map[rune]bool) []rune {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
