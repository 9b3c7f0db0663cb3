package game

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/pkg/word"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// testWords always yields "chat".
func testWords() *word.Source {
	return word.FromWords([]string{"chat"})
}

func newTestConsole(lines ...string) (*console.Console, *console.Script, *bytes.Buffer) {
	script := console.NewScript(lines...)
	var out bytes.Buffer
	return console.New(script, &out), script, &out
}
