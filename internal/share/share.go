// Package share builds a spoiler-free summary of a finished round and puts it
// on the system clipboard.
package share

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/jwebster45206/hangman/pkg/round"
)

var ErrUnsupported = errors.New("clipboard not available")

// swapped in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Text summarizes r without revealing the word.
func Text(mode string, r *round.Round) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hangman (%s) ", mode)
	switch {
	case r.Skipped():
		b.WriteString("⏭️ skipped")
	case r.Status() == round.Won:
		b.WriteString("✅ solved")
	case r.Reason() == round.LossTimeout:
		b.WriteString("⏰ out of time")
	default:
		b.WriteString("💀 hanged")
	}
	fmt.Fprintf(&b, " | %d letters | %d/%d errors\n", len(r.Word()), r.Errors(), r.Budget())

	// one square per budgeted life: red for spent, green for spared
	b.WriteString(strings.Repeat("🟥", r.Errors()))
	b.WriteString(strings.Repeat("🟩", r.Lives()))
	return b.String()
}

// Copy writes text to the clipboard.
func Copy(text string) error {
	if unsupported() {
		return ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
