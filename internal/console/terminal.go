package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Terminal reads from a file, usually os.Stdin. Secrets are typed into a
// password field when the file is a terminal.
type Terminal struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

var _ Input = (*Terminal)(nil)

func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// IsTTY reports whether input comes from an interactive terminal.
func (t *Terminal) IsTTY() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(t.out, promptStyle.Render(prompt))
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) ReadSecret(prompt string) (string, error) {
	if !t.IsTTY() {
		return t.ReadLine(prompt)
	}

	final, err := tea.NewProgram(newSecretModel(prompt), tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		// raw terminal read without the password field
		_, _ = fmt.Fprint(t.out, promptStyle.Render(prompt))
		b, rerr := term.ReadPassword(int(t.in.Fd()))
		_, _ = fmt.Fprintln(t.out)
		if rerr != nil {
			return "", fmt.Errorf("failed to read secret: %w", rerr)
		}
		return string(b), nil
	}

	m := final.(secretModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}
