// Package console handles line-oriented player I/O and the text rendering of
// rounds, HUD and shop.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when the player aborts a prompt.
var ErrCancelled = errors.New("input cancelled")

// Input provides player answers. ReadSecret must not echo what is typed.
type Input interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// Console pairs an Input with styled output.
type Console struct {
	in    Input
	out   io.Writer
	width int
}

func New(in Input, out io.Writer) *Console {
	return &Console{in: in, out: out, width: 72}
}

func (c *Console) Out() io.Writer {
	return c.out
}

// Ask reads one trimmed line.
func (c *Console) Ask(prompt string) (string, error) {
	line, err := c.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskSecret reads one trimmed line without echo.
func (c *Console) AskSecret(prompt string) (string, error) {
	line, err := c.in.ReadSecret(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Answers starting with y or o count as yes.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.Ask(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "o"), nil
}

func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Title(s string) {
	c.Println(titleStyle.Render(s))
}

func (c *Console) Info(s string) {
	c.Println(infoStyle.Render(s))
}

func (c *Console) Success(s string) {
	c.Println(successStyle.Render(s))
}

func (c *Console) Warn(s string) {
	c.Println(warnStyle.Render("➡️  " + s))
}

// Alert prints s in the error color without the error marker.
func (c *Console) Alert(s string) {
	c.Println(errorStyle.Render(s))
}

func (c *Console) Error(err error) {
	c.Println(errorStyle.Render("✖ " + err.Error()))
}

// Wrapped prints narrative text wrapped to the console width.
func (c *Console) Wrapped(s string) {
	c.Println(Wrap(s, c.width))
}
