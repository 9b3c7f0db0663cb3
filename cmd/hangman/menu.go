package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/hangman/internal/console"
	"github.com/jwebster45206/hangman/internal/game"
)

type choice int

const (
	choiceNone choice = iota
	choiceClassic
	choiceTwoPlayer
	choiceStory
	choiceQuit
)

var menuItems = []struct {
	label  string
	choice choice
}{
	{"Versus the computer (random word)", choiceClassic},
	{"Two players (player 1 types the word)", choiceTwoPlayer},
	{"Story mode (levels, shop, save)", choiceStory},
	{"Quit", choiceQuit},
}

var (
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	menuSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// parseChoice maps a typed answer to a menu entry.
func parseChoice(s string) (choice, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1":
		return choiceClassic, true
	case "2":
		return choiceTwoPlayer, true
	case "3":
		return choiceStory, true
	case "q", "quit", "4":
		return choiceQuit, true
	default:
		return choiceNone, false
	}
}

// menuModel is the mode selection shown on interactive terminals.
type menuModel struct {
	cursor   int
	selected choice
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.selected = choiceQuit
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		m.selected = menuItems[m.cursor].choice
		return m, tea.Quit
	default:
		if c, ok := parseChoice(keyMsg.String()); ok {
			m.selected = c
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.selected != choiceNone {
		return ""
	}

	var content strings.Builder
	content.WriteString(menuTitleStyle.Render("===== HANGMAN ====="))
	content.WriteString("\n\n")
	for i, it := range menuItems {
		label := fmt.Sprintf("%d) %s", i+1, it.label)
		if i == m.cursor {
			content.WriteString(menuSelectedItemStyle.Render("▶ " + label))
		} else {
			content.WriteString(menuItemStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(menuHelpStyle.Render("Use ↑/↓ and Enter, or press 1-3, q to quit"))

	return menuStyle.Render(content.String()) + "\n"
}

// chooser asks the player for the next mode.
type chooser func() (choice, error)

func teaChooser(in *os.File, out *os.File) chooser {
	return func() (choice, error) {
		final, err := tea.NewProgram(menuModel{}, tea.WithInput(in), tea.WithOutput(out)).Run()
		if err != nil {
			return choiceNone, fmt.Errorf("failed to run menu: %w", err)
		}
		return final.(menuModel).selected, nil
	}
}

// lineChooser is the numbered prompt used when input is not a terminal.
func lineChooser(c *console.Console) chooser {
	return func() (choice, error) {
		c.Title("===== HANGMAN =====")
		for i, it := range menuItems {
			c.Printf("%d) %s\n", i+1, it.label)
		}
		for {
			answer, err := c.Ask("Choose a mode [1/2/3, q to quit]: ")
			if err != nil {
				return choiceNone, err
			}
			if ch, ok := parseChoice(answer); ok {
				return ch, nil
			}
			c.Warn("Answer 1, 2 or 3.")
		}
	}
}

type app struct {
	console *console.Console
	choose  chooser
	classic *game.Classic
	story   *game.Story
}

// run shows the menu until the player quits or input ends.
func (a *app) run(ctx context.Context) error {
	for {
		ch, err := a.choose()
		if err != nil {
			return err
		}

		switch ch {
		case choiceClassic:
			err = a.classic.PlayComputer()
		case choiceTwoPlayer:
			err = a.classic.PlayTwoPlayer()
		case choiceStory:
			err = a.story.Run(ctx)
		default:
			return nil
		}
		if errors.Is(err, console.ErrCancelled) {
			a.console.Warn("Cancelled.")
		} else if err != nil {
			return err
		}

		again, err := a.console.Confirm("Back to the menu?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
