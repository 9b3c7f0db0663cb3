package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// secretModel is a one-field bubbletea form with a masked text input.
type secretModel struct {
	prompt    string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newSecretModel(prompt string) secretModel {
	ti := textinput.New()
	ti.Placeholder = "secret word"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = promptStyle.Render(":: ")
	ti.Focus()

	return secretModel{
		prompt: prompt,
		input:  ti,
	}
}

func (m secretModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m secretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m secretModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt) + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(mutedStyle.Render("Enter to confirm, Esc to cancel"))
	return b.String()
}
