package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/hangman/pkg/item"
	"github.com/jwebster45206/hangman/pkg/round"
	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/story"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	gallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

var gallows = []string{
	`
     _______
    |/      |
    |
    |
    |
    |
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |
    |
    |
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |       |
    |       |
    |
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |      /|
    |       |
    |
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |      /|\
    |       |
    |
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |      /|\
    |       |
    |      /
    |___
`,
	`
     _______
    |/      |
    |      ( )
    |      /|\
    |       |
    |      / \
    |___   HANGED!
`,
}

// Stages is the number of drawings after the empty gallows.
var Stages = len(gallows) - 1

// Stage maps errors out of budget onto a drawing, so the figure is complete
// exactly when the budget is spent.
func Stage(errors, budget int) int {
	if errors <= 0 || budget <= 0 {
		return 0
	}
	if errors >= budget {
		return Stages
	}
	return min(Stages, (errors*Stages+budget-1)/budget)
}

func Gallows(errors, budget int) string {
	return gallows[Stage(errors, budget)]
}

// Wrap word-wraps s at width columns.
func Wrap(s string, width int) string {
	return wordwrap.String(s, width)
}

func letters(rs []rune) string {
	return strings.Join(lo.Map(rs, func(r rune, _ int) string { return string(r) }), ", ")
}

// RenderRound draws the gallows, the masked word and the guess summary.
func RenderRound(r *round.Round) string {
	var b strings.Builder
	b.WriteString(gallowsStyle.Render(Gallows(r.Errors(), r.Budget())))
	b.WriteString("\n")
	b.WriteString("Word:    " + wordStyle.Render(r.Masked()) + "\n")
	if missed := r.Missed(); len(missed) > 0 {
		b.WriteString("Missed:  " + errorStyle.Render(letters(missed)) + "\n")
	}
	if found := r.Found(); len(found) > 0 {
		b.WriteString("Found:   " + infoStyle.Render(letters(found)) + "\n")
	}
	line := fmt.Sprintf("Errors:  %d/%d", r.Errors(), r.Budget())
	if r.HasTimeLimit() {
		line += fmt.Sprintf(" | Time left: %ds", int(r.Remaining().Seconds()))
	}
	b.WriteString(line + "\n")
	return b.String()
}

// RenderHUD is the one-line status of a story save.
func RenderHUD(gs *state.GameState) string {
	inv := lo.Map(item.Kinds, func(k item.Kind, _ int) string {
		return fmt.Sprintf("%s:%d", k, gs.Count(k))
	})
	slots := make([]string, 0, state.HotbarSlots)
	for i, k := range gs.Hotbar {
		name := "-"
		if k != item.None {
			name = k.String()
		}
		slots = append(slots, fmt.Sprintf("[%d:%s]", i+1, name))
	}
	return mutedStyle.Render("HUD → ") + fmt.Sprintf("Lives:%d  Points:%d  Inv: %s  Hotbar: %s",
		gs.Lives, gs.Points, strings.Join(inv, " "), strings.Join(slots, " "))
}

// RenderShop lists the price table.
func RenderShop(points int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("🛒 Shop. Points: %d", points)) + "\n")
	for _, k := range item.Kinds {
		b.WriteString(fmt.Sprintf("  (%s) %-14s %3d\n", k.ShopKey(), k.Label(), k.Price()))
	}
	return b.String()
}

// RenderLevel is the banner shown before a level.
func RenderLevel(l story.Level, total, width int) string {
	maxLen := "∞"
	if l.MaxLen > 0 {
		maxLen = fmt.Sprint(l.MaxLen)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("=== Level %d/%d: %s (%s) ===", l.Index, total, l.Name, l.Tier())) + "\n")
	b.WriteString(Wrap(l.Flavor, width) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Goal: %d-%s letters | Errors: %d | Time: %ds",
		l.MinLen, maxLen, l.Lives, int(l.TimeLimit.Seconds()))) + "\n")
	return b.String()
}
