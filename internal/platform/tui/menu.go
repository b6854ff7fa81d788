package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13")).
			MarginBottom(1)

	menuPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	menuErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// MenuModel is the start menu: a single name prompt.
type MenuModel struct {
	input  textinput.Model
	errMsg string
}

// NewMenuModel creates the start menu with a focused name input.
func NewMenuModel() MenuModel {
	ti := textinput.New()
	ti.Placeholder = "player name"
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	return MenuModel{input: ti}
}

func (mm MenuModel) value() string { return mm.input.Value() }

func (mm MenuModel) focus() tea.Cmd { return textinput.Blink }

// reset clears the input for the next player.
func (mm MenuModel) reset() MenuModel {
	mm.input.SetValue("")
	mm.input.Focus()
	mm.errMsg = ""
	return mm
}

// prefill seeds the name input, e.g. from an SSH username.
func (mm MenuModel) prefill(name string) MenuModel {
	mm.input.SetValue(name)
	mm.input.CursorEnd()
	return mm
}

func (mm MenuModel) withError(msg string) MenuModel {
	mm.errMsg = msg
	return mm
}

func (mm MenuModel) update(msg tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	mm.input, cmd = mm.input.Update(msg)
	return mm, cmd
}

func (mm MenuModel) view(width, height int) string {
	lines := []string{
		menuTitleStyle.Render("B E A T F A L L"),
		menuPromptStyle.Render("Who's playing?"),
		mm.input.View(),
	}
	if mm.errMsg != "" {
		lines = append(lines, menuErrStyle.Render(mm.errMsg))
	}
	lines = append(lines, menuHelpStyle.Render("enter: play · tab: scores · esc: quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
