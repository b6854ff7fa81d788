package tui

import tea "github.com/charmbracelet/bubbletea"

// Action represents a playfield action derived from input.
type Action int

const (
	ActionNone Action = iota
	ActionHit
	ActionNextTarget
	ActionPrevTarget
	ActionRestart
	ActionBack
	ActionQuit
)

// MapKey translates a key message into a playfield action.
func MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "q", "ctrl+c":
		return ActionQuit
	case " ", "enter":
		return ActionHit
	case "right", "tab", "l":
		return ActionNextTarget
	case "left", "shift+tab", "h":
		return ActionPrevTarget
	case "r":
		return ActionRestart
	case "esc", "b":
		return ActionBack
	}

	return ActionNone
}
