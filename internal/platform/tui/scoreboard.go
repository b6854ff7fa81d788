package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beatfall/internal/game"
	"github.com/vovakirdan/beatfall/internal/storage"
)

const maxBoardRows = 100 // Max scores to load

// BoardKeyMap defines the key bindings shown on the leaderboard screen.
type BoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Replay key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Replay, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Replay, k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "next level"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the leaderboard screen shown between levels and from the
// start menu.
type BoardModel struct {
	table   table.Model
	help    help.Model
	keys    BoardKeyMap
	loadErr error
	width   int
	height  int
}

// NewBoardModel creates the leaderboard screen with an empty table.
func NewBoardModel() BoardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = false

	return BoardModel{table: t, help: h, keys: DefaultBoardKeyMap()}
}

// reload refreshes the table from storage. A nil store leaves the board
// empty; the session still plays without persistence.
func (b BoardModel) reload(store *storage.Store) BoardModel {
	b.loadErr = nil
	if store == nil {
		b.table.SetRows(nil)
		return b
	}

	scores, err := store.TopScores(maxBoardRows)
	if err != nil {
		b.loadErr = err
		b.table.SetRows(nil)
		return b
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.PlayerName,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
	return b
}

func (b BoardModel) resize(width, height int) BoardModel {
	b.width = width
	b.height = height
	if h := height - 10; h > 3 {
		b.table.SetHeight(h)
	}
	return b
}

func (b BoardModel) update(msg tea.Msg) (BoardModel, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b BoardModel) view(width, height int, session *game.Session) string {
	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("13")).
		Render("HIGH SCORES")

	var status string
	switch {
	case b.loadErr != nil:
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render("could not load scores: " + b.loadErr.Error())
	case session.Active():
		status = fmt.Sprintf("%s · level %d cleared · score %d",
			session.PlayerName(), session.Level(), session.Score())
	default:
		status = "no game in progress"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		status,
		b.table.View(),
		b.help.View(b.keys),
	)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
