package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/game"
	"github.com/vovakirdan/beatfall/internal/storage"
)

// RuntimeConfig carries the per-session runtime settings.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// screen identifies which view the model is currently showing.
type screen int

const (
	screenMenu screen = iota
	screenPlaying
	screenLeaderboard
)

// Flash durations in simulation ticks.
const (
	pulseFlashTicks = 3
	hitFlashTicks   = 8
)

// uiState is the mutable view state driven synchronously by core
// notifications. It is shared by pointer so the callbacks registered at
// construction time keep working across Bubble Tea's model copies.
type uiState struct {
	screen  screen
	score   int
	flash   map[int]int // objective ID -> remaining flash ticks
	lastErr string
}

// Update implements game.ScoreDisplay.
func (u *uiState) Update(score int) { u.score = score }

// ShowLeaderboard implements game.UIControl.
func (u *uiState) ShowLeaderboard() { u.screen = screenLeaderboard }

// ShowStartMenu implements game.UIControl.
func (u *uiState) ShowStartMenu() { u.screen = screenMenu }

func (u *uiState) decayFlashes() {
	for id, ticks := range u.flash {
		if ticks <= 1 {
			delete(u.flash, id)
		} else {
			u.flash[id] = ticks - 1
		}
	}
}

// Model is the Bubble Tea model for a beatfall session.
type Model struct {
	cfg     RuntimeConfig
	gameCfg config.GameConfig
	store   *storage.Store
	logger  *log.Logger

	hub     *game.Hub
	session *game.Session
	clock   *game.BeatClock
	gen     *game.Generator
	ui      *uiState

	menu  MenuModel
	board BoardModel

	selected   int
	lastScreen screen
	width      int
	height     int
	quitting   bool
}

// NewModel wires a fresh game core to the terminal views. The feedback
// channel may be nil (silent session); the store may be nil (no leaderboard
// persistence).
func NewModel(gameCfg config.GameConfig, store *storage.Store,
	fb game.FeedbackChannel, cfg RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}

	hub := game.NewHub()
	ui := &uiState{screen: screenMenu, flash: make(map[int]int)}

	var sink game.LeaderboardSink
	if store != nil {
		sink = store
	}

	session := game.NewSession(gameCfg, hub, game.Collaborators{
		Display:     ui,
		Leaderboard: sink,
		UI:          ui,
	}, logger)
	clock := game.NewBeatClock(gameCfg.Beat, hub, fb, logger)
	gen := game.NewGenerator(gameCfg, clock, session, hub, fb, cfg.Seed, logger)
	session.AttachSpawner(gen)

	hub.OnObjectivePulse(func(id int) { ui.flash[id] = pulseFlashTicks })
	hub.OnObjectiveHit(func(id int) { ui.flash[id] = hitFlashTicks })
	hub.OnGenerationError(func(msg string) { ui.lastErr = msg })
	hub.OnLevelGenerated(func(int, int) { ui.lastErr = "" })

	return Model{
		cfg:     cfg,
		gameCfg: gameCfg,
		store:   store,
		logger:  logger,
		hub:     hub,
		session: session,
		clock:   clock,
		gen:     gen,
		ui:      ui,
		menu:    NewMenuModel(),
		board:   NewBoardModel(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the tick loop and the name input cursor.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.TickRate), m.menu.focus())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board = m.board.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes keyboard input to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.ui.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenPlaying:
		return m.handlePlayKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.ui.screen = screenLeaderboard
		return m.syncScreen(), nil
	case "enter":
		if !m.session.SetPlayerName(m.menu.value()) {
			m.menu = m.menu.withError("enter a name to play")
			return m, nil
		}
		if m.session.StartLevel() {
			m.clock.Start()
			m.selected = 0
			m.ui.screen = screenPlaying
		}
		return m.syncScreen(), nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.update(msg)
	return m, cmd
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionHit:
		m = m.hitSelected()
	case ActionNextTarget:
		m.selected = m.cycleTarget(1)
	case ActionPrevTarget:
		m.selected = m.cycleTarget(-1)
	case ActionRestart:
		m.session.RestartLevel()
		m.selected = 0
	case ActionBack:
		m = m.backToMenu()
	}

	return m.syncScreen(), nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "n", "enter":
		if m.session.Active() {
			m.ui.screen = screenPlaying
			m.selected = 0
			m.session.AdvanceToNextLevel()
		}
		return m.syncScreen(), nil
	case "r":
		if m.session.Active() {
			m.ui.screen = screenPlaying
			m.selected = 0
			m.session.RestartLevel()
		}
		return m.syncScreen(), nil
	case "esc", "b":
		m = m.backToMenu()
		return m.syncScreen(), nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.update(msg)
	return m, cmd
}

// backToMenu tears the running level down and returns to the start menu.
func (m Model) backToMenu() Model {
	m.clock.Stop()
	m.gen.Clear()
	m.session.ResetGame()
	m.menu = m.menu.reset()
	m.selected = 0
	return m
}

// hitSelected attempts to hit the currently selected target. The target
// itself decides whether the hit counts.
func (m Model) hitSelected() Model {
	objs := m.gen.Objectives()
	if len(objs) == 0 {
		return m
	}
	if m.selected >= len(objs) {
		m.selected = len(objs) - 1
	}
	objs[m.selected].Hit()
	return m
}

// cycleTarget returns the index of the next active target in the given
// direction, or the current index when no active target exists.
func (m Model) cycleTarget(dir int) int {
	objs := m.gen.Objectives()
	n := len(objs)
	if n == 0 {
		return 0
	}

	idx := m.selected
	for range n {
		idx = ((idx+dir)%n + n) % n
		if objs[idx].State() == game.StateActive {
			return idx
		}
	}
	return m.selected
}

// handleTick advances the simulation by one frame while a level is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ui.screen == screenPlaying && m.session.Active() {
		dt := 1.0 / float64(m.cfg.TickRate)
		m.clock.Tick(dt)
		m.gen.Tick(dt)
		m.ui.decayFlashes()

		// The generator prunes destroyed targets; keep the cursor in range.
		if objs := m.gen.Objectives(); len(objs) > 0 && m.selected >= len(objs) {
			m.selected = len(objs) - 1
		}
	}

	return m.syncScreen(), tickCmd(m.cfg.TickRate)
}

// syncScreen reacts to screen changes driven by core notifications, e.g. a
// completed level switching the view to the leaderboard mid-tick.
func (m Model) syncScreen() Model {
	if m.ui.screen == screenLeaderboard && m.lastScreen != screenLeaderboard {
		m.board = m.board.reload(m.store)
	}
	m.lastScreen = m.ui.screen
	return m
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.ui.screen {
	case screenMenu:
		return m.menu.view(m.width, m.height)
	case screenLeaderboard:
		return m.board.view(m.width, m.height, m.session)
	default:
		return m.renderPlayfield()
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(gameCfg config.GameConfig, store *storage.Store,
	fb game.FeedbackChannel, cfg RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(gameCfg, store, fb, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
