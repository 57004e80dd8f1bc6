package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// helpHeight is the number of terminal rows reserved for the help footer.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
// Each TickMsg steps the game exactly once. While the run is alive every
// tick schedules the next one; the tick that ends the run does not, which
// freezes the simulation until the player acknowledges the game-over
// message. Acknowledging discards the run and starts a new one.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	seedFn     func() int64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all log output.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		seedFn:     func() int64 { return time.Now().UnixNano() },
	}
	if m.config.Seed == 0 {
		m.config.Seed = m.seedFn()
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the first run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		return m.restart()

	case key.Matches(msg, m.keys.Jump):
		m.inputFrame.Set(core.ActionJump)
	}

	return m, nil
}

// handleResize processes window resize events. The game draws in logical
// units, so a resize only changes the drawing surface, never the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		if e.Kind == core.EventCollect {
			m.logger.Debug("collectible picked up", "score", e.Score)
		}
	}

	if m.gameState.GameOver {
		m.keys.setGameOver(true)
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"ticks", m.gameState.Ticks,
		)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart discards the finished run and starts a fresh one with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		return m, nil
	}

	m.config.Seed = m.seedFn()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.keys.setGameOver(false)
	m.logger.Info("run restarted", "game", m.game.ID(), "seed", m.config.Seed)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
