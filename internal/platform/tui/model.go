package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// footerHeight is the number of rows reserved below the game for key help.
const footerHeight = 1

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(1, 2)
)

// Resizer is implemented by games that can follow a terminal resize without
// a Reset.
type Resizer interface {
	Resize(w, h int)
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for round events. Logs are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	width      int
	rounds     int
	quitting   bool
	back       bool // Left with the back key rather than quit
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; a row is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	width := cfg.ScreenW
	cfg.ScreenH = core.Max(cfg.ScreenH-footerHeight, 0)

	h := help.New()
	h.Width = width

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
		logger:     log.New(io.Discard),
		width:      width,
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset here rather than in Init so the first View has a game to draw
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game loaded", "mode", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
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
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		m.back = true
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The game is frozen while the full help is open
	if m.help.ShowAll {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransitions(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransitions records round starts and ends.
func (m *Model) logTransitions(result core.StepResult) {
	if result.Started {
		m.rounds++
		msg := "game started"
		if m.rounds > 1 {
			msg = "game restarted"
		}
		m.logger.Info(msg, "mode", m.game.ID(), "round", m.rounds)
	}
	if result.Ended {
		m.logger.Info("game over",
			"mode", m.game.ID(),
			"round", m.rounds,
			"score", result.State.Score,
			"lines", result.State.Lines,
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.help.ShowAll {
		box := helpBoxStyle.Render(m.help.View(m.keys.Keys()))
		return lipgloss.Place(m.width, m.config.ScreenH+footerHeight, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys.Keys()))
}

// Result describes how a game session ended.
type Result struct {
	State core.GameState
	Back  bool // User asked to return to the menu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) (Result, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.gameState, Back: m.back}, nil
}
