// Package tetris implements the falling-block puzzle: the board simulation
// (Sim) and its platform adapter (Game) that maps frames and input onto it.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects how the grid is sized.
type Mode string

const (
	ModeClassic Mode = "classic" // Grid derived from the configured play surface
	ModeFit     Mode = "fit"     // Grid sized to the terminal
)

// Game adapts a Sim to the platform: it turns input frames into commands,
// drives gravity from the frame clock and renders the well.
type Game struct {
	mode Mode
	cfg  config.TetrisConfig
	rng  *rand.Rand
	sim  *Sim
	tick uint64

	// Gravity cadence, in frames
	frames       int
	gravityEvery int

	// Screen dimensions
	screenW int
	screenH int

	scoreLabel string
	paused     bool
	tooSmall   bool

	// Per-step transitions reported through StepResult
	started bool
	ended   bool
}

// configured is the configuration new rounds are built from. SetConfig writes it.
var configured = config.DefaultTetrisConfig()

// SetConfig sets the configuration used by games on their next Reset.
func SetConfig(cfg config.TetrisConfig) {
	configured = cfg
}

// New creates a classic game with the grid taken from the configured surface.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewFit creates a game whose grid fills the terminal.
func NewFit() *Game {
	return &Game{
		mode: ModeFit,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fit", func() registry.Game {
		return NewFit()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFit {
		return "tetris_fit"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFit {
		return "Blockfall (Fit)"
	}
	return "Blockfall"
}

// Sim exposes the underlying simulation for read access.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Reset builds a fresh, not yet started simulation for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = configured
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.frames = 0
	g.gravityEvery = gravityFrames(g.cfg.Gameplay.GravityMs, cfg.TickRate)

	g.sim = g.newSim()
	g.scoreLabel = scoreLabel(0)

	g.checkScreenSize()
}

func (g *Game) newSim() *Sim {
	cols, rows := g.gridSize()
	return NewSim(cols, rows, g.rng, WithHooks(Hooks{
		ScoreChanged:  g.onScore,
		StatusChanged: g.onStatus,
	}))
}

// Resize adapts to a new terminal size. A round in progress keeps its grid
// and is suspended while the window is too small. A finished board stays on
// screen while it fits; otherwise the grid is re-derived for the next round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()

	switch g.sim.Status() {
	case StatusNotStarted:
		g.refit()
	case StatusGameOver:
		if g.tooSmall {
			g.refit()
		}
	}
}

// refit rebuilds the idle simulation when the grid for the current screen
// differs from the one in use.
func (g *Game) refit() {
	if cols, rows := g.gridSize(); cols != g.sim.Cols() || rows != g.sim.Rows() {
		g.sim = g.newSim()
		g.scoreLabel = scoreLabel(0)
	}
	g.checkScreenSize()
}

// gravityFrames converts the gravity period to a whole number of frames.
func gravityFrames(gravityMs, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	n := (gravityMs*tickRate + 500) / 1000
	return core.Max(n, 1)
}

// gridSize returns the grid dimensions for the current mode and screen.
func (g *Game) gridSize() (cols, rows int) {
	if g.mode == ModeClassic {
		return g.cfg.Board.GridSize()
	}
	cols = (g.screenW - 2 - panelGap - panelWidth) / cellWidth
	rows = g.screenH - 2
	cols = core.Clamp(cols, config.MinCols, g.cfg.Fit.MaxCols)
	rows = core.Clamp(rows, config.MinRows, g.cfg.Fit.MaxRows)
	return cols, rows
}

// checkScreenSize checks if the screen is large enough for the well and HUD.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.totalW || g.screenH < l.boardH
}

func (g *Game) onScore(score int) {
	g.scoreLabel = scoreLabel(score)
}

func (g *Game) onStatus(st Status) {
	switch st {
	case StatusRunning:
		g.started = true
	case StatusGameOver:
		g.ended = true
	}
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.started = false
	g.ended = false

	// Handle window size check
	if g.tooSmall {
		return g.result()
	}

	switch g.sim.Status() {
	case StatusNotStarted:
		if in.Has(core.ActionConfirm) {
			g.start()
		}

	case StatusGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.start()
		}

	case StatusRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}

		g.applyCommands(in)

		g.frames++
		if g.frames >= g.gravityEvery {
			g.frames = 0
			g.sim.Tick()
		}
	}

	return g.result()
}

// start begins a round. Resetting the frame counter leaves exactly one
// gravity cadence running, whatever state the previous round was in.
func (g *Game) start() {
	g.frames = 0
	g.paused = false
	if g.sim.Status() == StatusGameOver {
		g.refit()
	}
	g.sim.StartGame()
}

// applyCommands forwards this frame's player commands to the simulation.
func (g *Game) applyCommands(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.sim.MoveHorizontal(-1)
	}
	if in.Has(core.ActionRight) {
		g.sim.MoveHorizontal(+1)
	}
	if in.Has(core.ActionUp) {
		g.sim.Rotate()
	}
	if in.Has(core.ActionDown) {
		g.sim.SoftDrop()
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Started: g.started,
		Ended:   g.ended,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lines:    g.sim.LinesCleared(),
		Started:  g.sim.Status() != StatusNotStarted,
		GameOver: g.sim.Status() == StatusGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
