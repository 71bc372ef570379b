package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting     GameStateType = "waiting"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// PieceSnapshot describes the falling piece.
type PieceSnapshot struct {
	Kind  string
	Shape string // Rows of '#' and '.', joined by '/'
	X, Y  int
	Color int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Mode  string // "classic" or "fit"
	Cols  int
	Rows  int
	Score int
	Lines int
	Grid  Grid
	Piece *PieceSnapshot // nil when no piece is falling
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.sim.Status() == StatusNotStarted:
		state = StateWaiting
	case g.sim.Status() == StatusGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Cols:  g.sim.Cols(),
		Rows:  g.sim.Rows(),
		Score: g.sim.Score(),
		Lines: g.sim.LinesCleared(),
		Grid:  g.sim.Grid(),
		State: state,
	}
	if p, ok := g.sim.Piece(); ok {
		snap.Piece = &PieceSnapshot{
			Kind:  p.Kind.String(),
			Shape: p.Shape.String(),
			X:     p.X,
			Y:     p.Y,
			Color: p.Color,
		}
	}
	return snap
}
