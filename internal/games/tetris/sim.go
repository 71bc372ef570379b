package tetris

// LineBonus is the score awarded for each cleared row.
const LineBonus = 100

// Status is the lifecycle state of a simulation.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RandSource supplies the random draws for piece and color selection.
// *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int // Anchor: grid position of the shape's top-left cell
	Color int // 1-based Palette index
}

// Hooks are notification points for the presentation layer.
// Nil hooks are skipped.
type Hooks struct {
	ScoreChanged  func(score int)
	StatusChanged func(status Status)
}

// SimOption configures a Sim.
type SimOption func(*Sim)

// WithHooks installs notification hooks.
func WithHooks(h Hooks) SimOption {
	return func(s *Sim) {
		s.hooks = h
	}
}

// Sim is the board simulation: the grid, the active piece, the score and
// the game status. It owns no timer; the caller drives gravity through Tick.
type Sim struct {
	cols, rows int
	rng        RandSource
	hooks      Hooks

	grid   Grid
	piece  *Piece
	score  int
	lines  int
	status Status
}

// NewSim creates a simulation for a cols x rows grid. The game does not
// start until StartGame is called.
func NewSim(cols, rows int, rng RandSource, opts ...SimOption) *Sim {
	cols, rows = max(cols, 0), max(rows, 0)
	s := &Sim{
		cols:   cols,
		rows:   rows,
		rng:    rng,
		grid:   NewGrid(cols, rows),
		status: StatusNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartGame begins a fresh round: empty grid, zero score, Running, and a
// newly spawned piece. Valid from any status; nothing carries over.
func (s *Sim) StartGame() {
	s.grid = NewGrid(s.cols, s.rows)
	s.piece = nil
	s.score = 0
	s.lines = 0
	s.setStatus(StatusRunning)
	s.notifyScore()
	s.spawn()
}

// Stop ends the round.
func (s *Sim) Stop() {
	s.piece = nil
	s.setStatus(StatusGameOver)
}

// MoveHorizontal shifts the piece one column in the sign of dir.
// The shift is rejected if the new position collides.
func (s *Sim) MoveHorizontal(dir int) {
	if !s.running() {
		return
	}
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return
	}
	if !s.grid.Collides(s.piece.Shape, s.piece.X+dir, s.piece.Y) {
		s.piece.X += dir
	}
}

// Rotate turns the piece a quarter in place. If the turned shape collides
// at the current anchor the piece is left unchanged; no offsets are tried.
func (s *Sim) Rotate() {
	if !s.running() {
		return
	}
	rotated := s.piece.Shape.Rotated()
	if !s.grid.Collides(rotated, s.piece.X, s.piece.Y) {
		s.piece.Shape = rotated
	}
}

// SoftDrop advances the piece one row, out of cadence with gravity.
func (s *Sim) SoftDrop() {
	s.advance()
}

// Tick is the gravity step.
func (s *Sim) Tick() {
	s.advance()
}

// advance moves the piece down one row, or locks it where it is.
func (s *Sim) advance() {
	if !s.running() {
		return
	}
	p := s.piece
	if !s.grid.Collides(p.Shape, p.X, p.Y+1) {
		p.Y++
		return
	}

	s.grid.Merge(p.Shape, p.X, p.Y, p.Color)
	if n := s.grid.ClearLines(); n > 0 {
		s.lines += n
		s.score += n * LineBonus
	}

	if p.Y == 0 {
		// Locked without ever descending.
		s.Stop()
		return
	}
	s.notifyScore()
	s.spawn()
}

// spawn draws a new piece and places it centered on row 0. If it does not
// fit, the round is over and the grid is left untouched.
func (s *Sim) spawn() {
	kind := Kind(s.rng.Intn(KindCount))
	color := s.rng.Intn(PaletteSize) + 1
	shape := Template(kind)

	p := &Piece{
		Kind:  kind,
		Shape: shape,
		X:     (s.cols - shape.Width()) / 2,
		Y:     0,
		Color: color,
	}
	if s.grid.Collides(p.Shape, p.X, p.Y) {
		s.Stop()
		return
	}
	s.piece = p
}

func (s *Sim) running() bool {
	return s.status == StatusRunning && s.piece != nil
}

func (s *Sim) setStatus(st Status) {
	if s.status == st {
		return
	}
	s.status = st
	if s.hooks.StatusChanged != nil {
		s.hooks.StatusChanged(st)
	}
}

func (s *Sim) notifyScore() {
	if s.hooks.ScoreChanged != nil {
		s.hooks.ScoreChanged(s.score)
	}
}

// Cols returns the grid width.
func (s *Sim) Cols() int { return s.cols }

// Rows returns the grid height.
func (s *Sim) Rows() int { return s.rows }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// LinesCleared returns the number of rows cleared this round.
func (s *Sim) LinesCleared() int { return s.lines }

// Status returns the lifecycle state.
func (s *Sim) Status() Status { return s.status }

// Grid returns a copy of the locked cells.
func (s *Sim) Grid() Grid {
	return s.grid.Clone()
}

// Cell returns the locked cell value at (col, row), or 0 outside the grid.
func (s *Sim) Cell(col, row int) int {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0
	}
	return s.grid[row][col]
}

// Piece returns a copy of the active piece. ok is false when there is none.
func (s *Sim) Piece() (p Piece, ok bool) {
	if s.piece == nil {
		return Piece{}, false
	}
	p = *s.piece
	p.Shape = s.piece.Shape.Clone()
	return p, true
}

// PieceCells returns the grid coordinates (col, row) covered by the active piece.
func (s *Sim) PieceCells() [][2]int {
	if s.piece == nil {
		return nil
	}
	offsets := s.piece.Shape.Cells()
	cells := make([][2]int, len(offsets))
	for i, o := range offsets {
		cells[i] = [2]int{s.piece.X + o[1], s.piece.Y + o[0]}
	}
	return cells
}
