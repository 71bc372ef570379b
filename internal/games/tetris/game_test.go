package tetris

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	res := g.Step(frame(core.ActionConfirm))
	if !res.Started {
		t.Fatal("Confirm should start the game")
	}
	return g
}

func pieceY(t *testing.T, g *Game) int {
	t.Helper()
	p, ok := g.Sim().Piece()
	if !ok {
		t.Fatal("expected an active piece")
	}
	return p.Y
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_fit"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestResetWaitsForStart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	snap := g.Snapshot()
	if snap.State != StateWaiting {
		t.Errorf("State = %s, want waiting", snap.State)
	}
	if snap.Piece != nil {
		t.Error("no piece should exist before start")
	}
	if snap.Cols != 10 || snap.Rows != 20 {
		t.Errorf("grid = %dx%d, want 10x20", snap.Cols, snap.Rows)
	}

	// Movement before start is ignored
	g.Step(frame(core.ActionLeft, core.ActionDown, core.ActionUp))
	if g.Sim().Status() != StatusNotStarted {
		t.Errorf("Status = %s, want not_started", g.Sim().Status())
	}
	if g.State().Started {
		t.Error("State().Started should be false before Confirm")
	}
}

func TestConfirmStartsGame(t *testing.T) {
	g := startedGame(t)

	st := g.State()
	if !st.Started || st.GameOver || st.Paused {
		t.Errorf("State = %+v, want started and running", st)
	}
	if g.scoreLabel != "Score: 0" {
		t.Errorf("scoreLabel = %q, want Score: 0", g.scoreLabel)
	}
	if pieceY(t, g) != 0 {
		t.Error("new piece should spawn in row 0")
	}
}

func TestGravityCadence(t *testing.T) {
	g := startedGame(t)

	// 500ms at 60fps is one row every 30 frames
	for range 29 {
		g.Step(core.NewInputFrame())
	}
	if y := pieceY(t, g); y != 0 {
		t.Fatalf("piece fell early: y = %d after 29 frames", y)
	}

	g.Step(core.NewInputFrame())
	if y := pieceY(t, g); y != 1 {
		t.Fatalf("y = %d after 30 frames, want 1", y)
	}

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if y := pieceY(t, g); y != 2 {
		t.Errorf("y = %d after 60 frames, want 2", y)
	}
}

func TestPauseSuspendsGravity(t *testing.T) {
	g := startedGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	// Commands are ignored while paused
	before, _ := g.Sim().Piece()
	for range 100 {
		g.Step(frame(core.ActionLeft, core.ActionDown))
	}
	after, _ := g.Sim().Piece()
	if before.X != after.X || before.Y != after.Y {
		t.Errorf("piece moved while paused: %d,%d -> %d,%d", before.X, before.Y, after.X, after.Y)
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %s, want paused", g.Snapshot().State)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second Pause should resume")
	}
	for range 29 {
		g.Step(core.NewInputFrame())
	}
	if y := pieceY(t, g); y != 1 {
		t.Errorf("y = %d after resuming for 30 frames, want 1", y)
	}
}

func TestStepMovesPiece(t *testing.T) {
	g := startedGame(t)
	start, _ := g.Sim().Piece()

	g.Step(frame(core.ActionLeft))
	p, _ := g.Sim().Piece()
	if p.X != start.X-1 {
		t.Errorf("Left: X = %d, want %d", p.X, start.X-1)
	}

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	p, _ = g.Sim().Piece()
	if p.X != start.X+1 {
		t.Errorf("Right x2: X = %d, want %d", p.X, start.X+1)
	}

	g.Step(frame(core.ActionDown))
	p, _ = g.Sim().Piece()
	if p.Y != 1 {
		t.Errorf("Down: Y = %d, want 1", p.Y)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := startedGame(t)

	// Pieces stack in the middle columns until the spawn row is blocked
	ends := 0
	for i := 0; i < 10000 && !g.State().GameOver; i++ {
		if g.Step(frame(core.ActionDown)).Ended {
			ends++
		}
	}
	if !g.State().GameOver {
		t.Fatal("game should end once the stack reaches the top")
	}
	if ends != 1 {
		t.Errorf("Ended reported %d times, want 1", ends)
	}
	if g.Snapshot().Piece != nil {
		t.Error("no piece should remain after game over")
	}

	// Movement does nothing once the game is over
	grid := g.Sim().Grid()
	g.Step(frame(core.ActionLeft, core.ActionDown, core.ActionUp))
	if !reflect.DeepEqual(grid, g.Sim().Grid()) {
		t.Error("grid changed after game over")
	}

	res := g.Step(frame(core.ActionRestart))
	if !res.Started {
		t.Error("Restart should report a new start")
	}
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("State after restart = %+v", res.State)
	}
	for _, row := range g.Sim().Grid() {
		for _, v := range row {
			if v != 0 {
				t.Fatal("grid should be empty after restart")
			}
		}
	}
	if y := pieceY(t, g); y != 0 {
		t.Errorf("restart spawned piece at row %d", y)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.InputFrame {
		in := core.NewInputFrame()
		if i == 0 || i%400 == 0 {
			in.Set(core.ActionConfirm)
		}
		if i%7 == 0 {
			in.Set(core.ActionLeft)
		}
		if i%11 == 0 {
			in.Set(core.ActionRight)
		}
		if i%13 == 0 {
			in.Set(core.ActionUp)
		}
		if i%3 == 0 {
			in.Set(core.ActionDown)
		}
		return in
	}

	run := func() Snapshot {
		cfg := testConfig()
		cfg.Seed = 99
		g := New()
		g.Reset(cfg)
		for i := range 3000 {
			g.Step(script(i))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged:\n%+v\nvs\n%+v", a, b)
	}
	if a.Tick != 3000 {
		t.Errorf("Tick = %d, want 3000", a.Tick)
	}
}

func TestGravityFrames(t *testing.T) {
	tests := []struct {
		gravityMs int
		tickRate  int
		want      int
	}{
		{500, 60, 30},
		{500, 0, 30}, // falls back to the default tick rate
		{1000, 30, 30},
		{250, 60, 15},
		{10, 60, 1},
		{1, 60, 1},
	}

	for _, tt := range tests {
		if got := gravityFrames(tt.gravityMs, tt.tickRate); got != tt.want {
			t.Errorf("gravityFrames(%d, %d) = %d, want %d", tt.gravityMs, tt.tickRate, got, tt.want)
		}
	}
}

func TestFitGridSize(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		cols     int
		rows     int
		tooSmall bool
	}{
		{"exact", 60, 20, 20, 18, false},
		{"clamped to max", 200, 100, 20, 30, false},
		{"narrow", 40, 24, 10, 22, false},
		{"tiny", 20, 6, 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.ScreenW, cfg.ScreenH = tt.w, tt.h

			g := NewFit()
			g.Reset(cfg)

			if g.Sim().Cols() != tt.cols || g.Sim().Rows() != tt.rows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Sim().Cols(), g.Sim().Rows(), tt.cols, tt.rows)
			}
			if g.tooSmall != tt.tooSmall {
				t.Errorf("tooSmall = %v, want %v", g.tooSmall, tt.tooSmall)
			}
		})
	}
}

func TestTooSmallIgnoresInput(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 10

	g := New()
	g.Reset(cfg)

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, want paused_small_window", g.Snapshot().State)
	}
	g.Step(frame(core.ActionConfirm))
	if g.Sim().Status() != StatusNotStarted {
		t.Error("game should not start in a window that is too small")
	}
	if !g.State().Paused {
		t.Error("too small window should report paused")
	}
}

func TestSetConfig(t *testing.T) {
	t.Cleanup(func() { SetConfig(config.DefaultTetrisConfig()) })

	cfg := config.DefaultTetrisConfig()
	cfg.Board = config.BoardConfig{SurfaceWidth: 150, SurfaceHeight: 300, CellSize: 30}
	cfg.Gameplay.GravityMs = 100
	SetConfig(cfg)

	g := New()
	g.Reset(testConfig())
	if g.Sim().Cols() != 5 || g.Sim().Rows() != 10 {
		t.Errorf("grid = %dx%d, want 5x10", g.Sim().Cols(), g.Sim().Rows())
	}
	if g.gravityEvery != 6 {
		t.Errorf("gravityEvery = %d, want 6", g.gravityEvery)
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Enter: start") {
		t.Error("start overlay missing before the first game")
	}
	// Overlay title is centered on the well at (31, 12)
	if screen.Get(27, 11) != 'B' || screen.Get(35, 11) != 'L' {
		t.Errorf("overlay title row = %q", screen.Row(11))
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"BLOCKFALL", "Score: 0", "Lines: 0", "Classic 10x20"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Well is centered together with the side panel
	l := g.layout()
	if l.boardX != 20 || l.boardY != 1 {
		t.Errorf("board at %d,%d, want 20,1", l.boardX, l.boardY)
	}
	if screen.Get(l.boardX, l.boardY) != '┌' {
		t.Errorf("top-left corner = %q", screen.Get(l.boardX, l.boardY))
	}

	p, _ := g.Sim().Piece()
	for _, c := range g.Sim().PieceCells() {
		x, y := cellOrigin(l, c[0], c[1])
		cell := screen.GetCell(x, y)
		if cell.Rune != blockRune || cell.Color != ColorOf(p.Color) {
			t.Errorf("piece cell %v rendered as %q/%v", c, cell.Rune, cell.Color)
		}
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Window too small") || !strings.Contains(out, "Need 40x22") {
		t.Errorf("unexpected too-small screen:\n%s", out)
	}
}

func TestResize(t *testing.T) {
	cfg := testConfig()
	g := NewFit()
	g.Reset(cfg)
	if g.Sim().Cols() != 20 || g.Sim().Rows() != 22 {
		t.Fatalf("grid = %dx%d, want 20x22", g.Sim().Cols(), g.Sim().Rows())
	}

	// Before the first start the grid follows the terminal
	g.Resize(40, 24)
	if g.Sim().Cols() != 10 || g.Sim().Rows() != 22 {
		t.Errorf("grid after resize = %dx%d, want 10x22", g.Sim().Cols(), g.Sim().Rows())
	}

	// A running round keeps its grid and is suspended while too small
	g.Step(frame(core.ActionConfirm))
	g.Resize(20, 10)
	if g.Sim().Cols() != 10 || g.Sim().Rows() != 22 {
		t.Errorf("running grid changed to %dx%d", g.Sim().Cols(), g.Sim().Rows())
	}
	if !g.State().Paused {
		t.Error("round should be suspended in a too small window")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("round should resume once the window fits")
	}
	if g.Sim().Status() != StatusRunning {
		t.Errorf("Status = %s, want running", g.Sim().Status())
	}
}

func TestRestartRefitsGrid(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 40
	g := NewFit()
	g.Reset(cfg)
	g.Step(frame(core.ActionConfirm))
	g.Sim().Stop()

	// The finished board stays while it fits
	g.Resize(80, 24)
	if g.Sim().Cols() != 10 || g.Sim().Status() != StatusGameOver {
		t.Fatalf("after resize: %dx%d %s, want finished 10x22",
			g.Sim().Cols(), g.Sim().Rows(), g.Sim().Status())
	}

	res := g.Step(frame(core.ActionRestart))
	if !res.Started {
		t.Error("restart should report a started round")
	}
	if g.Sim().Cols() != 20 || g.Sim().Rows() != 22 {
		t.Errorf("restarted grid = %dx%d, want 20x22", g.Sim().Cols(), g.Sim().Rows())
	}
	if g.Sim().Status() != StatusRunning {
		t.Errorf("Status = %s, want running", g.Sim().Status())
	}
}

func TestResizeRefitsFinishedBoardThatNoLongerFits(t *testing.T) {
	cfg := testConfig()
	g := NewFit()
	g.Reset(cfg)
	g.Step(frame(core.ActionConfirm))
	g.Sim().Stop()

	g.Resize(40, 24)
	if g.Sim().Cols() != 10 || g.Sim().Rows() != 22 {
		t.Errorf("grid = %dx%d, want 10x22", g.Sim().Cols(), g.Sim().Rows())
	}
	if g.State().Paused {
		t.Error("refitted board should fit the window")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Sim().Status() != StatusRunning {
		t.Errorf("Status = %s, want running", g.Sim().Status())
	}
}

func TestClassicRestartKeepsConfiguredGrid(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionConfirm))
	g.Sim().Stop()

	g.Resize(120, 40)
	g.Step(frame(core.ActionRestart))
	if g.Sim().Cols() != 10 || g.Sim().Rows() != 20 {
		t.Errorf("grid = %dx%d, want 10x20", g.Sim().Cols(), g.Sim().Rows())
	}
}
