package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per grid cell
	panelWidth = 16 // Width of the side panel
	panelGap   = 2  // Space between the well and the side panel

	blockRune = '█'
	emptyRune = '·'
)

// layout holds the screen placement of the well and side panel.
type layout struct {
	boardX, boardY int
	boardW, boardH int
	panelX         int
	totalW         int
}

// board returns the well's outline, border included.
func (l layout) board() core.Rect {
	return core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
}

// layout computes where the well and panel go on the current screen.
func (g *Game) layout() layout {
	var cols, rows int
	if g.sim != nil {
		cols, rows = g.sim.Cols(), g.sim.Rows()
	} else {
		cols, rows = g.gridSize()
	}

	l := layout{
		boardW: cols*cellWidth + 2,
		boardH: rows + 2,
	}
	l.totalW = l.boardW + panelGap + panelWidth
	l.boardX = core.Max((g.screenW-l.totalW)/2, 0)
	l.boardY = core.Max((g.screenH-l.boardH)/2, 0)
	l.panelX = l.boardX + l.boardW + panelGap
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderWell(dst, l)
	g.renderPiece(dst, l)
	g.renderHUD(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	l := g.layout()
	hint := fmt.Sprintf("Need %dx%d", l.totalW, l.boardH)
	dst.DrawTextCentered(y+1, hint)
}

// renderWell draws the border, the empty cell markers and the locked cells.
func (g *Game) renderWell(dst *core.Screen, l layout) {
	dst.DrawBox(l.board())

	for row := range g.sim.Rows() {
		for col := range g.sim.Cols() {
			px, py := cellOrigin(l, col, row)
			if v := g.sim.Cell(col, row); v != 0 {
				drawBlock(dst, px, py, ColorOf(v))
				continue
			}
			dst.SetColored(px+1, py, emptyRune, core.ColorGray)
		}
	}
}

// renderPiece draws the falling piece over the well.
func (g *Game) renderPiece(dst *core.Screen, l layout) {
	p, ok := g.sim.Piece()
	if !ok {
		return
	}
	color := ColorOf(p.Color)
	for _, c := range g.sim.PieceCells() {
		px, py := cellOrigin(l, c[0], c[1])
		drawBlock(dst, px, py, color)
	}
}

func cellOrigin(l layout, col, row int) (x, y int) {
	return l.boardX + 1 + col*cellWidth, l.boardY + 1 + row
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, blockRune, c)
	}
}

// renderHUD draws title, score, lines and mode next to the well.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	x := l.panelX
	y := l.boardY

	dst.DrawTextColored(x, y, "BLOCKFALL", core.ColorBrightCyan)
	dst.DrawText(x, y+2, g.scoreLabel)
	dst.DrawText(x, y+3, fmt.Sprintf("Lines: %d", g.sim.LinesCleared()))

	modeStr := "Classic"
	if g.mode == ModeFit {
		modeStr = "Fit"
	}
	dst.DrawTextColored(x, y+5, fmt.Sprintf("%s %dx%d", modeStr, g.sim.Cols(), g.sim.Rows()), core.ColorGray)

	if p, ok := g.sim.Piece(); ok {
		dst.DrawTextColored(x, y+6, "Piece: "+p.Kind.String(), ColorOf(p.Color))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX, centerY := l.board().Center()

	switch g.sim.Status() {
	case StatusNotStarted:
		g.drawOverlay(dst, centerX, centerY, "BLOCKFALL", "Enter: start")
	case StatusGameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreLabel(g.sim.Score()), "R: restart")
	case StatusRunning:
		if g.paused {
			g.drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
		}
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→/AD: Move | ↑/W: Rotate | ↓/S: Drop | P: Pause | R: Restart | Q: Quit"
}
