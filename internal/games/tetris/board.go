package tetris

// Grid is the well, indexed [row][col]. 0 is an empty cell, any other value
// is a 1-based Palette index.
type Grid [][]int

// NewGrid allocates an all-empty grid.
func NewGrid(cols, rows int) Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]int(nil), g[r]...)
	}
	return out
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Blocked reports whether (col, row) is outside the grid or occupied.
func (g Grid) Blocked(col, row int) bool {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return true
	}
	return g[row][col] != 0
}

// Collides reports whether shape anchored at (x, y) overlaps an occupied
// cell or extends past any edge of the grid.
func (g Grid) Collides(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, filled := range row {
			if filled && g.Blocked(x+c, y+r) {
				return true
			}
		}
	}
	return false
}

// Merge writes color into every cell covered by shape anchored at (x, y).
// Cells outside the grid are skipped.
func (g Grid) Merge(shape Shape, x, y, color int) {
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			gy, gx := y+r, x+c
			if gy < 0 || gy >= g.Rows() || gx < 0 || gx >= g.Cols() {
				continue
			}
			g[gy][gx] = color
		}
	}
}

// rowFull reports whether every cell in the row is occupied.
func (g Grid) rowFull(row int) bool {
	for _, v := range g[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and inserts an empty row at the top for
// each one, so the rows above shift down. Rows are scanned bottom to top and
// a row index is examined again after a removal, since a full row may have
// shifted into it. Returns the number of rows removed.
func (g Grid) ClearLines() int {
	cleared := 0
	for row := g.Rows() - 1; row >= 0; {
		if !g.rowFull(row) {
			row--
			continue
		}
		// Shift everything above down by one, reusing the removed slice as the new top row.
		removed := g[row]
		copy(g[1:row+1], g[:row])
		for c := range removed {
			removed[c] = 0
		}
		g[0] = removed
		cleared++
	}
	return cleared
}
