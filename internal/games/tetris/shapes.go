package tetris

// Shape is a rectangular occupancy matrix, indexed [row][col].
type Shape [][]bool

// Kind identifies one of the seven tetromino templates.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of tetromino templates.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// templates holds the canonical bit patterns. Never handed out directly.
var templates = [KindCount]Shape{
	KindI: shapeOf("1111"),
	KindO: shapeOf("11", "11"),
	KindT: shapeOf("010", "111"),
	KindS: shapeOf("011", "110"),
	KindZ: shapeOf("110", "011"),
	KindJ: shapeOf("100", "111"),
	KindL: shapeOf("001", "111"),
}

// shapeOf builds a shape from rows of '0'/'1' characters.
func shapeOf(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c := range row {
			s[r][c] = row[c] == '1'
		}
	}
	return s
}

// Template returns a working copy of the template for the given kind.
func Template(k Kind) Shape {
	return templates[k].Clone()
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotated returns a quarter turn of the shape: the transpose with its row
// order reversed. The receiver is not modified.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range w {
		row := make([]bool, h)
		for r := range h {
			row[r] = s[r][i]
		}
		out[w-1-i] = row
	}
	return out
}

// Cells returns the (row, col) offsets of the occupied cells.
func (s Shape) Cells() [][2]int {
	var cells [][2]int
	for r, row := range s {
		for c, filled := range row {
			if filled {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// String renders the shape as rows of '#' and '.'.
func (s Shape) String() string {
	b := make([]byte, 0, (s.Width()+1)*s.Height())
	for r, row := range s {
		if r > 0 {
			b = append(b, '/')
		}
		for _, filled := range row {
			if filled {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}
