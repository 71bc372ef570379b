package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row with color, except the listed columns.
func fillRow(g Grid, row, color int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := range g[row] {
		if !skip[c] {
			g[row][c] = color
		}
	}
}

func TestNewGridClampsNegativeSize(t *testing.T) {
	g := NewGrid(-1, 2)
	require.Len(t, g, 2)
	assert.Empty(t, g[0])
	assert.Empty(t, NewGrid(4, -5))
}

func TestGridCollides(t *testing.T) {
	g := NewGrid(10, 20)
	g[19][4] = 2

	tests := []struct {
		name  string
		shape Shape
		x, y  int
		want  bool
	}{
		{"free space", Template(KindO), 0, 0, false},
		{"past left edge", Template(KindO), -1, 0, true},
		{"past right edge", Template(KindO), 9, 0, true},
		{"touching right edge", Template(KindO), 8, 0, false},
		{"past bottom", Template(KindO), 0, 19, true},
		{"above top", Template(KindO), 0, -1, true},
		{"overlaps locked cell", Template(KindO), 3, 18, true},
		{"next to locked cell", Template(KindO), 5, 18, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Collides(tc.shape, tc.x, tc.y))
		})
	}
}

func TestGridCollidesIgnoresEmptyShapeCells(t *testing.T) {
	g := NewGrid(10, 20)
	g[18][3] = 1 // under the T's empty top-left corner

	assert.False(t, g.Collides(Template(KindT), 3, 18))
	assert.True(t, g.Collides(Template(KindT), 2, 18))
}

func TestGridMerge(t *testing.T) {
	g := NewGrid(10, 20)
	g.Merge(Template(KindT), 3, 18, 5)

	assert.Equal(t, []int{0, 0, 0, 0, 5, 0, 0, 0, 0, 0}, g[18])
	assert.Equal(t, []int{0, 0, 0, 5, 5, 5, 0, 0, 0, 0}, g[19])
}

func TestClearSingleLine(t *testing.T) {
	g := NewGrid(4, 5)
	g[2] = []int{0, 3, 0, 0}
	g[3] = []int{1, 0, 2, 0}
	fillRow(g, 4, 6)

	cleared := g.ClearLines()

	require.Equal(t, 1, cleared)
	assert.Equal(t, Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 3, 0, 0},
		{1, 0, 2, 0},
	}, g)
}

func TestClearTwoAdjacentLines(t *testing.T) {
	g := NewGrid(4, 6)
	g[2] = []int{7, 0, 0, 0}
	g[3] = []int{0, 0, 0, 4}
	fillRow(g, 4, 1)
	fillRow(g, 5, 2)

	cleared := g.ClearLines()

	require.Equal(t, 2, cleared)
	assert.Equal(t, Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{7, 0, 0, 0},
		{0, 0, 0, 4},
	}, g)
}

func TestClearSeparatedLines(t *testing.T) {
	g := NewGrid(3, 5)
	g[0] = []int{1, 0, 0}
	fillRow(g, 1, 2)
	g[2] = []int{0, 3, 0}
	fillRow(g, 3, 4)
	g[4] = []int{0, 0, 5}

	cleared := g.ClearLines()

	require.Equal(t, 2, cleared)
	assert.Equal(t, Grid{
		{0, 0, 0},
		{0, 0, 0},
		{1, 0, 0},
		{0, 3, 0},
		{0, 0, 5},
	}, g)
}

func TestClearWholeGrid(t *testing.T) {
	g := NewGrid(3, 3)
	for r := range g {
		fillRow(g, r, r+1)
	}

	require.Equal(t, 3, g.ClearLines())
	assert.Equal(t, NewGrid(3, 3), g)
}

func TestClearNothing(t *testing.T) {
	g := NewGrid(3, 3)
	fillRow(g, 2, 1, 0)
	before := g.Clone()

	assert.Equal(t, 0, g.ClearLines())
	assert.Equal(t, before, g)
}
