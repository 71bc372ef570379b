package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Palette is the ordered set of piece colors. A grid cell stores the
// 1-based position of its color here; 0 means empty.
var Palette = [...]core.Color{
	core.ColorBrightCyan,   // #00FFFF
	core.ColorBrightYellow, // #FFFF00
	core.ColorPurple,       // #800080
	core.ColorBrightGreen,  // #00FF00
	core.ColorBrightRed,    // #FF0000
	core.ColorBrightBlue,   // #0000FF
	core.ColorOrange,       // #FFA500
}

// PaletteSize is the number of piece colors.
const PaletteSize = len(Palette)

// ColorOf maps a grid cell value to its display color.
// Empty and out-of-range values map to core.ColorDefault.
func ColorOf(index int) core.Color {
	if index < 1 || index > PaletteSize {
		return core.ColorDefault
	}
	return Palette[index-1]
}
