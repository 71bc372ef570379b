package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration: a 300x600 surface
// with 30-unit cells (10x20 grid) and a 500ms gravity step.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			SurfaceWidth:  300,
			SurfaceHeight: 600,
			CellSize:      30,
		},
		Fit: FitConfig{
			MaxCols: 20,
			MaxRows: 30,
		},
		Gameplay: GameplayConfig{
			GravityMs: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
