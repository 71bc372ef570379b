// Package config provides YAML-based game configuration loading for the
// blockfall platform.
package config

import (
	"fmt"
	"time"
)

// Grid limits. Every tetromino must fit into a freshly spawned well.
const (
	MinCols = 4
	MinRows = 4
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Fit      FitConfig      `yaml:"fit"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the play surface of the classic mode.
// The grid is derived from it the same way a pixel canvas is divided into cells.
type BoardConfig struct {
	SurfaceWidth  int `yaml:"surface_width"`
	SurfaceHeight int `yaml:"surface_height"`
	CellSize      int `yaml:"cell_size"`
}

// FitConfig bounds the grid of the terminal-sized mode.
type FitConfig struct {
	MaxCols int `yaml:"max_cols"`
	MaxRows int `yaml:"max_rows"`
}

// GameplayConfig defines timing parameters.
type GameplayConfig struct {
	GravityMs int `yaml:"gravity_ms"` // Period of the gravity step in milliseconds
}

// GridSize returns the classic grid dimensions:
// cols = floor(surfaceWidth / cellSize), rows = floor(surfaceHeight / cellSize).
func (b BoardConfig) GridSize() (cols, rows int) {
	if b.CellSize <= 0 {
		return 0, 0
	}
	return b.SurfaceWidth / b.CellSize, b.SurfaceHeight / b.CellSize
}

// GravityPeriod returns the gravity step period as a duration.
func (g GameplayConfig) GravityPeriod() time.Duration {
	return time.Duration(g.GravityMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: board.cell_size must be positive, got %d", c.Board.CellSize)
	}
	cols, rows := c.Board.GridSize()
	if cols < MinCols || rows < MinRows {
		return fmt.Errorf("config: board yields a %dx%d grid, need at least %dx%d", cols, rows, MinCols, MinRows)
	}
	if c.Fit.MaxCols < MinCols || c.Fit.MaxRows < MinRows {
		return fmt.Errorf("config: fit limits %dx%d are below %dx%d", c.Fit.MaxCols, c.Fit.MaxRows, MinCols, MinRows)
	}
	if c.Gameplay.GravityMs <= 0 {
		return fmt.Errorf("config: gameplay.gravity_ms must be positive, got %d", c.Gameplay.GravityMs)
	}
	return nil
}
