package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const defaultMode = "tetris"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: tetris).

Modes:
  tetris      - Classic well sized from the configured play surface (10x20)
  tetris_fit  - Well sized to fill the terminal

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Enter            - Start
  R                - Restart (after game over)
  P                - Pause
  ?                - Full help
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play tetris_fit
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := defaultMode
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'blockfall list' to see modes)", modeID)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, runtimeConfig(), tui.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("running %s: %w", modeID, err)
	}
	logger.Debug("session ended", "mode", modeID, "score", res.State.Score)
	return nil
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
