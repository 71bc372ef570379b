package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Leave a game with Esc/B to return to the menu; Q quits.

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Keep size changes made while in the menu
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// A fixed --seed replays the same sequence in every game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, cfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running %s: %w", menuResult.GameID, err)
		}
		if !res.Back {
			return nil
		}
	}
}
