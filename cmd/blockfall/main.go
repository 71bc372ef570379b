// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available modes
//	blockfall play [mode]       - Play a mode (default: tetris)
//	blockfall menu              - Pick a mode interactively
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML configuration
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <level> - Minimum log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	logger    = log.New(io.Discard)
	closeLog  = func() error { return nil }
	loadedCfg = config.DefaultTetrisConfig()
	cfgSource = config.SourceBuiltin
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops tetrominoes into a well. Move and rotate them to
complete rows; every cleared row scores 100 points. The game ends when
a new piece has no room to enter the well.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play tetris_fit
  blockfall menu --fps 30
  blockfall play --config ./my-blockfall.yaml --log-file blockfall.log`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup opens the log and loads the configuration shared by all commands.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger, closeLog = l, closer

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	loadedCfg, cfgSource = cfg, src
	tetris.SetConfig(cfg)

	cols, rows := cfg.Board.GridSize()
	logger.Info("config loaded", "source", src, "grid", fmt.Sprintf("%dx%d", cols, rows), "gravity", cfg.Gameplay.GravityPeriod())
	return nil
}

// openLogger builds the application logger. The terminal belongs to the
// game, so logs go to a file or nowhere.
func openLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           lvl,
	}

	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	return log.NewWithOptions(f, opts), f.Close, nil
}
