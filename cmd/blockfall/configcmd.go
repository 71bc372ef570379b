package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration in use as YAML, after applying the search order:

  1. --config <path>
  2. ~/.blockfall/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. built-in defaults

Redirect the output to a file to start a custom configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(loadedCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", cfgSource)
	_, err = out.Write(data)
	return err
}
