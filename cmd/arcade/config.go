package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the 2048 config",
	Long: `Print the config a game would use, as YAML.

Without flags the search order applies: ~/.arcade/configs/t2048.yaml,
./configs/t2048.yaml, then the built-in defaults. The output can be saved
and passed back with --config.

Examples:
  arcade config --default > ~/.arcade/configs/t2048.yaml
  arcade config --difficulty hard
  arcade config --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultT2048YAML())
		return
	}

	if err := applyGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.MarshalT2048(t2048.ActiveConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
