// arcade is a terminal 2048 with campaign and endless modes.
//
// Usage:
//
//	arcade play              - Pick a mode and play
//	arcade menu              - Menu loop: play, check scores, play again
//	arcade list              - List game modes
//	arcade scores <game>     - Show high scores for a mode
//	arcade autoplay          - Let a strategy play headless games
//	arcade move              - Resolve a single move on a given board
//	arcade config            - Print the active config as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logLevel = log.InfoLevel
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "2048 in your terminal",
	Long: `A terminal 2048: slide tiles, merge equal numbers, reach the target tile.

Available commands:
  play      - Play (campaign or endless)
  menu      - Interactive menu with high scores
  list      - Show game modes
  scores    - View high scores
  autoplay  - Run headless games with a strategy
  move      - Resolve one move on a board
  config    - Print the active config

Examples:
  arcade play
  arcade play --mode endless --difficulty hard
  arcade scores 2048
  arcade autoplay --games 100 --strategy corner
  arcade move --board "2,2,0,0 0,0,0,0 0,0,0,0 0,0,0,4" --dir left`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logLevel = lvl
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(configCmd)
}
