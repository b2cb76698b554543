package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := applyGameConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		runMenuLoop(true)
	},
}

func init() {
	addConfigFlags(menuCmd)
}

// runMenuLoop shows the menu and runs the chosen game. With repeat set the
// menu comes back after every game; otherwise it returns after one.
func runMenuLoop(repeat bool) {
	logger, closeLog := openTUILogger()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	first := true

	for {
		menuResult, err := tui.RunMenu(cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if menuResult.Quit {
			return
		}

		if menuResult.Scoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if menuResult.Selection == nil {
			return
		}

		// A fixed --seed applies to the first game only
		if !first || cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		first = false

		if err := playSelection(menuResult.Selection, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		if !repeat {
			return
		}
		cfg = runtimeConfig() // Terminal may have been resized
	}
}
