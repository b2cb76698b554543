package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048. Without --mode a menu lets you pick the mode
and starting level.

Controls:
  Arrows / WASD / HJKL  - Slide tiles
  Mouse drag            - Swipe
  P/Esc                 - Pause
  R                     - Restart
  Ctrl+S                - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C              - Quit

Difficulty options (endless mode raises the chance of spawning a 4):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play
  arcade play --mode campaign --level 4
  arcade play --mode endless --difficulty hard
  arcade play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: campaign or endless (default: show menu)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based)")
	addConfigFlags(playCmd)
}

// addConfigFlags registers the flags shared by play and menu.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom 2048 config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameConfig validates --config and --difficulty and hands them to the game.
func applyGameConfig() error {
	if flagConfig != "" {
		if _, err := config.LoadT2048(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		if _, ok := config.ParseDifficultyPreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// parseMode maps --mode to a menu selection.
func parseMode(mode string, level int) (*tui.Selection, error) {
	sel := &tui.Selection{Level: level}
	switch mode {
	case "campaign":
		sel.Mode = tui.ModeCampaign
	case "endless":
		sel.Mode = tui.ModeEndless
		if level != 0 {
			return nil, fmt.Errorf("--level applies to campaign mode only")
		}
	default:
		return nil, fmt.Errorf("unknown mode %q (want campaign or endless)", mode)
	}

	if n := t2048.LevelCount(); level < 0 || level > n {
		return nil, fmt.Errorf("--level must be between 1 and %d", n)
	}
	return sel, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := applyGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagMode == "" {
		if flagLevel != 0 {
			fmt.Fprintln(os.Stderr, "Error: --level requires --mode campaign")
			os.Exit(1)
		}
		runMenuLoop(false)
		return
	}

	sel, err := parseMode(flagMode, flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openTUILogger()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playSelection(sel, store, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playSelection creates the selected game and runs it until the player quits.
func playSelection(sel *tui.Selection, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	if sel.Mode == tui.ModeCampaign && sel.Level > 0 {
		t2048.SetStartLevel(sel.Level)
	}

	game, err := registry.Create(sel.Mode.GameID())
	if err != nil {
		return err
	}

	return tui.Run(game, store, logger, cfg)
}
