package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagAutoGames    int
	flagAutoStrategy string
	flagAutoMaxMoves int
	flagAutoWorkers  int
	flagAutoSpawn4   float64
	flagAutoSave     bool
)

// spawn4FromConfig is the --spawn4 default: take the probability from config.
const spawn4FromConfig = -1

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play headless games with a built-in strategy",
	Long: `Run a number of games without a terminal UI and report how a strategy
performs. Games run in parallel; game i uses seed --seed+i, so a fixed
--seed gives the same results on every run.

Strategies:
  random  - Any move that changes the board
  greedy  - Highest immediate score, then most empty cells
  corner  - Keep big tiles in the bottom-left corner

Examples:
  arcade autoplay --games 100 --strategy corner
  arcade autoplay --games 1000 --strategy greedy --seed 42 --workers 8
  arcade autoplay --strategy greedy --save`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoGames, "games", 10, "Number of games to play")
	autoplayCmd.Flags().StringVar(&flagAutoStrategy, "strategy", "corner", "Strategy: random, greedy, corner")
	autoplayCmd.Flags().IntVar(&flagAutoMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = until game over)")
	autoplayCmd.Flags().IntVar(&flagAutoWorkers, "workers", runtime.NumCPU(), "Games played at the same time")
	autoplayCmd.Flags().Float64Var(&flagAutoSpawn4, "spawn4", spawn4FromConfig, "Probability of spawning a 4 (default: from config)")
	autoplayCmd.Flags().BoolVar(&flagAutoSave, "save", false, "Record results in the scores database")
	autoplayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom 2048 config YAML")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "autoplay")

	if err := validateAutoplayFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	spawn4 := cfg.Spawn.FourProbability
	if flagAutoSpawn4 != spawn4FromConfig {
		spawn4 = flagAutoSpawn4
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "games", flagAutoGames, "strategy", flagAutoStrategy, "workers", flagAutoWorkers, "seed", baseSeed)
	start := time.Now()

	results, err := playGames(ctx, flagAutoGames, flagAutoWorkers, func(i int) (t2048.TileSource, t2048.AutoPlayConfig) {
		// One source per game drives both tile spawns and the random strategy
		rng := rand.New(rand.NewSource(baseSeed + int64(i)))
		st, _ := t2048.NewStrategy(flagAutoStrategy, rng) // validated above
		return rng, t2048.AutoPlayConfig{
			Strategy: st,
			Spawn4:   spawn4,
			MaxMoves: flagAutoMaxMoves,
		}
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("finished", "games", len(results), "elapsed", time.Since(start).Round(time.Millisecond))
	printAutoplaySummary(results)

	if flagAutoSave {
		if err := saveAutoplayResults(results, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func validateAutoplayFlags() error {
	if flagAutoGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagAutoGames)
	}
	if flagAutoWorkers <= 0 {
		return fmt.Errorf("--workers must be positive, got %d", flagAutoWorkers)
	}
	if flagAutoMaxMoves < 0 {
		return fmt.Errorf("--max-moves must not be negative, got %d", flagAutoMaxMoves)
	}
	if flagAutoSpawn4 != spawn4FromConfig && (flagAutoSpawn4 < 0 || flagAutoSpawn4 > 1) {
		return fmt.Errorf("--spawn4 must be between 0 and 1, got %g", flagAutoSpawn4)
	}
	if _, err := t2048.NewStrategy(flagAutoStrategy, nil); err != nil {
		return err
	}
	return nil
}

// playGames runs n games on at most workers goroutines. Results are in
// game order. The first failing game cancels the rest.
func playGames(
	ctx context.Context,
	n, workers int,
	newGame func(i int) (t2048.TileSource, t2048.AutoPlayConfig),
) ([]t2048.AutoPlayResult, error) {
	results := make([]t2048.AutoPlayResult, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range n {
		g.Go(func() error {
			src, cfg := newGame(i)
			res, err := t2048.AutoPlay(ctx, src, cfg)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// autoplaySummary aggregates a batch of autoplay results.
type autoplaySummary struct {
	Games     int
	BestScore int
	AvgScore  float64
	AvgMoves  float64
	BestTile  int
	Tiles     map[int]int // max tile -> games that ended with it
}

func summarizeAutoplay(results []t2048.AutoPlayResult) autoplaySummary {
	s := autoplaySummary{Games: len(results), Tiles: make(map[int]int)}
	if len(results) == 0 {
		return s
	}

	totalScore, totalMoves := 0, 0
	for _, r := range results {
		totalScore += r.Score
		totalMoves += r.Moves
		s.BestScore = max(s.BestScore, r.Score)
		s.BestTile = max(s.BestTile, r.MaxTile)
		s.Tiles[r.MaxTile]++
	}
	s.AvgScore = float64(totalScore) / float64(len(results))
	s.AvgMoves = float64(totalMoves) / float64(len(results))
	return s
}

func printAutoplaySummary(results []t2048.AutoPlayResult) {
	s := summarizeAutoplay(results)

	fmt.Printf("Strategy:   %s\n", flagAutoStrategy)
	fmt.Printf("Games:      %d\n", s.Games)
	fmt.Printf("Best score: %d\n", s.BestScore)
	fmt.Printf("Avg score:  %.1f\n", s.AvgScore)
	fmt.Printf("Avg moves:  %.1f\n", s.AvgMoves)
	fmt.Printf("Best tile:  %d\n", s.BestTile)
	fmt.Println()

	tiles := make([]int, 0, len(s.Tiles))
	for tile := range s.Tiles {
		tiles = append(tiles, tile)
	}
	slices.Sort(tiles)
	slices.Reverse(tiles)

	fmt.Printf("  %-6s  %-6s  %s\n", "Tile", "Games", "Share")
	fmt.Printf("  %-6s  %-6s  %s\n", "----", "-----", "-----")
	for _, tile := range tiles {
		count := s.Tiles[tile]
		fmt.Printf("  %-6d  %-6d  %5.1f%%\n", tile, count, float64(count)*100/float64(s.Games))
	}
}

// saveAutoplayResults stores every game as an endless score played by the strategy.
func saveAutoplayResults(results []t2048.AutoPlayResult, logger *log.Logger) error {
	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		_, err := store.SaveScore(storage.ScoreEntry{
			GameID:  t2048.NewEndless().ID(),
			Score:   r.Score,
			MaxTile: r.MaxTile,
			Moves:   r.Moves,
			Player:  r.Strategy,
		})
		if err != nil {
			return err
		}
	}
	logger.Info("results saved", "games", len(results), "db", flagDBPath)
	return nil
}
