package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagMoveBoard string
	flagMoveDir   string
	flagMoveSpawn bool
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Resolve one move on a board",
	Long: `Apply a single move to a board and print the result.

The board is 16 cells in row-major order, separated by commas or spaces.
Empty cells are written as 0, "." or "-". Directions are up, down, left
and right (or u, d, l, r).

With --spawn a random tile is added after a move that changed the board,
using --seed for reproducible output.

Examples:
  arcade move --board "2,2,0,0 0,0,0,0 0,0,0,0 0,0,0,4" --dir left
  arcade move --board "2 . 2 4  . . . .  . . . .  . . . ." --dir r --spawn --seed 7`,
	Args: cobra.NoArgs,
	Run:  runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagMoveBoard, "board", "", "Board cells in row-major order (required)")
	moveCmd.Flags().StringVar(&flagMoveDir, "dir", "", "Direction: up, down, left, right (required)")
	moveCmd.Flags().BoolVar(&flagMoveSpawn, "spawn", false, "Spawn a tile after a successful move")
	moveCmd.MarkFlagRequired("board")
	moveCmd.MarkFlagRequired("dir")
}

func runMove(cmd *cobra.Command, args []string) {
	board, err := t2048.ParseBoardString(flagMoveBoard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir, err := t2048.ParseDirection(flagMoveDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Before:")
	fmt.Print(board)
	fmt.Println()

	var (
		after   t2048.Board
		gained  int
		changed bool
	)

	if flagMoveSpawn {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s := t2048.NewSession(rand.New(rand.NewSource(seed)), t2048.DefaultSpawn4Prob)
		s.Load(board, 0)
		res, moved := s.Apply(dir)
		after, gained, changed = s.Board(), res.Gained, moved
	} else {
		res, err := t2048.Move(board, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		after, gained, changed = res.Board, res.Gained, t2048.Changed(board, res.Board)
	}

	fmt.Printf("After %s:\n", dir)
	fmt.Print(after)
	fmt.Println()
	fmt.Printf("Changed:   %t\n", changed)
	fmt.Printf("Gained:    %d\n", gained)
	fmt.Printf("Max tile:  %d\n", t2048.MaxTile(after))
	fmt.Printf("Game over: %t\n", !t2048.HasAvailableMoves(after))
}
