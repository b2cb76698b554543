package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long:  `Shows the registered game modes and the campaign levels of the active config.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	addConfigFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	if err := applyGameConfig(); err != nil {
		fmt.Printf("\nCannot load campaign levels: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %-6s  %s\n", "Level", "Name", "Target", "Spawn 4")
	fmt.Printf("  %-5s  %-20s  %-6s  %s\n", "-----", "----", "------", "-------")
	for _, lvl := range t2048.Levels() {
		fmt.Printf("  %-5d  %-20s  %-6d  %.0f%%\n", lvl.ID, lvl.Name, lvl.Target, lvl.Spawn4*100)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play --mode campaign|endless' to play, 'arcade scores <id>' for high scores.")
}
