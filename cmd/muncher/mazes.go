package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/muncher/internal/games/muncher"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List available mazes",
	Long: `Show all built-in mazes with their numbers.

Pass a maze number to 'muncher play --maze <n>' to play it.`,
	Args: cobra.NoArgs,
	Run:  runMazes,
}

func runMazes(cmd *cobra.Command, args []string) {
	fmt.Println("Available mazes:")
	fmt.Println()

	for i, name := range muncher.LevelNames() {
		level := muncher.GetLevel(i)
		fmt.Printf("  %d. %-12s %dx%d, %d ghosts\n",
			i+1, name, len(level.Layout[0]), len(level.Layout), len(level.GhostSpawns))
	}

	fmt.Println()
	fmt.Println("Play with: muncher play --maze <number>")
}
