// muncher is a terminal maze-chase arcade game.
//
// Usage:
//
//	muncher play             - Play the game
//	muncher mazes            - List available mazes
//	muncher serve            - Start SSH server for remote play
//	muncher scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.muncher/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/muncher/internal/games/muncher"
)

const gameID = "muncher"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "muncher",
	Short: "Muncher - a maze-chase arcade game in your terminal",
	Long: `Muncher is a terminal maze-chase game: eat every pellet while
dodging the ghosts, or grab a power pellet and chase them instead.

Available commands:
  play     - Play the game
  mazes    - List available mazes
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  muncher play
  muncher play --maze 2 --difficulty hard
  muncher serve --ssh :2222
  muncher scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.muncher/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
