package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/platform/tui"
	"github.com/vovakirdan/muncher/internal/registry"
	"github.com/vovakirdan/muncher/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Muncher.

Controls:
  WASD/Arrows - Steer
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ghosts, longer power pellet window
  normal - Classic speeds and timings
  hard   - Faster ghosts, short power window, two lives

Examples:
  muncher play
  muncher play --maze 2
  muncher play --difficulty hard
  muncher play --config ./my-muncher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagMaze, "maze", 1, "Maze to play (see 'muncher mazes')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagMaze < 1 || flagMaze > muncher.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: maze %d does not exist\n", flagMaze)
		fmt.Fprintln(os.Stderr, "Run 'muncher mazes' to see available mazes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path, difficulty and maze before creation
	muncher.SetConfigPath(flagConfig)
	muncher.SetDifficultyPreset(flagDifficulty)
	muncher.SetMaze(flagMaze)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
