package muncher

// GameStateType represents the current lifecycle state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost's observable state.
type GhostSnapshot struct {
	X          float64
	Y          float64
	Col        int
	Row        int
	Dir        Direction
	Alive      bool
	Frightened bool
}

// Snapshot captures the complete game state for determinism testing and
// for the render layer. It is read-only: the platform never mutates the
// engine through it.
type Snapshot struct {
	Tick           uint64
	Maze           string
	Score          int
	Lives          int
	PlayerX        float64
	PlayerY        float64
	PlayerCol      int
	PlayerRow      int
	PlayerDir      Direction
	PendingDir     Direction
	Ghosts         []GhostSnapshot
	DotsRemaining  int
	PowerTicksLeft uint64
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	ghosts := make([]GhostSnapshot, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		cell := gh.CurrentCell()
		ghosts = append(ghosts, GhostSnapshot{
			X:          gh.Pos.X,
			Y:          gh.Pos.Y,
			Col:        cell.Col,
			Row:        cell.Row,
			Dir:        gh.Dir,
			Alive:      gh.Alive,
			Frightened: gh.Frightened,
		})
	}

	playerCell := g.player.CurrentCell()
	return Snapshot{
		Tick:           g.tick,
		Maze:           g.level.Name,
		Score:          g.score,
		Lives:          g.lives,
		PlayerX:        g.player.Pos.X,
		PlayerY:        g.player.Pos.Y,
		PlayerCol:      playerCell.Col,
		PlayerRow:      playerCell.Row,
		PlayerDir:      g.player.Dir,
		PendingDir:     g.player.PendingDir(),
		Ghosts:         ghosts,
		DotsRemaining:  g.maze.RemainingDots(),
		PowerTicksLeft: g.PowerTicksLeft(),
		State:          state,
	}
}
