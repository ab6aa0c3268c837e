package muncher

import (
	"math/rand"

	"github.com/vovakirdan/muncher/internal/config"
	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/registry"
)

// ghostColors cycles over the ghost roster in spawn order.
var ghostColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Package-level variables for config/maze selection (set from the CLI
// before the game is created, like the other platform knobs).
var (
	configPath       string
	difficultyPreset string
	selectedMaze     int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMaze selects the built-in maze (1-based). 0 means the first maze.
func SetMaze(index int) {
	selectedMaze = index
}

// Game implements the maze-chase engine. It owns all round/session state
// exclusively; the platform drives it through Reset and Step only.
type Game struct {
	rng  *rand.Rand
	tick uint64

	maze   *Maze
	level  *Level
	player *Player
	ghosts []*Ghost

	score            int
	lives            int
	powerExpiresTick uint64 // 0 = power-mode inactive

	// Tick-converted timing, computed at Reset from the tick rate.
	powerTicks   uint64
	respawnTicks uint64

	won      bool
	gameOver bool
	paused   bool
	tooSmall bool

	runtime    core.RuntimeConfig
	cfg        config.MuncherConfig
	levelIndex int

	// Layout (computed from screen size)
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("muncher", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "muncher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Muncher"
}

// Reset initializes or fully restarts the game: score, lives, pellets and
// all actor positions. This is the only operation that restores pellets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadMuncher(configPath)
	if err != nil {
		cfg = config.DefaultMuncherConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMuncherPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.powerExpiresTick = 0
	g.won = false
	g.gameOver = false
	g.paused = false

	g.powerTicks = ticksFromMS(cfg.Timing.PowerDurationMS, g.runtime.TickRate)
	g.respawnTicks = ticksFromMS(cfg.Timing.RespawnDelayMS, g.runtime.TickRate)

	g.levelIndex = 0
	if selectedMaze > 0 && selectedMaze <= LevelCount() {
		g.levelIndex = selectedMaze - 1
	}
	g.level = GetLevel(g.levelIndex)
	g.maze = NewMaze(g.level.Layout)

	g.spawnActors()
	g.calculateLayout()
}

// ticksFromMS converts a wall-clock duration to a tick count, minimum one.
func ticksFromMS(ms, tickRate int) uint64 {
	t := uint64(ms) * uint64(tickRate) / 1000
	if t == 0 {
		t = 1
	}
	return t
}

// spawnActors creates the player and ghosts at their spawn cells.
func (g *Game) spawnActors() {
	g.player = NewPlayer(g.level.PlayerSpawn, g.cfg.Actors.PlayerSpeed)
	g.ghosts = make([]*Ghost, 0, len(g.level.GhostSpawns))
	for i, spawn := range g.level.GhostSpawns {
		color := ghostColors[i%len(ghostColors)]
		g.ghosts = append(g.ghosts, NewGhost(g.maze, spawn, g.cfg.Actors.GhostSpeed, color, g.rng))
	}
}

// calculateLayout centers the maze under the HUD and checks screen size.
func (g *Game) calculateLayout() {
	g.hudHeight = 2

	requiredW := g.maze.Cols()*cellW + 2
	requiredH := g.maze.Rows() + g.hudHeight + 1
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH

	g.mapOffsetX = (g.runtime.ScreenW - g.maze.Cols()*cellW) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the simulation by one tick. The phase order is fixed so
// that a pellet eaten on the same tick as a collision still counts, and
// all frightened flags clear together.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// 1. Apply buffered input, then advance the player.
	if in.Intent != core.ActionNone {
		g.player.HandleInput(in.Intent)
	}
	g.player.Update(g.maze)

	// 2. Advance ghosts; dead ones only check their respawn deadline.
	for _, gh := range g.ghosts {
		if gh.Alive {
			gh.Update(g.maze, g.rng)
		} else {
			gh.MaybeRespawn(g.tick, g.maze, g.rng)
		}
	}

	// 3. Power-mode expiry: all frightened flags clear in the same tick.
	if g.powerExpiresTick != 0 && g.tick >= g.powerExpiresTick {
		g.powerExpiresTick = 0
		for _, gh := range g.ghosts {
			gh.Frightened = false
		}
	}

	// 4. Pellet consumption at the player's cell.
	g.eatLogic()

	// 5. Player-ghost collisions.
	g.collisionLogic()

	// 6. Win when nothing is left to eat.
	if !g.gameOver && g.maze.RemainingDots() == 0 {
		g.won = true
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// eatLogic consumes the item under the player and applies its effects.
// A power pellet (re)starts the power window and frightens all living
// ghosts.
func (g *Game) eatLogic() {
	switch g.maze.EatAt(g.player.CurrentCell()) {
	case ItemPellet:
		g.score += g.cfg.Gameplay.PelletScore
	case ItemPower:
		g.score += g.cfg.Gameplay.PowerPelletScore
		g.powerExpiresTick = g.tick + g.powerTicks
		for _, gh := range g.ghosts {
			if gh.Alive {
				gh.Frightened = true
			}
		}
	}
}

// collisionLogic resolves proximity collisions. A life loss resets the
// round immediately and short-circuits the remaining checks; at zero lives
// the game freezes with no reset.
func (g *Game) collisionLogic() {
	threshold := g.cfg.Actors.CollisionRadius * TileSize
	for _, gh := range g.ghosts {
		if !gh.Alive {
			continue
		}
		if g.player.Pos.Dist(gh.Pos) >= threshold {
			continue
		}
		if gh.Frightened {
			g.score += g.cfg.Gameplay.GhostScore
			gh.Kill(g.tick + g.respawnTicks)
			continue
		}

		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			return
		}
		g.resetRound()
		return
	}
}

// resetRound returns all actors to their spawns and clears power-mode.
// Score and remaining pellets are untouched; pending ghost respawn
// deadlines are cancelled since every ghost is reset to alive.
func (g *Game) resetRound() {
	g.player = NewPlayer(g.level.PlayerSpawn, g.cfg.Actors.PlayerSpeed)
	for _, gh := range g.ghosts {
		gh.ResetToSpawn(g.maze, g.rng)
	}
	g.powerExpiresTick = 0
}

// PowerTicksLeft returns the remaining power-mode duration in ticks.
func (g *Game) PowerTicksLeft() uint64 {
	if g.powerExpiresTick == 0 || g.tick >= g.powerExpiresTick {
		return 0
	}
	return g.powerExpiresTick - g.tick
}

// PowerActive reports whether power-mode is running.
func (g *Game) PowerActive() bool {
	return g.powerExpiresTick != 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
