package muncher

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/muncher/internal/core"
)

// newTestGame builds a game on the classic board with default config.
func newTestGame(seed int64) *Game {
	SetConfigPath("")
	SetDifficultyPreset("")
	SetMaze(1)

	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

// freezeGhosts pins all ghosts in place so tests can stage exact positions.
func freezeGhosts(g *Game) {
	for _, gh := range g.ghosts {
		gh.Speed = 0
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 10 {
			input.Set(core.ActionLeft)
		}
		if i == 60 {
			input.Set(core.ActionUp)
		}
		if i == 150 {
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)

		if i%50 == 0 {
			snap1 := g1.Snapshot()
			snap2 := g2.Snapshot()
			if !reflect.DeepEqual(snap1, snap2) {
				t.Fatalf("Snapshots diverged at tick %d:\n%+v\nvs\n%+v", i+1, snap1, snap2)
			}
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("Final snapshots differ for identical seeds and inputs")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := newTestGame(1)
	g2 := newTestGame(2)

	input := core.NewInputFrame()
	diverged := false
	for i := 0; i < 300; i++ {
		g1.Step(input)
		g2.Step(input)

		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if !reflect.DeepEqual(s1.Ghosts, s2.Ghosts) {
			diverged = true
			break
		}
	}

	if !diverged {
		t.Error("Ghost walks never diverged across different seeds")
	}
}

func TestPelletConsumption(t *testing.T) {
	g := newTestGame(42)
	freezeGhosts(g)

	dots := g.maze.RemainingDots()

	// The spawn cell holds a pellet; the first tick consumes it
	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Gameplay.PelletScore {
		t.Errorf("Score = %d, expected %d for one pellet", g.score, g.cfg.Gameplay.PelletScore)
	}
	if got := g.maze.RemainingDots(); got != dots-1 {
		t.Errorf("RemainingDots = %d, expected %d", got, dots-1)
	}

	// Second tick on the same cell: nothing left to eat
	g.Step(core.NewInputFrame())
	if g.score != g.cfg.Gameplay.PelletScore {
		t.Errorf("Score = %d after idle tick, consumption is not idempotent", g.score)
	}
}

func TestPowerPelletFrightensAndExpires(t *testing.T) {
	g := newTestGame(7)
	freezeGhosts(g)

	// Stand on a power pellet
	g.player.Pos = CellToWorld(core.Cell{Col: 1, Row: 4})
	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Gameplay.PowerPelletScore {
		t.Errorf("Score = %d, expected %d for power pellet", g.score, g.cfg.Gameplay.PowerPelletScore)
	}
	if !g.PowerActive() {
		t.Fatal("Power-mode inactive after eating power pellet")
	}
	if g.PowerTicksLeft() != g.powerTicks {
		t.Errorf("PowerTicksLeft = %d, expected %d", g.PowerTicksLeft(), g.powerTicks)
	}
	for i, gh := range g.ghosts {
		if !gh.Frightened {
			t.Errorf("Ghost %d not frightened after power pellet", i)
		}
	}

	// Run out the window: flags hold until the deadline tick
	for i := uint64(0); i < g.powerTicks-1; i++ {
		g.Step(core.NewInputFrame())
	}
	for i, gh := range g.ghosts {
		if !gh.Frightened {
			t.Errorf("Ghost %d lost frightened flag before expiry", i)
		}
	}
	if g.PowerTicksLeft() != 1 {
		t.Errorf("PowerTicksLeft = %d one tick before expiry, expected 1", g.PowerTicksLeft())
	}

	// Expiry tick: all flags clear together
	g.Step(core.NewInputFrame())
	if g.PowerActive() {
		t.Error("Power-mode still active past its deadline")
	}
	for i, gh := range g.ghosts {
		if gh.Frightened {
			t.Errorf("Ghost %d still frightened after expiry", i)
		}
	}
}

func TestPowerPelletRestartsWindow(t *testing.T) {
	g := newTestGame(7)
	freezeGhosts(g)

	g.player.Pos = CellToWorld(core.Cell{Col: 1, Row: 4})
	g.Step(core.NewInputFrame())
	firstDeadline := g.powerExpiresTick

	// Halfway through, a second power pellet restarts the full window
	for i := uint64(0); i < g.powerTicks/2; i++ {
		g.Step(core.NewInputFrame())
	}
	g.maze.power[core.Cell{Col: 1, Row: 4}] = true
	g.Step(core.NewInputFrame())

	if g.powerExpiresTick <= firstDeadline {
		t.Errorf("Deadline %d not extended past %d", g.powerExpiresTick, firstDeadline)
	}
	if g.PowerTicksLeft() != g.powerTicks {
		t.Errorf("PowerTicksLeft = %d after refresh, expected %d", g.PowerTicksLeft(), g.powerTicks)
	}
}

func TestFrightenedCollisionEatsGhost(t *testing.T) {
	g := newTestGame(9)
	freezeGhosts(g)
	g.maze.EatAt(g.player.CurrentCell()) // keep scoring isolated

	victim := g.ghosts[0]
	victim.Frightened = true
	victim.Pos = g.player.Pos

	lives := g.lives
	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Gameplay.GhostScore {
		t.Errorf("Score = %d, expected %d for eaten ghost", g.score, g.cfg.Gameplay.GhostScore)
	}
	if victim.Alive {
		t.Error("Frightened ghost survived collision")
	}
	if g.lives != lives {
		t.Errorf("Lives = %d, frightened collision must not cost a life", g.lives)
	}
	if victim.respawnAtTick != g.tick+g.respawnTicks {
		t.Errorf("Respawn deadline = %d, expected %d", victim.respawnAtTick, g.tick+g.respawnTicks)
	}

	// The corpse overlaps the player for the whole respawn delay without
	// ever colliding, then revives at its spawn cell.
	for i := uint64(0); i < g.respawnTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if !victim.Alive {
		t.Fatal("Ghost did not respawn after its delay")
	}
	if victim.CurrentCell() != victim.SpawnCell() {
		t.Errorf("Ghost respawned at %v, expected %v", victim.CurrentCell(), victim.SpawnCell())
	}
	if g.lives != lives {
		t.Errorf("Lives = %d, dead ghost overlap must not collide", g.lives)
	}
}

func TestNormalCollisionLosesLifeAndResetsRound(t *testing.T) {
	g := newTestGame(13)
	freezeGhosts(g)

	// Stage the player away from spawn so the round reset is observable
	g.player.Pos = CellToWorld(core.Cell{Col: 1, Row: 3})
	g.maze.EatAt(core.Cell{Col: 1, Row: 3})
	g.powerExpiresTick = g.tick + 1000

	attacker := g.ghosts[0]
	attacker.Pos = g.player.Pos

	score := g.score
	dots := g.maze.RemainingDots()
	g.Step(core.NewInputFrame())

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("Lives = %d, expected %d", g.lives, g.cfg.Gameplay.Lives-1)
	}
	if g.gameOver {
		t.Error("Game over with lives remaining")
	}

	// Round reset: actors respawn, power-mode clears
	if g.player.Pos != CellToWorld(g.level.PlayerSpawn) {
		t.Errorf("Player at %v after reset, expected spawn center", g.player.Pos)
	}
	for i, gh := range g.ghosts {
		if gh.CurrentCell() != gh.SpawnCell() {
			t.Errorf("Ghost %d at %v after reset, expected %v", i, gh.CurrentCell(), gh.SpawnCell())
		}
		if !gh.Alive || gh.Frightened {
			t.Errorf("Ghost %d state after reset: alive=%v frightened=%v", i, gh.Alive, gh.Frightened)
		}
	}
	if g.PowerActive() {
		t.Error("Power-mode survived the round reset")
	}

	// Score and pellet progress survive the reset
	if g.score != score {
		t.Errorf("Score changed from %d to %d across round reset", score, g.score)
	}
	if g.maze.RemainingDots() != dots {
		t.Errorf("RemainingDots changed from %d to %d: round reset must not restore pellets", dots, g.maze.RemainingDots())
	}
}

func TestLastLifeFreezesGame(t *testing.T) {
	g := newTestGame(17)
	freezeGhosts(g)
	g.lives = 1

	g.player.Pos = CellToWorld(core.Cell{Col: 1, Row: 3})
	g.maze.EatAt(core.Cell{Col: 1, Row: 3})
	g.ghosts[0].Pos = g.player.Pos

	g.Step(core.NewInputFrame())

	if g.lives != 0 {
		t.Errorf("Lives = %d, expected 0", g.lives)
	}
	if !g.gameOver {
		t.Fatal("Game not over at zero lives")
	}
	if g.won {
		t.Error("Losing the last life must not count as a win")
	}

	// No round reset: the final positions stay on screen
	if g.player.CurrentCell() != (core.Cell{Col: 1, Row: 3}) {
		t.Errorf("Player moved to %v, expected frozen at (1,3)", g.player.CurrentCell())
	}
	if got := g.Snapshot().State; got != StateGameOver {
		t.Errorf("Snapshot state = %v, expected %v", got, StateGameOver)
	}

	// Further ticks are no-ops
	snap := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	snap.Tick = after.Tick // only the tick counter advances
	if !reflect.DeepEqual(snap, after) {
		t.Errorf("Frozen game mutated state:\n%+v\nvs\n%+v", snap, after)
	}
}

func TestPelletCountsOnFatalTick(t *testing.T) {
	g := newTestGame(23)
	freezeGhosts(g)

	// Pellet and ghost share the player's cell: the pellet is consumed
	// before the collision resolves.
	g.ghosts[0].Pos = g.player.Pos
	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Gameplay.PelletScore {
		t.Errorf("Score = %d, pellet on a fatal tick must still count", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("Lives = %d, expected %d", g.lives, g.cfg.Gameplay.Lives-1)
	}
}

func TestWinWhenBoardCleared(t *testing.T) {
	g := newTestGame(31)
	freezeGhosts(g)

	// Leave exactly one pellet, under the player
	for _, c := range g.maze.Pellets() {
		g.maze.EatAt(c)
	}
	for _, c := range g.maze.PowerPellets() {
		g.maze.EatAt(c)
	}
	g.maze.pellets[g.player.CurrentCell()] = true

	g.Step(core.NewInputFrame())

	if g.maze.RemainingDots() != 0 {
		t.Fatalf("RemainingDots = %d, expected 0", g.maze.RemainingDots())
	}
	if !g.won || !g.gameOver {
		t.Errorf("won=%v gameOver=%v, expected win on cleared board", g.won, g.gameOver)
	}
	if got := g.Snapshot().State; got != StateWin {
		t.Errorf("Snapshot state = %v, expected %v", got, StateWin)
	}
}

func TestFatalCollisionBeatsWinOnSameTick(t *testing.T) {
	g := newTestGame(37)
	freezeGhosts(g)
	g.lives = 1

	for _, c := range g.maze.Pellets() {
		g.maze.EatAt(c)
	}
	for _, c := range g.maze.PowerPellets() {
		g.maze.EatAt(c)
	}
	g.maze.pellets[g.player.CurrentCell()] = true
	g.ghosts[0].Pos = g.player.Pos

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Fatal("Game not over")
	}
	if g.won {
		t.Error("Dying on the last pellet must not count as a win")
	}
}

func TestCollisionThresholdBoundary(t *testing.T) {
	g := newTestGame(41)
	freezeGhosts(g)

	threshold := g.cfg.Actors.CollisionRadius * TileSize

	// Just outside the threshold: no collision
	g.ghosts[0].Pos = g.player.Pos
	g.ghosts[0].Pos.X += threshold + 0.1
	lives := g.lives
	g.collisionLogic()
	if g.lives != lives {
		t.Errorf("Collision outside threshold distance %v", threshold)
	}

	// Just inside: collision
	g.ghosts[0].Pos = g.player.Pos
	g.ghosts[0].Pos.X += threshold - 0.1
	g.collisionLogic()
	if g.lives != lives-1 {
		t.Errorf("No collision just inside threshold, lives = %d", g.lives)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(43)
	freezeGhosts(g)
	totalDots := g.maze.RemainingDots()

	// Lose the game with some progress on the board
	g.maze.EatAt(core.Cell{Col: 1, Row: 1})
	g.score = 120
	g.lives = 1
	g.ghosts[0].Pos = g.player.Pos
	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("Setup failed: game not over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Game still over after restart")
	}
	if g.score != 0 {
		t.Errorf("Score = %d after restart, expected 0", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Lives = %d after restart, expected %d", g.lives, g.cfg.Gameplay.Lives)
	}
	// Full restart rebuilds the board, unlike a round reset
	if g.maze.RemainingDots() != totalDots {
		t.Errorf("RemainingDots = %d after restart, expected %d", g.maze.RemainingDots(), totalDots)
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	g := newTestGame(47)
	freezeGhosts(g)

	g.Step(core.NewInputFrame())
	score := g.score

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.score != score {
		t.Error("Restart outside game over rebuilt the board")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(53)
	freezeGhosts(g)

	// Get the player moving
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Pause action did not pause")
	}

	pos := g.player.Pos
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Pos != pos {
		t.Error("Player moved while paused")
	}

	// Unpause resumes movement
	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	g.Step(core.NewInputFrame())
	if g.player.Pos == pos {
		t.Error("Player frozen after unpause")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")
	SetMaze(1)

	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     1,
		ScreenW:  10,
		ScreenH:  5,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Fatal("10x5 screen should be too small for the classic board")
	}

	pos := g.player.Pos
	g.Step(core.NewInputFrame())
	if g.player.Pos != pos {
		t.Error("Simulation advanced on a too-small screen")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("Snapshot state = %v, expected %v", got, StatePausedSmall)
	}
}

func TestMazeSelection(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")
	SetMaze(2)
	defer SetMaze(0)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if g.level.Name != "Crossroads" {
		t.Errorf("Maze = %q, expected Crossroads for selection 2", g.level.Name)
	}
	if len(g.ghosts) != len(g.level.GhostSpawns) {
		t.Errorf("Ghost count = %d, expected %d", len(g.ghosts), len(g.level.GhostSpawns))
	}
}
