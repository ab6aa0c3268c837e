package muncher

import (
	"math/rand"

	"github.com/vovakirdan/muncher/internal/core"
)

// Ghost is a roaming adversary. Its movement is a memoryless random walk:
// at each cell center it picks uniformly among open, non-reversing
// directions. Only its threat state (frightened) changes during power-mode,
// never its policy.
//
// State machine: alive-normal, alive-frightened, dead-awaiting-respawn.
type Ghost struct {
	Actor
	Color      core.Color
	Alive      bool
	Frightened bool

	spawnCell     core.Cell
	respawnAtTick uint64 // 0 = no pending respawn
}

// NewGhost creates a ghost at its spawn cell with a random initial
// direction drawn from the open neighbors.
func NewGhost(m *Maze, spawn core.Cell, speed float64, color core.Color, rng *rand.Rand) *Ghost {
	g := &Ghost{
		Actor:     newActor(spawn, speed),
		Color:     color,
		Alive:     true,
		spawnCell: spawn,
	}
	g.Dir = randomOpenDir(m, spawn, rng)
	return g
}

// randomOpenDir picks a uniformly random open direction at the cell.
// Falls back to DirStop for a fully enclosed cell.
func randomOpenDir(m *Maze, c core.Cell, rng *rand.Rand) Direction {
	open := m.OpenDirections(c)
	if len(open) == 0 {
		return DirStop
	}
	return open[rng.Intn(len(open))]
}

// SpawnCell returns the fixed respawn cell.
func (g *Ghost) SpawnCell() core.Cell {
	return g.spawnCell
}

// chooseDirection applies the random-walk policy at a cell center: open
// neighbor directions, excluding the reverse of the current direction
// unless a dead end forces reversal.
func (g *Ghost) chooseDirection(m *Maze, rng *rand.Rand) Direction {
	open := m.OpenDirections(g.CurrentCell())
	if len(open) == 0 {
		return g.Dir.Opposite()
	}
	if len(open) == 1 {
		return open[0]
	}

	reverse := g.Dir.Opposite()
	candidates := open[:0]
	for _, d := range open {
		if d != reverse {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return reverse
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}

// Update advances a living ghost: re-decide direction at cell centers,
// then step. Dead ghosts do not move.
func (g *Ghost) Update(m *Maze, rng *rand.Rand) {
	if !g.Alive {
		return
	}
	if g.Centered() {
		g.SnapToCenter()
		g.Dir = g.chooseDirection(m, rng)
	}
	g.Move(m)
}

// Kill transitions the ghost to dead-awaiting-respawn and arms the respawn
// deadline. While dead the ghost neither moves nor collides.
func (g *Ghost) Kill(respawnAt uint64) {
	g.Alive = false
	g.Frightened = false
	g.respawnAtTick = respawnAt
}

// MaybeRespawn revives the ghost once its deadline has passed. A deadline
// firing for an already-alive ghost (stale after a round reset) is a no-op.
func (g *Ghost) MaybeRespawn(tick uint64, m *Maze, rng *rand.Rand) {
	if g.Alive || g.respawnAtTick == 0 || tick < g.respawnAtTick {
		return
	}
	g.respawnAtTick = 0
	g.reviveAtSpawn(m, rng)
}

// ResetToSpawn puts the ghost back at its spawn cell with a fresh random
// direction and cancels any pending respawn deadline. Used by round reset.
func (g *Ghost) ResetToSpawn(m *Maze, rng *rand.Rand) {
	g.respawnAtTick = 0
	g.reviveAtSpawn(m, rng)
}

func (g *Ghost) reviveAtSpawn(m *Maze, rng *rand.Rand) {
	g.Pos = CellToWorld(g.spawnCell)
	g.Dir = randomOpenDir(m, g.spawnCell, rng)
	g.Alive = true
	g.Frightened = false
}
