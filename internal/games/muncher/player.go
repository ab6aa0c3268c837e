package muncher

import (
	"github.com/vovakirdan/muncher/internal/core"
)

// Player is the user-controlled actor. Input sets a buffered pending
// direction which is committed opportunistically at cell centers, so a turn
// can be requested before the intersection is reached.
type Player struct {
	Actor
	pending Direction
}

// NewPlayer creates a player at the given spawn cell, initially stopped.
func NewPlayer(spawn core.Cell, speed float64) *Player {
	return &Player{
		Actor:   newActor(spawn, speed),
		pending: DirStop,
	}
}

// HandleInput buffers a steering intent. Later intents replace earlier
// ones; the buffer persists across ticks until committed. Non-steering
// actions are ignored without mutating state.
func (p *Player) HandleInput(a core.Action) {
	if d, ok := DirectionFromAction(a); ok {
		p.pending = d
	}
}

// PendingDir returns the buffered direction, for snapshots and tests.
func (p *Player) PendingDir() Direction {
	return p.pending
}

// Update commits the pending direction if the player is centered and the
// target cell is open, then performs wall-constrained stepping.
func (p *Player) Update(m *Maze) {
	if p.pending != DirStop && p.pending != p.Dir && p.Centered() {
		dc, dr := p.pending.Delta()
		if !m.IsWall(p.CurrentCell().Add(dc, dr)) {
			p.SnapToCenter()
			p.Dir = p.pending
		}
	}
	p.Move(m)
}
