package muncher

import (
	"github.com/vovakirdan/muncher/internal/core"
)

// Actor holds the continuous position, direction and speed shared by the
// player and the ghosts. Movement is wall-constrained: an actor's resolved
// cell is never a wall, by construction of canStep.
type Actor struct {
	Pos    core.Vec
	Dir    Direction
	Speed  float64 // world units per tick
	Radius float64 // collision/render radius in world units
}

func newActor(spawn core.Cell, speed float64) Actor {
	return Actor{
		Pos:    CellToWorld(spawn),
		Dir:    DirStop,
		Speed:  speed,
		Radius: TileSize * 0.35,
	}
}

// CurrentCell returns the cell containing the actor's position.
func (a *Actor) CurrentCell() core.Cell {
	return WorldToCell(a.Pos)
}

// centerEps is the centered tolerance for this actor: at least CenterEps,
// widened to half the per-tick step so fast actors still observe every
// cell center exactly once per traversal.
func (a *Actor) centerEps() float64 {
	if half := a.Speed / 2; half > CenterEps {
		return half
	}
	return CenterEps
}

// Centered reports whether the actor may commit a direction change.
func (a *Actor) Centered() bool {
	return IsCenteredWithin(a.Pos, a.centerEps())
}

// SnapToCenter aligns the actor to the midpoint of its current cell.
// Called when a direction decision is committed so lane alignment does not
// drift at fractional speeds. The cell is unchanged, so the non-wall
// invariant holds.
func (a *Actor) SnapToCenter() {
	a.Pos = CellToWorld(a.CurrentCell())
}

// canStep reports whether the actor may advance dist units in its current
// direction. Two checks: the post-step position must resolve to an open
// cell, and when the cell ahead is a wall the step must not carry the actor
// past its cell's center. Together these prevent clipping through corners
// at fractional speeds and stop actors at the decision point before a wall.
func (a *Actor) canStep(m *Maze, dist float64) bool {
	dc, dr := a.Dir.Delta()
	next := core.Vec{
		X: a.Pos.X + float64(dc)*dist,
		Y: a.Pos.Y + float64(dr)*dist,
	}
	if m.IsWall(WorldToCell(next)) {
		return false
	}

	cell := a.CurrentCell()
	if m.IsWall(cell.Add(dc, dr)) {
		center := CellToWorld(cell)
		past := float64(dc)*(next.X-center.X) + float64(dr)*(next.Y-center.Y)
		if past > 0 {
			return false
		}
	}
	return true
}

// Move advances the actor by Speed units along its current direction,
// decomposed into one-unit steps plus a fractional remainder, each step
// individually wall-checked. A blocked actor keeps its direction and simply
// stops; choosing a new direction is the job of the player/ghost update.
func (a *Actor) Move(m *Maze) {
	if a.Dir == DirStop {
		return
	}
	dc, dr := a.Dir.Delta()

	steps := int(a.Speed)
	for i := 0; i < steps; i++ {
		if !a.canStep(m, 1) {
			return
		}
		a.Pos.X += float64(dc)
		a.Pos.Y += float64(dr)
	}

	if frac := a.Speed - float64(steps); frac > 0 && a.canStep(m, frac) {
		a.Pos.X += float64(dc) * frac
		a.Pos.Y += float64(dr) * frac
	}
}
