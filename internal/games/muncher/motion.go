package muncher

import (
	"math"

	"github.com/vovakirdan/muncher/internal/core"
)

// TileSize is the width and height of one maze cell in world units.
// Actors move in continuous world coordinates; the maze is discrete.
const TileSize = 64.0

// CenterEps is the base tolerance for considering an actor aligned to a
// cell's midpoint. Actors moving faster than one unit per tick widen the
// window to their per-tick step so the centered state cannot be skipped.
const CenterEps = 0.5

// Direction is one of the five legal movement directions.
type Direction int

const (
	DirStop Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (column, row) step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction. DirStop reverses to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirStop
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirStop:
		return "stop"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a steering intent to a direction.
// Non-steering actions are rejected so invalid input never mutates state.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirStop, false
}

// CellToWorld maps a discrete cell to the world coordinate of its center.
func CellToWorld(c core.Cell) core.Vec {
	return core.Vec{
		X: float64(c.Col)*TileSize + TileSize/2,
		Y: float64(c.Row)*TileSize + TileSize/2,
	}
}

// WorldToCell maps a world position to its containing cell, floor-based.
func WorldToCell(p core.Vec) core.Cell {
	return core.Cell{
		Col: int(math.Floor(p.X / TileSize)),
		Row: int(math.Floor(p.Y / TileSize)),
	}
}

// IsCentered reports whether the position is aligned to its cell's midpoint
// within the base tolerance, in both axes.
func IsCentered(p core.Vec) bool {
	return IsCenteredWithin(p, CenterEps)
}

// IsCenteredWithin is IsCentered with an explicit tolerance. Callers that
// move more than one unit per tick pass half their per-tick step so a cell
// center is observed exactly once per cell traversal.
func IsCenteredWithin(p core.Vec, eps float64) bool {
	center := CellToWorld(WorldToCell(p))
	return math.Abs(p.X-center.X) < eps && math.Abs(p.Y-center.Y) < eps
}
