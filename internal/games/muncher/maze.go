package muncher

import (
	"github.com/vovakirdan/muncher/internal/core"
)

// Layout characters for built-in mazes.
const (
	LayoutWall   = '#'
	LayoutPellet = '.'
	LayoutPower  = 'o'
	LayoutOpen   = ' '
)

// Item is a consumable found at a maze cell.
type Item int

const (
	ItemNone Item = iota
	ItemPellet
	ItemPower
)

// Maze holds the immutable wall grid and the mutable consumable sets.
// Walls never change for the lifetime of the maze; pellet sets shrink
// monotonically until the maze is rebuilt by a full restart.
type Maze struct {
	cols    int
	rows    int
	walls   [][]bool
	pellets map[core.Cell]bool
	power   map[core.Cell]bool
}

// NewMaze parses a string layout into a maze. Rows may have differing
// lengths; missing trailing cells are treated as open.
func NewMaze(layout []string) *Maze {
	m := &Maze{
		rows:    len(layout),
		pellets: make(map[core.Cell]bool),
		power:   make(map[core.Cell]bool),
	}
	for _, row := range layout {
		if len(row) > m.cols {
			m.cols = len(row)
		}
	}

	m.walls = make([][]bool, m.rows)
	for r := range m.walls {
		m.walls[r] = make([]bool, m.cols)
	}

	for r, row := range layout {
		for c, ch := range row {
			cell := core.Cell{Col: c, Row: r}
			switch ch {
			case LayoutWall:
				m.walls[r][c] = true
			case LayoutPellet:
				m.pellets[cell] = true
			case LayoutPower:
				m.power[cell] = true
			}
		}
	}
	return m
}

// Cols returns the maze width in cells.
func (m *Maze) Cols() int {
	return m.cols
}

// Rows returns the maze height in cells.
func (m *Maze) Rows() int {
	return m.rows
}

// InBounds reports whether the cell lies inside the grid.
func (m *Maze) InBounds(c core.Cell) bool {
	return c.Col >= 0 && c.Col < m.cols && c.Row >= 0 && c.Row < m.rows
}

// IsWall reports whether the cell blocks movement. Out-of-bounds cells are
// walls: the maze is a hard boundary with no wraparound.
func (m *Maze) IsWall(c core.Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.walls[c.Row][c.Col]
}

// HasPellet reports whether a regular pellet remains at the cell.
func (m *Maze) HasPellet(c core.Cell) bool {
	return m.pellets[c]
}

// HasPower reports whether a power pellet remains at the cell.
func (m *Maze) HasPower(c core.Cell) bool {
	return m.power[c]
}

// EatAt consumes whatever sits at the cell and returns it. A cell is
// consumed at most once: repeat calls return ItemNone.
func (m *Maze) EatAt(c core.Cell) Item {
	if m.pellets[c] {
		delete(m.pellets, c)
		return ItemPellet
	}
	if m.power[c] {
		delete(m.power, c)
		return ItemPower
	}
	return ItemNone
}

// RemainingDots returns the total count of both consumable sets.
// The round is won when this reaches zero.
func (m *Maze) RemainingDots() int {
	return len(m.pellets) + len(m.power)
}

// OpenNeighbors returns the up/down/left/right neighbors that are not walls.
func (m *Maze) OpenNeighbors(c core.Cell) []core.Cell {
	var out []core.Cell
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dc, dr := d.Delta()
		n := c.Add(dc, dr)
		if !m.IsWall(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenDirections returns the directions whose neighbor cell is open.
func (m *Maze) OpenDirections(c core.Cell) []Direction {
	var out []Direction
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dc, dr := d.Delta()
		if !m.IsWall(c.Add(dc, dr)) {
			out = append(out, d)
		}
	}
	return out
}

// Pellets returns the remaining pellet cells, for rendering and snapshots.
func (m *Maze) Pellets() []core.Cell {
	out := make([]core.Cell, 0, len(m.pellets))
	for c := range m.pellets {
		out = append(out, c)
	}
	return out
}

// PowerPellets returns the remaining power pellet cells.
func (m *Maze) PowerPellets() []core.Cell {
	out := make([]core.Cell, 0, len(m.power))
	for c := range m.power {
		out = append(out, c)
	}
	return out
}
