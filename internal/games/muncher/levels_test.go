package muncher

import (
	"testing"

	"github.com/vovakirdan/muncher/internal/core"
)

func TestLevelsAreWellFormed(t *testing.T) {
	for _, level := range Levels {
		t.Run(level.Name, func(t *testing.T) {
			if len(level.Layout) == 0 {
				t.Fatal("Empty layout")
			}

			width := len(level.Layout[0])
			for i, row := range level.Layout {
				if len(row) != width {
					t.Errorf("Row %d has width %d, expected %d", i, len(row), width)
				}
			}

			m := NewMaze(level.Layout)

			// Solid border: actors can never escape the grid
			for c := 0; c < m.Cols(); c++ {
				if !m.IsWall(core.Cell{Col: c, Row: 0}) || !m.IsWall(core.Cell{Col: c, Row: m.Rows() - 1}) {
					t.Errorf("Open border cell in column %d", c)
				}
			}
			for r := 0; r < m.Rows(); r++ {
				if !m.IsWall(core.Cell{Col: 0, Row: r}) || !m.IsWall(core.Cell{Col: m.Cols() - 1, Row: r}) {
					t.Errorf("Open border cell in row %d", r)
				}
			}

			// Spawns sit on open cells
			if m.IsWall(level.PlayerSpawn) {
				t.Errorf("Player spawn %v is a wall", level.PlayerSpawn)
			}
			for i, spawn := range level.GhostSpawns {
				if m.IsWall(spawn) {
					t.Errorf("Ghost spawn %d at %v is a wall", i, spawn)
				}
			}

			if m.RemainingDots() == 0 {
				t.Error("Level has nothing to eat")
			}
		})
	}
}

func TestLevelsFullyReachable(t *testing.T) {
	// Every pellet must be reachable from the player spawn, or the board
	// can never be cleared.
	for _, level := range Levels {
		t.Run(level.Name, func(t *testing.T) {
			m := NewMaze(level.Layout)

			visited := map[core.Cell]bool{level.PlayerSpawn: true}
			queue := []core.Cell{level.PlayerSpawn}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range m.OpenNeighbors(cur) {
					if !visited[n] {
						visited[n] = true
						queue = append(queue, n)
					}
				}
			}

			for _, c := range m.Pellets() {
				if !visited[c] {
					t.Errorf("Pellet at %v unreachable from player spawn", c)
				}
			}
			for _, c := range m.PowerPellets() {
				if !visited[c] {
					t.Errorf("Power pellet at %v unreachable from player spawn", c)
				}
			}
			for i, spawn := range level.GhostSpawns {
				if !visited[spawn] {
					t.Errorf("Ghost spawn %d at %v is isolated from the player", i, spawn)
				}
			}
		})
	}
}

func TestGetLevelBounds(t *testing.T) {
	if GetLevel(-1) != nil {
		t.Error("GetLevel(-1) should be nil")
	}
	if GetLevel(LevelCount()) != nil {
		t.Error("GetLevel past the end should be nil")
	}
	if GetLevel(0) == nil {
		t.Error("GetLevel(0) should return the classic board")
	}

	names := LevelNames()
	if len(names) != LevelCount() {
		t.Errorf("LevelNames returned %d names for %d levels", len(names), LevelCount())
	}
}
