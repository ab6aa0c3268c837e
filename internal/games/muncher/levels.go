package muncher

import "github.com/vovakirdan/muncher/internal/core"

// Level is a built-in maze definition. Mazes are compiled in; there is no
// file-based maze loading.
type Level struct {
	Name        string
	Layout      []string
	PlayerSpawn core.Cell
	GhostSpawns []core.Cell
}

// Levels holds all built-in mazes. Index 0 is the classic 7x7 board.
var Levels = []Level{
	{
		Name: "Classic",
		Layout: []string{
			"#######",
			"#..o..#",
			"#.###.#",
			"#.....#",
			"#o###o#",
			"#.....#",
			"#######",
		},
		PlayerSpawn: core.Cell{Col: 3, Row: 3},
		GhostSpawns: []core.Cell{
			{Col: 3, Row: 1},
			{Col: 3, Row: 5},
		},
	},
	{
		Name: "Crossroads",
		Layout: []string{
			"###########",
			"#....#....#",
			"#.##.#.##.#",
			"#o.......o#",
			"#.##.#.##.#",
			"#....#....#",
			"#.##.#.##.#",
			"#o...#...o#",
			"###########",
		},
		PlayerSpawn: core.Cell{Col: 5, Row: 3},
		GhostSpawns: []core.Cell{
			{Col: 1, Row: 1},
			{Col: 9, Row: 1},
			{Col: 2, Row: 7},
		},
	},
	{
		Name: "Arena",
		Layout: []string{
			"###############",
			"#o...........o#",
			"#.##.#####.##.#",
			"#.#.........#.#",
			"#.#.##.#.##.#.#",
			"#......#......#",
			"#.#.##.#.##.#.#",
			"#.#.........#.#",
			"#.##.#####.##.#",
			"#o...........o#",
			"###############",
		},
		PlayerSpawn: core.Cell{Col: 6, Row: 5},
		GhostSpawns: []core.Cell{
			{Col: 3, Row: 1},
			{Col: 11, Row: 1},
			{Col: 3, Row: 9},
			{Col: 11, Row: 9},
		},
	},
}

// LevelCount returns the number of built-in mazes.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index, or nil if out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all built-in mazes.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
