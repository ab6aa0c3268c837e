package muncher

import (
	"fmt"

	"github.com/vovakirdan/muncher/internal/core"
)

// cellW is how many screen columns one maze cell occupies. Terminal cells
// are roughly twice as tall as wide, so two columns per cell keeps the
// maze square-ish.
const cellW = 2

// Glyphs for maze elements.
const (
	wallGlyph   = '█'
	pelletGlyph = '·'
	powerGlyph  = '●'
	playerGlyph = 'C'
	ghostGlyph  = 'Ω'
	eyesGlyph   = '"'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: score, lives and the power timer.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Muncher  Score: %d  Lives: %d  Maze: %s", g.score, g.lives, g.level.Name)
	if g.PowerActive() {
		secs := g.PowerTicksLeft() / uint64(g.runtime.TickRate)
		hud += fmt.Sprintf("  Power: %ds", secs)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// screenCell maps a maze cell to its left screen column and row.
func (g *Game) screenCell(c core.Cell) (int, int) {
	return g.mapOffsetX + c.Col*cellW, g.mapOffsetY + c.Row
}

// screenPos maps a continuous world position to a screen column and row.
func (g *Game) screenPos(p core.Vec) (int, int) {
	x := g.mapOffsetX + int(p.X/TileSize*cellW)
	y := g.mapOffsetY + int(p.Y/TileSize)
	return x, y
}

// renderMaze draws walls and the remaining consumables.
func (g *Game) renderMaze(dst *core.Screen) {
	for r := 0; r < g.maze.Rows(); r++ {
		for c := 0; c < g.maze.Cols(); c++ {
			cell := core.Cell{Col: c, Row: r}
			if !g.maze.IsWall(cell) {
				continue
			}
			sx, sy := g.screenCell(cell)
			for i := 0; i < cellW; i++ {
				dst.SetColored(sx+i, sy, wallGlyph, core.ColorBlue)
			}
		}
	}

	for _, cell := range g.maze.Pellets() {
		sx, sy := g.screenCell(cell)
		dst.SetColored(sx+cellW/2, sy, pelletGlyph, core.ColorWhite)
	}
	for _, cell := range g.maze.PowerPellets() {
		sx, sy := g.screenCell(cell)
		dst.SetColored(sx+cellW/2, sy, powerGlyph, core.ColorOrange)
	}
}

// renderGhosts draws living ghosts at their continuous positions and an
// eyes marker at the spawn cell for dead ones.
func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range g.ghosts {
		if !gh.Alive {
			sx, sy := g.screenCell(gh.SpawnCell())
			dst.SetColored(sx+cellW/2, sy, eyesGlyph, core.ColorGray)
			continue
		}
		color := gh.Color
		if gh.Frightened {
			color = core.ColorBrightBlue
		}
		sx, sy := g.screenPos(gh.Pos)
		dst.SetColored(sx, sy, ghostGlyph, color)
	}
}

// renderPlayer draws the player on top of everything else.
func (g *Game) renderPlayer(dst *core.Screen) {
	sx, sy := g.screenPos(g.player.Pos)
	dst.SetColored(sx, sy, playerGlyph, core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
