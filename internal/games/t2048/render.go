package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 4

	boardWidth  = BoardSize*cellWidth + 1  // +1 for right border
	boardHeight = BoardSize*cellHeight + 1 // +1 for bottom border
)

// TileColor returns the display color of a tile value.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	return core.TileColorForExp(bits.TrailingZeros(uint(value)))
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Board is centered horizontally below the HUD
	board := core.NewRect((g.screenW-boardWidth)/2, hudHeight, boardWidth, boardHeight)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	controls := g.Controls()
	dst.DrawTextColored((g.screenW-len(controls))/2, board.Bottom()+1, controls, core.ColorDim)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorAccent)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	if g.lastGain > 0 {
		scoreStr += fmt.Sprintf(" (+%d)", g.lastGain)
	}
	dst.DrawText(board.X, 1, scoreStr)

	// Level/Target info (campaign) or Max tile (endless)
	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Lv %d/%d  Goal %d", g.levelIndex+1, len(g.levels), g.currentTarget)
	} else {
		infoStr = fmt.Sprintf("Max: %d", MaxTile(g.session.Board()))
	}
	dst.DrawText(core.Max(board.X, board.Right()-len(infoStr)), 2, infoStr)

	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawText(board.X, 2, modeStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorDim)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorDim)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorDim)
				}
			}
		}
	}

	b := g.session.Board()
	for row := range BoardSize {
		for col := range BoardSize {
			val := b.Get(row, col)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)

			cellX := board.X + col*cellWidth + 1 + padLeft
			cellY := board.Y + row*cellHeight + cellHeight/2
			dst.DrawTextColored(cellX, cellY, valStr, TileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, core.ColorAccent, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= len(g.levels)-1 {
			g.drawOverlay(dst, cx, cy, core.ColorAccent, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, cx, cy, core.ColorAccent, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, cx, cy, core.ColorAccent, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
		return
	}

	if g.session.GameOver() {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.session.Board()))
		g.drawOverlay(dst, cx, cy, core.ColorWarn, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box. The first line is the headline.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, headline core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = headline
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL or drag: Move | P: Pause | R: Restart | Q: Quit"
}
