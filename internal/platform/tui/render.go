package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// colorStyles maps palette entries to terminal styles. Tiles warm up from
// grey to red, then go gold; 128 and up are bold.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorDim:       fg("240"),
	core.ColorAccent:    fg("229").Bold(true),
	core.ColorWarn:      fg("196").Bold(true),
	core.ColorTile2:     fg("252"),
	core.ColorTile4:     fg("230"),
	core.ColorTile8:     fg("215"),
	core.ColorTile16:    fg("209"),
	core.ColorTile32:    fg("203"),
	core.ColorTile64:    fg("196"),
	core.ColorTile128:   fg("221").Bold(true),
	core.ColorTile256:   fg("220").Bold(true),
	core.ColorTile512:   fg("214").Bold(true),
	core.ColorTile1024:  fg("178").Bold(true),
	core.ColorTile2048:  fg("226").Bold(true),
	core.ColorTileSuper: fg("201").Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
