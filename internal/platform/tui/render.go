package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// kindColors assigns each tetromino its classic color.
var kindColors = map[game.PieceKind]core.Color{
	game.KindI: core.ColorBrightCyan,
	game.KindO: core.ColorBrightYellow,
	game.KindT: core.ColorBrightMagenta,
	game.KindS: core.ColorBrightGreen,
	game.KindZ: core.ColorBrightRed,
	game.KindJ: core.ColorBrightBlue,
	game.KindL: core.ColorOrange,
}

// cellWidth is how many screen columns one playfield cell occupies. Terminal
// cells are roughly twice as tall as wide, so two columns per cell keeps the
// well square-ish.
const cellWidth = 2

// Draw renders a game snapshot into the screen buffer.
func Draw(dst *core.Screen, snap game.Snapshot, highScore int) {
	dst.Clear()

	boardW := 0
	boardH := len(snap.Grid)
	if boardH > 0 {
		boardW = len(snap.Grid[0])
	}

	wellW := boardW*cellWidth + 2 // inner cells plus border
	wellH := boardH + 2
	minW := wellW + 16 // side panel
	if dst.Width() < minW || dst.Height() < wellH+2 {
		drawCenteredOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	drawHUD(dst, snap)

	wellX := (dst.Width() - minW) / 2 // left edge of well border
	wellY := 2
	if wellY+wellH > dst.Height() {
		wellY = dst.Height() - wellH
	}
	innerX := wellX + 1
	innerY := wellY + 1

	dst.DrawBox(wellX, wellY, wellW, wellH)
	drawGrid(dst, snap, innerX, innerY)

	panelX := wellX + wellW + 3
	drawStats(dst, snap, highScore, panelX, innerY)
	drawPreview(dst, snap.Queue, panelX, innerY+6)

	switch {
	case snap.Phase == game.PhaseGameOver:
		drawWellOverlay(dst, innerX, innerY, boardW, boardH, "GAME OVER", "Press R to restart")
	case snap.Paused:
		drawWellOverlay(dst, innerX, innerY, boardW, boardH, "PAUSED", "Press P to continue")
	}

	drawKeyHints(dst)
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d  Level: %d", snap.Score, snap.Lines, snap.Level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawGrid draws settled cells and the falling piece inside the well.
func drawGrid(dst *core.Screen, snap game.Snapshot, innerX, innerY int) {
	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell.Empty() {
				continue
			}
			drawBlock(dst, innerX, innerY, x, y, kindColors[cell.Kind()])
		}
	}
	for _, p := range snap.PieceCells {
		if p.Y < 0 {
			continue
		}
		drawBlock(dst, innerX, innerY, p.X, p.Y, kindColors[snap.PieceKind])
	}
}

// drawBlock fills one playfield cell with a colored block pair.
func drawBlock(dst *core.Screen, innerX, innerY, col, row int, color core.Color) {
	sx := innerX + col*cellWidth
	sy := innerY + row
	for i := range cellWidth {
		dst.SetCell(sx+i, sy, '█', color)
	}
}

// drawStats draws the score panel next to the well.
func drawStats(dst *core.Screen, snap game.Snapshot, highScore, x, y int) {
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Lines  %d", snap.Lines))
	dst.DrawText(x, y+2, fmt.Sprintf("Level  %d", snap.Level))
	if highScore > 0 {
		dst.DrawTextColored(x, y+3, fmt.Sprintf("Best   %d", highScore), core.ColorBrightYellow)
	}
}

// drawPreview draws the upcoming pieces, rotation 0, stacked vertically.
func drawPreview(dst *core.Screen, queue []game.PieceKind, x, y int) {
	dst.DrawText(x, y, "Next")
	for i, kind := range queue {
		for _, p := range game.Shape(kind, 0) {
			sx := x + p.X*cellWidth
			sy := y + 2 + i*3 + p.Y
			for j := range cellWidth {
				dst.SetCell(sx+j, sy, '█', kindColors[kind])
			}
		}
	}
}

// drawWellOverlay prints a message centered over the playfield.
func drawWellOverlay(dst *core.Screen, innerX, innerY, boardW, boardH int, title, hint string) {
	cx := innerX + boardW*cellWidth/2
	cy := innerY + boardH/2 - 1
	dst.DrawTextColored(cx-len(title)/2, cy, title, core.ColorBrightWhite)
	dst.DrawTextColored(cx-len(hint)/2, cy+2, hint, core.ColorGray)
}

// drawCenteredOverlay prints a message centered on the whole screen.
func drawCenteredOverlay(dst *core.Screen, title, hint string) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, title)
	dst.DrawTextCentered(cy+1, hint)
}

// drawKeyHints draws the key legend on the bottom row.
func drawKeyHints(dst *core.Screen) {
	hints := " ←/→ move  ↓ soft drop  space hard drop  ↑/x rotate  z ccw  p pause  r restart  q quit"
	dst.DrawTextColored(0, dst.Height()-1, hints, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
