package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorOrangeRed: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")),
	core.ColorRoyalBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#4169E1")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	core.ColorLimeGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8B4513")),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF69B4")),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9370DB")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
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

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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
