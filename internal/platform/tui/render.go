package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

// Smallest terminal the game view is drawn in.
const (
	minScreenW = 40
	minScreenH = 12
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Palette() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// tooSmall is shown instead of the game when the terminal cannot fit it.
func tooSmall(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("Terminal too small - resize to at least 40×12")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
