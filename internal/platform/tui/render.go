package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSilver:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

var (
	playfieldBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	clearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

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

// RenderPlayfield wraps the rendered screen in the playfield border.
func RenderPlayfield(s *core.Screen) string {
	return playfieldBorder.Render(RenderScreen(s))
}

// RenderStatus formats the one-line status bar under the playfield.
func RenderStatus(stats shooter.Stats, paused bool) string {
	elapsed := time.Duration(stats.ElapsedMs * float64(time.Millisecond)).Truncate(time.Second)
	line := statusStyle.Render(fmt.Sprintf("targets %d  shots %d  time %s",
		stats.TargetsRemaining, stats.ShotsFired, elapsed))

	switch {
	case paused:
		line += "  " + pausedStyle.Render("PAUSED")
	case stats.Cleared:
		line += "  " + clearStyle.Render("CLEARED")
	}
	return line
}

// playfieldCells picks the largest grid with the playfield's aspect ratio
// that fits in avail columns x rows. Terminal cells are about twice as tall
// as they are wide.
func playfieldCells(availW, availH int, width, height float64) (cols, rows int) {
	if availW < 1 || availH < 1 {
		return 1, 1
	}
	ratio := 2 * width / height // columns per row

	rows = availH
	cols = int(float64(rows)*ratio + 0.5)
	if cols > availW {
		cols = availW
		rows = int(float64(cols)/ratio + 0.5)
	}
	return max(cols, 1), max(rows, 1)
}
