package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSky:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorCloud:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorPipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeDark: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorPipeCap:  lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	core.ColorBird:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorBirdFlap: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGrass:    lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	core.ColorDanger:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen turns the screen into styled text, one line per row.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y, styling each run of same-colored cells once.
// Default-colored runs are written unstyled.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run []rune
	runColor := core.ColorDefault
	flush := func() {
		if len(run) == 0 {
			return
		}
		if style, ok := colorStyles[runColor]; ok && runColor != core.ColorDefault {
			sb.WriteString(style.Render(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}
