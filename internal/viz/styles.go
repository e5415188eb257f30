package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(42)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func headerStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Accent).Bold(true).MarginBottom(1)
}

func valueStyle(th Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Text)
}

// ProgressBar renders the fraction of the flight shown so far.
func ProgressBar(percent float64, width int, th Theme) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	done := lipgloss.NewStyle().Foreground(th.Trail).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(th.Muted).Render(strings.Repeat("░", width-filled))
	return done + rest
}
