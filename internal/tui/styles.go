package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/picalc/internal/ui"
)

// Styles are rebuilt from the active ui palette by initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	lcdStyle           lipgloss.Style
	lcdLegendStyle     lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusStoppedStyle lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	digitsStyle        lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles must run again after ui.InitTheme changes the palette.
func initTUIStyles() {
	c := ui.Active().Colors
	fg := func(color lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(color)
	}

	panelStyle = fg(c.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(0, 1)
	headerStyle = fg(c.Accent).Bold(true).Padding(0, 1)
	titleStyle = fg(c.Accent).Bold(true)
	versionStyle = fg(c.Dim)

	lcdStyle = fg(c.LCD).Width(displayWidth)
	lcdLegendStyle = fg(c.Dim).Width(displayWidth)

	metricLabelStyle = fg(c.Dim)
	metricValueStyle = fg(c.Accent).Bold(true)

	statusRunningStyle = fg(c.LCD).Bold(true)
	statusStoppedStyle = fg(c.Warning).Bold(true)
	statusDoneStyle = fg(c.Accent).Bold(true)
	statusErrorStyle = fg(c.Error).Bold(true)

	digitsStyle = fg(c.Info)
	cpuSparklineStyle = fg(c.Accent)
	memSparklineStyle = fg(c.Warning)
}
