package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const sysHistory = 20

// FooterModel renders system usage sparklines and the key help.
type FooterModel struct {
	cpu   *Trend
	mem   *Trend
	heap  uint64
	help  help.Model
	keys  KeyMap
	width int
}

// NewFooterModel creates a footer for the given key map.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{
		cpu:  NewTrend(sysHistory),
		mem:  NewTrend(sysHistory),
		help: help.New(),
		keys: keys,
	}
}

// UpdateSysStats appends one sample of system usage.
func (f *FooterModel) UpdateSysStats(msg SysStatsMsg) {
	f.cpu.Push(msg.CPUPercent)
	f.mem.Push(msg.MemPercent)
	f.heap = msg.HeapAlloc
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// View renders the footer.
func (f FooterModel) View() string {
	usage := metricLabelStyle.Render("CPU ") +
		cpuSparklineStyle.Render(Sparkline(f.cpu.Values())) +
		metricValueStyle.Render(fmt.Sprintf(" %3.0f%%", f.cpu.Last())) +
		metricLabelStyle.Render("  MEM ") +
		memSparklineStyle.Render(Sparkline(f.mem.Values())) +
		metricValueStyle.Render(fmt.Sprintf(" %3.0f%%", f.mem.Last())) +
		metricLabelStyle.Render("  Heap ") +
		metricValueStyle.Render(formatBytes(f.heap))
	return lipgloss.JoinVertical(lipgloss.Left, usage, f.help.View(f.keys))
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
