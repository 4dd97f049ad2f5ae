package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/picalc/internal/supervisor"
)

// HeaderModel renders the top bar: title, version and computation state.
type HeaderModel struct {
	version string
	snap    supervisor.Snapshot
	failed  bool
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetSnapshot updates the state shown on the right.
func (h *HeaderModel) SetSnapshot(s supervisor.Snapshot) {
	h.snap = s
}

// SetFailed marks the background tasks as failed.
func (h *HeaderModel) SetFailed(failed bool) {
	h.failed = failed
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// status returns the rendered state badge.
func (h HeaderModel) status() string {
	switch {
	case h.failed:
		return statusErrorStyle.Render("FAILED")
	case h.snap.State == supervisor.Running && h.snap.Converged:
		return statusDoneStyle.Render("CONVERGED")
	case h.snap.State == supervisor.Running:
		return statusRunningStyle.Render("RUNNING")
	default:
		return statusStoppedStyle.Render("STOPPED")
	}
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "PiCalc"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	leftPart := titleStyle.Render(titleText) + pipe + h.status()

	rightPart := ""
	if h.snap.Name != "" {
		rightPart = versionStyle.Render(fmt.Sprintf("%s #%d", h.snap.Name, h.snap.Iteration))
	}

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	gap := innerWidth - lipgloss.Width(leftPart) - lipgloss.Width(rightPart)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap) + rightPart)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
