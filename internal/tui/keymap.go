package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/orchestration"
)

// KeyMap binds keyboard keys to simulated button presses.
type KeyMap struct {
	Start  key.Binding
	Stop   key.Binding
	Reset  key.Binding
	Change key.Binding

	// HoldStart and friends produce long presses on the same lines.
	HoldStart  key.Binding
	HoldStop   key.Binding
	HoldReset  key.Binding
	HoldChange key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the digit row layout: 1-4 press the four buttons
// briefly, their shifted variants hold them.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "start")),
		Stop:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "stop")),
		Reset:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "reset")),
		Change:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "change")),
		HoldStart:  key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "hold start")),
		HoldStop:   key.NewBinding(key.WithKeys("@"), key.WithHelp("@", "hold stop")),
		HoldReset:  key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "hold reset")),
		HoldChange: key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "hold change")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Reset, k.Change, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Reset, k.Change},
		{k.HoldStart, k.HoldStop, k.HoldReset, k.HoldChange},
		{k.Quit},
	}
}

// pressFor maps a key to the button line it presses and whether the press
// is held long.
func (k KeyMap) pressFor(msg tea.KeyMsg) (line button.LineID, long, ok bool) {
	bindings := []struct {
		b    key.Binding
		line button.LineID
		long bool
	}{
		{k.Start, orchestration.LineStart, false},
		{k.Stop, orchestration.LineStop, false},
		{k.Reset, orchestration.LineReset, false},
		{k.Change, orchestration.LineChange, false},
		{k.HoldStart, orchestration.LineStart, true},
		{k.HoldStop, orchestration.LineStop, true},
		{k.HoldReset, orchestration.LineReset, true},
		{k.HoldChange, orchestration.LineChange, true},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.line, e.long, true
		}
	}
	return 0, false, false
}
