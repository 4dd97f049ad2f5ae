package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/orchestration"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			if !b.Enabled() {
				t.Errorf("expected %q binding to be enabled", b.Help().Desc)
			}
			if len(b.Keys()) == 0 {
				t.Errorf("expected %q binding to have at least one key", b.Help().Desc)
			}
		}
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("expected a short help")
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		if !key.Matches(msg, km.Quit) {
			t.Errorf("expected %q to quit", msg.String())
		}
	}
}

func TestKeyMap_PressFor(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		line button.LineID
		long bool
	}{
		{"1", orchestration.LineStart, false},
		{"2", orchestration.LineStop, false},
		{"3", orchestration.LineReset, false},
		{"4", orchestration.LineChange, false},
		{"!", orchestration.LineStart, true},
		{"@", orchestration.LineStop, true},
		{"#", orchestration.LineReset, true},
		{"$", orchestration.LineChange, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			line, long, ok := km.pressFor(runeKey(tt.key))
			if !ok || line != tt.line || long != tt.long {
				t.Errorf("pressFor(%q) = (%d, %t, %t), want (%d, %t, true)", tt.key, line, long, ok, tt.line, tt.long)
			}
		})
	}

	if _, _, ok := km.pressFor(runeKey("x")); ok {
		t.Error("unbound key must not press a button")
	}
}
