package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	switch s {
	case "up":
		return tea.KeyMsg(tea.Key{Type: tea.KeyUp})
	case "down":
		return tea.KeyMsg(tea.Key{Type: tea.KeyDown})
	case "left":
		return tea.KeyMsg(tea.Key{Type: tea.KeyLeft})
	case "right":
		return tea.KeyMsg(tea.Key{Type: tea.KeyRight})
	case "enter":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	case "esc":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEsc})
	case "ctrl+c":
		return tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.key, action, tt.action)
			}
			if isQuit {
				t.Errorf("MapKey(%q) flagged quit", tt.key)
			}
		})
	}
}

func TestMapKeyControls(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		isQuit bool
	}{
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionMenu, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.key, action, tt.action)
			}
			if isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.key, isQuit, tt.isQuit)
			}
		})
	}
}

func TestMapKeyUnknown(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(keyMsg("z"))
	if action != core.ActionNone || isQuit {
		t.Errorf("MapKey(z) = (%v, %v), expected (none, false)", action, isQuit)
	}
}
