package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionActivate, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionActivate, false},
		{"w", runeKey('w'), core.ActionActivate, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionActivate, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestForPhaseEnablesRelevantKeys(t *testing.T) {
	km := DefaultKeyMap()

	ended := km.ForPhase(core.PhaseEnded)
	if ended.Activate.Enabled() || ended.Pause.Enabled() {
		t.Error("activate and pause should be hidden after game over")
	}
	if !ended.Restart.Enabled() || !ended.Back.Enabled() {
		t.Error("restart and back should be shown after game over")
	}

	running := km.ForPhase(core.PhaseRunning)
	if running.Restart.Enabled() || running.Back.Enabled() {
		t.Error("restart and back should be hidden while running")
	}

	paused := km.ForPhase(core.PhasePaused)
	if paused.Pause.Help().Desc != "resume" {
		t.Errorf("pause help while paused = %q", paused.Pause.Help().Desc)
	}

	// The original map is untouched.
	if !km.Restart.Enabled() {
		t.Error("ForPhase modified the receiver")
	}
}
