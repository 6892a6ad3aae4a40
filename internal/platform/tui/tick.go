// Package tui is the terminal host of the game. It runs the Bubble Tea loop,
// maps keys to actions, turns frame ticks and jump timers into messages and
// draws the game into a cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg is one frame of the frame chain Gen.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// jumpClearMsg fires when a jump flag's wall-clock duration is over.
type jumpClearMsg struct {
	Token core.TimerToken
}

// tickCmd schedules the next frame of chain gen at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// jumpClearCmd delivers the token back through Update after delay, so the
// flag is cleared on the same goroutine that runs the simulation.
func jumpClearCmd(token core.TimerToken, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return jumpClearMsg{Token: token}
	})
}
