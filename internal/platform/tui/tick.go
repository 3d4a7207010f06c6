// Package tui provides the Bubble Tea integration for the screensaver.
// It handles the terminal UI loop, input mapping, rendering and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one bounce step.
// Gen ties the message to the tick chain that scheduled it; stale chains
// left behind by pause/resume are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message after delay.
func tickCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
