// Package tui provides the Bubble Tea front-end of the puzzle: the level
// list, the puzzle screen and an SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// statusExpiredMsg clears the status line set with the same sequence number.
type statusExpiredMsg struct {
	seq int
}

// expireStatus returns a command that fires a statusExpiredMsg after d.
func expireStatus(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
