// Package tui hosts the game in a terminal with Bubble Tea, locally or over
// SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run one loop frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at
// the given rate.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
