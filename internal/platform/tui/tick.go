// Package tui provides the Bubble Tea integration: the terminal loop, key
// mapping, gravity timing, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent when the gravity interval elapses and the falling piece
// should descend one row.
type GravityMsg time.Time

// gravityCmd returns a Bubble Tea command that fires one gravity tick after
// the given interval. The model reschedules it after every tick, so the
// interval follows the engine's current level.
func gravityCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
