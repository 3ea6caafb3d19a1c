// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, and styled rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after the interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
