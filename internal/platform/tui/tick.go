package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the running game by one step.
type TickMsg time.Time

// tickInterval is the frame period for rate steps per second.
// Rates under one are treated as one.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

func nextTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
