// Package tui runs games in the terminal with Bubble Tea. It owns the frame
// clock, maps keys to actions and turns screen buffers into styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval returns the time between frames for the given rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := frameInterval(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
