// Package tui provides the Bubble Tea front end for 2048.
// It runs the tick loop, maps keys and mouse swipes to actions, and shows
// the mode menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the config carries no tick rate.
const defaultTickRate = 60

// TickMsg drives one game step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. The rate bounds input latency.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
