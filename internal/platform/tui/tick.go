// Package tui provides the Bubble Tea front-end for Gigili: the fixed-rate
// game loop, name entry, maze menu, scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the run
// that scheduled it; a model ignores ticks from any other run.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// runGen hands out tick generations, one per GameModel.
var runGen atomic.Uint64

func nextRunGen() uint64 {
	return runGen.Add(1)
}

// tickInterval returns the period of one tick; non-positive rates fall back to 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation tick. Ticks are chained one at a
// time, so a slow frame delays the next tick instead of queueing more.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
