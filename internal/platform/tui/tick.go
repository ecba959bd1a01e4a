// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It turns key presses into held actions, drives the fixed tick and draws the
// game's screen buffer with lipgloss colors.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// loops numbers tick loops so a model ignores ticks of a loop it did not start.
var loops atomic.Int64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop int64
}

func newLoop() int64 {
	return loops.Add(1)
}

// tickCmd schedules the next simulation tick of loop.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
