// Package tui runs the snake game in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to game actions, drives the frame clock and turns
// screen buffers into styled output.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. Owner identifies the model whose
// tick chain produced it, so a stale chain from a left game is dropped.
type TickMsg struct {
	Time  time.Time
	Owner uint64
}

var lastOwner atomic.Uint64

// nextOwner returns a fresh tick chain identifier.
func nextOwner() uint64 {
	return lastOwner.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, owner uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Owner: owner}
	})
}
