// Package tui provides the Bubble Tea integration for Laser Bounce.
// It handles the terminal UI loop, input mapping, and menu navigation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/laser-bounce/internal/games/laserbounce"
)

// timerMsg delivers a fired simulation timer back into Update.
type timerMsg struct {
	timer laserbounce.Timer
}

// cmdScheduler turns driver timer requests into tea.Tick commands. Bubble
// Tea runs every Update on one goroutine, so timers fire on the same thread
// as the rest of the model.
type cmdScheduler struct {
	pending []tea.Cmd
	queued  []laserbounce.Timer
	last    []laserbounce.Timer // timers sent by the latest Flush
}

var _ laserbounce.Scheduler = (*cmdScheduler)(nil)

// After queues a tick that fires t after d.
func (s *cmdScheduler) After(d time.Duration, t laserbounce.Timer) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{timer: t}
	}))
	s.queued = append(s.queued, t)
}

// Flush returns the queued ticks as one command and empties the queue.
// It returns nil when nothing is queued.
func (s *cmdScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		s.last = nil
		return nil
	}
	cmds := s.pending
	s.last = s.queued
	s.pending, s.queued = nil, nil
	return tea.Batch(cmds...)
}

// Len returns the number of queued ticks.
func (s *cmdScheduler) Len() int {
	return len(s.pending)
}

// Sent returns the timers of the latest Flush.
func (s *cmdScheduler) Sent() []laserbounce.Timer {
	return s.last
}
