package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameTickMsg is one animation frame. The generation token ties it to the
// ticker run that armed it, so frames from a stopped run are discarded
// instead of double-driving the simulation.
type frameTickMsg struct {
	gen int
	at  time.Time
}

// ticker schedules animation frames through tea.Tick. Stopping bumps the
// generation, which invalidates any frame already in flight.
type ticker struct {
	interval time.Duration
	gen      int
	running  bool
}

func newTicker(interval time.Duration) *ticker {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &ticker{interval: interval}
}

// Start arms the next frame. Calling Start on a running ticker returns nil
// so only one frame chain exists at a time.
func (t *ticker) Start() tea.Cmd {
	if t.running {
		return nil
	}
	t.running = true
	return t.next()
}

// Next re-arms the chain after a frame has been processed.
func (t *ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.next()
}

func (t *ticker) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return frameTickMsg{gen: gen, at: at}
	})
}

// Stop invalidates in-flight frames. Safe to call repeatedly.
func (t *ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
}

// Active reports whether the frame belongs to the current run.
func (t *ticker) Active(msg frameTickMsg) bool {
	return t.running && msg.gen == t.gen
}

// Running reports whether the chain is armed.
func (t *ticker) Running() bool { return t.running }
