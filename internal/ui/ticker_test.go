package ui

import (
	"testing"
	"time"
)

func TestTickerStartOnlyArmsOnce(t *testing.T) {
	tk := newTicker(time.Millisecond)
	if cmd := tk.Start(); cmd == nil {
		t.Fatal("expected a command from Start")
	}
	if cmd := tk.Start(); cmd != nil {
		t.Fatal("expected nil from Start while running")
	}
	if !tk.Running() {
		t.Fatal("expected ticker to be running")
	}
}

func TestTickerStopInvalidatesInFlightFrames(t *testing.T) {
	tk := newTicker(time.Millisecond)
	tk.Start()
	frame := frameTickMsg{gen: tk.gen, at: time.Now()}
	if !tk.Active(frame) {
		t.Fatal("expected frame from current run to be active")
	}

	tk.Stop()
	if tk.Active(frame) {
		t.Fatal("expected frame to be invalidated by Stop")
	}
	if tk.Running() {
		t.Fatal("expected ticker stopped")
	}
	tk.Stop() // idempotent
}

func TestTickerRestartUsesNewGeneration(t *testing.T) {
	tk := newTicker(time.Millisecond)
	tk.Start()
	stale := frameTickMsg{gen: tk.gen}
	tk.Stop()
	tk.Start()
	if tk.Active(stale) {
		t.Fatal("expected stale frame to stay invalid after restart")
	}
	if !tk.Active(frameTickMsg{gen: tk.gen}) {
		t.Fatal("expected current-generation frame to be active")
	}
}

func TestTickerNextOnlyWhileRunning(t *testing.T) {
	tk := newTicker(time.Millisecond)
	if cmd := tk.Next(); cmd != nil {
		t.Fatal("expected nil from Next before Start")
	}
	tk.Start()
	if cmd := tk.Next(); cmd == nil {
		t.Fatal("expected a command from Next while running")
	}
	tk.Stop()
	if cmd := tk.Next(); cmd != nil {
		t.Fatal("expected nil from Next after Stop")
	}
}

func TestTickerDefaultsInterval(t *testing.T) {
	tk := newTicker(0)
	if tk.interval <= 0 {
		t.Fatalf("expected positive default interval, got %v", tk.interval)
	}
}
