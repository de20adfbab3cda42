package library

import (
	"context"
	"testing"
	"time"
)

func TestWatcherEmitsInitialSnapshot(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Add(context.Background(), Record{Title: "Dune", Category: "Sci-Fi"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	w := NewWatcher(store, time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected poll error: %v", evt.Err)
		}
		if len(evt.Snapshot.Records) != 1 {
			t.Fatalf("expected 1 record in snapshot, got %d", len(evt.Snapshot.Records))
		}
		if evt.Snapshot.Counts["Sci-Fi"] != 1 {
			t.Fatalf("expected category count, got %v", evt.Snapshot.Counts)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for initial snapshot")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	store := openTestStore(t)
	w := NewWatcher(store, 10*time.Millisecond)

	// Drain the first event so the poller is not blocked on send.
	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for first event")
	}

	w.Stop()
	w.Wait()

	for evt := range w.Events() {
		_ = evt // drain buffered events until close
	}
}
