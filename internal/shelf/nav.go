package shelf

import "time"

// DefaultTransition is the length of the warp window opened by each
// accepted navigation move.
const DefaultTransition = 900 * time.Millisecond

// Nav owns the active shelf index and the timed warp transition window.
// Moves issued while a transition is in flight are dropped, not queued, so
// the machine never holds pending state. All methods take the current time
// explicitly; nothing here starts timers of its own.
type Nav struct {
	active   int
	count    int
	duration time.Duration
	until    time.Time
	seq      uint64
}

// NewNav builds a navigator over count shelves. A non-positive duration
// falls back to DefaultTransition.
func NewNav(count int, duration time.Duration) *Nav {
	if duration <= 0 {
		duration = DefaultTransition
	}
	if count < 0 {
		count = 0
	}
	return &Nav{count: count, duration: duration}
}

// Active returns the index of the shelf currently in focus.
func (n *Nav) Active() int { return n.active }

// Count returns the number of shelves currently bound.
func (n *Nav) Count() int { return n.count }

// Duration returns the configured warp window length.
func (n *Nav) Duration() time.Duration { return n.duration }

// Transitioning reports whether the warp window is still open at now.
func (n *Nav) Transitioning(now time.Time) bool {
	return now.Before(n.until)
}

// Seq identifies the most recent accepted move. Expiry notifications that
// carry a stale sequence must be discarded by the caller, which makes
// cancelling the auto-reset idempotent and safe after teardown.
func (n *Nav) Seq() uint64 { return n.seq }

// GoTo moves focus to index and opens the warp window. It reports whether
// the move was accepted. Moving to the current index, an out-of-range
// index, or moving while a transition is open are all silent no-ops.
func (n *Nav) GoTo(index int, now time.Time) bool {
	if n.count == 0 || index < 0 || index >= n.count {
		return false
	}
	if index == n.active {
		return false
	}
	if n.Transitioning(now) {
		return false
	}
	n.active = index
	n.until = now.Add(n.duration)
	n.seq++
	return true
}

// Next advances one shelf deeper. No wraparound: at the last shelf it is a
// no-op.
func (n *Nav) Next(now time.Time) bool { return n.GoTo(n.active+1, now) }

// Prev backs up one shelf. No wraparound at index zero.
func (n *Nav) Prev(now time.Time) bool { return n.GoTo(n.active-1, now) }

// Rebind updates the shelf count after the item list changed. The active
// index is preserved unless it fell out of range, in which case it clamps
// to the last shelf; with zero shelves navigation is disabled entirely.
func (n *Nav) Rebind(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	if count == 0 {
		n.active = 0
		n.until = time.Time{}
		return
	}
	if n.active >= count {
		n.active = count - 1
	}
}

// Cancel closes any open warp window immediately. Safe to call repeatedly
// and before any transition was ever started.
func (n *Nav) Cancel() {
	n.until = time.Time{}
}
