package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
	"github.com/AssassinTK/readlog-ai-tracker/internal/state"
	uistate "github.com/AssassinTK/readlog-ai-tracker/internal/ui/state"
)

// layerHit is a clickable region recorded while the tab row was rendered.
type layerHit struct {
	index  int
	y      int
	x0, x1 int
}

// warpDoneMsg closes a navigation transition. The sequence pins it to the
// hop that scheduled it: a rebind or a newer hop bumps the sequence and the
// stale message falls through.
type warpDoneMsg struct {
	seq uint64
}

// goTo starts a transition to the given layer. Returns nil when the hop is
// rejected (out of range, already active, or mid-transition).
func (m *Model) goTo(index int, now time.Time) tea.Cmd {
	from := m.nav.Active()
	if !m.nav.GoTo(index, now) {
		return nil
	}
	events.Shelf.Warp(from, index)
	m.field.SetWarp(true)
	seq := m.nav.Seq()
	return tea.Tick(m.nav.Duration(), func(time.Time) tea.Msg {
		return warpDoneMsg{seq: seq}
	})
}

func (m *Model) handleWarpDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(warpDoneMsg)
	if !ok {
		return nil
	}
	if done.seq != m.nav.Seq() {
		return nil
	}
	m.nav.Cancel()
	m.field.SetWarp(false)
	events.Shelf.WarpDone(m.nav.Active())
	return nil
}

func (m *Model) handleFrameTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(frameTickMsg)
	if !ok || !m.frames.Active(tick) {
		return nil
	}
	m.field.Advance()
	// A dropped expiry message must not leave the field warping forever.
	if m.field.Warp() && !m.nav.Transitioning(tick.at) {
		m.nav.Cancel()
		m.field.SetWarp(false)
		events.Shelf.WarpDone(m.nav.Active())
	}
	return m.frames.Next()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	m.field.Resize(m.width, m.fieldHeight())
	if l := m.activeList(); l != nil {
		l.EnsureCursorVisible(m.maxVisibleItems())
	}
	return nil
}

// fieldHeight is the canvas height: everything between the tab row and the
// two-row bottom bar.
func (m *Model) fieldHeight() int {
	h := m.height - 3
	if h < 0 {
		h = 0
	}
	return h
}

// rebuildShelves regroups the record set into category layers, carrying
// cursor and filter state over for buckets that survive and keeping the
// active layer on the same category when it still exists.
func (m *Model) rebuildShelves() {
	activeName := ""
	if bucket, ok := m.activeBucket(); ok {
		activeName = bucket.Name
	}
	prev := make(map[string]*list, len(m.lists))
	for _, l := range m.lists {
		prev[l.ID] = l
	}
	items := state.ItemsFromRecords(m.records.Records())
	m.buckets = shelf.Group(items, m.opts.Categories)
	m.lists = make([]*list, len(m.buckets))
	for i, bucket := range m.buckets {
		if old, ok := prev[bucket.Name]; ok {
			old.UpdateItems(bucket.Items)
			m.lists[i] = old
			continue
		}
		m.lists[i] = newShelfList(bucket)
	}
	m.nav.Rebind(len(m.buckets))
	if activeName != "" {
		for i, bucket := range m.buckets {
			if bucket.Name == activeName {
				m.jumpTo(i)
				break
			}
		}
	}
	events.Shelf.Rebind(len(m.buckets), m.nav.Active())
}

// jumpTo repositions the active layer without a warp animation. Used when a
// data refresh moves the current category to a new slot.
func (m *Model) jumpTo(index int) {
	if index == m.nav.Active() || index < 0 || index >= m.nav.Count() {
		return
	}
	m.nav.Cancel()
	m.nav.GoTo(index, time.Time{})
	m.nav.Cancel()
	m.field.SetWarp(false)
}

func newShelfList(bucket shelf.Bucket) *list {
	l := uistate.NewList(bucket.Name, bucket.Name, bucket.Items)
	if len(l.Items) > 0 {
		l.Cursor = 0
	}
	return l
}

// layerAt resolves a click position to a shelf layer index.
func (m *Model) layerAt(x, y int) (int, bool) {
	for _, hit := range m.layerHits {
		if y == hit.y && x >= hit.x0 && x < hit.x1 {
			return hit.index, true
		}
	}
	return 0, false
}
