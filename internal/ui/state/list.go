package state

import (
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
)

// List encapsulates the book list state for one shelf layer: cursor
// position, filter query, and viewport offset.
type List struct {
	ID             string
	Title          string
	Items          []shelf.Item
	Full           []shelf.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List over the provided shelf items.
func NewList(id, title string, items []shelf.Item) *List {
	l := &List{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor, if any.
func (l *List) Current() (shelf.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return shelf.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the list items while preserving the viewport when
// possible.
func (l *List) UpdateItems(items []shelf.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// CloneItems produces a shallow copy of the provided shelf items.
func CloneItems(items []shelf.Item) []shelf.Item {
	dup := make([]shelf.Item, len(items))
	copy(dup, items)
	return dup
}
