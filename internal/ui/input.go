package ui

import (
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		m.frames.Stop()
		events.Shelf.FieldStop()
		return tea.Quit
	case "left", "h":
		return m.goTo(m.nav.Active()-1, time.Now())
	case "right", "l":
		return m.goTo(m.nav.Active()+1, time.Now())
	case "up", "k":
		m.moveCursor(-1)
		return nil
	case "down", "j":
		m.moveCursor(1)
		return nil
	case "pgup":
		if l := m.activeList(); l != nil && l.MoveCursorPageUp(m.maxVisibleItems()) {
			m.noteCursor(l)
		}
		return nil
	case "pgdown":
		if l := m.activeList(); l != nil && l.MoveCursorPageDown(m.maxVisibleItems()) {
			m.noteCursor(l)
		}
		return nil
	case "home":
		if l := m.activeList(); l != nil && l.MoveCursorHome() {
			m.noteCursor(l)
		}
		return nil
	case "end":
		if l := m.activeList(); l != nil && l.MoveCursorEnd() {
			m.noteCursor(l)
		}
		return nil
	case "enter":
		return m.selectCurrent()
	case "/":
		m.mode = ModeFilter
		events.UI.Mode("filter")
		return nil
	case "a":
		m.startAddForm()
		return nil
	case "e":
		m.startEditForm()
		return nil
	case "d":
		m.startConfirmDelete()
		return nil
	case "f":
		return m.finishCurrent()
	case "q":
		return m.startQuiz()
	case "p":
		m.prox.Pin(!m.prox.Pinned())
		events.UI.Panel(m.prox.Visible(), m.prox.Pinned())
		return nil
	case "esc":
		if l := m.activeList(); l != nil && l.Filter != "" {
			l.SetFilter("", 0)
			events.Filter.Cleared(l.ID)
			return nil
		}
		m.frames.Stop()
		events.Shelf.FieldStop()
		return tea.Quit
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	l := m.activeList()
	if l == nil {
		return
	}
	moved := false
	if delta < 0 {
		moved = l.MoveCursorUp()
	} else {
		moved = l.MoveCursorDown()
	}
	if moved {
		m.noteCursor(l)
	}
}

func (m *Model) noteCursor(l *list) {
	l.EnsureCursorVisible(m.maxVisibleItems())
	events.UI.Cursor(l.ID, l.Cursor)
}

// selectCurrent pins the detail panel on the item under the cursor.
func (m *Model) selectCurrent() tea.Cmd {
	l := m.activeList()
	if l == nil {
		return nil
	}
	item, ok := l.Current()
	if !ok {
		return nil
	}
	events.UI.ItemSelect(l.ID, item.ID, item.Title)
	m.prox.Pin(true)
	return nil
}

func (m *Model) finishCurrent() tea.Cmd {
	record, ok := m.currentRecord()
	if !ok {
		return nil
	}
	rating := record.Rating
	if rating == 0 {
		rating = 5
	}
	return m.finishRecordCmd(record, rating)
}

// handleFilterKey owns key presses while the filter prompt is focused.
func (m *Model) handleFilterKey(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	l := m.activeList()
	if l == nil {
		m.mode = ModeBrowse
		return true, nil
	}
	switch key.String() {
	case "ctrl+c":
		m.frames.Stop()
		return true, tea.Quit
	case "esc":
		l.SetFilter("", 0)
		events.Filter.Cleared(l.ID)
		m.mode = ModeBrowse
		events.UI.Mode("browse")
		return true, nil
	case "enter":
		m.mode = ModeBrowse
		events.UI.Mode("browse")
		return true, m.selectCurrent()
	case "ctrl+u":
		if l.Filter != "" {
			l.SetFilter("", 0)
			events.Filter.Cleared(l.ID)
		}
		return true, nil
	case "ctrl+w":
		if l.DeleteFilterWordBackward() {
			events.Filter.Backspace(l.ID, l.Filter)
		}
		return true, nil
	case "ctrl+a":
		l.MoveFilterCursorStart()
		return true, nil
	case "ctrl+e":
		l.MoveFilterCursorEnd()
		return true, nil
	}
	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if l.DeleteFilterRuneBackward() {
			events.Filter.Backspace(l.ID, l.Filter)
			l.EnsureCursorVisible(m.maxVisibleItems())
		}
		return true, nil
	case tea.KeyLeft:
		l.MoveFilterCursorRuneBackward()
		return true, nil
	case tea.KeyRight:
		l.MoveFilterCursorRuneForward()
		return true, nil
	case tea.KeySpace:
		if l.InsertFilterText(" ") {
			events.Filter.Append(l.ID, l.Filter)
		}
		return true, nil
	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return true, nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return true, nil
			}
		}
		if l.InsertFilterText(string(key.Runes)) {
			events.Filter.Append(l.ID, l.Filter)
			l.EnsureCursorVisible(m.maxVisibleItems())
		}
		return true, nil
	}
	return true, nil
}

// handleMouseMsg drives the proximity reveal from pointer motion and layer
// hops from tab clicks.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		distance := m.width - 1 - ev.X
		if distance < 0 {
			distance = 0
		}
		before := m.prox.Visible()
		after := m.prox.Observe(distance)
		if before != after {
			events.UI.Panel(after, m.prox.Pinned())
		}
		return nil
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonLeft:
			if idx, ok := m.layerAt(ev.X, ev.Y); ok && idx != m.nav.Active() {
				return m.goTo(idx, time.Now())
			}
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		}
	}
	return nil
}
