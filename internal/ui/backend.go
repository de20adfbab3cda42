package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
)

func waitForLibraryEvent(w *library.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return libraryDoneMsg{}
		}
		return libraryEventMsg{event: evt}
	}
}

type libraryEventMsg struct {
	event library.Event
}

type libraryDoneMsg struct{}

func (m *Model) handleLibraryEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(libraryEventMsg)
	if !ok {
		return nil
	}
	m.applyLibraryEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForLibraryEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleLibraryDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) applyLibraryEvent(evt library.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return
	}
	res := m.dispatcher.Handle(evt)
	if !res.RecordsUpdated {
		return
	}
	m.errMsg = ""
	events.Library.Snapshot(len(evt.Snapshot.Records))
	m.rebuildShelves()
	if m.form != nil {
		m.form.SetKnownCategories(m.categoryNames())
	}
}

func (m *Model) categoryNames() []string {
	names := make([]string, 0, len(m.buckets))
	for _, bucket := range m.buckets {
		names = append(names, bucket.Name)
	}
	return names
}
