package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
	"github.com/AssassinTK/readlog-ai-tracker/internal/quiz"
	"github.com/AssassinTK/readlog-ai-tracker/internal/ui/command"
)

const storeTimeout = 5 * time.Second

// actionResultMsg reports the outcome of a store mutation.
type actionResultMsg struct {
	info string
	err  error
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.clearInfo()
		events.Action.Error(result.err)
		return nil
	}
	m.errMsg = ""
	if result.info != "" {
		m.setInfo(result.info)
	}
	events.Action.Success(result.info)
	return nil
}

func (m *Model) addRecordCmd(record library.Record) tea.Cmd {
	store := m.opts.Store
	return m.bus.Execute(command.Request{ID: "library:add", Label: record.Title, Run: func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		added, err := store.Add(ctx, record)
		if err != nil {
			return actionResultMsg{err: err}
		}
		events.Library.Added(added.ID, added.Title)
		return actionResultMsg{info: fmt.Sprintf("Added %q", added.Title)}
	}})
}

func (m *Model) updateRecordCmd(record library.Record) tea.Cmd {
	store := m.opts.Store
	return m.bus.Execute(command.Request{ID: "library:update", Label: record.Title, Run: func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.Update(ctx, record); err != nil {
			return actionResultMsg{err: err}
		}
		events.Library.Updated(record.ID, record.Title)
		return actionResultMsg{info: fmt.Sprintf("Updated %q", record.Title)}
	}})
}

func (m *Model) deleteRecordCmd(record library.Record) tea.Cmd {
	store := m.opts.Store
	return m.bus.Execute(command.Request{ID: "library:delete", Label: record.Title, Run: func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.Delete(ctx, record.ID); err != nil {
			return actionResultMsg{err: err}
		}
		events.Library.Deleted(record.ID)
		return actionResultMsg{info: fmt.Sprintf("Deleted %q", record.Title)}
	}})
}

func (m *Model) finishRecordCmd(record library.Record, rating int) tea.Cmd {
	store := m.opts.Store
	return m.bus.Execute(command.Request{ID: "library:finish", Label: record.Title, Run: func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.MarkFinished(ctx, record.ID, rating); err != nil {
			return actionResultMsg{err: err}
		}
		events.Library.Finished(record.ID, rating)
		return actionResultMsg{info: fmt.Sprintf("Finished %q", record.Title)}
	}})
}

// quizReadyMsg delivers generated questions, or the failure to do so.
type quizReadyMsg struct {
	record    library.Record
	questions []quiz.Question
	err       error
}

func (m *Model) requestQuizCmd(record library.Record) tea.Cmd {
	provider := m.opts.Quiz
	events.Quiz.Requested(record.ID, record.Title)
	return m.bus.Execute(command.Request{ID: "quiz:generate", Label: record.Title, Run: func() tea.Msg {
		if provider == nil {
			return quizReadyMsg{record: record, err: fmt.Errorf("no quiz provider configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		questions, err := provider.Questions(ctx, record)
		return quizReadyMsg{record: record, questions: questions, err: err}
	}})
}
