package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
	"github.com/AssassinTK/readlog-ai-tracker/internal/quiz"
)

// quizSession walks the generated questions one at a time.
type quizSession struct {
	record    library.Record
	questions []quiz.Question
	index     int
	choice    int
	answered  bool
	correct   int
	loading   bool
}

func (m *Model) startQuiz() tea.Cmd {
	record, ok := m.currentRecord()
	if !ok {
		return nil
	}
	m.session = &quizSession{record: record, loading: true}
	m.mode = ModeQuiz
	events.UI.Mode("quiz")
	return m.requestQuizCmd(record)
}

func (m *Model) handleQuizReadyMsg(msg tea.Msg) tea.Cmd {
	ready, ok := msg.(quizReadyMsg)
	if !ok || m.session == nil || m.session.record.ID != ready.record.ID {
		return nil
	}
	if ready.err != nil {
		events.Quiz.Failed(ready.record.ID, ready.err)
		m.errMsg = ready.err.Error()
		m.session = nil
		m.mode = ModeBrowse
		return nil
	}
	events.Quiz.Ready(ready.record.ID, len(ready.questions))
	m.session.questions = ready.questions
	m.session.loading = false
	return nil
}

func (m *Model) handleQuizKey(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.session == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	s := m.session
	switch key.String() {
	case "ctrl+c":
		m.frames.Stop()
		return true, tea.Quit
	case "esc":
		m.session = nil
		m.mode = ModeBrowse
		events.UI.Mode("browse")
		return true, nil
	}
	if s.loading || s.index >= len(s.questions) {
		return true, nil
	}
	q := s.questions[s.index]
	switch key.String() {
	case "up", "k":
		if !s.answered && s.choice > 0 {
			s.choice--
		}
	case "down", "j":
		if !s.answered && s.choice < len(q.Choices)-1 {
			s.choice++
		}
	case "enter":
		if !s.answered {
			s.answered = true
			if s.choice == q.Answer {
				s.correct++
			}
			events.Quiz.Answered(s.record.ID, s.index, s.choice == q.Answer)
			return true, nil
		}
		s.index++
		s.choice = 0
		s.answered = false
	}
	return true, nil
}

func (m *Model) viewQuiz() string {
	s := m.session
	if s == nil {
		return ""
	}
	lines := []string{fmt.Sprintf("Quiz: %s", s.record.Title), ""}
	switch {
	case s.loading:
		lines = append(lines, "Generating questions…")
	case s.index >= len(s.questions):
		lines = append(lines, fmt.Sprintf("Done: %d/%d correct", s.correct, len(s.questions)))
		lines = append(lines, "", "esc close")
	default:
		q := s.questions[s.index]
		lines = append(lines, styles.QuizQuestion.Render(fmt.Sprintf("%d/%d  %s", s.index+1, len(s.questions), q.Prompt)), "")
		for i, choice := range q.Choices {
			marker := "  "
			if i == s.choice {
				marker = "> "
			}
			text := marker + choice
			style := styles.QuizChoice
			if s.answered {
				switch i {
				case q.Answer:
					style = styles.QuizCorrect
				case s.choice:
					style = styles.QuizIncorrect
				}
			}
			lines = append(lines, style.Render(text))
		}
		help := "enter answer  esc quit"
		if s.answered {
			help = "enter next  esc quit"
		}
		lines = append(lines, "", help)
	}
	return strings.Join(lines, "\n")
}
