package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldCategory
	fieldRating
	fieldNotes
	fieldCount
)

// RecordForm collects the fields of a library record. A zero target ID
// means the form creates a new record; otherwise it edits in place.
type RecordForm struct {
	inputs  []textinput.Model
	focus   int
	target  library.Record
	editing bool
	known   []string
	err     string
}

func NewRecordForm(target library.Record, known []string) *RecordForm {
	f := &RecordForm{
		target:  target,
		editing: target.ID != "",
		known:   known,
	}
	labels := []struct {
		placeholder string
		limit       int
		value       string
	}{
		{"title", 120, target.Title},
		{"author", 80, target.Author},
		{"category", 40, target.Category},
		{"rating 1-5", 1, ratingValue(target.Rating)},
		{"notes", 400, target.Notes},
	}
	f.inputs = make([]textinput.Model, fieldCount)
	for i, def := range labels {
		ti := textinput.New()
		ti.Placeholder = def.placeholder
		ti.CharLimit = def.limit
		if def.value != "" {
			ti.SetValue(def.value)
		}
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Focus()
	return f
}

func ratingValue(rating int) string {
	if rating <= 0 {
		return ""
	}
	return strconv.Itoa(rating)
}

func (f *RecordForm) Title() string {
	if f.editing {
		return fmt.Sprintf("Edit %s", f.target.Title)
	}
	return "Add Book"
}

func (f *RecordForm) Help() string {
	return "tab next field  enter save  esc cancel"
}

func (f *RecordForm) Error() string { return f.err }

// SetKnownCategories refreshes the category names used for validation hints
// when a snapshot arrives while the form is open.
func (f *RecordForm) SetKnownCategories(names []string) {
	f.known = names
}

// Record assembles the form values into a record, carrying over identity
// and status fields from the edit target.
func (f *RecordForm) Record() library.Record {
	record := f.target
	record.Title = strings.TrimSpace(f.inputs[fieldTitle].Value())
	record.Author = strings.TrimSpace(f.inputs[fieldAuthor].Value())
	record.Category = strings.TrimSpace(f.inputs[fieldCategory].Value())
	record.Notes = strings.TrimSpace(f.inputs[fieldNotes].Value())
	if rating, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldRating].Value())); err == nil {
		record.Rating = rating
	}
	return record
}

func (f *RecordForm) validate() string {
	if strings.TrimSpace(f.inputs[fieldTitle].Value()) == "" {
		return "Title is required"
	}
	raw := strings.TrimSpace(f.inputs[fieldRating].Value())
	if raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			return "Rating must be 1-5"
		}
	}
	return ""
}

// Update feeds a message to the focused field. The booleans mirror the
// submit and cancel outcomes so the caller can close the form.
func (f *RecordForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if err := f.validate(); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		case tea.KeyTab, tea.KeyDown:
			f.setFocus((f.focus + 1) % fieldCount)
			return nil, false, false
		case tea.KeyShiftTab, tea.KeyUp:
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return nil, false, false
		}
	}
	updated, cmd := f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = updated
	f.err = ""
	return cmd, false, false
}

func (f *RecordForm) setFocus(index int) {
	f.inputs[f.focus].Blur()
	f.focus = index
	f.inputs[f.focus].Focus()
}

// View renders the form body without the surrounding chrome.
func (f *RecordForm) View() string {
	names := []string{"Title", "Author", "Category", "Rating", "Notes"}
	lines := make([]string, 0, fieldCount*2+4)
	lines = append(lines, f.Title(), "")
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%-9s %s", name, f.inputs[i].View()))
	}
	if f.err != "" {
		lines = append(lines, "", styles.Error.Render(f.err))
	}
	if hint := f.categoryHint(); hint != "" {
		lines = append(lines, "", hint)
	}
	lines = append(lines, "", f.Help())
	return strings.Join(lines, "\n")
}

func (f *RecordForm) categoryHint() string {
	if len(f.known) == 0 {
		return ""
	}
	return "Shelves: " + strings.Join(f.known, ", ")
}

func (m *Model) startAddForm() {
	m.form = NewRecordForm(library.Record{}, m.categoryNames())
	m.mode = ModeForm
}

func (m *Model) startEditForm() {
	record, ok := m.currentRecord()
	if !ok {
		return
	}
	m.form = NewRecordForm(record, m.categoryNames())
	m.mode = ModeForm
}

func (m *Model) handleFormKey(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.form = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		record := m.form.Record()
		editing := m.form.editing
		m.form = nil
		m.mode = ModeBrowse
		if editing {
			return true, m.updateRecordCmd(record)
		}
		return true, m.addRecordCmd(record)
	}
	return true, cmd
}

// confirmState holds the pending destructive action.
type confirmState struct {
	record library.Record
}

func (m *Model) startConfirmDelete() {
	record, ok := m.currentRecord()
	if !ok {
		return
	}
	m.confirm = &confirmState{record: record}
	m.mode = ModeConfirm
}

func (m *Model) handleConfirmKey(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.confirm == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	switch key.String() {
	case "y", "enter":
		record := m.confirm.record
		m.confirm = nil
		m.mode = ModeBrowse
		return true, m.deleteRecordCmd(record)
	case "n", "esc":
		m.confirm = nil
		m.mode = ModeBrowse
		return true, nil
	}
	return true, nil
}
