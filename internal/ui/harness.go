package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the navigator model programmatically for integration tests.
// Commands returned by Update are executed inline, including batches, but
// chasing is bounded so the self-rearming frame tick cannot spin the test.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.dispatch(msg, 8)
}

// Key sends each rune of s as its own key press.
func (h *Harness) Key(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Resize delivers a window size message.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *Harness) dispatch(msg tea.Msg, depth int) {
	if depth <= 0 {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd, depth-1)
}

func (h *Harness) run(cmd tea.Cmd, depth int) {
	if cmd == nil || depth <= 0 {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			h.run(sub, depth-1)
		}
	case frameTickMsg:
		// The tick handler re-arms itself; deliver the tick but drop the
		// follow-up command so the chase terminates.
		mdl, _ := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
	default:
		h.dispatch(msg, depth)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
