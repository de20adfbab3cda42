package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/quiz"
)

func staticQuestions(t *testing.T, record library.Record) []quiz.Question {
	t.Helper()
	questions, err := quiz.Static{}.Questions(context.Background(), record)
	if err != nil {
		t.Fatalf("static provider failed: %v", err)
	}
	return questions
}

func testModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(Options{
		Categories:     []string{"Fiction", "Sci-Fi"},
		ParticleCount:  30,
		Transition:     900 * time.Millisecond,
		WarpMultiplier: 12,
		LayerSpacing:   2,
		ProximityNear:  4,
		ProximityFar:   12,
		FrameInterval:  time.Second / 30,
		FieldSeed:      42,
		Width:          100,
		Height:         30,
	})
	m.records.SetRecords([]library.Record{
		{ID: "r1", Title: "The Dispossessed", Author: "Ursula K. Le Guin", Category: "Sci-Fi", Status: library.StatusReading},
		{ID: "r2", Title: "Dune", Category: "Sci-Fi", Status: library.StatusFinished, Rating: 5},
		{ID: "r3", Title: "Middlemarch", Category: "Fiction", Status: library.StatusReading},
		{ID: "r4", Title: "Notebook", Status: library.StatusReading},
	})
	m.records.SetCounts(map[string]int{"Sci-Fi": 2, "Fiction": 1, "": 1})
	m.rebuildShelves()
	return m
}

func TestRebuildShelvesOrdersByCount(t *testing.T) {
	m := testModel(t)
	names := make([]string, len(m.buckets))
	for i, b := range m.buckets {
		names[i] = b.Name
	}
	want := []string{"Sci-Fi", "Fiction", "Uncategorized"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected bucket %d to be %s, got %v", i, name, names)
		}
	}
	if m.nav.Count() != 3 {
		t.Fatalf("expected nav bound to 3 layers, got %d", m.nav.Count())
	}
	if m.lists[0].Cursor != 0 {
		t.Fatalf("expected fresh list cursor at 0, got %d", m.lists[0].Cursor)
	}
}

func TestRebuildShelvesKeepsActiveCategory(t *testing.T) {
	m := testModel(t)
	now := time.Now()
	m.goTo(1, now) // Fiction
	m.nav.Cancel()
	m.field.SetWarp(false)

	// A second Fiction book overtakes nothing, but removing one Sci-Fi
	// record drops that bucket behind Fiction in the ordering.
	m.records.SetRecords([]library.Record{
		{ID: "r2", Title: "Dune", Category: "Sci-Fi", Status: library.StatusFinished},
		{ID: "r3", Title: "Middlemarch", Category: "Fiction", Status: library.StatusReading},
		{ID: "r5", Title: "Emma", Category: "Fiction", Status: library.StatusReading},
	})
	m.rebuildShelves()

	bucket, ok := m.activeBucket()
	if !ok || bucket.Name != "Fiction" {
		t.Fatalf("expected active layer to follow Fiction, got %+v", bucket)
	}
	if m.field.Warp() {
		t.Fatal("expected no warp after a data-driven jump")
	}
}

func TestGoToStartsAndFinishesWarp(t *testing.T) {
	m := testModel(t)
	now := time.Now()

	cmd := m.goTo(1, now)
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if !m.field.Warp() {
		t.Fatal("expected field warping during transition")
	}
	if m.nav.Active() != 1 {
		t.Fatalf("expected active layer 1, got %d", m.nav.Active())
	}

	// A hop during the transition window is dropped.
	if cmd := m.goTo(2, now.Add(100*time.Millisecond)); cmd != nil {
		t.Fatal("expected mid-transition hop to be dropped")
	}

	// A stale expiry from an earlier hop must not end the new transition.
	m.handleWarpDoneMsg(warpDoneMsg{seq: m.nav.Seq() - 1})
	if !m.field.Warp() {
		t.Fatal("expected stale expiry to be ignored")
	}

	m.handleWarpDoneMsg(warpDoneMsg{seq: m.nav.Seq()})
	if m.field.Warp() {
		t.Fatal("expected warp cleared by matching expiry")
	}
	if m.nav.Transitioning(now.Add(time.Hour)) {
		t.Fatal("expected transition closed")
	}
}

func TestGoToRejectsSameAndOutOfRange(t *testing.T) {
	m := testModel(t)
	now := time.Now()
	if cmd := m.goTo(0, now); cmd != nil {
		t.Fatal("expected hop to active layer to be a no-op")
	}
	if cmd := m.goTo(-1, now); cmd != nil {
		t.Fatal("expected hop below range to be dropped")
	}
	if cmd := m.goTo(len(m.buckets), now); cmd != nil {
		t.Fatal("expected hop past the last layer to be dropped")
	}
}

func TestFrameTickAdvancesFieldAndRearms(t *testing.T) {
	m := testModel(t)
	m.frames.Start()
	before := m.field.Particles()

	cmd := m.handleFrameTickMsg(frameTickMsg{gen: m.frames.gen, at: time.Now()})
	if cmd == nil {
		t.Fatal("expected the frame chain to re-arm")
	}
	after := m.field.Particles()
	moved := false
	for i := range before {
		if after[i].Depth != before[i].Depth {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("expected particles to advance on a frame tick")
	}

	m.frames.Stop()
	if cmd := m.handleFrameTickMsg(frameTickMsg{gen: 0, at: time.Now()}); cmd != nil {
		t.Fatal("expected stale frame to be dropped after Stop")
	}
}

func TestFrameTickRecoversFromLostExpiry(t *testing.T) {
	m := testModel(t)
	m.frames.Start()
	start := time.Now()
	m.goTo(1, start)
	if !m.field.Warp() {
		t.Fatal("expected warp during transition")
	}

	// Simulate the expiry message never arriving: a frame after the
	// deadline closes the transition itself.
	late := start.Add(m.nav.Duration() + time.Second)
	m.handleFrameTickMsg(frameTickMsg{gen: m.frames.gen, at: late})
	if m.field.Warp() {
		t.Fatal("expected frame tick to clear an expired warp")
	}
}

func TestMouseMotionDrivesProximity(t *testing.T) {
	m := testModel(t)

	m.handleMouseMsg(tea.MouseMsg{Action: tea.MouseActionMotion, X: m.width - 2})
	if !m.prox.Visible() {
		t.Fatal("expected panel visible near the right edge")
	}

	// Inside the hysteresis band the panel holds its state.
	m.handleMouseMsg(tea.MouseMsg{Action: tea.MouseActionMotion, X: m.width - 8})
	if !m.prox.Visible() {
		t.Fatal("expected panel to stay visible inside the band")
	}

	m.handleMouseMsg(tea.MouseMsg{Action: tea.MouseActionMotion, X: 10})
	if m.prox.Visible() {
		t.Fatal("expected panel hidden far from the edge")
	}
}

func TestMouseClickOnTabWarpsToLayer(t *testing.T) {
	m := testModel(t)
	m.View() // populate hit boxes
	if len(m.layerHits) == 0 {
		t.Fatal("expected tab hit boxes after render")
	}
	var target layerHit
	found := false
	for _, hit := range m.layerHits {
		if hit.index == 1 && hit.y == 0 {
			target = hit
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a tab hit box for layer 1")
	}

	cmd := m.handleMouseMsg(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      target.x0,
		Y:      target.y,
	})
	if cmd == nil {
		t.Fatal("expected a transition command from the tab click")
	}
	if m.nav.Active() != 1 {
		t.Fatalf("expected active layer 1 after click, got %d", m.nav.Active())
	}
}

func TestFilterModeNarrowsActiveList(t *testing.T) {
	m := testModel(t)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if m.mode != ModeFilter {
		t.Fatalf("expected filter mode, got %d", m.mode)
	}

	m.handleFilterKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dune")})
	l := m.activeList()
	if len(l.Items) != 1 || l.Items[0].Title != "Dune" {
		t.Fatalf("expected filter to isolate Dune, got %#v", l.Items)
	}

	m.handleFilterKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Fatal("expected escape to return to browse mode")
	}
	if l.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", l.Filter)
	}
}

func TestConfirmDeleteFlow(t *testing.T) {
	m := testModel(t)
	m.startConfirmDelete()
	if m.mode != ModeConfirm || m.confirm == nil {
		t.Fatal("expected confirm state for cursor record")
	}
	view := m.View()
	if !strings.Contains(view, "Delete") {
		t.Fatalf("expected confirmation prompt, got %q", view)
	}

	handled, _ := m.handleConfirmKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if !handled || m.mode != ModeBrowse || m.confirm != nil {
		t.Fatal("expected cancel to drop the confirm state")
	}
}

func TestViewBrowseShowsLayersAndPanel(t *testing.T) {
	m := testModel(t)
	m.prox.Pin(true)
	view := m.View()
	if !strings.Contains(view, "Sci-Fi (2)") {
		t.Fatalf("expected active layer title in view")
	}
	if !strings.Contains(view, "The Dispossessed") {
		t.Fatal("expected cursor item in view")
	}
	if !strings.Contains(view, "Le Guin") {
		t.Fatal("expected pinned detail panel with the author")
	}
}

func TestQuizFlowWithStaticProvider(t *testing.T) {
	m := testModel(t)
	cmd := m.startQuiz()
	if cmd == nil || m.mode != ModeQuiz || m.session == nil {
		t.Fatal("expected quiz session for cursor record")
	}

	record := m.session.record
	m.handleQuizReadyMsg(quizReadyMsg{record: record, questions: staticQuestions(t, record)})
	if m.session.loading {
		t.Fatal("expected session ready")
	}

	// Answer the first question with the known-correct first choice.
	m.handleQuizKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.session.answered || m.session.correct != 1 {
		t.Fatalf("expected one correct answer, got %+v", m.session)
	}
	m.handleQuizKey(tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.index != 1 || m.session.answered {
		t.Fatal("expected advance to the second question")
	}

	m.handleQuizKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse || m.session != nil {
		t.Fatal("expected escape to close the quiz")
	}
}

func TestHarnessRoutesMessages(t *testing.T) {
	m := testModel(t)
	h := NewHarness(m)
	h.Resize(120, 40)
	if h.Model().width != 120 || h.Model().height != 40 {
		t.Fatalf("expected resize applied, got %dx%d", h.Model().width, h.Model().height)
	}
	h.Key("j")
	if h.Model().activeList().Cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", h.Model().activeList().Cursor)
	}
}
