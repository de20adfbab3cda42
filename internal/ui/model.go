package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AssassinTK/readlog-ai-tracker/internal/data/dispatcher"
	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/logging/events"
	"github.com/AssassinTK/readlog-ai-tracker/internal/quiz"
	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
	"github.com/AssassinTK/readlog-ai-tracker/internal/state"
	"github.com/AssassinTK/readlog-ai-tracker/internal/theme"
	"github.com/AssassinTK/readlog-ai-tracker/internal/ui/command"
	uistate "github.com/AssassinTK/readlog-ai-tracker/internal/ui/state"
)

type list = uistate.List

// Mode selects which input surface owns key presses.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
	ModeForm
	ModeConfirm
	ModeQuiz
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries everything the model needs from the application layer.
type Options struct {
	Store          *library.Store
	Watcher        *library.Watcher
	Quiz           quiz.Provider
	Categories     []string
	ParticleCount  int
	Focal          float64
	MaxDepth       float64
	Transition     time.Duration
	WarpMultiplier float64
	LayerSpacing   int
	ProximityNear  int
	ProximityFar   int
	FrameInterval  time.Duration
	FieldSeed      int64
	Width          int
	Height         int
}

// Model implements the Bubble Tea model for the shelf navigator.
type Model struct {
	opts    Options
	width   int
	height  int
	mode    Mode
	errMsg  string
	infoMsg string
	infoExp time.Time

	nav     *shelf.Nav
	field   *shelf.Field
	prox    *shelf.Proximity
	buckets []shelf.Bucket
	lists   []*list
	frames  *ticker

	layerHits []layerHit

	form    *RecordForm
	confirm *confirmState
	session *quizSession

	records    state.RecordStore
	dispatcher *dispatcher.Dispatcher
	watcher    *library.Watcher
	bus        *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state around an empty shelf set; the first
// watcher snapshot populates it.
func NewModel(opts Options) *Model {
	records := state.NewRecordStore()
	m := &Model{
		opts:       opts,
		width:      opts.Width,
		height:     opts.Height,
		mode:       ModeBrowse,
		nav:        shelf.NewNav(0, opts.Transition),
		prox:       shelf.NewProximity(opts.ProximityNear, opts.ProximityFar),
		frames:     newTicker(opts.FrameInterval),
		records:    records,
		dispatcher: dispatcher.New(records),
		watcher:    opts.Watcher,
		bus:        command.New(),
	}
	m.field = shelf.NewField(shelf.FieldConfig{
		Count:          opts.ParticleCount,
		MaxDepth:       opts.MaxDepth,
		Focal:          opts.Focal,
		WarpMultiplier: opts.WarpMultiplier,
		Seed:           opts.FieldSeed,
	}, m.width, m.fieldHeight())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	events.Shelf.FieldStart(len(m.field.Particles()))
	cmds := []tea.Cmd{m.frames.Start()}
	if m.watcher != nil {
		cmds = append(cmds, waitForLibraryEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveSurface(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// handleActiveSurface routes key presses to whichever modal surface is open.
// Non-key messages always fall through to the typed handler registry so
// frames and snapshots keep flowing behind a form.
func (m *Model) handleActiveSurface(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeQuiz:
		return m.handleQuizKey(msg)
	case ModeFilter:
		return m.handleFilterKey(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameTickMsg{}):      m.handleFrameTickMsg,
		reflect.TypeOf(warpDoneMsg{}):       m.handleWarpDoneMsg,
		reflect.TypeOf(libraryEventMsg{}):   m.handleLibraryEventMsg,
		reflect.TypeOf(libraryDoneMsg{}):    m.handleLibraryDoneMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(quizReadyMsg{}):      m.handleQuizReadyMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// activeList returns the list for the active shelf layer.
func (m *Model) activeList() *list {
	idx := m.nav.Active()
	if idx < 0 || idx >= len(m.lists) {
		return nil
	}
	return m.lists[idx]
}

func (m *Model) activeBucket() (shelf.Bucket, bool) {
	idx := m.nav.Active()
	if idx < 0 || idx >= len(m.buckets) {
		return shelf.Bucket{}, false
	}
	return m.buckets[idx], true
}

// currentRecord resolves the cursor item back to its library record.
func (m *Model) currentRecord() (library.Record, bool) {
	l := m.activeList()
	if l == nil {
		return library.Record{}, false
	}
	item, ok := l.Current()
	if !ok {
		return library.Record{}, false
	}
	return m.records.Find(item.ID)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExp = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExp = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExp.IsZero() && time.Now().After(m.infoExp) {
		m.clearInfo()
	}
	return m.infoMsg
}
