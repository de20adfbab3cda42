package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	"github.com/AssassinTK/readlog-ai-tracker/internal/quiz"
	"github.com/AssassinTK/readlog-ai-tracker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataPath       string
	Categories     []string
	ParticleCount  int
	Focal          float64
	MaxDepth       float64
	TransitionMS   int
	WarpMultiplier float64
	LayerSpacing   int
	ProximityNear  int
	ProximityFar   int
	FPS            int
	OpenAIKey      string
	OpenAIModel    string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store, err := library.Open(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer store.Close()

	watcher := library.NewWatcher(store, 1500*time.Millisecond)
	defer watcher.Stop()

	var provider quiz.Provider
	if cfg.OpenAIKey != "" {
		provider = quiz.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)
	} else {
		provider = quiz.Static{}
	}

	model := ui.NewModel(ui.Options{
		Store:          store,
		Watcher:        watcher,
		Quiz:           provider,
		Categories:     cfg.Categories,
		ParticleCount:  cfg.ParticleCount,
		Focal:          cfg.Focal,
		MaxDepth:       cfg.MaxDepth,
		Transition:     time.Duration(cfg.TransitionMS) * time.Millisecond,
		WarpMultiplier: cfg.WarpMultiplier,
		LayerSpacing:   cfg.LayerSpacing,
		ProximityNear:  cfg.ProximityNear,
		ProximityFar:   cfg.ProximityFar,
		FrameInterval:  time.Second / time.Duration(cfg.FPS),
		FieldSeed:      time.Now().UnixNano(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
