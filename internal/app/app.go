package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/backend"
	"github.com/flapboard/flapboard/internal/logging/events"
	"github.com/flapboard/flapboard/internal/preview"
	"github.com/flapboard/flapboard/internal/state"
	"github.com/flapboard/flapboard/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	PagesPath  string
	CachePath  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	pages := state.NewPageStore()
	if cfg.PagesPath != "" {
		if err := pages.Load(cfg.PagesPath); err != nil {
			return fmt.Errorf("load pages: %w", err)
		}
		events.App.PagesLoaded(cfg.PagesPath, len(pages.Entries()))
	}

	var kv preview.KV
	if cfg.CachePath != "" {
		sqlite, err := preview.OpenSQLite(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("open preview cache: %w", err)
		}
		defer sqlite.Close()
		kv = sqlite
	} else {
		kv = preview.NewMemory()
	}
	cache := preview.NewStore(kv)

	watcher := backend.NewWatcher(pages, 1500*time.Millisecond)
	defer watcher.Stop()

	model := ui.NewModel(pages, cache, watcher, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}

	if cfg.PagesPath != "" {
		if saveErr := pages.Save(cfg.PagesPath); saveErr != nil && err == nil {
			err = fmt.Errorf("save pages: %w", saveErr)
		} else if saveErr == nil {
			events.App.PagesSaved(cfg.PagesPath, len(pages.Entries()))
		}
	}
	return err
}
