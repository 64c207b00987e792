package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rivermap/internal/placement"
	"github.com/samdwyer/rivermap/internal/tileset"
	"github.com/samdwyer/rivermap/internal/ui"
)

// App holds the viewer state.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	set      *tileset.Set
	current  *Map
	view     View
	status   string
	running  bool
}

// New creates a viewer on the terminal.
func New(cfg Config, set *tileset.Set) (*App, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, set, screen), nil
}

// NewWithScreen creates a viewer drawing to an initialized screen.
func NewWithScreen(cfg Config, set *tileset.Set, screen *ui.Screen) *App {
	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		set:      set,
		view:     ViewMap,
		running:  true,
	}
}

// Run generates the first map and executes the main loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.regenerate(ctx, a.cfg.NextSeed()); err != nil {
		a.screen.Close()
		return err
	}

	for a.running {
		a.render()
		a.handleInput(ctx)
	}

	a.screen.Close()
	return nil
}

// regenerate replaces the current map with one generated from seed.
func (a *App) regenerate(ctx context.Context, seed int64) error {
	cols, rows := a.screen.Size()
	// Keep the status line clear of the map.
	width, height := a.cfg.GridSize(cols, rows-1)

	m, err := Generate(ctx, a.set, width, height, seed, a.cfg.Budget)
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	a.current = m
	a.status = fmt.Sprintf("seed %d  %s  [r]egenerate [s]ave [i]nfo [q]uit", seed, m.Result.Outcome)

	if err := m.Result.Err(); err != nil {
		log.Printf("Warning: map %s seed %d: %v", m.ID, seed, err)
		if errors.Is(err, placement.ErrRiverExhausted) {
			a.status = fmt.Sprintf("seed %d  river failed, map degraded  [r]egenerate [q]uit", seed)
		}
	}
	return nil
}

func (a *App) render() {
	_, rows := a.screen.Size()

	switch a.view {
	case ViewReport:
		a.renderer.RenderReport(a.current.ReportLines())
	default:
		a.renderer.RenderMap(a.current.Grid, a.set)
	}
	a.renderer.RenderMessage(a.status, rows-1)
	a.renderer.Show()
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) {
	ev := a.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// Screen finalized.
		a.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case 'r', 'R':
			// A fixed seed only applies to the first map; later maps step from it.
			seed := a.current.Seed + 1
			if a.cfg.Seed == 0 {
				seed = a.cfg.NextSeed()
			}
			if err := a.regenerate(ctx, seed); err != nil {
				log.Printf("Error: %v", err)
				a.status = err.Error()
			}
			a.view = ViewMap
		case 's', 'S':
			path, err := Export(a.current, a.set, a.cfg.ExportDir)
			if err != nil {
				log.Printf("Error: %v", err)
				a.status = err.Error()
				return
			}
			a.status = "saved " + path
		case 'i', 'I':
			a.view = a.view.Toggle()
		}
	}
}

// Close cleans up viewer resources.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}
