// Package tui provides an interactive terminal view that drives an in-memory
// timer and shows the layout's components updating live.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/layout"
	"github.com/npratt/splitchance/internal/timing"
)

// defaultRefresh is the redraw interval when none is configured.
const defaultRefresh = time.Second

// TUI is the interactive view.
type TUI struct {
	timer    *timing.Timer
	layout   *layout.Layout
	renderer keyvalue.Renderer
	refresh  time.Duration
	onQuit   func()
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI showing l while the user controls timer.
func New(timer *timing.Timer, l *layout.Layout, renderer keyvalue.Renderer, opts ...Option) *TUI {
	t := &TUI{
		timer:    timer,
		layout:   l,
		renderer: renderer,
		refresh:  defaultRefresh,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithRefreshInterval sets how often the view redraws without input.
func WithRefreshInterval(d time.Duration) Option {
	return func(t *TUI) {
		if d > 0 {
			t.refresh = d
		}
	}
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run() error {
	m := newModel(t.timer, t.layout, t.renderer, t.refresh, t.onQuit)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
