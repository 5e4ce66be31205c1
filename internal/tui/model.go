package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/splitchance/internal/component"
	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/layout"
	"github.com/npratt/splitchance/internal/settings"
	"github.com/npratt/splitchance/internal/timing"
)

// Setting names toggled from the keyboard.
const (
	settingShowSuccesses = "Show Successes"
	settingDetails       = "Show Attempt Details"
)

// model is the bubbletea model for the TUI.
type model struct {
	timer    *timing.Timer
	layout   *layout.Layout
	renderer keyvalue.Renderer
	refresh  time.Duration
	onQuit   func()

	keys keyMap
	help help.Model

	width  int
	height int

	// message is the outcome of the last action, shown in the footer.
	message string
	isError bool
}

func newModel(timer *timing.Timer, l *layout.Layout, renderer keyvalue.Renderer, refresh time.Duration, onQuit func()) model {
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	return model{
		timer:    timer,
		layout:   l,
		renderer: renderer,
		refresh:  refresh,
		onQuit:   onQuit,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return doTick(m.refresh)
}

func (m *model) setMessage(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.isError = false
}

func (m *model) setError(err error) {
	m.message = err.Error()
	m.isError = true
}

// toggleSetting flips the boolean setting called name on every component
// that has one.
func (m *model) toggleSetting(name string) (bool, error) {
	var value bool
	for _, c := range m.layout.Components {
		ok, v, err := toggle(c, name)
		if err != nil {
			return false, fmt.Errorf("%s: %w", c.Name(), err)
		}
		if ok {
			value = v
		}
	}
	return value, nil
}

func toggle(c component.Component, name string) (bool, bool, error) {
	for i, f := range c.SettingsDescription().Fields {
		if f.Name != name {
			continue
		}
		current, err := f.Value.AsBool()
		if err != nil {
			return false, false, err
		}
		if err := c.SetValue(i, settings.Bool(!current)); err != nil {
			return false, false, err
		}
		return true, !current, nil
	}
	return false, false, nil
}
