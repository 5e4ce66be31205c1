package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/splitchance/internal/timing"
)

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// doTick creates a command that waits for the interval and sends a tickMsg.
func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// Redrawing refreshes the components; idle totals may have changed.
		return m, doTick(m.refresh)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Split):
		if m.timer.Phase() == timing.NotRunning {
			m.apply("start", m.timer.Start)
		} else {
			m.apply("split", m.timer.Split)
		}

	case key.Matches(msg, m.keys.Skip):
		m.apply("skip", m.timer.SkipSplit)

	case key.Matches(msg, m.keys.Undo):
		m.apply("undo", m.timer.UndoSplit)

	case key.Matches(msg, m.keys.Pause):
		if m.timer.Phase() == timing.Paused {
			m.apply("resume", m.timer.Resume)
		} else {
			m.apply("pause", m.timer.Pause)
		}

	case key.Matches(msg, m.keys.Reset):
		m.apply("reset", m.timer.Reset)

	case key.Matches(msg, m.keys.ShowSuccesses):
		on, err := m.toggleSetting(settingShowSuccesses)
		if err != nil {
			m.setError(err)
		} else if on {
			m.setMessage("showing success chance")
		} else {
			m.setMessage("showing reset chance")
		}

	case key.Matches(msg, m.keys.Details):
		on, err := m.toggleSetting(settingDetails)
		if err != nil {
			m.setError(err)
		} else {
			m.setMessage("attempt details: %t", on)
		}
	}
	return m, nil
}

// apply runs a timer action and records its outcome.
func (m *model) apply(action string, fn func() error) {
	if err := fn(); err != nil {
		slog.Debug("timer action rejected", "action", action, "phase", m.timer.Phase(), "error", err)
		m.setMessage("cannot %s while %s", action, m.timer.Phase())
		m.isError = true
		return
	}
	slog.Debug("timer action", "action", action, "phase", m.timer.Phase())
	m.setMessage("%s", action)
}
