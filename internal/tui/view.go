package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/splitchance/internal/timing"
)

// View implements tea.Model.
func (m model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderDivider(),
		m.layout.Render(m.timer.Snapshot(), m.renderer),
		m.renderDivider(),
		m.renderFooter(),
	}
	return styles.Container.Render(strings.Join(sections, "\n"))
}

func (m model) renderHeader() string {
	r := m.timer.Run()
	title := styles.Title.Render(strings.TrimSpace(r.Game + " " + r.Category))
	if r.Game == "" && r.Category == "" {
		title = styles.Title.Render("splitchance")
	}

	snap := m.timer.Snapshot()
	status := phaseStyle(snap.CurrentPhase()).Render(snap.CurrentPhase().String())
	if index, ok := snap.CurrentSplitIndex(); ok && index < r.Len() {
		status += styles.Subtitle.Render(fmt.Sprintf(" · %d/%d %s", index+1, r.Len(), r.Segments[index].Name))
	}
	attempts := styles.Subtitle.Render(fmt.Sprintf("attempts: %d", r.AttemptCount))

	return lipgloss.JoinVertical(lipgloss.Left, title, status, attempts)
}

func (m model) renderDivider() string {
	return styles.Divider.Render(strings.Repeat("─", m.renderer.Width))
}

func (m model) renderFooter() string {
	var lines []string
	if m.message != "" {
		if m.isError {
			lines = append(lines, styles.Error.Render(m.message))
		} else {
			lines = append(lines, styles.Message.Render(m.message))
		}
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func phaseStyle(p timing.Phase) lipgloss.Style {
	switch p {
	case timing.Running:
		return styles.PhaseRunning
	case timing.Paused:
		return styles.PhasePaused
	case timing.Ended:
		return styles.PhaseEnded
	default:
		return styles.PhaseNotRunning
	}
}
