package keyvalue

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/npratt/splitchance/internal/settings"
)

// minGap is the number of spaces kept between key and value on one row.
const minGap = 1

// Renderer draws key/value states as terminal text.
type Renderer struct {
	Width     int            // total cell width of a row
	TextColor settings.Color // used when a state has no color override
	Base      settings.Color // terminal background translucent colors blend onto
}

// DefaultRenderer returns a renderer with white text on black.
func DefaultRenderer(width int) Renderer {
	return Renderer{
		Width:     width,
		TextColor: settings.RGBA(1, 1, 1, 1),
		Base:      settings.RGBA(0, 0, 0, 1),
	}
}

// Render returns the state drawn as one or two rows.
func (r Renderer) Render(s State) string {
	bg := lipgloss.NewStyle()
	if c, ok := s.Background.Primary(); ok {
		bg = bg.Background(lipgloss.Color(r.blend(c)))
	}
	keyStyle := bg.Foreground(lipgloss.Color(r.textColor(s.KeyColor)))
	valueStyle := bg.Foreground(lipgloss.Color(r.textColor(s.ValueColor)))

	key := s.Key
	if !s.DisplayTwoRows {
		key = r.fitKey(s)
	}

	if s.DisplayTwoRows {
		return lipgloss.JoinVertical(lipgloss.Left,
			keyStyle.Width(r.Width).Render(key),
			valueStyle.Width(r.Width).Align(lipgloss.Right).Render(s.Value),
		)
	}

	gap := r.Width - lipgloss.Width(key) - lipgloss.Width(s.Value)
	if gap < minGap {
		gap = minGap
	}
	return keyStyle.Render(key) + bg.Render(strings.Repeat(" ", gap)) + valueStyle.Render(s.Value)
}

// fitKey picks the longest of the key and its abbreviations that still fits
// next to the value.
func (r Renderer) fitKey(s State) string {
	room := r.Width - lipgloss.Width(s.Value) - minGap
	if lipgloss.Width(s.Key) <= room {
		return s.Key
	}
	best := s.Key
	for _, abbr := range s.KeyAbbreviations {
		if lipgloss.Width(abbr) <= room && (lipgloss.Width(best) > room || lipgloss.Width(abbr) > lipgloss.Width(best)) {
			best = abbr
		}
	}
	return best
}

func (r Renderer) textColor(override *settings.Color) string {
	if override != nil {
		return r.blend(*override)
	}
	return r.blend(r.TextColor)
}

// blend composites c over the base color so translucent colors render as
// the solid color a terminal can show.
func (r Renderer) blend(c settings.Color) string {
	base := colorful.Color{R: float64(r.Base.R), G: float64(r.Base.G), B: float64(r.Base.B)}
	top := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	return base.BlendRgb(top, float64(c.A)).Clamped().Hex()
}
