// Package keyvalue provides the render record shared by every component that
// displays a single label and value, plus a terminal renderer for it.
package keyvalue

import (
	"encoding/json"
	"io"

	"github.com/npratt/splitchance/internal/settings"
)

// DefaultGradient is the background used by key/value components unless
// configured otherwise: a faint white wash fading out towards the bottom.
var DefaultGradient = settings.Vertical(
	settings.RGBA(1, 1, 1, 0.06),
	settings.RGBA(1, 1, 1, 0.005),
)

// SemanticColor names a color whose actual value is chosen by the layout.
type SemanticColor string

// SemanticDefault leaves the value color to the component or layout.
const SemanticDefault SemanticColor = "Default"

// State is everything a renderer needs to draw a key/value component.
type State struct {
	Background        settings.Gradient `json:"background"`
	KeyColor          *settings.Color   `json:"key_color"`   // nil inherits the layout's text color
	ValueColor        *settings.Color   `json:"value_color"` // nil inherits the layout's text color
	SemanticColor     SemanticColor     `json:"semantic_color"`
	Key               string            `json:"key"`
	Value             string            `json:"value"`
	KeyAbbreviations  []string          `json:"key_abbreviations"`
	DisplayTwoRows    bool              `json:"display_two_rows"`
	UpdatesFrequently bool              `json:"updates_frequently"`
}

// WriteJSON encodes the state as JSON.
func (s *State) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}
