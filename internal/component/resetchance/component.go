// Package resetchance provides the Reset Chance component. It shows the
// probability of resetting on the current split, or of completing it when
// configured to show successes. Without an active attempt it shows the chance
// for the run as a whole.
package resetchance

import (
	"fmt"

	"github.com/npratt/splitchance/internal/analysis"
	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/settings"
	"github.com/npratt/splitchance/internal/timing"
)

// Name is the display name of the component.
const Name = "Reset Chance"

// Settings configures the component.
type Settings struct {
	// Background shown behind the component.
	Background settings.Gradient `json:"background"`
	// DisplayTwoRows puts the label and the value on separate rows.
	DisplayTwoRows bool `json:"display_two_rows"`
	// LabelColor overrides the label color. nil takes it from the layout.
	LabelColor *settings.Color `json:"label_color"`
	// ValueColor overrides the value color. nil takes it from the layout.
	ValueColor *settings.Color `json:"value_color"`
	// ShowSuccesses shows the success chance (100% minus the reset chance)
	// instead of the reset chance.
	ShowSuccesses bool `json:"show_successes"`
	// ShowAttemptDetails adds the attempt counts the chance is based on.
	ShowAttemptDetails bool `json:"show_attempt_details"`
}

// DefaultSettings returns the settings of a new component.
func DefaultSettings() Settings {
	return Settings{Background: keyvalue.DefaultGradient}
}

// Component is the Reset Chance component. It is not safe for concurrent use.
type Component struct {
	settings Settings

	// The success counts are only recalculated when the phase or split
	// changes, and on every refresh while no attempt is running.
	phase         *timing.Phase
	splitIndex    int
	hasSplitIndex bool
	counts        *analysis.SuccessCounts
}

// New creates a component with default settings.
func New() *Component {
	return WithSettings(DefaultSettings())
}

// WithSettings creates a component with the given settings.
func WithSettings(s Settings) *Component {
	return &Component{settings: s}
}

// Name returns "Reset Chance".
func (c *Component) Name() string {
	return Name
}

// Settings returns a copy of the settings.
func (c *Component) Settings() Settings {
	return c.settings
}

// SettingsMut gives mutable access to the settings.
func (c *Component) SettingsMut() *Settings {
	return &c.settings
}

// SetSettings replaces the settings. Cached counts are kept; they do not
// depend on the settings.
func (c *Component) SetSettings(s Settings) {
	c.settings = s
}

// State refreshes the component and returns a new render record.
func (c *Component) State(snapshot timing.Snapshot) keyvalue.State {
	var state keyvalue.State
	c.UpdateState(&state, snapshot)
	return state
}

// UpdateState refreshes the component and writes the result into state,
// reusing its buffers.
func (c *Component) UpdateState(state *keyvalue.State, snapshot timing.Snapshot) {
	state.Background = c.settings.Background
	state.KeyColor = c.settings.LabelColor
	state.ValueColor = c.settings.ValueColor
	state.SemanticColor = keyvalue.SemanticDefault

	if c.settings.ShowSuccesses {
		state.Key = "Success Chance"
	} else {
		state.Key = "Reset Chance"
	}

	counts := c.successCounts(snapshot)
	if !c.settings.ShowSuccesses {
		// Histories with more completions than attempts are corrupt; treat
		// them as no resets rather than wrapping around.
		if counts.SuccessfulAttempts > counts.TotalAttempts {
			counts.SuccessfulAttempts = counts.TotalAttempts
		}
		counts.SuccessfulAttempts = counts.TotalAttempts - counts.SuccessfulAttempts
	}

	var chance float64
	switch {
	case counts.TotalAttempts > 0:
		chance = float64(counts.SuccessfulAttempts) / float64(counts.TotalAttempts)
	case c.settings.ShowSuccesses:
		chance = 1
	}

	if c.settings.ShowAttemptDetails {
		state.Value = fmt.Sprintf("%d/%d (%.1f%%)", counts.SuccessfulAttempts, counts.TotalAttempts, 100*chance)
	} else {
		state.Value = fmt.Sprintf("%.1f%%", 100*chance)
	}

	if state.KeyAbbreviations == nil {
		state.KeyAbbreviations = []string{}
	} else {
		state.KeyAbbreviations = state.KeyAbbreviations[:0]
	}
	state.DisplayTwoRows = c.settings.DisplayTwoRows
	state.UpdatesFrequently = false
}

// successCounts returns the cached counts, recalculating them when the phase
// or split index changed. NotRunning always recalculates: attempts can be
// recorded while idle without either of them changing.
func (c *Component) successCounts(snapshot timing.Snapshot) analysis.SuccessCounts {
	phase := snapshot.CurrentPhase()
	if c.phase == nil || *c.phase != phase || phase == timing.NotRunning {
		c.phase = &phase
		c.counts = nil
	}

	index, ok := snapshot.CurrentSplitIndex()
	if index != c.splitIndex || ok != c.hasSplitIndex {
		c.splitIndex, c.hasSplitIndex = index, ok
		c.counts = nil
	}

	if c.counts == nil {
		counts := analysis.Calculate(snapshot)
		c.counts = &counts
	}
	return *c.counts
}
