// Package component defines the contract every display component in a layout
// satisfies, so that layouts can hold and render components generically.
package component

import (
	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/settings"
	"github.com/npratt/splitchance/internal/timing"
)

// Component is a display component that renders as a key/value pair.
type Component interface {
	// Name returns the component's display name.
	Name() string
	// State refreshes the component against the snapshot and returns what to draw.
	State(snapshot timing.Snapshot) keyvalue.State
	// SettingsDescription lists the component's settings in index order.
	SettingsDescription() settings.Description
	// SetValue assigns the setting at index.
	SetValue(index int, value settings.Value) error
}
