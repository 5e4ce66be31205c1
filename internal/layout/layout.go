// Package layout holds an ordered set of display components and renders them
// together against one timer snapshot.
package layout

import (
	"strings"

	"github.com/npratt/splitchance/internal/component"
	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/timing"
)

// Layout is an ordered list of components.
type Layout struct {
	Components []component.Component
	// Unsupported lists component paths from the layout file that have no
	// implementation and were left out.
	Unsupported []string
}

// New creates a layout from components.
func New(components ...component.Component) *Layout {
	return &Layout{Components: components}
}

// Push appends a component.
func (l *Layout) Push(c component.Component) {
	l.Components = append(l.Components, c)
}

// States refreshes every component and returns their states in order.
func (l *Layout) States(snapshot timing.Snapshot) []keyvalue.State {
	states := make([]keyvalue.State, 0, len(l.Components))
	for _, c := range l.Components {
		states = append(states, c.State(snapshot))
	}
	return states
}

// Render refreshes every component and draws them one below the other.
func (l *Layout) Render(snapshot timing.Snapshot, r keyvalue.Renderer) string {
	states := l.States(snapshot)
	rows := make([]string, 0, len(states))
	for _, s := range states {
		rows = append(rows, r.Render(s))
	}
	return strings.Join(rows, "\n")
}
