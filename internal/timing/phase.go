// Package timing provides the timer phase, the read-only snapshot handed to
// display components, and a small in-memory timer that produces snapshots.
package timing

import (
	"fmt"
	"strings"
)

// Phase is the lifecycle state of the active attempt.
type Phase int

const (
	// NotRunning means there is no active attempt.
	NotRunning Phase = iota
	// Running means an attempt is in progress.
	Running
	// Paused means an attempt is in progress but its timer is stopped.
	Paused
	// Ended means the attempt has finished but is not yet recorded.
	Ended
)

var phaseNames = [...]string{
	NotRunning: "not-running",
	Running:    "running",
	Paused:     "paused",
	Ended:      "ended",
}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase parses a phase name. Underscores, spaces and case are ignored so
// "NotRunning", "not_running" and "not-running" are equivalent.
func ParsePhase(s string) (Phase, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for i, name := range phaseNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return Phase(i), nil
		}
	}
	return NotRunning, fmt.Errorf("unknown timer phase %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
