package timing

import "github.com/npratt/splitchance/internal/run"

// NoSplit is the split index of a snapshot without an active split.
const NoSplit = -1

// Snapshot is a read-only view of the timer at one instant. It borrows the
// run; components must not retain it past a single refresh.
type Snapshot struct {
	phase      Phase
	splitIndex int
	run        *run.Run
}

// NewSnapshot builds a snapshot. A negative splitIndex means no split is
// active.
func NewSnapshot(r *run.Run, phase Phase, splitIndex int) Snapshot {
	if splitIndex < 0 {
		splitIndex = NoSplit
	}
	return Snapshot{phase: phase, splitIndex: splitIndex, run: r}
}

// CurrentPhase returns the phase of the timer.
func (s Snapshot) CurrentPhase() Phase {
	return s.phase
}

// CurrentSplitIndex returns the active split index and whether there is one.
func (s Snapshot) CurrentSplitIndex() (int, bool) {
	if s.splitIndex < 0 {
		return 0, false
	}
	return s.splitIndex, true
}

// Run returns the run the timer is operating on. It is never nil.
func (s Snapshot) Run() *run.Run {
	if s.run == nil {
		return &run.Run{}
	}
	return s.run
}
