package timing

import (
	"errors"
	"time"

	"github.com/npratt/splitchance/internal/run"
)

// ErrInvalidTransition is returned when a timer command is not valid in the
// current phase.
var ErrInvalidTransition = errors.New("invalid timer transition")

// Timer is a minimal speedrun timer. It owns the run it operates on and
// records every attempt into the run history when the attempt is reset.
type Timer struct {
	run   *run.Run
	now   func() time.Time
	phase Phase

	splitIndex int
	start      time.Time
	pauseStart time.Time
	paused     time.Duration
	lastSplit  time.Duration
	splitTimes []*time.Duration
	final      *time.Duration
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithClock replaces the wall clock used to measure segment times.
func WithClock(now func() time.Time) TimerOption {
	return func(t *Timer) {
		t.now = now
	}
}

// NewTimer creates a timer for r in the NotRunning phase.
func NewTimer(r *run.Run, opts ...TimerOption) *Timer {
	t := &Timer{
		run:        r,
		now:        time.Now,
		phase:      NotRunning,
		splitIndex: NoSplit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run returns the run the timer records into.
func (t *Timer) Run() *run.Run {
	return t.run
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Snapshot captures the timer's current state.
func (t *Timer) Snapshot() Snapshot {
	return NewSnapshot(t.run, t.phase, t.splitIndex)
}

// Start begins a new attempt.
func (t *Timer) Start() error {
	if t.phase != NotRunning || t.run.Len() == 0 {
		return ErrInvalidTransition
	}
	t.phase = Running
	t.splitIndex = 0
	t.start = t.now()
	t.paused = 0
	t.lastSplit = 0
	t.final = nil
	t.splitTimes = make([]*time.Duration, t.run.Len())
	t.run.AttemptCount++
	return nil
}

// Split completes the current segment. Splitting the last segment ends the
// attempt.
func (t *Timer) Split() error {
	if t.phase != Running {
		return ErrInvalidTransition
	}
	elapsed := t.elapsed()
	segment := elapsed - t.lastSplit
	t.splitTimes[t.splitIndex] = &segment
	t.lastSplit = elapsed
	t.splitIndex++

	if t.splitIndex == t.run.Len() {
		t.phase = Ended
		t.final = &elapsed
	}
	return nil
}

// SkipSplit moves to the next segment without recording a time. The last
// segment cannot be skipped.
func (t *Timer) SkipSplit() error {
	if (t.phase != Running && t.phase != Paused) || t.splitIndex+1 >= t.run.Len() {
		return ErrInvalidTransition
	}
	t.splitTimes[t.splitIndex] = nil
	t.splitIndex++
	return nil
}

// UndoSplit returns to the previous segment.
func (t *Timer) UndoSplit() error {
	if t.phase == NotRunning || t.splitIndex == 0 {
		return ErrInvalidTransition
	}
	if t.phase == Ended {
		t.phase = Running
		t.final = nil
	}
	t.splitIndex--
	if prev := t.splitTimes[t.splitIndex]; prev != nil {
		t.lastSplit -= *prev
	}
	t.splitTimes[t.splitIndex] = nil
	return nil
}

// Pause stops the clock of a running attempt.
func (t *Timer) Pause() error {
	if t.phase != Running {
		return ErrInvalidTransition
	}
	t.phase = Paused
	t.pauseStart = t.now()
	return nil
}

// Resume restarts the clock of a paused attempt.
func (t *Timer) Resume() error {
	if t.phase != Paused {
		return ErrInvalidTransition
	}
	t.paused += t.now().Sub(t.pauseStart)
	t.phase = Running
	return nil
}

// Reset ends the attempt and records it in the run history.
func (t *Timer) Reset() error {
	if t.phase == NotRunning {
		return ErrInvalidTransition
	}
	if t.phase == Paused {
		t.paused += t.now().Sub(t.pauseStart)
	}
	// Segments before the current split were passed by a split or a skip.
	// An ended attempt has passed all of them.
	t.run.AddAttempt(t.final, t.splitTimes[:t.splitIndex])

	t.phase = NotRunning
	t.splitIndex = NoSplit
	t.splitTimes = nil
	t.final = nil
	return nil
}

func (t *Timer) elapsed() time.Duration {
	return t.now().Sub(t.start) - t.paused
}
