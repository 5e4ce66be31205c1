// Package run defines the recorded history of a speedrun: its attempts and
// the per-segment times of every attempt that reached each segment.
package run

import "time"

// Attempt is one recorded attempt of the run.
type Attempt struct {
	Index    int32          `yaml:"index" json:"index"`
	RealTime *time.Duration `yaml:"real_time,omitempty" json:"real_time,omitempty"` // nil if the attempt was reset
}

// Completed reports whether the attempt reached the end of the run.
func (a Attempt) Completed() bool {
	return a.RealTime != nil
}

// SegmentTime is the time a single attempt spent on a segment.
type SegmentTime struct {
	Attempt  int32          `yaml:"attempt" json:"attempt"` // non-positive for imported or merged times
	RealTime *time.Duration `yaml:"real_time,omitempty" json:"real_time,omitempty"`
}

// Segment is one ordered checkpoint of the run.
type Segment struct {
	Name    string        `yaml:"name" json:"name"`
	History []SegmentTime `yaml:"history" json:"history"`
}

// ActualRuns returns how many recorded attempts completed this segment.
// Entries that do not belong to a real attempt are not counted.
func (s Segment) ActualRuns() uint32 {
	var n uint32
	for _, t := range s.History {
		if t.Attempt > 0 {
			n++
		}
	}
	return n
}

// Run is the full recorded history of a game and category.
type Run struct {
	Game         string    `yaml:"game" json:"game"`
	Category     string    `yaml:"category" json:"category"`
	AttemptCount uint32    `yaml:"attempt_count" json:"attempt_count"`
	Attempts     []Attempt `yaml:"attempts" json:"attempts"`
	Segments     []Segment `yaml:"segments" json:"segments"`
}

// CompletedAttempts returns how many attempts in the history have a final time.
func (r *Run) CompletedAttempts() uint32 {
	var n uint32
	for _, a := range r.Attempts {
		if a.Completed() {
			n++
		}
	}
	return n
}

// Segment returns the segment at index i. An index outside the run yields an
// empty segment.
func (r *Run) Segment(i int) Segment {
	if i < 0 || i >= len(r.Segments) {
		return Segment{}
	}
	return r.Segments[i]
}

// Len returns the number of segments.
func (r *Run) Len() int {
	return len(r.Segments)
}

// NextAttemptIndex returns the index the next recorded attempt will use.
func (r *Run) NextAttemptIndex() int32 {
	var highest int32
	for _, a := range r.Attempts {
		if a.Index > highest {
			highest = a.Index
		}
	}
	return highest + 1
}

// AddAttempt records a finished or reset attempt in the history. splitTimes
// holds one entry per segment the attempt got past, in order; a nil entry
// is a skipped segment and is recorded without a time. Segments past the
// end of splitTimes were not reached and get no entry.
// AttemptCount is not touched; it is incremented when an attempt starts.
func (r *Run) AddAttempt(final *time.Duration, splitTimes []*time.Duration) {
	index := r.NextAttemptIndex()
	r.Attempts = append(r.Attempts, Attempt{Index: index, RealTime: final})

	for i, t := range splitTimes {
		if i >= len(r.Segments) {
			break
		}
		r.Segments[i].History = append(r.Segments[i].History, SegmentTime{
			Attempt:  index,
			RealTime: t,
		})
	}
}
