// Package analysis derives statistics from a timer snapshot without
// modifying it.
package analysis

import (
	"github.com/npratt/splitchance/internal/run"
	"github.com/npratt/splitchance/internal/timing"
)

// SuccessCounts is the number of attempts that completed a split (or the whole
// run) out of the attempts that reached it.
type SuccessCounts struct {
	SuccessfulAttempts uint32 `json:"successful_attempts"`
	TotalAttempts      uint32 `json:"total_attempts"`
}

// TotalSuccessfulAttempts returns how many attempts of the run were completed.
func TotalSuccessfulAttempts(r *run.Run) uint32 {
	return r.CompletedAttempts()
}

// Calculate returns the success counts for the snapshot. While an attempt is
// in progress the counts are relative to the current split: of the attempts
// that reached the previous split, how many completed this one. Otherwise
// they cover the entire run.
func Calculate(snapshot timing.Snapshot) SuccessCounts {
	r := snapshot.Run()

	switch snapshot.CurrentPhase() {
	case timing.Running, timing.Paused:
		index, _ := snapshot.CurrentSplitIndex()

		var total uint32
		if index == 0 {
			// Every attempt reaches the start.
			total = r.AttemptCount
		} else {
			total = r.Segment(index - 1).ActualRuns()
		}
		return SuccessCounts{
			SuccessfulAttempts: r.Segment(index).ActualRuns(),
			TotalAttempts:      total,
		}

	case timing.Ended:
		// The finished attempt is not in the history yet.
		count := 1 + TotalSuccessfulAttempts(r)
		return SuccessCounts{SuccessfulAttempts: count, TotalAttempts: count}

	default:
		return SuccessCounts{
			SuccessfulAttempts: TotalSuccessfulAttempts(r),
			TotalAttempts:      r.AttemptCount,
		}
	}
}
