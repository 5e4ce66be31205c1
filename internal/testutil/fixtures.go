package testutil

import (
	"fmt"
	"time"

	"github.com/npratt/splitchance/internal/run"
)

// NewRun builds a run with attempts recorded attempts. completed[i] is how
// many of those attempts completed segment i; attempts 1..completed[i] are
// the ones that did. The run has one segment per entry of completed, and the
// attempts that completed the last segment have a final time.
func NewRun(attempts int, completed ...int) *run.Run {
	r := &run.Run{
		Game:         "Test Game",
		Category:     "Any%",
		AttemptCount: uint32(attempts),
	}

	finished := 0
	if len(completed) > 0 {
		finished = completed[len(completed)-1]
	}
	for i := 1; i <= attempts; i++ {
		a := run.Attempt{Index: int32(i)}
		if i <= finished {
			a.RealTime = Duration(time.Duration(len(completed)) * time.Minute)
		}
		r.Attempts = append(r.Attempts, a)
	}

	for s, n := range completed {
		seg := run.Segment{Name: fmt.Sprintf("Split %d", s+1)}
		for i := 1; i <= n; i++ {
			seg.History = append(seg.History, run.SegmentTime{
				Attempt:  int32(i),
				RealTime: Duration(time.Minute),
			})
		}
		r.Segments = append(r.Segments, seg)
	}
	return r
}

// Duration returns a pointer to d.
func Duration(d time.Duration) *time.Duration {
	return &d
}

// SampleRunYAML is a run file with three segments and four attempts, two of
// which finished the run.
const SampleRunYAML = `game: Celeste
category: Any%
attempt_count: 4
attempts:
  - index: 1
    real_time: 30m0s
  - index: 2
  - index: 3
    real_time: 29m0s
  - index: 4
segments:
  - name: Forsaken City
    history:
      - attempt: 1
        real_time: 10m0s
      - attempt: 2
        real_time: 11m0s
      - attempt: 3
        real_time: 9m0s
      - attempt: 4
        real_time: 10m0s
  - name: Old Site
    history:
      - attempt: 1
        real_time: 10m0s
      - attempt: 3
        real_time: 10m0s
      - attempt: -1
        real_time: 12m0s
  - name: Celestial Resort
    history:
      - attempt: 1
        real_time: 10m0s
      - attempt: 3
        real_time: 10m0s
`
