package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npratt/splitchance/internal/analysis"
	"github.com/npratt/splitchance/internal/run"
	"github.com/npratt/splitchance/internal/testutil"
	"github.com/npratt/splitchance/internal/timing"
)

func TestCalculate(t *testing.T) {
	// 10 attempts: 7 completed split 1, 4 completed split 2, 2 finished.
	r := testutil.NewRun(10, 7, 4, 2)

	tests := []struct {
		name  string
		phase timing.Phase
		split int
		want  analysis.SuccessCounts
	}{
		{
			name:  "first split counts every attempt",
			phase: timing.Running,
			split: 0,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 7, TotalAttempts: 10},
		},
		{
			name:  "later split uses previous split",
			phase: timing.Running,
			split: 1,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 4, TotalAttempts: 7},
		},
		{
			name:  "paused behaves like running",
			phase: timing.Paused,
			split: 2,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 2, TotalAttempts: 4},
		},
		{
			name:  "not running covers the whole run",
			phase: timing.NotRunning,
			split: timing.NoSplit,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 2, TotalAttempts: 10},
		},
		{
			name:  "ended counts the finished attempt",
			phase: timing.Ended,
			split: timing.NoSplit,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 3, TotalAttempts: 3},
		},
		{
			name:  "split past the end has no history",
			phase: timing.Running,
			split: 5,
			want:  analysis.SuccessCounts{SuccessfulAttempts: 0, TotalAttempts: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.Calculate(timing.NewSnapshot(r, tt.phase, tt.split))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateRunningWithoutSplitIndex(t *testing.T) {
	r := testutil.NewRun(6, 3)
	got := analysis.Calculate(timing.NewSnapshot(r, timing.Running, timing.NoSplit))
	assert.Equal(t, analysis.SuccessCounts{SuccessfulAttempts: 3, TotalAttempts: 6}, got)
}

func TestCalculateEmptyRun(t *testing.T) {
	r := &run.Run{Segments: []run.Segment{{Name: "Only"}}}

	assert.Equal(t, analysis.SuccessCounts{},
		analysis.Calculate(timing.NewSnapshot(r, timing.NotRunning, timing.NoSplit)))
	assert.Equal(t, analysis.SuccessCounts{SuccessfulAttempts: 1, TotalAttempts: 1},
		analysis.Calculate(timing.NewSnapshot(r, timing.Ended, timing.NoSplit)))
}

func TestCalculateIgnoresImportedTimes(t *testing.T) {
	r := testutil.NewRun(4, 3, 2)
	r.Segments[1].History = append(r.Segments[1].History,
		run.SegmentTime{Attempt: 0},
		run.SegmentTime{Attempt: -2},
	)

	got := analysis.Calculate(timing.NewSnapshot(r, timing.Running, 1))
	assert.Equal(t, analysis.SuccessCounts{SuccessfulAttempts: 2, TotalAttempts: 3}, got)
}

func TestCalculateDoesNotModifyRun(t *testing.T) {
	r := testutil.NewRun(5, 4, 1)
	before := testutil.NewRun(5, 4, 1)

	for _, phase := range []timing.Phase{timing.NotRunning, timing.Running, timing.Paused, timing.Ended} {
		analysis.Calculate(timing.NewSnapshot(r, phase, 1))
	}
	assert.Equal(t, before, r)
}

func TestTotalSuccessfulAttempts(t *testing.T) {
	assert.Equal(t, uint32(2), analysis.TotalSuccessfulAttempts(testutil.NewRun(9, 5, 2)))
	assert.Equal(t, uint32(0), analysis.TotalSuccessfulAttempts(&run.Run{}))
}

func TestCalculateAfterSkippedSplits(t *testing.T) {
	r := testutil.NewRun(0, 0, 0, 0)
	timer := timing.NewTimer(r)

	for i := 0; i < 2; i++ {
		require.NoError(t, timer.Start())
		require.NoError(t, timer.SkipSplit())
		require.NoError(t, timer.Split())
		require.NoError(t, timer.Reset())
	}
	require.NoError(t, timer.Start())
	require.NoError(t, timer.Split())
	require.NoError(t, timer.Reset())

	for split := 0; split < r.Len(); split++ {
		got := analysis.Calculate(timing.NewSnapshot(r, timing.Running, split))
		assert.LessOrEqual(t, got.SuccessfulAttempts, got.TotalAttempts, "split %d", split)
	}

	got := analysis.Calculate(timing.NewSnapshot(r, timing.Running, 1))
	assert.Equal(t, analysis.SuccessCounts{SuccessfulAttempts: 2, TotalAttempts: 3}, got)
}
