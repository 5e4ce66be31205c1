package run_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npratt/splitchance/internal/run"
	"github.com/npratt/splitchance/internal/testutil"
)

func TestSegmentActualRuns(t *testing.T) {
	seg := run.Segment{History: []run.SegmentTime{
		{Attempt: 1},
		{Attempt: 0},
		{Attempt: -3},
		{Attempt: 2},
		{Attempt: 7},
	}}
	assert.Equal(t, uint32(3), seg.ActualRuns())
	assert.Equal(t, uint32(0), run.Segment{}.ActualRuns())
}

func TestRunCompletedAttempts(t *testing.T) {
	r := testutil.NewRun(10, 8, 5, 3)
	assert.Equal(t, uint32(3), r.CompletedAttempts())
	assert.Equal(t, 3, r.Len())
}

func TestRunSegmentOutOfRange(t *testing.T) {
	r := testutil.NewRun(4, 2)

	assert.Equal(t, "Split 1", r.Segment(0).Name)
	assert.Empty(t, r.Segment(1).History)
	assert.Empty(t, r.Segment(-1).History)
}

func TestRunAddAttempt(t *testing.T) {
	r := testutil.NewRun(2, 2, 1)
	require.Equal(t, int32(3), r.NextAttemptIndex())

	r.AddAttempt(nil, []*time.Duration{testutil.Duration(time.Minute)})

	require.Len(t, r.Attempts, 3)
	assert.Equal(t, int32(3), r.Attempts[2].Index)
	assert.False(t, r.Attempts[2].Completed())
	assert.Equal(t, uint32(3), r.Segments[0].ActualRuns())
	assert.Equal(t, uint32(1), r.Segments[1].ActualRuns(), "unreached segment has no entry")
	assert.Equal(t, uint32(2), r.AttemptCount, "attempt count is owned by the timer")
}

func TestRunAddAttemptRecordsSkippedSegments(t *testing.T) {
	r := testutil.NewRun(0, 0, 0, 0)

	r.AddAttempt(nil, []*time.Duration{nil, testutil.Duration(time.Minute)})

	require.Len(t, r.Segments[0].History, 1)
	assert.Nil(t, r.Segments[0].History[0].RealTime)
	assert.Equal(t, int32(1), r.Segments[0].History[0].Attempt)
	assert.Equal(t, uint32(1), r.Segments[0].ActualRuns())
	assert.Equal(t, uint32(1), r.Segments[1].ActualRuns())
	assert.Equal(t, uint32(0), r.Segments[2].ActualRuns())
}

func TestRunAddAttemptIgnoresExtraTimes(t *testing.T) {
	r := testutil.NewRun(0, 0)
	final := 90 * time.Second

	r.AddAttempt(&final, []*time.Duration{&final, &final, &final})

	assert.Equal(t, uint32(1), r.CompletedAttempts())
	assert.Len(t, r.Segments[0].History, 1)
}

func TestParse(t *testing.T) {
	r, err := run.Parse(strings.NewReader(testutil.SampleRunYAML))
	require.NoError(t, err)

	assert.Equal(t, "Celeste", r.Game)
	assert.Equal(t, uint32(4), r.AttemptCount)
	assert.Equal(t, uint32(2), r.CompletedAttempts())
	require.Equal(t, 3, r.Len())
	assert.Equal(t, uint32(4), r.Segments[0].ActualRuns())
	assert.Equal(t, uint32(2), r.Segments[1].ActualRuns(), "imported times are not attempts")
	require.NotNil(t, r.Attempts[0].RealTime)
	assert.Equal(t, 30*time.Minute, *r.Attempts[0].RealTime)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "no segments",
			input:   "game: Celeste\nattempt_count: 3\n",
			wantErr: run.ErrNoSegments,
		},
		{
			name:  "unknown field",
			input: "game: Celeste\nsplits: []\n",
		},
		{
			name:  "malformed",
			input: "segments: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseRaisesAttemptCount(t *testing.T) {
	input := `attempts:
  - index: 1
  - index: 2
segments:
  - name: Only
`
	r, err := run.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), r.AttemptCount)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	want := testutil.NewRun(5, 4, 2)

	require.NoError(t, run.Save(path, want))
	assert.Contains(t, testutil.ReadFile(t, path), "real_time: 2m0s")

	got, err := run.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := run.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
