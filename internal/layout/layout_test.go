package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/component/resetchance"
	"github.com/npratt/splitchance/internal/layout"
	"github.com/npratt/splitchance/internal/testutil"
	"github.com/npratt/splitchance/internal/timing"
)

func TestLayoutStates(t *testing.T) {
	l := layout.New(resetchance.New())
	l.Push(resetchance.WithSettings(resetchance.Settings{ShowSuccesses: true}))

	snap := timing.NewSnapshot(testutil.NewRun(4, 3), timing.Running, 0)
	states := l.States(snap)

	require.Len(t, states, 2)
	assert.Equal(t, "Reset Chance", states[0].Key)
	assert.Equal(t, "25.0%", states[0].Value)
	assert.Equal(t, "Success Chance", states[1].Key)
	assert.Equal(t, "75.0%", states[1].Value)
}

func TestLayoutRender(t *testing.T) {
	l := layout.New(
		resetchance.New(),
		resetchance.WithSettings(resetchance.Settings{DisplayTwoRows: true}),
	)

	out := l.Render(timing.NewSnapshot(testutil.NewRun(2, 1), timing.NotRunning, timing.NoSplit), keyvalue.DefaultRenderer(24))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Reset Chance")
	assert.Contains(t, lines[0], "50.0%")
	assert.Contains(t, lines[1], "Reset Chance")
	assert.Contains(t, lines[2], "50.0%")
}

func TestLayoutEmpty(t *testing.T) {
	l := layout.New()
	snap := timing.NewSnapshot(testutil.NewRun(1, 1), timing.NotRunning, timing.NoSplit)

	assert.Empty(t, l.States(snap))
	assert.Equal(t, "", l.Render(snap, keyvalue.DefaultRenderer(10)))
}
