package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_OffsetIsViewportMinusRightEdge(t *testing.T) {
	tr := NewTracker(LeftAligned(100))

	require.Equal(t, 40, tr.Attach(140))
	require.Equal(t, 100, tr.ContainerWidth())
	require.Equal(t, 0, tr.Resize(90), "narrow viewport has no gap")
	require.Equal(t, 90, tr.ContainerWidth())
}

func TestTracker_ResizeIsIdempotent(t *testing.T) {
	tr := NewTracker(LeftAligned(60))
	tr.Attach(80)

	a := tr.Resize(120)
	b := tr.Resize(120)
	assert.Equal(t, a, b)
	assert.Equal(t, 60, b)
}

func TestTracker_IgnoresResizeWhenDetached(t *testing.T) {
	tr := NewTracker(LeftAligned(50))
	require.Zero(t, tr.Resize(200), "not attached yet")

	tr.Attach(100)
	require.True(t, tr.Attached())
	tr.Detach()
	require.False(t, tr.Attached())

	require.Equal(t, 50, tr.Resize(300))
	require.Equal(t, 50, tr.Offset())
}

func TestTracker_CustomMeasureClamped(t *testing.T) {
	tr := NewTracker(func(w int) int { return w + 10 })
	require.Zero(t, tr.Attach(80))

	tr = NewTracker(nil)
	require.Zero(t, tr.Attach(80))
}

func TestTerminalWidth_Fallback(t *testing.T) {
	// go test does not attach stdout to a terminal.
	require.Positive(t, TerminalWidth())
}
