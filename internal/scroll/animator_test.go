package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAnimatorLandsOnTarget(t *testing.T) {
	a := NewAnimator(4, 20, 600*time.Millisecond)
	require.True(t, a.ScrollTo(3, 7))
	require.Equal(t, uint64(7), a.Seq())

	start := time.Unix(100, 0)
	require.False(t, a.Step(start))
	require.Equal(t, 0, a.Offset())

	require.False(t, a.Step(start.Add(300*time.Millisecond)))
	mid := a.Offset()
	require.Greater(t, mid, 0)
	require.Less(t, mid, 60)

	require.True(t, a.Step(start.Add(600*time.Millisecond)))
	require.Equal(t, 60, a.Offset())
	require.False(t, a.Animating())

	ratios := a.Ratios()
	require.Equal(t, []float64{0, 0, 0, 1}, ratios)
}

func TestAnimatorMissingTarget(t *testing.T) {
	a := NewAnimator(2, 10, time.Second)
	require.False(t, a.ScrollTo(2, 1))
	require.False(t, a.ScrollTo(-1, 1))
	require.False(t, a.Animating())
}

func TestAnimatorRatiosMidway(t *testing.T) {
	a := NewAnimator(3, 10, 0)
	a.ScrollTo(1, 1)
	a.Step(time.Unix(0, 0))
	require.Equal(t, 10, a.Offset())

	a.offset = 4
	r := a.Ratios()
	require.InDelta(t, 0.6, r[0], 1e-9)
	require.InDelta(t, 0.4, r[1], 1e-9)
	require.Zero(t, r[2])
}

func TestAnimatorResizeKeepsSection(t *testing.T) {
	a := NewAnimator(3, 10, time.Second)
	a.ScrollTo(2, 1)
	a.Resize(15, 2)
	require.False(t, a.Animating())
	require.Equal(t, 30, a.Offset())
	require.Equal(t, 15, a.Height())
}

func TestEaseEndpoints(t *testing.T) {
	require.Zero(t, easeInOutCubic(0))
	require.InDelta(t, 0.5, easeInOutCubic(0.5), 1e-9)
	require.InDelta(t, 1, easeInOutCubic(1), 1e-9)
}
