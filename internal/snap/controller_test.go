package snap

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

type recordingScroller struct {
	calls   []int
	seqs    []uint64
	missing map[int]bool
}

func (s *recordingScroller) ScrollTo(index int, seq uint64) bool {
	if s.missing[index] {
		return false
	}
	s.calls = append(s.calls, index)
	s.seqs = append(s.seqs, seq)
	return true
}

func newTestController(t *testing.T, count int) (*Controller, *recordingScroller, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	sc := &recordingScroller{}
	return NewController(count, sc, WithClock(mock)), sc, mock
}

func TestSelectSetsActiveForEveryIndex(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for i := 0; i < n; i++ {
			c, _, _ := newTestController(t, n)
			c.RequestMove(SourceSelect, To(i))
			require.Equal(t, i, c.Active())
			require.GreaterOrEqual(t, c.Active(), 0)
			require.Less(t, c.Active(), n)
		}
	}
}

func TestSelectOutOfRangeIsNoop(t *testing.T) {
	c, sc, _ := newTestController(t, 3)
	require.False(t, c.RequestMove(SourceSelect, To(3)))
	require.False(t, c.RequestMove(SourceSelect, To(-1)))
	require.Equal(t, 0, c.Active())
	require.Empty(t, sc.calls)
}

func TestBackwardAtFirstStaysIdle(t *testing.T) {
	c, sc, _ := newTestController(t, 4)
	require.False(t, c.RequestMove(SourceKey, By(Backward)))
	require.Equal(t, 0, c.Active())
	require.Equal(t, Idle, c.Phase())
	require.False(t, c.Locked())
	require.Zero(t, c.Seq())
	require.Empty(t, sc.calls)
}

func TestForwardAtLastClamps(t *testing.T) {
	c, _, mock := newTestController(t, 3)
	require.True(t, c.RequestMove(SourceSelect, To(2)))
	mock.Add(time.Second)
	require.False(t, c.RequestMove(SourceWheel, By(Forward)))
	require.Equal(t, 2, c.Active())
	require.Equal(t, Idle, c.Phase())
}

func TestWheelDroppedWhileLocked(t *testing.T) {
	c, sc, mock := newTestController(t, 5)
	require.True(t, c.RequestMove(SourceWheel, By(Forward)))
	mock.Add(200 * time.Millisecond)
	require.False(t, c.RequestMove(SourceWheel, By(Forward)))
	require.Equal(t, 1, c.Active())
	require.Equal(t, []int{1}, sc.calls)

	mock.Add(600 * time.Millisecond)
	require.True(t, c.RequestMove(SourceWheel, By(Forward)))
	require.Equal(t, 2, c.Active())
}

func TestTouchAndKeysIgnoreLock(t *testing.T) {
	c, _, _ := newTestController(t, 5)
	require.True(t, c.RequestMove(SourceWheel, By(Forward)))
	require.True(t, c.Locked())
	require.True(t, c.RequestMove(SourceKey, By(Forward)))
	require.True(t, c.RequestMove(SourceTouch, By(Forward)))
	require.Equal(t, 3, c.Active())
}

func TestLockLapsesWithoutSignal(t *testing.T) {
	c, _, mock := newTestController(t, 3)
	require.True(t, c.RequestMove(SourceWheel, By(Forward)))
	require.Equal(t, Transitioning, c.Phase())
	mock.Add(699 * time.Millisecond)
	require.True(t, c.Locked())
	mock.Add(time.Millisecond)
	require.False(t, c.Locked())
	require.Equal(t, Idle, c.Phase())
}

func TestReleaseIgnoresOlderSequence(t *testing.T) {
	c, _, _ := newTestController(t, 4)
	require.True(t, c.RequestMove(SourceKey, By(Forward)))
	first := c.Seq()
	require.True(t, c.RequestMove(SourceKey, By(Forward)))
	c.Release(first)
	require.True(t, c.Locked())
	c.Release(c.Seq())
	require.False(t, c.Locked())
}

func TestMissingTargetDoesNothing(t *testing.T) {
	c, sc, _ := newTestController(t, 3)
	sc.missing = map[int]bool{1: true}
	require.False(t, c.RequestMove(SourceWheel, By(Forward)))
	require.Equal(t, 0, c.Active())
	require.False(t, c.Locked())
	require.Zero(t, c.Seq())
}

func TestZeroSectionsAreNoops(t *testing.T) {
	c, sc, _ := newTestController(t, 0)
	require.False(t, c.RequestMove(SourceWheel, By(Forward)))
	require.False(t, c.RequestMove(SourceSelect, To(0)))
	require.False(t, c.Observe(Crossing{Index: 0, Ratio: 1}))
	require.Equal(t, 0, c.Count())
	require.Empty(t, sc.calls)
}

func TestSequenceTravelsWithScroll(t *testing.T) {
	c, sc, _ := newTestController(t, 4)
	c.RequestMove(SourceKey, By(Forward))
	c.RequestMove(SourceKey, By(Forward))
	require.Equal(t, []uint64{1, 2}, sc.seqs)
	require.Equal(t, uint64(2), c.Seq())
}

func TestObserveStaleCrossingDoesNotClobberTarget(t *testing.T) {
	c, _, mock := newTestController(t, 5)
	require.True(t, c.RequestMove(SourceSelect, To(4)))
	seq := c.Seq()

	// an in-between section crossing during the animation
	require.False(t, c.Observe(Crossing{Index: 2, Ratio: 0.7, Seq: seq}))
	// a report from before the dispatch
	require.False(t, c.Observe(Crossing{Index: 0, Ratio: 1, Seq: seq - 1}))
	require.Equal(t, 4, c.Active())

	mock.Add(DefaultLockDuration)
	require.True(t, c.Observe(Crossing{Index: 3, Ratio: 0.9}))
	require.Equal(t, 3, c.Active())
}
