package snap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(out *[]Crossing) func(Crossing) {
	return func(x Crossing) { *out = append(*out, x) }
}

func TestObserverInitialSampleReportsVisible(t *testing.T) {
	var got []Crossing
	o := NewObserver(3, 0.6, collect(&got))
	require.Equal(t, 1, o.Sample([]float64{0, 1, 0}, 0))
	require.Equal(t, []Crossing{{Index: 1, Ratio: 1}}, got)

	require.Zero(t, o.Sample([]float64{0, 1, 0}, 0), "no crossing when nothing changes")
}

func TestObserverReportsUpwardCrossingOnly(t *testing.T) {
	var got []Crossing
	o := NewObserver(2, 0.6, collect(&got))
	o.Sample([]float64{1, 0}, 0)
	got = nil

	o.Sample([]float64{0.55, 0.45}, 3)
	require.Empty(t, got)
	o.Sample([]float64{0.35, 0.65}, 3)
	require.Equal(t, []Crossing{{Index: 1, Ratio: 0.65, Seq: 3}}, got)
}

func TestObserverMostVisibleWins(t *testing.T) {
	var got []Crossing
	o := NewObserver(3, 0.6, collect(&got))
	o.Sample([]float64{0, 0, 0}, 0)
	o.Sample([]float64{0.9, 0.7, 0}, 0)
	require.Len(t, got, 2)
	require.Equal(t, 0, got[len(got)-1].Index)
}

func TestObserverShortRatiosTreatedAsHidden(t *testing.T) {
	var got []Crossing
	o := NewObserver(3, 0.6, collect(&got))
	require.Zero(t, o.Sample(nil, 0))
	require.Empty(t, got)
}

func TestObserverDisconnect(t *testing.T) {
	var got []Crossing
	o := NewObserver(2, 0.6, collect(&got))
	o.Disconnect()
	o.Disconnect()
	require.False(t, o.Connected())
	require.Zero(t, o.Sample([]float64{1, 0}, 0))
	require.Empty(t, got)
}

func TestObserverDisconnectFromCallback(t *testing.T) {
	var o *Observer
	calls := 0
	o = NewObserver(2, 0.6, func(Crossing) {
		calls++
		o.Disconnect()
	})
	require.Equal(t, 1, o.Sample([]float64{0.8, 0.9}, 0))
	require.Equal(t, 1, calls)
}

func TestRegistrySkipsNilKeepsRepeatedIDs(t *testing.T) {
	r := NewRegistry([]Block{block("a"), nil, block("b"), block("a")})
	require.Equal(t, 3, r.Len())
	require.Equal(t, 0, r.Index("a"), "repeated id resolves to its first section")
	require.Equal(t, 1, r.Index("b"))
	require.Equal(t, -1, r.Index("zzz"))
	s, ok := r.At(1)
	require.True(t, ok)
	require.Equal(t, block("b"), s.Block)
	s, ok = r.At(2)
	require.True(t, ok)
	require.Equal(t, 2, s.Index)
	require.Equal(t, block("a"), s.Block)
	_, ok = r.At(3)
	require.False(t, ok)
}
