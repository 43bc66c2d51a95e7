package snap

import "sort"

// Observer turns visible-fraction samples into visibility crossings.
type Observer struct {
	threshold float64
	count     int
	prev      []float64
	primed    bool
	callback  func(Crossing)
}

func NewObserver(count int, threshold float64, callback func(Crossing)) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	return &Observer{
		threshold: threshold,
		count:     count,
		prev:      make([]float64, count),
		callback:  callback,
	}
}

// Sample compares ratios (one visible fraction per section) against the last
// sample. A section crossing up to the threshold is reported. The first
// sample reports every section already at or above it. Crossings in one
// sample are delivered least visible first, so the most visible one is the
// final write. It returns the number of crossings delivered.
func (o *Observer) Sample(ratios []float64, seq uint64) int {
	if o.callback == nil {
		return 0
	}
	var out []Crossing
	for i := 0; i < o.count; i++ {
		r := 0.0
		if i < len(ratios) {
			r = ratios[i]
		}
		was := o.prev[i] >= o.threshold
		if r >= o.threshold && (!was || !o.primed) {
			out = append(out, Crossing{Index: i, Ratio: r, Seq: seq})
		}
		o.prev[i] = r
	}
	o.primed = true
	sort.SliceStable(out, func(a, b int) bool { return out[a].Ratio < out[b].Ratio })
	n := 0
	for _, x := range out {
		if o.callback == nil {
			break
		}
		o.callback(x)
		n++
	}
	return n
}

// Disconnect stops all reporting. Safe to call more than once.
func (o *Observer) Disconnect() {
	o.callback = nil
}

func (o *Observer) Connected() bool { return o.callback != nil }
