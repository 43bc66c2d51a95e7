// Package scroll animates the deck viewport between sections and measures
// how much of each section is on screen.
package scroll

import (
	"math"
	"time"
)

// Animator owns the vertical offset of a stack of equal-height sections.
// Offsets are in rows; section i spans [i*height, (i+1)*height).
type Animator struct {
	count    int
	height   int
	duration time.Duration

	offset float64
	from   float64
	to     float64
	start  time.Time
	seq    uint64
	active bool
}

func NewAnimator(count, height int, duration time.Duration) *Animator {
	return &Animator{count: max(0, count), height: max(1, height), duration: duration}
}

// ScrollTo starts a smooth scroll towards section index. The next Step
// anchors the start time.
func (a *Animator) ScrollTo(index int, seq uint64) bool {
	if index < 0 || index >= a.count {
		return false
	}
	a.from = a.offset
	a.to = float64(index * a.height)
	a.seq = seq
	a.active = true
	a.start = time.Time{}
	return true
}

// Step advances the animation to now and reports whether it has finished.
// The first step after ScrollTo anchors the start time.
func (a *Animator) Step(now time.Time) bool {
	if !a.active {
		return true
	}
	if a.start.IsZero() {
		a.start = now
	}
	p := 1.0
	if a.duration > 0 {
		p = float64(now.Sub(a.start)) / float64(a.duration)
	}
	if p >= 1 {
		a.offset = a.to
		a.active = false
		return true
	}
	a.offset = a.from + (a.to-a.from)*easeInOutCubic(p)
	return false
}

func (a *Animator) Animating() bool { return a.active }

func (a *Animator) Seq() uint64 { return a.seq }

// Offset is the top row currently shown.
func (a *Animator) Offset() int { return int(math.Round(a.offset)) }

func (a *Animator) Height() int { return a.height }

// Resize changes the section height and keeps the viewport on the same
// section, cancelling any animation.
func (a *Animator) Resize(height int, index int) {
	a.height = max(1, height)
	a.active = false
	if index < 0 || index >= a.count {
		index = 0
	}
	a.offset = float64(index * a.height)
	a.to = a.offset
}

// Ratios returns the visible fraction of every section.
func (a *Animator) Ratios() []float64 {
	out := make([]float64, a.count)
	h := float64(a.height)
	top := a.offset
	bottom := top + h
	for i := range out {
		s := float64(i) * h
		e := s + h
		overlap := math.Min(e, bottom) - math.Max(s, top)
		if overlap > 0 {
			out[i] = overlap / h
		}
	}
	return out
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
