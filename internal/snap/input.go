package snap

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

// WheelEvent carries per-event scroll deltas. Positive DeltaY scrolls down.
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
}

// WheelDirection reports the move a wheel event stands for. Small deltas and
// horizontal-dominant events are not navigational.
func WheelDirection(e WheelEvent, noise float64) (Direction, bool) {
	ay := math.Abs(e.DeltaY)
	if ay < noise || math.Abs(e.DeltaX) > ay {
		return 0, false
	}
	if e.DeltaY > 0 {
		return Forward, true
	}
	return Backward, true
}

// TouchTracker turns touch-start/touch-end pairs into swipes. It keeps its
// own cooldown, separate from the controller lock.
type TouchTracker struct {
	clock    clock.Clock
	distance float64
	cooldown time.Duration

	startY   float64
	started  bool
	lastMove time.Time
}

func NewTouchTracker(c clock.Clock, distance float64, cooldown time.Duration) *TouchTracker {
	if c == nil {
		c = clock.New()
	}
	return &TouchTracker{clock: c, distance: distance, cooldown: cooldown}
}

func (t *TouchTracker) Start(y float64) {
	t.startY = y
	t.started = true
}

// End closes the gesture. Finger travel upwards (startY > endY) is a forward
// swipe.
func (t *TouchTracker) End(y float64) (Direction, bool) {
	if !t.started {
		return 0, false
	}
	t.started = false
	dy := t.startY - y
	now := t.clock.Now()
	if math.Abs(dy) <= t.distance {
		return 0, false
	}
	if !t.lastMove.IsZero() && now.Sub(t.lastMove) <= t.cooldown {
		return 0, false
	}
	t.lastMove = now
	if dy > 0 {
		return Forward, true
	}
	return Backward, true
}

// Key names, matching the DOM KeyboardEvent.key values.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyPageDown  Key = "PageDown"
	KeyPageUp    Key = "PageUp"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
)

// KeyMove maps a bound key to its move. count is the number of sections.
func KeyMove(k Key, count int) (Move, bool) {
	switch k {
	case KeyArrowDown, KeyPageDown:
		return By(Forward), true
	case KeyArrowUp, KeyPageUp:
		return By(Backward), true
	case KeyHome:
		return To(0), true
	case KeyEnd:
		return To(count - 1), true
	}
	return Move{}, false
}
