package snap

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Scroller performs the smooth scroll to a section. It returns false when the
// target does not exist; the controller then treats the move as a no-op.
type Scroller interface {
	ScrollTo(index int, seq uint64) bool
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(index int, seq uint64) bool

func (f ScrollerFunc) ScrollTo(index int, seq uint64) bool { return f(index, seq) }

// Controller is the single authority over the active index. It is not safe
// for concurrent use; every call must come from the same event loop.
type Controller struct {
	opts     Options
	scroller Scroller
	log      logrus.FieldLogger

	count       int
	active      int
	target      int
	seq         uint64
	lockedUntil time.Time
}

func NewController(count int, scroller Scroller, opts ...Option) *Controller {
	o := newOptions(opts)
	if count < 0 {
		count = 0
	}
	if scroller == nil {
		scroller = ScrollerFunc(func(int, uint64) bool { return true })
	}
	return &Controller{
		opts:     o,
		scroller: scroller,
		log:      o.Logger,
		count:    count,
	}
}

func (c *Controller) Count() int { return c.count }

func (c *Controller) Active() int { return c.active }

func (c *Controller) Seq() uint64 { return c.seq }

// Locked reports whether a transition is still inside its lock window. The
// lock is a deadline and lapses on its own.
func (c *Controller) Locked() bool {
	return c.opts.Clock.Now().Before(c.lockedUntil)
}

func (c *Controller) Phase() Phase {
	if c.Locked() {
		return Transitioning
	}
	return Idle
}

func (c *Controller) State() State {
	return State{
		Active: c.active,
		Count:  c.count,
		Target: c.target,
		Locked: c.Locked(),
		Phase:  c.Phase(),
		Seq:    c.seq,
	}
}

// RequestMove resolves m against the current index and dispatches it. Only
// wheel requests respect the lock. It reports whether a transition started.
func (c *Controller) RequestMove(src Source, m Move) bool {
	if c.count == 0 {
		return false
	}
	if src == SourceWheel && c.Locked() {
		c.log.WithFields(logrus.Fields{"source": src, "move": m}).Debug("dropped while locked")
		return false
	}
	target := c.resolve(m)
	if target < 0 || target == c.active {
		return false
	}
	next := c.seq + 1
	if !c.scroller.ScrollTo(target, next) {
		c.log.WithFields(logrus.Fields{"source": src, "to": target}).Debug("scroll target missing")
		return false
	}
	from := c.active
	c.seq = next
	c.active = target
	c.target = target
	c.lockedUntil = c.opts.Clock.Now().Add(c.opts.LockDuration)
	c.log.WithFields(logrus.Fields{
		"source": src,
		"seq":    c.seq,
		"from":   from,
		"to":     target,
	}).Debug("transition dispatched")
	return true
}

func (c *Controller) resolve(m Move) int {
	if m.Absolute {
		if m.Index < 0 || m.Index >= c.count {
			return -1
		}
		return m.Index
	}
	return clamp(c.active+int(m.Dir), 0, c.count-1)
}

// Release ends the lock window early for the given transition. Releases for
// older transitions are ignored.
func (c *Controller) Release(seq uint64) {
	if seq != c.seq || c.lockedUntil.IsZero() {
		return
	}
	c.lockedUntil = time.Time{}
}

// Crossing is a visibility report for one section.
type Crossing struct {
	Index int
	Ratio float64
	Seq   uint64
}

// Observe applies a visibility crossing to the active index. While a
// transition is in flight only a crossing from that transition onto its
// target is accepted, so a stale report never clobbers the optimistic write.
func (c *Controller) Observe(x Crossing) bool {
	if x.Index < 0 || x.Index >= c.count {
		return false
	}
	if c.Locked() && (x.Seq != c.seq || x.Index != c.target) {
		c.log.WithFields(logrus.Fields{"seq": x.Seq, "index": x.Index, "current": c.seq}).Debug("stale crossing ignored")
		return false
	}
	if x.Index == c.active {
		return false
	}
	c.active = x.Index
	c.target = x.Index
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
