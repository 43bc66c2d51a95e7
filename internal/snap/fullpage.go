package snap

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FullPage is the mounted snap component: registry, observer, controller and
// the listeners it holds on the container and window targets.
type FullPage struct {
	opts       Options
	log        logrus.FieldLogger
	registry   *Registry
	observer   *Observer
	controller *Controller
	touch      *TouchTracker

	container *EventTarget
	window    *EventTarget
	owned     []ownedListener
	mounted   bool
}

type ownedListener struct {
	target *EventTarget
	id     ListenerID
}

// Mount registers children, starts observing and attaches wheel and touch
// listeners to container and the key listener to window.
func Mount(container, window *EventTarget, children []Block, scroller Scroller, opts ...Option) *FullPage {
	o := newOptions(opts)
	o.Logger = o.Logger.WithField("session", uuid.NewString())
	reg := NewRegistry(children)
	fp := &FullPage{
		opts:      o,
		log:       o.Logger,
		registry:  reg,
		container: container,
		window:    window,
		touch:     NewTouchTracker(o.Clock, o.SwipeDistance, o.TouchCooldown),
	}
	fp.controller = NewController(reg.Len(), scroller, WithClock(o.Clock), WithLogger(o.Logger), WithLockDuration(o.LockDuration))
	fp.observer = NewObserver(reg.Len(), o.VisibilityThreshold, func(x Crossing) {
		fp.controller.Observe(x)
	})
	if container != nil {
		fp.listen(container, EventWheel, fp.onWheel)
		fp.listen(container, EventTouchStart, fp.onTouchStart)
		fp.listen(container, EventTouchEnd, fp.onTouchEnd)
	}
	if window != nil {
		fp.listen(window, EventKeyDown, fp.onKey)
	}
	fp.mounted = true
	fp.log.WithField("sections", reg.Len()).Info("mounted")
	return fp
}

func (fp *FullPage) listen(t *EventTarget, typ EventType, fn func(*Event)) {
	fp.owned = append(fp.owned, ownedListener{target: t, id: t.AddListener(typ, fn)})
}

// Unmount disconnects the observer and removes every listener. Safe to call
// more than once.
func (fp *FullPage) Unmount() {
	if !fp.mounted {
		return
	}
	fp.mounted = false
	fp.observer.Disconnect()
	for _, l := range fp.owned {
		l.target.RemoveListener(l.id)
	}
	fp.owned = nil
	fp.log.Info("unmounted")
}

func (fp *FullPage) Mounted() bool { return fp.mounted }

func (fp *FullPage) State() State { return fp.controller.State() }

// Select is the direct-selection entry point used by the indicator.
func (fp *FullPage) Select(index int) bool {
	if !fp.mounted {
		return false
	}
	return fp.controller.RequestMove(SourceSelect, To(index))
}

// Sample forwards visible fractions from the host to the observer.
func (fp *FullPage) Sample(ratios []float64, seq uint64) int {
	return fp.observer.Sample(ratios, seq)
}

// Release forwards the host's lock timer.
func (fp *FullPage) Release(seq uint64) {
	fp.controller.Release(seq)
}

// Dot is one indicator marker.
type Dot struct {
	Index  int
	Active bool
}

// Dots returns one marker per section; empty when there are none.
func (fp *FullPage) Dots() []Dot {
	n := fp.registry.Len()
	if n == 0 {
		return nil
	}
	active := fp.controller.Active()
	out := make([]Dot, n)
	for i := range out {
		out[i] = Dot{Index: i, Active: i == active}
	}
	return out
}

func (fp *FullPage) onWheel(e *Event) {
	dir, ok := WheelDirection(e.Wheel, fp.opts.WheelNoise)
	if !ok {
		return
	}
	e.PreventDefault()
	fp.controller.RequestMove(SourceWheel, By(dir))
}

func (fp *FullPage) onTouchStart(e *Event) {
	fp.touch.Start(e.Y)
}

func (fp *FullPage) onTouchEnd(e *Event) {
	if dir, ok := fp.touch.End(e.Y); ok {
		fp.controller.RequestMove(SourceTouch, By(dir))
	}
}

func (fp *FullPage) onKey(e *Event) {
	m, ok := KeyMove(e.Key, fp.registry.Len())
	if !ok {
		return
	}
	e.PreventDefault()
	fp.controller.RequestMove(SourceKey, m)
}
