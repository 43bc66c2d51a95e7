package snap

type EventType string

const (
	EventWheel      EventType = "wheel"
	EventTouchStart EventType = "touchstart"
	EventTouchEnd   EventType = "touchend"
	EventKeyDown    EventType = "keydown"
)

// Event is a host input event. Y is the touch position in pixels.
type Event struct {
	Type  EventType
	Wheel WheelEvent
	Y     float64
	Key   Key

	prevented bool
}

func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func(*Event)
}

// EventTarget is a listener registry for one scope: the deck container for
// wheel and touch, the window for keys.
type EventTarget struct {
	next      ListenerID
	listeners map[EventType][]listener
}

func NewEventTarget() *EventTarget {
	return &EventTarget{listeners: make(map[EventType][]listener)}
}

func (t *EventTarget) AddListener(typ EventType, fn func(*Event)) ListenerID {
	if fn == nil {
		return 0
	}
	t.next++
	t.listeners[typ] = append(t.listeners[typ], listener{id: t.next, fn: fn})
	return t.next
}

// RemoveListener is a no-op for unknown ids.
func (t *EventTarget) RemoveListener(id ListenerID) {
	for typ, ls := range t.listeners {
		for i, l := range ls {
			if l.id != id {
				continue
			}
			t.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
			if len(t.listeners[typ]) == 0 {
				delete(t.listeners, typ)
			}
			return
		}
	}
}

func (t *EventTarget) ListenerCount() int {
	n := 0
	for _, ls := range t.listeners {
		n += len(ls)
	}
	return n
}

// Dispatch runs the listeners registered for e.Type in registration order and
// reports whether any of them prevented the default action.
func (t *EventTarget) Dispatch(e *Event) bool {
	ls := append([]listener(nil), t.listeners[e.Type]...)
	for _, l := range ls {
		l.fn(e)
	}
	return e.prevented
}
