package snap

import "fmt"

type Phase int

const (
	Idle Phase = iota
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Source identifies which input adapter issued a move.
type Source int

const (
	SourceWheel Source = iota
	SourceTouch
	SourceKey
	SourceSelect
)

func (s Source) String() string {
	switch s {
	case SourceWheel:
		return "wheel"
	case SourceTouch:
		return "touch"
	case SourceKey:
		return "key"
	case SourceSelect:
		return "select"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Move is either relative (Dir) or absolute (Index).
type Move struct {
	Dir      Direction
	Index    int
	Absolute bool
}

func By(dir Direction) Move { return Move{Dir: dir} }

func To(index int) Move { return Move{Index: index, Absolute: true} }

func (m Move) String() string {
	if m.Absolute {
		return fmt.Sprintf("to %d", m.Index)
	}
	return fmt.Sprintf("by %+d", int(m.Dir))
}

// State is a read-only snapshot of the navigation state.
type State struct {
	Active int
	Count  int
	Target int
	Locked bool
	Phase  Phase
	Seq    uint64
}
