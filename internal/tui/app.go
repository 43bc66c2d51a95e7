package tui

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/snapdeck/internal/config"
	"github.com/jask/snapdeck/internal/deck"
	"github.com/jask/snapdeck/internal/scroll"
	"github.com/jask/snapdeck/internal/snap"
)

const (
	dotsWidth    = 3
	chromeHeight = 2 // status bar + footer
)

// Options carries collaborators that tests replace.
type Options struct {
	Logger logrus.FieldLogger
	Clock  clock.Clock
	// Start is the 0-based section selected after mount.
	Start int
}

// App hosts a mounted snap.FullPage in a bubbletea program. It plays the
// browser: it owns the viewport, animates scrolls and feeds input events to
// the container and window targets.
type App struct {
	cfg   config.Config
	deck  deck.Deck
	log   logrus.FieldLogger
	clock clock.Clock
	keys  *KeyRegistry

	container *snap.EventTarget
	window    *snap.EventTarget
	page      *snap.FullPage
	anim      *scroll.Animator

	width    int
	height   int
	rendered map[int][]string
	framing  bool
	pressed  bool
	status   string
	jump     jumpState
	start    int
}

type frameMsg struct{}

type releaseMsg struct {
	seq uint64
}

var keyForAction = map[string]snap.Key{
	actionNext:     snap.KeyArrowDown,
	actionPrev:     snap.KeyArrowUp,
	actionPageDown: snap.KeyPageDown,
	actionPageUp:   snap.KeyPageUp,
	actionFirst:    snap.KeyHome,
	actionLast:     snap.KeyEnd,
}

func New(cfg config.Config, d deck.Deck, opts Options) *App {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	a := &App{
		cfg:       cfg,
		deck:      d,
		log:       log,
		clock:     clk,
		keys:      NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), cfg.Keys)),
		container: snap.NewEventTarget(),
		window:    snap.NewEventTarget(),
		start:     opts.Start,
	}
	blocks := make([]snap.Block, len(d.Sections))
	for i, s := range d.Sections {
		blocks[i] = s
	}
	a.anim = scroll.NewAnimator(len(blocks), 1, cfg.Scroll.Duration)
	a.page = snap.Mount(a.container, a.window, blocks, a.anim,
		snap.WithClock(clk),
		snap.WithLogger(log),
		snap.WithWheelNoise(cfg.Snap.WheelNoise),
		snap.WithSwipeDistance(cfg.Snap.SwipeDistance),
		snap.WithTouchCooldown(cfg.Snap.TouchCooldown),
		snap.WithLockDuration(cfg.Snap.LockDuration),
		snap.WithVisibilityThreshold(cfg.Snap.VisibilityThreshold),
	)
	return a
}

func (a *App) Init() tea.Cmd {
	if a.start <= 0 {
		return nil
	}
	prev := a.page.State().Seq
	a.page.Select(a.start)
	return a.afterInput(prev)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case frameMsg:
		done := a.anim.Step(a.clock.Now())
		a.page.Sample(a.anim.Ratios(), a.anim.Seq())
		if done {
			a.framing = false
			return a, nil
		}
		return a, a.frameCmd()
	case releaseMsg:
		a.page.Release(m.seq)
		return a, nil
	}
	return a, nil
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.rendered = nil
	a.anim.Resize(a.bodyHeight(), a.page.State().Active)
	a.page.Sample(a.anim.Ratios(), a.anim.Seq())
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if a.jump.active {
		return a.handleJumpKey(m)
	}
	action, ok := a.keys.Action(m, scopeDeck)
	if !ok {
		return nil
	}
	switch action {
	case actionQuit:
		return a.quit()
	case actionJump:
		a.openJump()
		return nil
	}
	k, ok := keyForAction[action]
	if !ok {
		return nil
	}
	a.status = ""
	prev := a.page.State().Seq
	a.window.Dispatch(&snap.Event{Type: snap.EventKeyDown, Key: k})
	return a.afterInput(prev)
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	prev := a.page.State().Seq
	delta := a.cfg.Input.WheelDelta
	switch m.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelUp:
		if m.Button == tea.MouseButtonWheelUp {
			delta = -delta
		}
		ev := snap.WheelEvent{DeltaY: delta}
		if m.Shift {
			// terminals without horizontal wheel report shift+wheel
			ev = snap.WheelEvent{DeltaX: delta}
		}
		a.container.Dispatch(&snap.Event{Type: snap.EventWheel, Wheel: ev})
		return a.afterInput(prev)
	case tea.MouseButtonWheelRight, tea.MouseButtonWheelLeft:
		if m.Button == tea.MouseButtonWheelLeft {
			delta = -delta
		}
		a.container.Dispatch(&snap.Event{Type: snap.EventWheel, Wheel: snap.WheelEvent{DeltaX: delta}})
		return a.afterInput(prev)
	}

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return nil
		}
		if idx, ok := a.dotAt(m.X, m.Y); ok {
			a.page.Select(idx)
			return a.afterInput(prev)
		}
		a.pressed = true
		a.container.Dispatch(&snap.Event{Type: snap.EventTouchStart, Y: a.rowToPx(m.Y)})
	case tea.MouseActionRelease:
		if !a.pressed {
			return nil
		}
		a.pressed = false
		a.container.Dispatch(&snap.Event{Type: snap.EventTouchEnd, Y: a.rowToPx(m.Y)})
		return a.afterInput(prev)
	}
	return nil
}

func (a *App) rowToPx(row int) float64 {
	return float64(row) * a.cfg.Input.RowHeightPx
}

// afterInput schedules the lock release and the animation frames when the
// input dispatched a new transition.
func (a *App) afterInput(prev uint64) tea.Cmd {
	st := a.page.State()
	if st.Seq == prev {
		return nil
	}
	cmds := []tea.Cmd{releaseCmd(st.Seq, a.cfg.Snap.LockDuration)}
	if !a.framing {
		a.framing = true
		cmds = append(cmds, a.frameCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) frameCmd() tea.Cmd {
	return tea.Tick(a.cfg.Scroll.Frame, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func releaseCmd(seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

func (a *App) quit() tea.Cmd {
	a.page.Unmount()
	return tea.Quit
}

func (a *App) bodyHeight() int {
	return max(1, a.height-chromeHeight)
}

func (a *App) bodyWidth() int {
	return max(1, a.width-dotsWidth)
}
