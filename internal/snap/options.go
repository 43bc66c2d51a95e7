package snap

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

// Default tuning. The lock duration is matched to the expected length of the
// scroll animation.
const (
	DefaultWheelNoise          = 10.0
	DefaultSwipeDistance       = 50.0
	DefaultTouchCooldown       = 500 * time.Millisecond
	DefaultLockDuration        = 700 * time.Millisecond
	DefaultVisibilityThreshold = 0.6
)

// Options tunes input normalisation and the transition lock.
type Options struct {
	WheelNoise          float64
	SwipeDistance       float64
	TouchCooldown       time.Duration
	LockDuration        time.Duration
	VisibilityThreshold float64

	Clock  clock.Clock
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

func WithClock(c clock.Clock) Option {
	return func(o *Options) { o.Clock = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithWheelNoise(v float64) Option {
	return func(o *Options) { o.WheelNoise = v }
}

func WithSwipeDistance(v float64) Option {
	return func(o *Options) { o.SwipeDistance = v }
}

func WithTouchCooldown(d time.Duration) Option {
	return func(o *Options) { o.TouchCooldown = d }
}

func WithLockDuration(d time.Duration) Option {
	return func(o *Options) { o.LockDuration = d }
}

func WithVisibilityThreshold(v float64) Option {
	return func(o *Options) { o.VisibilityThreshold = v }
}

func newOptions(opts []Option) Options {
	o := Options{
		WheelNoise:          DefaultWheelNoise,
		SwipeDistance:       DefaultSwipeDistance,
		TouchCooldown:       DefaultTouchCooldown,
		LockDuration:        DefaultLockDuration,
		VisibilityThreshold: DefaultVisibilityThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if o.VisibilityThreshold <= 0 || o.VisibilityThreshold > 1 {
		o.VisibilityThreshold = DefaultVisibilityThreshold
	}
	return o
}
