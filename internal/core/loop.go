package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrLoopHalted is returned by Frame when update or render panicked.
var ErrLoopHalted = errors.New("core: game loop halted")

const (
	// DefaultStep is the fixed simulation step (60 updates per second).
	DefaultStep = time.Second / 60
	// DefaultMaxFrame caps the time a single frame may feed into the
	// accumulator, so a long stall does not trigger a burst of catch-up
	// updates.
	DefaultMaxFrame = 250 * time.Millisecond
)

// GameLoop is a fixed-timestep scheduler. The platform calls Frame with the
// timestamp of each display frame; the loop runs update zero or more times
// with a constant step and then render once.
type GameLoop struct {
	update   func(step time.Duration)
	render   func()
	step     time.Duration
	maxFrame time.Duration

	running bool
	first   bool
	token   uint64
	last    time.Time
	acc     time.Duration
	updates uint64
}

// LoopOption configures a GameLoop.
type LoopOption func(*GameLoop)

// WithStep sets the fixed update step.
func WithStep(step time.Duration) LoopOption {
	return func(l *GameLoop) {
		if step > 0 {
			l.step = step
		}
	}
}

// WithMaxFrame sets the per-frame delta clamp.
func WithMaxFrame(d time.Duration) LoopOption {
	return func(l *GameLoop) {
		if d > 0 {
			l.maxFrame = d
		}
	}
}

// NewGameLoop creates a stopped loop. render may be nil.
func NewGameLoop(update func(step time.Duration), render func(), opts ...LoopOption) *GameLoop {
	l := &GameLoop{
		update:   update,
		render:   render,
		step:     DefaultStep,
		maxFrame: DefaultMaxFrame,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins scheduling and returns the token the next frame must carry.
// Calling Start while running changes nothing and returns the current token.
func (l *GameLoop) Start() uint64 {
	if l.running {
		return l.token
	}
	l.running = true
	l.first = true
	l.acc = 0
	l.token++
	return l.token
}

// Stop cancels the pending frame: any frame carrying the old token is ignored.
func (l *GameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.token++
}

// Running reports whether the loop is scheduled.
func (l *GameLoop) Running() bool {
	return l.running
}

// Token returns the token of the currently scheduled frame.
func (l *GameLoop) Token() uint64 {
	return l.token
}

// Step returns the fixed update step.
func (l *GameLoop) Step() time.Duration {
	return l.step
}

// Updates returns the number of updates run since creation.
func (l *GameLoop) Updates() uint64 {
	return l.updates
}

// Interpolation returns how far the accumulator is into the next step, in [0, 1).
func (l *GameLoop) Interpolation() float64 {
	return float64(l.acc) / float64(l.step)
}

// Frame is the per-frame callback. It returns true when the caller should
// schedule another frame. A panic inside update or render stops the loop and
// is returned wrapped in ErrLoopHalted.
func (l *GameLoop) Frame(token uint64, ts time.Time) (next bool, err error) {
	if !l.running || token != l.token {
		return false, nil
	}

	if l.first {
		l.first = false
		l.last = ts
		return true, nil
	}

	delta := ts.Sub(l.last)
	l.last = ts
	if delta < 0 {
		delta = 0
	}
	if delta > l.maxFrame {
		delta = l.maxFrame
	}
	l.acc += delta

	defer func() {
		if r := recover(); r != nil {
			l.Stop()
			next = false
			err = fmt.Errorf("%w: %v", ErrLoopHalted, r)
		}
	}()

	for l.acc >= l.step {
		l.update(l.step)
		l.updates++
		l.acc -= l.step
		if !l.running {
			// update stopped the loop (terminal condition)
			break
		}
	}

	if l.render != nil {
		l.render()
	}
	return l.running, nil
}
