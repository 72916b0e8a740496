// Package input tracks which keys are down and broadcasts key events to
// subscribers. Terminals report presses only, so releases are synthesized
// once a key has not repeated within the hold window.
package input

import (
	"os"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultHoldWindow is how long a key stays down after its last press.
const DefaultHoldWindow = 150 * time.Millisecond

// Event names a key edge.
type Event string

const (
	KeyDown Event = "keydown"
	KeyUp   Event = "keyup"
)

// Listener receives the key code of an edge event.
type Listener func(code string)

type subscription struct {
	id uint64
	fn Listener
}

// Source is the key state for one host. It is safe for concurrent use.
type Source struct {
	mu        sync.Mutex
	down      map[string]time.Time
	listeners map[Event][]subscription
	nextID    uint64
	hold      time.Duration
	logger    *log.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithHoldWindow sets how long a key stays down without a repeat.
func WithHoldWindow(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.hold = d
		}
	}
}

// WithLogger sets the logger used to report failing listeners.
func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an input source with no keys down.
func New(opts ...Option) *Source {
	s := &Source{
		down:      make(map[string]time.Time),
		listeners: make(map[Event][]subscription),
		hold:      DefaultHoldWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "input"})
	}
	return s
}

// Press records code as down at now and emits KeyDown. Terminals cannot tell
// a second tap from an auto-repeat, so every press is an edge; the hold
// window only decides when the key counts as released.
func (s *Source) Press(code string, now time.Time) {
	s.mu.Lock()
	s.down[code] = now
	subs := slices.Clone(s.listeners[KeyDown])
	s.mu.Unlock()

	s.dispatch(KeyDown, code, subs)
}

// Release marks code as up and emits KeyUp if it was down.
func (s *Source) Release(code string) {
	s.mu.Lock()
	_, wasDown := s.down[code]
	delete(s.down, code)
	var subs []subscription
	if wasDown {
		subs = slices.Clone(s.listeners[KeyUp])
	}
	s.mu.Unlock()

	s.dispatch(KeyUp, code, subs)
}

// Expire releases every key whose last press is older than the hold window.
// Keys are released in code order.
func (s *Source) Expire(now time.Time) {
	s.mu.Lock()
	var expired []string
	for code, at := range s.down {
		if now.Sub(at) >= s.hold {
			expired = append(expired, code)
		}
	}
	s.mu.Unlock()

	slices.Sort(expired)
	for _, code := range expired {
		s.Release(code)
	}
}

// IsDown reports whether code is currently down.
func (s *Source) IsDown(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.down[code]
	return ok
}

// Down returns the codes currently down, sorted.
func (s *Source) Down() []string {
	s.mu.Lock()
	codes := make([]string, 0, len(s.down))
	for code := range s.down {
		codes = append(codes, code)
	}
	s.mu.Unlock()

	slices.Sort(codes)
	return codes
}

// On subscribes fn to event and returns a function that removes it.
func (s *Source) On(event Event, fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[event] = append(s.listeners[event], subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners[event] = slices.DeleteFunc(s.listeners[event], func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Destroy drops every subscriber and forgets all key state.
func (s *Source) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.listeners)
	clear(s.down)
}

func (s *Source) dispatch(event Event, code string, subs []subscription) {
	for _, sub := range subs {
		s.call(event, code, sub.fn)
	}
}

// call runs one listener. A panic is logged and does not reach the other
// listeners.
func (s *Source) call(event Event, code string, fn Listener) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("input listener failed", "event", event, "key", code, "panic", r)
		}
	}()
	fn(code)
}
