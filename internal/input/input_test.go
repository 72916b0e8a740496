package input

import (
	"io"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestSource(opts ...Option) *Source {
	return New(append([]Option{WithLogger(log.New(io.Discard))}, opts...)...)
}

func TestEveryPressEmitsKeyDown(t *testing.T) {
	s := newTestSource(WithHoldWindow(100 * time.Millisecond))
	var downs []string
	s.On(KeyDown, func(code string) { downs = append(downs, code) })

	now := time.Now()
	s.Press("left", now)
	s.Press("left", now.Add(80*time.Millisecond)) // second tap inside the window
	s.Press("space", now.Add(80*time.Millisecond))

	if !slices.Equal(downs, []string{"left", "left", "space"}) {
		t.Errorf("keydown events = %v, expected [left left space]", downs)
	}
	if !s.IsDown("left") || !s.IsDown("space") {
		t.Error("pressed keys should be down")
	}
}

func TestAutoRepeatStaysDown(t *testing.T) {
	s := newTestSource(WithHoldWindow(100 * time.Millisecond))
	downs, ups := 0, 0
	s.On(KeyDown, func(string) { downs++ })
	s.On(KeyUp, func(string) { ups++ })

	// 1.5 s of terminal auto-repeat, one press every 33 ms.
	base := time.Now()
	var last time.Time
	for at := time.Duration(0); at <= 1500*time.Millisecond; at += 33 * time.Millisecond {
		last = base.Add(at)
		s.Press("right", last)
		s.Expire(last)
		if !s.IsDown("right") {
			t.Fatalf("key released during auto-repeat at %v", at)
		}
	}

	if downs != 46 {
		t.Errorf("keydown events = %d, expected one per repeat (46)", downs)
	}
	if ups != 0 {
		t.Errorf("keyup during auto-repeat: %d", ups)
	}

	s.Expire(last.Add(100 * time.Millisecond))
	if ups != 1 || s.IsDown("right") {
		t.Errorf("after the stream: ups = %d, down = %v", ups, s.IsDown("right"))
	}
}

func TestReleaseEmitsKeyUp(t *testing.T) {
	s := newTestSource()
	var ups []string
	s.On(KeyUp, func(code string) { ups = append(ups, code) })

	s.Release("x") // never pressed
	s.Press("x", time.Now())
	s.Release("x")

	if !slices.Equal(ups, []string{"x"}) {
		t.Errorf("keyup events = %v, expected [x]", ups)
	}
	if s.IsDown("x") {
		t.Error("released key still down")
	}
}

func TestExpireReleasesStaleKeys(t *testing.T) {
	s := newTestSource(WithHoldWindow(100 * time.Millisecond))
	var ups []string
	s.On(KeyUp, func(code string) { ups = append(ups, code) })

	base := time.Now()
	s.Press("up", base)
	s.Press("right", base.Add(80*time.Millisecond))

	s.Expire(base.Add(50 * time.Millisecond))
	if len(ups) != 0 {
		t.Fatalf("nothing should expire yet, got %v", ups)
	}

	s.Expire(base.Add(120 * time.Millisecond))
	if !slices.Equal(ups, []string{"up"}) {
		t.Errorf("expired = %v, expected [up]", ups)
	}
	if !slices.Equal(s.Down(), []string{"right"}) {
		t.Errorf("Down() = %v, expected [right]", s.Down())
	}
}

func TestPanickingListenerIsIsolated(t *testing.T) {
	s := newTestSource()
	var calls []string

	s.On(KeyDown, func(string) { calls = append(calls, "first") })
	s.On(KeyDown, func(string) { panic("listener bug") })
	s.On(KeyDown, func(string) { calls = append(calls, "third") })

	s.Press("enter", time.Now())

	if !slices.Equal(calls, []string{"first", "third"}) {
		t.Errorf("calls = %v, expected [first third]", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := newTestSource()
	count := 0
	unsubscribe := s.On(KeyDown, func(string) { count++ })

	s.Press("a", time.Now())
	unsubscribe()
	s.Release("a")
	s.Press("a", time.Now())

	if count != 1 {
		t.Errorf("listener called %d times, expected 1", count)
	}
}

func TestDestroy(t *testing.T) {
	s := newTestSource()
	called := false
	s.On(KeyDown, func(string) { called = true })
	s.Press("a", time.Now())
	called = false

	s.Destroy()
	if s.IsDown("a") {
		t.Error("Destroy should clear key state")
	}
	s.Press("b", time.Now())
	if called {
		t.Error("Destroy should remove listeners")
	}
}
