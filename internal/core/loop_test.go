package core

import (
	"errors"
	"testing"
	"time"
)

type loopRecorder struct {
	updates int
	renders int
	steps   []time.Duration
	calls   []string
}

func (r *loopRecorder) loop(opts ...LoopOption) *GameLoop {
	return NewGameLoop(func(step time.Duration) {
		r.updates++
		r.steps = append(r.steps, step)
		r.calls = append(r.calls, "update")
	}, func() {
		r.renders++
		r.calls = append(r.calls, "render")
	}, opts...)
}

func TestLoopFirstFrameOnlyRecordsTimestamp(t *testing.T) {
	var rec loopRecorder
	l := rec.loop()
	token := l.Start()

	base := time.Unix(0, 0)
	next, err := l.Frame(token, base)
	if err != nil || !next {
		t.Fatalf("first Frame() = (%v, %v), expected (true, nil)", next, err)
	}
	if rec.updates != 0 || rec.renders != 0 {
		t.Errorf("first frame should not update or render, got %d updates, %d renders", rec.updates, rec.renders)
	}
}

func TestLoopFixedStepAcrossFrameRates(t *testing.T) {
	// One simulated second at 30, 60 and 144 Hz must produce the same number
	// of updates, each with the same step.
	for _, hz := range []int{30, 60, 144} {
		var rec loopRecorder
		l := rec.loop()
		token := l.Start()

		base := time.Unix(100, 0)
		l.Frame(token, base)
		frame := time.Second / time.Duration(hz)
		for i := 1; i <= hz; i++ {
			l.Frame(token, base.Add(time.Duration(i)*frame))
		}

		if rec.updates < 59 || rec.updates > 60 {
			t.Errorf("%d Hz: expected ~60 updates, got %d", hz, rec.updates)
		}
		for _, s := range rec.steps {
			if s != DefaultStep {
				t.Fatalf("%d Hz: update called with step %v, expected %v", hz, s, DefaultStep)
			}
		}
		if rec.renders != hz {
			t.Errorf("%d Hz: expected %d renders, got %d", hz, hz, rec.renders)
		}
	}
}

func TestLoopClampsLargeDelta(t *testing.T) {
	var rec loopRecorder
	l := rec.loop()
	token := l.Start()

	base := time.Unix(0, 0)
	l.Frame(token, base)
	// Tab was backgrounded for ten seconds.
	l.Frame(token, base.Add(10*time.Second))

	maxUpdates := int(DefaultMaxFrame / DefaultStep)
	if rec.updates > maxUpdates {
		t.Errorf("expected at most %d catch-up updates, got %d", maxUpdates, rec.updates)
	}
	if rec.updates == 0 {
		t.Error("expected some catch-up updates")
	}
}

func TestLoopUpdatesBeforeRender(t *testing.T) {
	var rec loopRecorder
	l := rec.loop()
	token := l.Start()

	base := time.Unix(0, 0)
	l.Frame(token, base)
	l.Frame(token, base.Add(3*DefaultStep))

	if len(rec.calls) == 0 || rec.calls[len(rec.calls)-1] != "render" {
		t.Fatalf("render must come last, got %v", rec.calls)
	}
	for _, c := range rec.calls[:len(rec.calls)-1] {
		if c != "update" {
			t.Fatalf("expected only updates before the render, got %v", rec.calls)
		}
	}
	if rec.renders != 1 {
		t.Errorf("expected exactly one render per frame, got %d", rec.renders)
	}
}

func TestLoopStartIsReentrant(t *testing.T) {
	var rec loopRecorder
	l := rec.loop()

	t1 := l.Start()
	t2 := l.Start()
	if t1 != t2 {
		t.Errorf("Start() while running changed the token: %d -> %d", t1, t2)
	}
}

func TestLoopStopCancelsPendingFrame(t *testing.T) {
	var rec loopRecorder
	l := rec.loop()
	token := l.Start()

	base := time.Unix(0, 0)
	l.Frame(token, base)
	l.Stop()

	next, _ := l.Frame(token, base.Add(time.Second))
	if next {
		t.Error("Frame after Stop should not request another frame")
	}
	if rec.updates != 0 || rec.renders != 0 {
		t.Error("Frame after Stop should not update or render")
	}

	// Restarting issues a new token; the old one stays dead.
	fresh := l.Start()
	if fresh == token {
		t.Fatal("restart should issue a new token")
	}
	if next, _ := l.Frame(token, base.Add(2*time.Second)); next {
		t.Error("stale token accepted after restart")
	}
	if next, _ := l.Frame(fresh, base.Add(2*time.Second)); !next {
		t.Error("fresh token rejected")
	}
}

func TestLoopUpdateCanStopLoop(t *testing.T) {
	var l *GameLoop
	updates := 0
	renders := 0
	l = NewGameLoop(func(time.Duration) {
		updates++
		if updates == 2 {
			l.Stop()
		}
	}, func() { renders++ })

	token := l.Start()
	base := time.Unix(0, 0)
	l.Frame(token, base)
	next, err := l.Frame(token, base.Add(10*DefaultStep))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next {
		t.Error("loop stopped by update should not schedule another frame")
	}
	if updates != 2 {
		t.Errorf("expected updates to stop at 2, got %d", updates)
	}
	if renders != 1 {
		t.Errorf("final frame should still render once, got %d", renders)
	}
}

func TestLoopRecoversPanickingUpdate(t *testing.T) {
	l := NewGameLoop(func(time.Duration) { panic("boom") }, nil)
	token := l.Start()

	base := time.Unix(0, 0)
	l.Frame(token, base)
	next, err := l.Frame(token, base.Add(DefaultStep))

	if !errors.Is(err, ErrLoopHalted) {
		t.Fatalf("expected ErrLoopHalted, got %v", err)
	}
	if next || l.Running() {
		t.Error("loop should be stopped after a panic")
	}
}

func TestLoopStepOption(t *testing.T) {
	l := NewGameLoop(func(time.Duration) {}, nil, WithStep(time.Second/30))
	if l.Step() != time.Second/30 {
		t.Errorf("Step() = %v, expected %v", l.Step(), time.Second/30)
	}
	if d := NewGameLoop(func(time.Duration) {}, nil, WithStep(0)); d.Step() != DefaultStep {
		t.Errorf("zero step should keep the default, got %v", d.Step())
	}
}
