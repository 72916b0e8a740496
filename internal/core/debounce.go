package core

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of calls into one invocation of fn, made delay
// after the last call of the burst.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// Debounce returns a Debouncer for fn.
func Debounce(fn func(), delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call (re)starts the delay. fn runs on its own goroutine once the delay
// elapses without another Call.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels a pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
