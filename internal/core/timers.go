package core

// TimerID identifies a scheduled timer.
type TimerID uint64

type timer struct {
	id  TimerID
	due uint64
	fn  func()
}

// Timers schedules callbacks in simulation ticks instead of wall-clock time.
// They only advance when the owning game advances, so a paused or stopped
// game can never be mutated by a stale timer.
type Timers struct {
	now     uint64
	nextID  TimerID
	pending []timer
}

// After schedules fn to run once, ticks updates from now (minimum 1).
func (t *Timers) After(ticks int, fn func()) TimerID {
	t.nextID++
	t.pending = append(t.pending, timer{
		id:  t.nextID,
		due: t.now + uint64(max(ticks, 1)),
		fn:  fn,
	})
	return t.nextID
}

// Cancel removes a pending timer. Unknown ids are ignored.
func (t *Timers) Cancel(id TimerID) {
	for i, p := range t.pending {
		if p.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Clear cancels every pending timer.
func (t *Timers) Clear() {
	t.pending = t.pending[:0]
}

// Pending returns the number of scheduled timers.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Advance moves time forward one tick and runs every timer that came due,
// in scheduling order. Callbacks may schedule or cancel timers.
func (t *Timers) Advance() {
	t.now++
	for {
		idx := -1
		for i, p := range t.pending {
			if p.due <= t.now {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		fn := t.pending[idx].fn
		t.pending = append(t.pending[:idx], t.pending[idx+1:]...)
		fn()
	}
}
