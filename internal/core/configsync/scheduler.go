package configsync

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DelayedTask runs at most one function after a delay
// scheduling again replaces the pending run, Cancel drops it
type DelayedTask struct {
	clock clock.Clock

	mu    sync.Mutex
	timer *clock.Timer
	gen   uint64
}

// NewDelayedTask returns a task driven by c
func NewDelayedTask(c clock.Clock) *DelayedTask {
	if c == nil {
		c = clock.New()
	}
	return &DelayedTask{clock: c}
}

// Schedule arranges for fn to run after d, superseding any pending run
func (t *DelayedTask) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		// a timer that already fired before being stopped must not run
		if gen != t.gen {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending run and reports whether one existed
func (t *DelayedTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer == nil {
		return false
	}
	t.timer.Stop()
	t.timer = nil
	return true
}

// Pending reports whether a run is scheduled
func (t *DelayedTask) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
