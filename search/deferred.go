package search

import (
	"sync"
	"time"
)

// Deferred is a single pending action that can be rescheduled or
// cancelled before it fires. Scheduling replaces any pending run.
type Deferred struct {
	mu    sync.Mutex
	fn    func()
	timer *time.Timer
}

// NewDeferred wraps fn; nothing runs until Schedule is called
func NewDeferred(fn func()) *Deferred {
	return &Deferred{fn: fn}
}

// Schedule arms the action to fire after delay, replacing any pending run
func (d *Deferred) Schedule(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, d.fn)
}

// Cancel stops a pending run, if any
func (d *Deferred) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
