package canvas

import (
	"sync"
	"time"
)

// Debouncer runs a function once after a quiet period.
//
// Each Trigger restarts the delay, so a burst of triggers results in a
// single invocation after the last one. At most one timer is pending at
// any time. Close cancels a pending invocation permanently, so no stale
// callback fires after teardown.
type Debouncer struct {
	mx     sync.Mutex
	delay  time.Duration
	fn     func()
	timer  *time.Timer
	closed bool
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules the function to run after the delay,
// cancelling any previously pending run.
func (d *Debouncer) Trigger() {
	d.mx.Lock()
	defer d.mx.Unlock()

	if d.closed {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mx.Lock()
	if d.closed {
		d.mx.Unlock()
		return
	}
	d.timer = nil
	d.mx.Unlock()

	d.fn()
}

// Cancel discards a pending run without closing the debouncer.
func (d *Debouncer) Cancel() {
	d.mx.Lock()
	defer d.mx.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels any pending run and prevents future triggers.
func (d *Debouncer) Close() {
	d.mx.Lock()
	defer d.mx.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
