// Package debounce collapses bursts of repeated calls into one.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs an action on the leading edge of a burst. A call is
// accepted only when no other call, accepted or not, happened within the
// window before it.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// New returns a leading-edge debouncer with the given quiet window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (d *Debouncer) WithClock(now func() time.Time) *Debouncer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
	return d
}

// Allow records a call and reports whether it opens a new burst.
func (d *Debouncer) Allow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	accept := d.last.IsZero() || now.Sub(d.last) >= d.window
	d.last = now
	return accept
}

// Do runs fn synchronously when the call opens a new burst. It reports
// whether fn ran.
func (d *Debouncer) Do(fn func()) bool {
	if !d.Allow() {
		return false
	}
	fn()
	return true
}

// Reset forgets the previous call.
func (d *Debouncer) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = time.Time{}
}
