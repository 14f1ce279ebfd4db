package search

import (
	"sync"
	"time"
)

// DebounceDelay bounds call volume from interactive keystrokes.
const DebounceDelay = 300 * time.Millisecond

// Debouncer runs the most recent function after the delay has elapsed
// without another call. An in-flight run is not cancelled by a newer one;
// the latest run to finish wins, matching the interactive search behavior.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given delay.
// A zero delay falls back to DebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn, dropping any previously scheduled call that has not
// started yet.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
