package fixer

import "time"

// Clock provides time and delayed execution for the scheduler. The
// default implementation uses system timers. Tests inject a fake clock
// via WithClock to drive throttle and debounce windows deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc runs fn once d has elapsed and returns a cancel function.
	// Cancelling after the function has run is a no-op.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// systemClock uses system time and timers.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// SystemClock returns a Clock backed by the system timer.
func SystemClock() Clock { return systemClock{} }
