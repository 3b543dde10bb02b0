package fixertest

import (
	"slices"
	"time"
)

// FakeClock provides controllable time for deterministic scheduler
// tests. Timers registered through AfterFunc fire synchronously from
// Advance, in deadline order, on the calling goroutine.
type FakeClock struct {
	now    time.Time
	timers []*fakeTimer
	nextID int
}

type fakeTimer struct {
	id       int
	deadline time.Time
	fn       func()
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time { return c.now }

// AfterFunc registers fn to run once the clock has advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) func() {
	timer := &fakeTimer{id: c.nextID, deadline: c.now.Add(d), fn: fn}
	c.nextID++
	c.timers = append(c.timers, timer)
	return func() { c.cancel(timer.id) }
}

func (c *FakeClock) cancel(id int) {
	for i, timer := range c.timers {
		if timer.id == id {
			c.timers = slices.Delete(c.timers, i, i+1)
			return
		}
	}
}

// Advance moves the clock forward by d, firing due timers in deadline
// order. Callbacks run with the clock set to their deadline, so work
// they schedule lands relative to the right instant.
func (c *FakeClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		timer := c.nextDue(target)
		if timer == nil {
			break
		}
		c.now = timer.deadline
		c.cancel(timer.id)
		timer.fn()
	}
	c.now = target
}

// PendingTimers returns the number of timers not yet fired.
func (c *FakeClock) PendingTimers() int { return len(c.timers) }

func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	var due *fakeTimer
	for _, timer := range c.timers {
		if timer.deadline.After(target) {
			continue
		}
		if due == nil || timer.deadline.Before(due.deadline) {
			due = timer
		}
	}
	return due
}
