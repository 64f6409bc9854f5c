package game

import "time"

// Ticker schedules fixed-interval logic updates from frame timestamps.
// It fires at most once per call, so a stalled frame never produces a burst.
type Ticker struct {
	interval time.Duration
	last     time.Time
	held     time.Duration // progress into the interval when paused
	paused   bool
}

func NewTicker(interval time.Duration, now time.Time) *Ticker {
	return &Ticker{interval: interval, last: now}
}

// Due reports whether a tick should run at now and, if so, consumes it.
func (t *Ticker) Due(now time.Time) bool {
	if t.paused || now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Pause freezes the current interval. Time spent paused does not count toward the next tick.
func (t *Ticker) Pause(now time.Time) {
	if t.paused {
		return
	}
	t.held = now.Sub(t.last)
	if t.held > t.interval {
		t.held = t.interval
	}
	t.paused = true
}

// Resume continues the interval frozen by Pause.
func (t *Ticker) Resume(now time.Time) {
	if !t.paused {
		return
	}
	t.last = now.Add(-t.held)
	t.held = 0
	t.paused = false
}

// Reset starts a fresh interval at now.
func (t *Ticker) Reset(now time.Time) {
	t.last = now
	t.held = 0
	t.paused = false
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}
