package playback

import "time"

// Clock accounts reading time for a session. Elapsed time only advances
// while Running; it is frozen while Paused.
type Clock struct {
	now       func() time.Time
	state     State
	startedAt time.Time
	elapsed   time.Duration
}

// NewClock creates an Idle clock reading time from now
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// State returns the current state
func (c *Clock) State() State {
	return c.state
}

// Elapsed returns the reading time accumulated so far
func (c *Clock) Elapsed() time.Duration {
	if c.state == Running {
		return c.now().Sub(c.startedAt)
	}
	return c.elapsed
}

// Start moves the clock to Running. Starting from Paused carries the frozen
// elapsed time over the pause gap. Starting while Running does nothing and
// returns false.
func (c *Clock) Start() bool {
	if c.state == Running {
		return false
	}
	if c.state != Paused {
		c.elapsed = 0
	}
	c.startedAt = c.now().Add(-c.elapsed)
	c.state = Running
	return true
}

// Pause freezes elapsed time. It only applies while Running.
func (c *Clock) Pause() bool {
	if c.state != Running {
		return false
	}
	c.elapsed = c.now().Sub(c.startedAt)
	c.state = Paused
	return true
}

// Stop finalizes elapsed time and moves the clock to Stopped. A Paused clock
// keeps its frozen time. Stopping an Idle or Stopped clock does nothing.
func (c *Clock) Stop() (time.Duration, bool) {
	switch c.state {
	case Running:
		c.elapsed = c.now().Sub(c.startedAt)
	case Paused:
	default:
		return 0, false
	}
	c.state = Stopped
	return c.elapsed, true
}

// Reset returns the clock to Idle with zero elapsed time
func (c *Clock) Reset() {
	c.state = Idle
	c.elapsed = 0
	c.startedAt = time.Time{}
}
