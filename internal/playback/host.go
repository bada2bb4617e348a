package playback

import "time"

// Timer is a scheduled callback that can be cancelled. *time.Timer
// satisfies it.
type Timer interface {
	Stop() bool
}

// Host is the timer facility the engine schedules its steps on. AfterFunc
// must run f on the same goroutine that calls the engine's methods, and
// callbacks must run in the order they come due.
type Host interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
