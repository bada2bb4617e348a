package playback

import (
	"context"
	"time"
)

// Loop is a Host backed by a single goroutine. Timer callbacks and functions
// passed to Do run one at a time on the goroutine that calls Run.
type Loop struct {
	funcs chan func()
	done  chan struct{}
}

// NewLoop creates a loop; call Run to start processing
func NewLoop() *Loop {
	return &Loop{
		funcs: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run processes callbacks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case f := <-l.funcs:
			f()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Now implements Host
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc implements Host
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { l.Do(f) })
}

// Do queues f to run on the loop goroutine. It is dropped once the loop has
// stopped.
func (l *Loop) Do(f func()) {
	select {
	case l.funcs <- f:
	case <-l.done:
	}
}

// Call runs f on the loop goroutine and waits for it to finish. It returns
// false if the loop stopped before f ran.
func (l *Loop) Call(f func()) bool {
	ran := make(chan struct{})
	select {
	case l.funcs <- func() { f(); close(ran) }:
	case <-l.done:
		return false
	}
	select {
	case <-ran:
		return true
	case <-l.done:
		select {
		case <-ran:
			return true
		default:
			return false
		}
	}
}
