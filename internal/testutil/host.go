package testutil

import (
	"sort"
	"time"

	"codeberg.org/snonux/speedreader/internal/playback"
)

// FakeHost is a virtual-time playback.Host. Time only moves when a test
// calls Advance or Elapse, and timers fire synchronously inside Advance in
// due order.
type FakeHost struct {
	now    time.Time
	seq    int
	timers []*FakeTimer
}

// FakeTimer is a timer scheduled on a FakeHost
type FakeTimer struct {
	host    *FakeHost
	due     time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// Stop implements playback.Timer
func (t *FakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewFakeHost creates a host whose clock starts at a fixed instant
func NewFakeHost() *FakeHost {
	return &FakeHost{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now implements playback.Host
func (h *FakeHost) Now() time.Time {
	return h.now
}

// AfterFunc implements playback.Host
func (h *FakeHost) AfterFunc(d time.Duration, f func()) playback.Timer {
	h.seq++
	t := &FakeTimer{host: h, due: h.now.Add(d), seq: h.seq, f: f}
	h.timers = append(h.timers, t)
	return t
}

// Elapse moves the clock forward without firing timers, simulating work done
// inside a callback
func (h *FakeHost) Elapse(d time.Duration) {
	h.now = h.now.Add(d)
}

// Advance moves the clock forward by d, firing every timer that comes due on
// the way, including timers scheduled by the callbacks themselves
func (h *FakeHost) Advance(d time.Duration) {
	end := h.now.Add(d)
	for {
		next := h.nextDue(end)
		if next == nil {
			break
		}
		if next.due.After(h.now) {
			h.now = next.due
		}
		next.fired = true
		next.f()
	}
	if end.After(h.now) {
		h.now = end
	}
}

// RunUntilIdle fires timers until none are pending or limit timers have
// fired. It returns the number of timers fired.
func (h *FakeHost) RunUntilIdle(limit int) int {
	fired := 0
	for fired < limit {
		next := h.nextDue(time.Time{})
		if next == nil {
			break
		}
		if next.due.After(h.now) {
			h.now = next.due
		}
		next.fired = true
		next.f()
		fired++
	}
	return fired
}

// Pending returns the number of timers that have neither fired nor been
// stopped
func (h *FakeHost) Pending() int {
	h.compact()
	return len(h.timers)
}

// nextDue returns the earliest live timer due at or before limit. A zero
// limit means no limit.
func (h *FakeHost) nextDue(limit time.Time) *FakeTimer {
	h.compact()
	sort.SliceStable(h.timers, func(i, j int) bool {
		if h.timers[i].due.Equal(h.timers[j].due) {
			return h.timers[i].seq < h.timers[j].seq
		}
		return h.timers[i].due.Before(h.timers[j].due)
	})
	if len(h.timers) == 0 {
		return nil
	}
	next := h.timers[0]
	if !limit.IsZero() && next.due.After(limit) {
		return nil
	}
	return next
}

func (h *FakeHost) compact() {
	live := h.timers[:0]
	for _, t := range h.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	h.timers = live
}
