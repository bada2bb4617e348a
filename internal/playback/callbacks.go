package playback

import (
	"time"

	"codeberg.org/snonux/speedreader/internal/text"
)

// Highlight is emitted once per word while highlighting is enabled
type Highlight struct {
	Word  text.WordToken
	Span  text.Span
	Style Style
}

// Callbacks receive engine events on the host goroutine. Nil fields are
// skipped.
type Callbacks struct {
	// OnHighlight replaces any previous highlight with this one and should
	// bring the span into view
	OnHighlight func(Highlight)

	// OnScroll moves the view to span without styling it; used instead of
	// OnHighlight while highlighting is disabled
	OnScroll func(text.Span)

	// OnTick reports elapsed reading time roughly every tick interval while
	// Running. Display only.
	OnTick func(time.Duration)

	// OnSessionEnd reports the statistics of a stopped session
	OnSessionEnd func(SessionStats)

	// OnHalt reports a session aborted by a cursor inconsistency. No
	// statistics are reported for it.
	OnHalt func(error)

	// OnReset tells the presentation to drop any highlight; the session is
	// Idle again
	OnReset func()
}

func (c Callbacks) highlight(h Highlight) {
	if c.OnHighlight != nil {
		c.OnHighlight(h)
	}
}

func (c Callbacks) scroll(span text.Span) {
	if c.OnScroll != nil {
		c.OnScroll(span)
	}
}

func (c Callbacks) tick(elapsed time.Duration) {
	if c.OnTick != nil {
		c.OnTick(elapsed)
	}
}

func (c Callbacks) sessionEnd(stats SessionStats) {
	if c.OnSessionEnd != nil {
		c.OnSessionEnd(stats)
	}
}

func (c Callbacks) halt(err error) {
	if c.OnHalt != nil {
		c.OnHalt(err)
	}
}

func (c Callbacks) reset() {
	if c.OnReset != nil {
		c.OnReset()
	}
}
