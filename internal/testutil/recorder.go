package testutil

import (
	"time"

	"codeberg.org/snonux/speedreader/internal/playback"
	"codeberg.org/snonux/speedreader/internal/text"
)

// Recorder collects engine events for assertions
type Recorder struct {
	Highlights []playback.Highlight
	Scrolls    []text.Span
	Ticks      []time.Duration
	Sessions   []playback.SessionStats
	Halts      []error
	Resets     int

	// HighlightAt records the host time of every highlight when Host is set
	Host        playback.Host
	HighlightAt []time.Time

	// OnHighlight runs after a highlight is recorded, e.g. to simulate slow
	// rendering with FakeHost.Elapse
	OnHighlight func(playback.Highlight)
}

// Callbacks returns engine callbacks that record into r
func (r *Recorder) Callbacks() playback.Callbacks {
	return playback.Callbacks{
		OnHighlight: func(h playback.Highlight) {
			r.Highlights = append(r.Highlights, h)
			if r.Host != nil {
				r.HighlightAt = append(r.HighlightAt, r.Host.Now())
			}
			if r.OnHighlight != nil {
				r.OnHighlight(h)
			}
		},
		OnScroll: func(span text.Span) {
			r.Scrolls = append(r.Scrolls, span)
		},
		OnTick: func(d time.Duration) {
			r.Ticks = append(r.Ticks, d)
		},
		OnSessionEnd: func(s playback.SessionStats) {
			r.Sessions = append(r.Sessions, s)
		},
		OnHalt: func(err error) {
			r.Halts = append(r.Halts, err)
		},
		OnReset: func() {
			r.Resets++
		},
	}
}

// Words returns the highlighted word texts in order
func (r *Recorder) Words() []string {
	words := make([]string, len(r.Highlights))
	for i, h := range r.Highlights {
		words[i] = h.Word.Text
	}
	return words
}
