package playback

import (
	"log/slog"
	"time"

	"codeberg.org/snonux/speedreader/internal/stopwords"
)

const (
	// DefaultWPM is the first preset of the original reader
	DefaultWPM = 150

	// DefaultTickInterval is how often OnTick fires while Running
	DefaultTickInterval = 100 * time.Millisecond

	// DefaultLanguage is used when no language is configured
	DefaultLanguage = "english"
)

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCallbacks sets the event callbacks
func WithCallbacks(cb Callbacks) Option {
	return func(e *Engine) {
		e.callbacks = cb
	}
}

// WithWPM sets the initial target rate; non-positive values are ignored
func WithWPM(wpm int) Option {
	return func(e *Engine) {
		if wpm > 0 {
			e.wpm = wpm
		}
	}
}

// WithHighlight sets whether words are highlighted or only scrolled to
func WithHighlight(enabled bool) Option {
	return func(e *Engine) {
		e.highlight = enabled
	}
}

// WithTickInterval sets the OnTick period
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// WithStopWords sets where stop-word sets come from and the initial
// language. An unresolvable language leaves the classifier empty and is
// logged.
func WithStopWords(lookup stopwords.Lookup, language string) Option {
	return func(e *Engine) {
		e.lookup = lookup
		e.language = language
	}
}
