package playback

import (
	"log/slog"
	"time"

	"codeberg.org/snonux/speedreader/internal/stopwords"
	"codeberg.org/snonux/speedreader/internal/text"
)

// Engine drives one reading session at a time
type Engine struct {
	host      Host
	logger    *slog.Logger
	callbacks Callbacks

	doc    string
	tokens []text.WordToken
	cursor *text.Cursor
	index  int

	clock      *Clock
	lookup     stopwords.Lookup
	language   string
	classifier *stopwords.Classifier

	wpm          int
	highlight    bool
	tickInterval time.Duration

	// gen invalidates callbacks scheduled before the last pause, stop or
	// reset
	gen       uint64
	stepTimer Timer
	tickTimer Timer
}

// New creates an Idle engine with an empty document
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:         host,
		logger:       slog.Default(),
		cursor:       text.NewCursor(""),
		clock:        NewClock(host.Now),
		wpm:          DefaultWPM,
		highlight:    true,
		tickInterval: DefaultTickInterval,
		classifier:   stopwords.NewClassifier("", nil),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.lookup != nil {
		if e.language == "" {
			e.language = DefaultLanguage
		}
		if err := e.SetLanguage(e.language); err != nil {
			e.logger.Warn("stop words unavailable", "language", e.language, "error", err)
		}
	}

	return e
}

// SetCallbacks replaces the event callbacks
func (e *Engine) SetCallbacks(cb Callbacks) {
	e.callbacks = cb
}

// Load replaces the document. Any session in progress is reset first,
// without statistics.
func (e *Engine) Load(doc string) {
	e.Reset()
	e.doc = doc
	e.tokens = text.Tokenize(doc)
	e.cursor = text.NewCursor(doc)
	e.logger.Info("document loaded", "bytes", len(doc), "words", len(e.tokens))
}

// Start begins a fresh session from Idle or resumes a Paused one. It does
// nothing while Running or when the document has no words.
func (e *Engine) Start() {
	if len(e.tokens) == 0 {
		e.logger.Debug("start ignored: nothing to play")
		return
	}

	fresh := e.clock.State() != Paused
	if !e.clock.Start() {
		return
	}
	if fresh {
		e.index = 0
		e.cursor.Reset()
		e.callbacks.reset()
	}
	e.logger.Info("playback started", "fresh", fresh, "index", e.index, "wpm", e.wpm, "elapsed", e.clock.Elapsed())

	e.gen++
	gen := e.gen
	e.callbacks.tick(e.clock.Elapsed())
	e.tickTimer = e.host.AfterFunc(e.tickInterval, func() { e.tick(gen) })
	e.step(gen)
}

// Pause freezes the session. The highlighted word and position are kept.
func (e *Engine) Pause() {
	if !e.clock.Pause() {
		return
	}
	e.cancelPending()
	e.callbacks.tick(e.clock.Elapsed())
	e.logger.Info("playback paused", "index", e.index, "elapsed", e.clock.Elapsed())
}

// Stop ends a Running or Paused session, reports its statistics through
// OnSessionEnd and returns the engine to Idle. ok is false when there was no
// session to stop.
func (e *Engine) Stop() (stats SessionStats, ok bool) {
	elapsed, ok := e.clock.Stop()
	if !ok {
		return SessionStats{}, false
	}
	e.cancelPending()

	stats = NewSessionStats(e.index, len(e.tokens), elapsed)
	e.logger.Info("playback stopped",
		"wpm", int(stats.WPMAchieved),
		"processed", stats.WordsProcessed,
		"total", stats.WordsTotal,
		"elapsed", elapsed)
	// Idle before the callback runs, so it may start a new session
	e.resetSession()
	e.callbacks.sessionEnd(stats)
	return stats, true
}

// Reset returns to Idle from any state, dropping the session without
// statistics
func (e *Engine) Reset() {
	e.cancelPending()
	e.resetSession()
}

func (e *Engine) halt(err *HaltError) {
	e.logger.Error("playback halted", "word", err.Word, "ordinal", err.Ordinal, "offset", err.Offset)
	e.clock.Stop()
	e.cancelPending()
	e.resetSession()
	e.callbacks.halt(err)
}

func (e *Engine) resetSession() {
	e.clock.Reset()
	e.index = 0
	e.cursor.Reset()
	e.callbacks.reset()
}

func (e *Engine) cancelPending() {
	e.gen++
	if e.stepTimer != nil {
		e.stepTimer.Stop()
		e.stepTimer = nil
	}
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
}

// SetWPM changes the target rate. It applies from the next scheduled step.
func (e *Engine) SetWPM(wpm int) error {
	if wpm <= 0 {
		return &ConfigError{Field: "wpm", Value: wpm, Err: ErrInvalidRate}
	}
	e.wpm = wpm
	return nil
}

// SetLanguage switches the stop-word set. The next step uses it; words
// already highlighted keep their style. On failure the previous set stays.
func (e *Engine) SetLanguage(language string) error {
	if e.lookup == nil {
		return &ConfigError{Field: "language", Value: language, Err: ErrUnknownLanguage}
	}
	set, err := e.lookup.Lookup(language)
	if err != nil {
		return &ConfigError{Field: "language", Value: language, Err: err}
	}
	e.language = language
	e.classifier = stopwords.NewClassifier(language, set)
	return nil
}

// SetHighlightEnabled toggles styling; when off the engine still advances
// and scrolls
func (e *Engine) SetHighlightEnabled(enabled bool) {
	e.highlight = enabled
}

// State returns the playback state
func (e *Engine) State() State {
	return e.clock.State()
}

// Index returns the number of words processed in this session
func (e *Engine) Index() int {
	return e.index
}

// Total returns the number of words in the document
func (e *Engine) Total() int {
	return len(e.tokens)
}

// Elapsed returns the reading time of this session
func (e *Engine) Elapsed() time.Duration {
	return e.clock.Elapsed()
}

// WPM returns the target rate
func (e *Engine) WPM() int {
	return e.wpm
}

// Language returns the active stop-word language
func (e *Engine) Language() string {
	return e.classifier.Language()
}

// HighlightEnabled reports whether words are styled
func (e *Engine) HighlightEnabled() bool {
	return e.highlight
}

// Document returns the loaded text
func (e *Engine) Document() string {
	return e.doc
}

// Tokens returns the words of the document. The slice must not be modified.
func (e *Engine) Tokens() []text.WordToken {
	return e.tokens
}

// CursorPos returns the offset the next word is searched from
func (e *Engine) CursorPos() int {
	return e.cursor.Pos()
}
