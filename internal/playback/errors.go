package playback

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/speedreader/internal/stopwords"
	"codeberg.org/snonux/speedreader/internal/text"
)

var (
	// ErrInvalidRate is returned for a non-positive words-per-minute rate
	ErrInvalidRate = errors.New("words per minute must be positive")

	// ErrUnknownLanguage is returned when a language has no stop-word set
	ErrUnknownLanguage = stopwords.ErrUnknownLanguage

	// ErrHalted signals that playback stopped because the cursor lost track
	// of the document, not because the text ran out
	ErrHalted = errors.New("playback halted unexpectedly")
)

// ConfigError reports a rejected setting. The previous value stays in effect.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// HaltError describes a token the cursor could not find in the document it
// was tokenized from. It matches both ErrHalted and text.ErrNotFound.
type HaltError struct {
	Word    string
	Ordinal int
	Offset  int
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("%v: word %q (#%d) not found after offset %d", ErrHalted, e.Word, e.Ordinal, e.Offset)
}

func (e *HaltError) Unwrap() []error {
	return []error{ErrHalted, text.ErrNotFound}
}
