package gui

import (
	"time"

	"fyne.io/fyne/v2"

	"codeberg.org/snonux/speedreader/internal/playback"
)

// fyneHost runs engine timers on the fyne main goroutine
type fyneHost struct{}

func (fyneHost) Now() time.Time {
	return time.Now()
}

func (fyneHost) AfterFunc(d time.Duration, f func()) playback.Timer {
	return time.AfterFunc(d, func() { fyne.Do(f) })
}
