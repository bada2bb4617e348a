package playback

import (
	"fmt"
	"time"
)

// SessionStats summarizes a finished reading session
type SessionStats struct {
	WPMAchieved    float64
	WordsProcessed int
	WordsTotal     int
	Elapsed        time.Duration
}

// NewSessionStats computes the achieved rate for processed words read in
// elapsed time. Zero elapsed time reports 0 WPM.
func NewSessionStats(processed, total int, elapsed time.Duration) SessionStats {
	stats := SessionStats{
		WordsProcessed: processed,
		WordsTotal:     total,
		Elapsed:        elapsed,
	}
	if minutes := elapsed.Minutes(); minutes > 0 {
		stats.WPMAchieved = float64(processed) / minutes
	}
	return stats
}

// ElapsedSeconds returns the reading time in seconds
func (s SessionStats) ElapsedSeconds() float64 {
	return s.Elapsed.Seconds()
}

func (s SessionStats) String() string {
	return fmt.Sprintf("Words per minute: %d\n(Processed %d/%d words in %.2fs)",
		int(s.WPMAchieved), s.WordsProcessed, s.WordsTotal, s.ElapsedSeconds())
}

// FormatElapsed formats d as the reader's timer, "Time: MM:SS.cc"
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("Time: %02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
