package playback

import (
	"testing"
	"time"
)

func TestStepDelay(t *testing.T) {
	tests := []struct {
		name    string
		wpm     int
		latency time.Duration
		want    time.Duration
	}{
		{"no latency 400wpm", 400, 0, 150 * time.Millisecond},
		{"no latency 60wpm", 60, 0, time.Second},
		{"latency subtracted", 400, 40 * time.Millisecond, 110 * time.Millisecond},
		{"latency equals interval", 400, 150 * time.Millisecond, time.Millisecond},
		{"latency exceeds interval", 400, time.Second, time.Millisecond},
		{"invalid rate floors", 0, 0, time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepDelay(tt.wpm, tt.latency); got != tt.want {
				t.Errorf("StepDelay(%d, %v) = %v, want %v", tt.wpm, tt.latency, got, tt.want)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	if got := Interval(150); got != 400*time.Millisecond {
		t.Errorf("Interval(150) = %v, want 400ms", got)
	}
	if got := Interval(-1); got != 0 {
		t.Errorf("Interval(-1) = %v, want 0", got)
	}
}
