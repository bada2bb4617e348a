package playback

import "time"

const minStepDelay = time.Millisecond

// Interval returns the nominal time between two words at wpm
func Interval(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(wpm)
}

// StepDelay returns how long to wait before the next step when the current
// step took latency to process. The delay never drops below 1ms so a slow
// step cannot starve the host.
func StepDelay(wpm int, latency time.Duration) time.Duration {
	delay := Interval(wpm) - latency
	if delay < minStepDelay {
		return minStepDelay
	}
	return delay
}

// step highlights the word at the current index and schedules the next one.
// Steps from an earlier generation (before a pause, stop or reset) are
// ignored.
func (e *Engine) step(gen uint64) {
	if gen != e.gen || e.clock.State() != Running {
		return
	}
	e.stepTimer = nil

	if e.index >= len(e.tokens) {
		e.Stop()
		return
	}

	t0 := e.host.Now()

	tok := e.tokens[e.index]
	style := StyleContent
	if e.classifier.IsStopWord(tok.Text) {
		style = StyleStop
	}

	from := e.cursor.Pos()
	span, err := e.cursor.Next(tok)
	if err != nil {
		e.halt(&HaltError{Word: tok.Text, Ordinal: tok.Ordinal, Offset: from})
		return
	}

	// Count the word before the callbacks run so a stop issued from inside
	// one reports it as processed
	e.index++
	if e.highlight {
		e.callbacks.highlight(Highlight{Word: tok, Span: span, Style: style})
	} else {
		e.callbacks.scroll(span)
	}

	latency := e.host.Now().Sub(t0)

	// A callback may have paused, stopped or reset the session
	if gen != e.gen || e.clock.State() != Running {
		return
	}

	delay := StepDelay(e.wpm, latency)
	e.logger.Debug("step", "word", tok.Text, "index", tok.Ordinal, "style", style, "latency", latency, "delay", delay)

	// The last word is shown for a full interval too; the step after it
	// finds the tokens exhausted and stops the session.
	e.stepTimer = e.host.AfterFunc(delay, func() { e.step(gen) })
}

func (e *Engine) tick(gen uint64) {
	if gen != e.gen || e.clock.State() != Running {
		return
	}
	e.callbacks.tick(e.clock.Elapsed())
	e.tickTimer = e.host.AfterFunc(e.tickInterval, func() { e.tick(gen) })
}
