// Package playback paces the highlighting of a document's words at a target
// words-per-minute rate.
//
// An Engine owns one reading session: the tokenized document, the cursor that
// locates each word in order, the clock that accounts elapsed reading time
// across pause and resume, and the step scheduler. Each step highlights one
// word and schedules the next one after the nominal interval minus the time
// the step itself took, so slow rendering does not drag the achieved rate
// below the target.
//
// The engine is not safe for concurrent use. Every method and every
// scheduled callback runs on the goroutine owned by its Host: the fyne UI
// goroutine, a Loop, or a test's fake host. At most one step is pending at
// any time and a step that was already dispatched when the session paused or
// stopped becomes a no-op.
package playback
