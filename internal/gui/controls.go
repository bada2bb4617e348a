package gui

import "codeberg.org/snonux/speedreader/internal/playback"

// controlState says which transport buttons are usable
type controlState struct {
	start, pause, stop, reset bool
}

func controlsFor(state playback.State, total int) controlState {
	loaded := total > 0
	switch state {
	case playback.Running:
		return controlState{pause: true, stop: true, reset: true}
	case playback.Paused:
		return controlState{start: true, stop: true, reset: true}
	default:
		return controlState{start: loaded, reset: loaded}
	}
}

func (a *Application) updateControls() {
	c := controlsFor(a.engine.State(), a.engine.Total())
	setEnabled(a.startButton, c.start)
	setEnabled(a.pauseButton, c.pause)
	setEnabled(a.stopButton, c.stop)
	setEnabled(a.resetButton, c.reset)
}

type enabler interface {
	Enable()
	Disable()
}

func setEnabled(w enabler, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
