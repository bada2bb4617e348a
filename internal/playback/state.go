package playback

// State is the playback state of a session
type State int

const (
	Idle State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Style is how a highlighted word is presented
type Style int

const (
	StyleContent Style = iota
	StyleStop
)

func (s Style) String() string {
	switch s {
	case StyleContent:
		return "Content"
	case StyleStop:
		return "Stop"
	default:
		return "Unknown"
	}
}
