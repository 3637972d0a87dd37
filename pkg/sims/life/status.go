package life

// Status is the message shown below the board after each request.
type Status uint8

const (
	StatusNormal Status = iota
	StatusNewGame
	StatusDeadBoard
	StatusInfiniteLoop
	StatusGenerationNotFound
	StatusGenerationLoaded
)

var statusKeys = [...]string{
	StatusNormal:             "Normal",
	StatusNewGame:            "NewGame",
	StatusDeadBoard:          "DeadBoard",
	StatusInfiniteLoop:       "InfiniteLoop",
	StatusGenerationNotFound: "GenerationNotFound",
	StatusGenerationLoaded:   "GenerationLoaded",
}

var statusMessages = [...]string{
	StatusNormal:             "",
	StatusNewGame:            "Welcome to the Game of Life. Set your first generation and press Go!",
	StatusDeadBoard:          "Dead board.",
	StatusInfiniteLoop:       "No further evolution (infinite loop).",
	StatusGenerationNotFound: "This generation does not exist.",
	StatusGenerationLoaded:   "Generation loaded.",
}

// String returns the status key.
func (s Status) String() string {
	if int(s) < len(statusKeys) {
		return statusKeys[s]
	}
	return "Unknown"
}

// Message returns the display text.
func (s Status) Message() string {
	if int(s) < len(statusMessages) {
		return statusMessages[s]
	}
	return ""
}

// State is the auto-play state of a Game.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}
