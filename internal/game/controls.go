package game

// Action is a semantic input event.
type Action uint8

const (
	ActionNone Action = iota
	ActionResetOffset
	ActionDecreaseOffset
	ActionIncreaseOffset
	ActionToggleStats
	ActionTogglePause
)

func (a Action) String() string {
	switch a {
	case ActionResetOffset:
		return "reset-offset"
	case ActionDecreaseOffset:
		return "decrease-offset"
	case ActionIncreaseOffset:
		return "increase-offset"
	case ActionToggleStats:
		return "toggle-stats"
	case ActionTogglePause:
		return "toggle-pause"
	default:
		return "none"
	}
}

// State is the frame driver's run state.
type State uint8

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}
