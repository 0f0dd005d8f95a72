package core

// Action is a command derived from the button/switch pair.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnRight        // Button edge with an even switch value
	ActionTurnLeft         // Button edge with an odd switch value
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnRight:
		return "TurnRight"
	case ActionTurnLeft:
		return "TurnLeft"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action steers the snake.
func (a Action) IsTurn() bool {
	return a == ActionTurnRight || a == ActionTurnLeft
}
