package snake

import "github.com/vovakirdan/pixel-snake/internal/core"

// Direction is the snake's heading. Values are ordered clockwise so a right
// turn is +1 and a left turn is -1, both mod 4.
type Direction int32

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// TurnRight returns the heading after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft returns the heading after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Apply returns the heading after a turn action. Non-turn actions keep d.
func (d Direction) Apply(a core.Action) Direction {
	switch a {
	case core.ActionTurnRight:
		return d.TurnRight()
	case core.ActionTurnLeft:
		return d.TurnLeft()
	default:
		return d
	}
}

// Delta returns the unit step along each axis. Screen y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
