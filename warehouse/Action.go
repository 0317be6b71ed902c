package warehouse

import "fmt"

// Action is one of the six primitive actions the robot can take
type Action int

const (
	Forward Action = iota
	TurnLeft
	TurnRight
	Grab
	Shutdown
	Exit
)

// Actions is the number of distinct actions
const Actions int = 6

func (a Action) String() string {
	switch a {
	case Forward:
		return "FORWARD"
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	case Grab:
		return "GRAB"
	case Shutdown:
		return "SHUTDOWN"
	case Exit:
		return "EXIT"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
