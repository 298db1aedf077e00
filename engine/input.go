package engine

// Action is a logical control polled each step
type Action uint8

const (
	ActionP1Up Action = iota
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionP1Up:   "p1_up",
	ActionP1Down: "p1_down",
	ActionP2Up:   "p2_up",
	ActionP2Down: "p2_down",
}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}

// InputSource answers whether an action's key is currently held
type InputSource interface {
	Held(a Action) bool
}

// Input is a per-step snapshot of the four controls
type Input struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

// PollInput snapshots src; nil src yields no input
func PollInput(src InputSource) Input {
	if src == nil {
		return Input{}
	}
	return Input{
		P1Up:   src.Held(ActionP1Up),
		P1Down: src.Held(ActionP1Down),
		P2Up:   src.Held(ActionP2Up),
		P2Down: src.Held(ActionP2Down),
	}
}
