package core

// Action represents a semantic game action, abstracted from physical keys.
// Hosts translate their key events into actions; the engine only sees actions.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - move paddle left
	ActionRight         // Right arrow, D - move paddle right
	ActionToggle        // Space - start if idle, pause if running, resume if paused
	ActionReset         // R - reset the run
	ActionQuit          // Q, Ctrl+C - leave the host
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
