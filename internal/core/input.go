package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine consumes exactly one action per call; unknown keys never reach it.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, h, a - shift piece one column left
	ActionMoveRight        // Right arrow, l, d - shift piece one column right
	ActionSoftDrop         // Down arrow, j, s - drop one row, reset gravity timer
	ActionHardDrop         // Space - drop to rest and lock immediately
	ActionRotateCW         // Up arrow, k, w, x - quarter turn clockwise
	ActionRotateCCW        // Z - quarter turn counter-clockwise
	ActionPause            // P - pause/unpause
	ActionRestart          // R - restart from scratch
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
