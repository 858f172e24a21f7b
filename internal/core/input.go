package core

// Action represents a semantic host action, abstracted from physical key presses.
// Hosts translate actions into game calls (MoveBasket) or platform behavior.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, H, A - nudge the basket left
	ActionRight             // Right arrow, L, D - nudge the basket right
	ActionScreenshot        // Ctrl+S - save a PNG of the current frame
	ActionQuit              // Q, Ctrl+C, Esc - exit game/session
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
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement command carried by the action,
// or an empty string for actions that do not move the basket.
func (a Action) Direction() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return ""
	}
}
