package core

// Action is a semantic puzzle intent, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow
	ActionDown          // S, J, Down arrow
	ActionLeft          // A, H, Left arrow
	ActionRight         // D, L, Right arrow
	ActionSelect        // Enter, Space - select a cell or drop the held piece
	ActionCancel        // Esc - drop the current selection
	ActionReset         // R - restore the level's initial state
	ActionNext          // N - next level
	ActionPrev          // P - previous level
	ActionBack          // B - back to the level list
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionReset:
		return "Reset"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor offset for a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
