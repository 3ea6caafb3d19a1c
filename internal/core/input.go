package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // w
	ActionDown         // s
	ActionLeft         // a
	ActionRight        // d
	ActionQuit         // q, Ctrl+C
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a direction action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

const ctrlC = 0x03

// ActionForByte maps a raw keyboard byte to an action.
// Unrecognized bytes report false.
func ActionForByte(b byte) (Action, bool) {
	switch b {
	case 'w':
		return ActionUp, true
	case 's':
		return ActionDown, true
	case 'a':
		return ActionLeft, true
	case 'd':
		return ActionRight, true
	case 'q', ctrlC:
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame holds the input for a single simulation tick.
// At most one action is delivered per tick; the zero value means no input.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an input frame carrying the given action.
func NewInputFrame(a Action) InputFrame {
	return InputFrame{Action: a}
}

// Set replaces the action for this frame.
func (f *InputFrame) Set(a Action) {
	f.Action = a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
}
